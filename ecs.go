package tuber

// Ecs is the top-level registry: it maps component signatures to archetypes,
// assigns entity ids and owns the singleton resources. It is not safe for
// concurrent use; the intended driver is a single thread stepping systems.
type Ecs struct {
	archetypes    map[signature]*archetype
	archetypeList []*archetype // insertion order; iteration order across archetypes is unspecified but stable
	archetypeVer  uint32       // bumped when a new archetype appears, lets queries detect staleness
	locations     map[Entity]entityLocation
	presence      [maxComponentTypes]BitSet // per component id, one bit per entity slot
	nextEntity    Entity
	resources     *Resources
}

// NewEcs returns an empty Ecs. Entity ids start at 1; 0 is reserved for
// NoEntity.
func NewEcs() *Ecs {
	return &Ecs{
		archetypes: make(map[signature]*archetype),
		locations:  make(map[Entity]entityLocation),
		nextEntity: 1,
		resources:  newResources(),
	}
}

// InsertOne stores one bundle of components as a new entity and returns its
// id. The archetype for the bundle's component set is created on first use.
func (e *Ecs) InsertOne(b Bundle) Entity {
	ids := b.typeIDs()
	arch := e.archetypeOrCreate(ids, b)
	ent := e.nextEntity
	row := arch.allocateStorageForEntity(ent)
	b.writeInto(arch, row)
	e.locations[ent] = entityLocation{arch: arch, row: row}
	// Presence bits cover a fixed universe; entities past it are still
	// stored and query-walkable, just invisible to the presence-based paths.
	if int(ent) < presenceUniverse {
		for _, id := range ids {
			e.presenceFor(id).Set(int(ent))
		}
	}
	e.nextEntity++
	return ent
}

// Insert stores each bundle in order and returns the assigned ids.
func (e *Ecs) Insert(bundles ...Bundle) []Entity {
	entities := make([]Entity, len(bundles))
	for i, b := range bundles {
		entities[i] = e.InsertOne(b)
	}
	return entities
}

// EntityCount returns the number of ids assigned so far.
func (e *Ecs) EntityCount() int {
	return int(e.nextEntity) - 1
}

// Contains reports whether the entity currently has stored components.
func (e *Ecs) Contains(ent Entity) bool {
	_, ok := e.locations[ent]
	return ok
}

// Remove deletes an entity and its components. The archetype's last row is
// swap-moved into the freed slot so the columns stay dense. The id is never
// reused. Returns false if the entity does not exist.
func (e *Ecs) Remove(ent Entity) bool {
	loc, ok := e.locations[ent]
	if !ok {
		return false
	}
	moved := loc.arch.removeRow(ent)
	if moved != NoEntity {
		e.locations[moved] = entityLocation{arch: loc.arch, row: loc.row}
	}
	delete(e.locations, ent)
	if int(ent) < presenceUniverse {
		for _, m := range loc.arch.metas {
			e.presence[m.id].Unset(int(ent))
		}
	}
	return true
}

// Resources returns the Ecs-scoped singleton store.
func (e *Ecs) Resources() *Resources {
	return e.resources
}

// archetypeFor resolves the archetype storing exactly the given component
// set. It fails when no bundle with that signature was ever inserted.
func (e *Ecs) archetypeFor(ids ...ComponentID) (*archetype, error) {
	arch, ok := e.archetypes[makeSignature(ids)]
	if !ok {
		return nil, ErrArchetypeNotFound
	}
	return arch, nil
}

// archetypeOrCreate finds the archetype for a component set, creating it from
// the bundle's metadata on first use.
func (e *Ecs) archetypeOrCreate(ids []ComponentID, b Bundle) *archetype {
	sig := makeSignature(ids)
	if arch, ok := e.archetypes[sig]; ok {
		return arch
	}
	arch := newArchetype(b.metadata())
	e.archetypes[sig] = arch
	e.archetypeList = append(e.archetypeList, arch)
	e.archetypeVer++
	return arch
}

// presenceFor returns the presence bitset for a component id, allocating the
// fixed universe on first use.
func (e *Ecs) presenceFor(id ComponentID) BitSet {
	if e.presence[id] == nil {
		e.presence[id] = NewBitSet(presenceUniverse)
	}
	return e.presence[id]
}

// matchingIDs materializes the ascending entity ids whose presence bits are
// set for every given component id. A component never inserted matches
// nothing.
func (e *Ecs) matchingIDs(ids []ComponentID) []Entity {
	result := NewBitSet(presenceUniverse)
	for i := range result {
		result[i] = ^uint64(0)
	}
	for _, id := range ids {
		if e.presence[id] == nil {
			return nil
		}
		result.intersect(e.presence[id])
	}
	var matched []Entity
	limit := int(e.nextEntity)
	if limit > presenceUniverse {
		limit = presenceUniverse
	}
	for ent := 1; ent < limit; ent++ {
		if result.Bit(ent) {
			matched = append(matched, Entity(ent))
		}
	}
	return matched
}
