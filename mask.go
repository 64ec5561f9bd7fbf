package tuber

// signature identifies an archetype by the set of component types it stores,
// one bit per ComponentID. Keying archetypes by the component SET rather than
// the declaration order means bundles listing the same types in different
// orders resolve to the same archetype.
type signature [maskWords]uint64

// set marks the bit for a component id.
func (s *signature) set(id ComponentID) {
	s[id/bitsPerWord] |= 1 << (id % bitsPerWord)
}

// unset clears the bit for a component id.
func (s *signature) unset(id ComponentID) {
	s[id/bitsPerWord] &^= 1 << (id % bitsPerWord)
}

// has reports whether the bit for a component id is set.
func (s signature) has(id ComponentID) bool {
	return s[id/bitsPerWord]&(1<<(id%bitsPerWord)) != 0
}

// containsAll reports whether every bit of sub is also set in s.
func (s signature) containsAll(sub signature) bool {
	for i := 0; i < maskWords; i++ {
		if s[i]&sub[i] != sub[i] {
			return false
		}
	}
	return true
}

// makeSignature builds a signature from a list of component ids.
func makeSignature(ids []ComponentID) signature {
	var s signature
	for _, id := range ids {
		s.set(id)
	}
	return s
}
