package tuber

import (
	"sort"
	"unsafe"
)

// archetype stores the data of every entity sharing one exact component set.
// It owns a single contiguous buffer subdivided into one column per component
// type: all A values first, then all B values, and so on. Column offsets are
// recomputed on every growth so each column starts at its type's alignment.
type archetype struct {
	data     []byte    // backing buffer; 8-byte aligned (see allocAligned)
	base     unsafe.Pointer
	capacity int       // rows the buffer can hold
	used     int       // rows written so far
	size     uintptr   // bytes laid out in data
	metas    []TypeMetadata // column order, ascending ComponentID
	offsets  []uintptr // byte offset of each column within data
	sig      signature
	slots    [maxComponentTypes]int16 // ComponentID -> column index, -1 if absent
	rows     map[Entity]int
	entities []Entity  // row -> entity, kept in step with rows
	borrows  [][]int32 // per column, per row borrow flags
}

// newArchetype records the column layout for the given component metadata.
// Nothing is allocated until the first row is needed. The metadata list is
// sorted by component id so the column order is canonical for the set.
func newArchetype(metas []TypeMetadata) *archetype {
	sorted := make([]TypeMetadata, len(metas))
	copy(sorted, metas)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].id < sorted[j].id })

	a := &archetype{
		metas:   sorted,
		offsets: make([]uintptr, len(sorted)),
		rows:    make(map[Entity]int),
		borrows: make([][]int32, len(sorted)),
	}
	for i := range a.slots {
		a.slots[i] = -1
	}
	for i, m := range sorted {
		a.slots[m.id] = int16(i)
		a.sig.set(m.id)
	}
	return a
}

// slot returns the column index for a component id, -1 if the archetype does
// not store that type.
func (a *archetype) slot(id ComponentID) int {
	return int(a.slots[id])
}

// allocateStorageForEntity reserves the next row for an entity, growing the
// buffer when none remains (0 -> 1, then doubling), and returns the row.
func (a *archetype) allocateStorageForEntity(e Entity) int {
	if a.used == a.capacity {
		if a.capacity == 0 {
			a.grow(1)
		} else {
			a.grow(a.capacity << 1)
		}
	}
	row := a.used
	a.rows[e] = row
	a.entities = append(a.entities, e)
	a.used++
	return row
}

// rowOf resolves an entity's row within this archetype.
func (a *archetype) rowOf(e Entity) (int, bool) {
	row, ok := a.rows[e]
	return row, ok
}

// grow reallocates the buffer for the new capacity and migrates every
// column's already-written rows from its old offset to its new one. The swap
// is not observable half-done: all fields change together after the copies.
func (a *archetype) grow(newCapacity int) {
	size, offsets := a.requiredSizeFor(newCapacity)
	data, base := allocAligned(size)
	if a.capacity != 0 {
		for i, m := range a.metas {
			n := uintptr(a.used) * m.size
			copy(data[offsets[i]:offsets[i]+n], a.data[a.offsets[i]:a.offsets[i]+n])
		}
	}
	a.data = data
	a.base = base
	a.offsets = offsets
	a.capacity = newCapacity
	a.size = size

	for i := range a.borrows {
		flags := make([]int32, newCapacity)
		copy(flags, a.borrows[i])
		a.borrows[i] = flags
	}
}

// requiredSizeFor computes the total buffer size and per-column offsets for a
// capacity: each column starts at the running total rounded up to its type's
// alignment and spans size*capacity bytes.
func (a *archetype) requiredSizeFor(capacity int) (uintptr, []uintptr) {
	var size uintptr
	offsets := make([]uintptr, len(a.metas))
	for i, m := range a.metas {
		size = alignValue(size, m.align)
		offsets[i] = size
		size += m.size * uintptr(capacity)
	}
	return size, offsets
}

// writeComponent byte-copies one component value into its slot. The caller
// supplies the column and element size; nothing is checked here.
func (a *archetype) writeComponent(col, row int, size uintptr, src unsafe.Pointer) {
	memCopy(a.componentPtr(col, row, size), src, size)
}

// componentPtr returns the address of the value at (col, row).
func (a *archetype) componentPtr(col, row int, size uintptr) unsafe.Pointer {
	return unsafe.Add(a.base, a.offsets[col]+uintptr(row)*size)
}

// componentAt reinterprets the slot at (col, row) as a T. Correctness depends
// entirely on the caller pairing col with the right type; the typed bundle
// and query layers are the only callers and own that guarantee.
func componentAt[T any](a *archetype, col, row int) *T {
	return (*T)(a.componentPtr(col, row, a.metas[col].size))
}

// borrowFlag returns the borrow guard for the slot at (col, row).
func (a *archetype) borrowFlag(col, row int) *int32 {
	return &a.borrows[col][row]
}

// removeRow swap-removes an entity's row: the last row is copied into the
// freed slot, column by column, and the moved entity (if any) is returned so
// the caller can update its location.
func (a *archetype) removeRow(e Entity) (moved Entity) {
	row := a.rows[e]
	last := a.used - 1
	if row < last {
		for i, m := range a.metas {
			memCopy(a.componentPtr(i, row, m.size), a.componentPtr(i, last, m.size), m.size)
		}
		moved = a.entities[last]
		a.entities[row] = moved
		a.rows[moved] = row
	}
	delete(a.rows, e)
	a.entities = a.entities[:last]
	a.used--
	return moved
}

// alignValue rounds value up to the next multiple of alignment, which must be
// a power of two.
func alignValue(value, alignment uintptr) uintptr {
	return (value + alignment - 1) &^ (alignment - 1)
}

// allocAligned allocates a buffer of at least size bytes whose base address
// is 8-byte aligned, covering the strictest alignment of any Go type on the
// supported targets. The returned slice is padded to whole words so every
// computed column offset stays in bounds.
func allocAligned(size uintptr) ([]byte, unsafe.Pointer) {
	words := make([]uint64, (size+7)/8+1)
	base := unsafe.Pointer(&words[0])
	return unsafe.Slice((*byte)(base), len(words)*8), base
}

// memCopy copies size bytes between two raw addresses.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
}
