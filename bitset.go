package tuber

// BitSet is a fixed-capacity presence bitmap, one bit per entity slot. It is
// backed by 64-bit words and does not grow: callers size the universe up
// front with NewBitSet. Indexing beyond the capacity is out of contract and
// panics via the underlying slice access.
type BitSet []uint64

// NewBitSet returns a BitSet covering at least the given number of bits,
// rounded up to a whole number of words.
func NewBitSet(bits int) BitSet {
	return make(BitSet, (bits+bitsPerWord-1)/bitsPerWord)
}

// Set marks bit i.
func (b BitSet) Set(i int) {
	b[i/bitsPerWord] |= 1 << (i % bitsPerWord)
}

// Unset clears bit i.
func (b BitSet) Unset(i int) {
	b[i/bitsPerWord] &^= 1 << (i % bitsPerWord)
}

// Bit reports whether bit i is set.
func (b BitSet) Bit(i int) bool {
	return b[i/bitsPerWord]&(1<<(i%bitsPerWord)) != 0
}

// BitCount returns the capacity of the set in bits.
func (b BitSet) BitCount() int {
	return len(b) * bitsPerWord
}

// intersect overwrites b with the word-wise intersection of b and other.
// Both sets must share the same universe size.
func (b BitSet) intersect(other BitSet) {
	for i := range b {
		b[i] &= other[i]
	}
}
