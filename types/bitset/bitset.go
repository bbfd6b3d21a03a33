// Package bitset provides a fixed-capacity bit set addressed by ordinal
// position. The parser uses it to track which required options have been
// seen without allocating.
package bitset

const (
	wordBits = 32
	numWords = 4

	// Capacity is the number of slots in the set.
	Capacity = wordBits * numWords
)

// OrderedBitSet is a fixed-size set of Capacity binary slots. The zero value
// is an empty set ready for use.
type OrderedBitSet struct {
	words [numWords]uint32
}

// Insert sets the slot at index to value. index must be in [0, Capacity).
func (b *OrderedBitSet) Insert(index int, value bool) {
	word, mask := split(index)
	if value {
		b.words[word] |= mask
	} else {
		b.words[word] &^= mask
	}
}

// Get reports the value of the slot at index. index must be in [0, Capacity).
func (b *OrderedBitSet) Get(index int) bool {
	word, mask := split(index)
	return b.words[word]&mask != 0
}

func split(index int) (int, uint32) {
	if index < 0 || index >= Capacity {
		panic("bitset: index out of range")
	}
	return index / wordBits, uint32(1) << (uint(index) % wordBits)
}
