package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedBitSet_InsertGet(t *testing.T) {
	indices := []int{1, 32, 33, 127, 44, 47, 49}

	contains := func(slot int) bool {
		for _, idx := range indices {
			if idx == slot {
				return true
			}
		}
		return false
	}

	var b OrderedBitSet
	for _, idx := range indices {
		b.Insert(idx, true)
	}
	for slot := 0; slot < Capacity; slot++ {
		assert.Equal(t, contains(slot), b.Get(slot), "only inserted slots should be set (slot %d)", slot)
	}
	for _, idx := range indices {
		b.Insert(idx, false)
		assert.False(t, b.Get(idx), "slot %d should be clear after removal", idx)
	}
}

func TestOrderedBitSet_ZeroValue(t *testing.T) {
	var b OrderedBitSet
	for slot := 0; slot < Capacity; slot++ {
		assert.False(t, b.Get(slot), "zero value should be an empty set")
	}
}

func TestOrderedBitSet_IndexOutOfRange(t *testing.T) {
	var b OrderedBitSet
	assert.Panics(t, func() { b.Get(Capacity) })
	assert.Panics(t, func() { b.Insert(-1, true) })
}
