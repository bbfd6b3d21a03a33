package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQ_FIFOOrder(t *testing.T) {
	q := New[string]()
	q.Enqueue("one")
	q.Enqueue("two")
	q.Enqueue("three")

	assert.Equal(t, 3, q.Len())

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "one", v, "items should come out in insertion order")

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "two", v)

	v, ok = q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "three", v)

	_, ok = q.Dequeue()
	assert.False(t, ok, "dequeue on an empty queue should report not ok")
}

func TestQ_Peek(t *testing.T) {
	q := New[int]()

	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue(42)
	v, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, q.Len(), "peek should not remove the item")
}

func TestQ_Drain(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	assert.Equal(t, []string{"a", "b", "c"}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain(), "draining an empty queue should yield an empty slice")
}
