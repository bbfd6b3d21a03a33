// Package queue provides a small generic FIFO used to assemble argument
// token streams from multiple sources before parsing.
package queue

import "github.com/ef-ds/deque"

// Q is a generic FIFO queue backed by a double-ended queue.
// Enqueue and Dequeue are O(1) amortized.
type Q[T any] struct {
	d deque.Deque
}

// New creates an empty queue.
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Enqueue adds an item to the back of the queue.
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the item at the front of the queue.
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Peek returns the item at the front of the queue without removing it.
func (q *Q[T]) Peek() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Len returns the number of queued items.
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// Drain removes all items from the queue and returns them in FIFO order.
func (q *Q[T]) Drain() []T {
	out := make([]T, 0, q.Len())
	for {
		v, ok := q.Dequeue()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
