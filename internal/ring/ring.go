// Package ring provides a fixed-capacity FIFO ring buffer used by the logger
// entry store and the console command history.
//
// Inserting into a full buffer evicts the oldest element. The buffer performs
// no locking of its own; owners are expected to guard it with their own mutex.
package ring

import (
	"github.com/hyp3rd/ewrap"
)

// Buffer is a bounded FIFO container. The zero value is not usable; create
// instances with New.
type Buffer[T any] struct {
	items    []T
	head     int
	count    int
	capacity int
}

// New creates a ring buffer with the given capacity. The capacity must be
// positive.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, ewrap.New("ring buffer capacity must be positive").
			WithMetadata("capacity", capacity)
	}

	return &Buffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}, nil
}

// Push inserts a value. When the buffer is full the oldest value is evicted
// and returned together with true.
func (b *Buffer[T]) Push(value T) (T, bool) {
	var evicted T

	if b.count == b.capacity {
		evicted = b.items[b.head]
		b.items[b.head] = value
		b.head = (b.head + 1) % b.capacity

		return evicted, true
	}

	b.items[(b.head+b.count)%b.capacity] = value
	b.count++

	return evicted, false
}

// Len returns the number of buffered values.
func (b *Buffer[T]) Len() int {
	return b.count
}

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int {
	return b.capacity
}

// At returns the value at position i, ordered oldest to newest. The second
// return value is false when i is out of range.
func (b *Buffer[T]) At(i int) (T, bool) {
	var zero T

	if i < 0 || i >= b.count {
		return zero, false
	}

	return b.items[(b.head+i)%b.capacity], true
}

// Snapshot returns a copy of the buffered values ordered oldest to newest.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.count)

	for i := range b.count {
		out[i] = b.items[(b.head+i)%b.capacity]
	}

	return out
}

// Clear removes all buffered values. The capacity is unchanged.
func (b *Buffer[T]) Clear() {
	var zero T

	for i := range b.items {
		b.items[i] = zero
	}

	b.head = 0
	b.count = 0
}
