package hoard

import (
	"iter"

	"github.com/ByteMirror/hoard/locking"
)

// Queue is a concurrency-safe first-in, first-out queue.
type Queue[T any] struct {
	guarded[[]T]
}

// NewQueue creates a queue seeded with items in order, guarded by the
// default concurrent-read strategy.
func NewQueue[T any](items ...T) *Queue[T] {
	return NewQueueWith[T](nil, items...)
}

// NewQueueWith creates a queue guarded by the given strategy. A nil strategy
// selects the default.
func NewQueueWith[T any](s locking.Strategy, items ...T) *Queue[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &Queue[T]{newGuarded(s, buf)}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	n := 0
	q.read(func(buf []T) { n = len(buf) })
	return n
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	q.write(func(buf *[]T) { *buf = nil })
}

// Enqueue appends v to the tail.
func (q *Queue[T]) Enqueue(v T) {
	q.write(func(buf *[]T) { *buf = append(*buf, v) })
}

// Dequeue removes and returns the head element, or the zero value and false
// when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var v T
	ok := false
	q.write(func(buf *[]T) {
		if len(*buf) == 0 {
			return
		}
		v = (*buf)[0]
		// Zero the vacated slot so the backing array does not pin the
		// element.
		var zero T
		(*buf)[0] = zero
		*buf = (*buf)[1:]
		if len(*buf) == 0 {
			*buf = nil
		}
		ok = true
	})
	return v, ok
}

// Peek returns the head element without removing it, or the zero value and
// false when the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	var v T
	ok := false
	q.read(func(buf []T) {
		if len(buf) > 0 {
			v = buf[0]
			ok = true
		}
	})
	return v, ok
}

// Snapshot returns an independent copy of the elements, head first.
func (q *Queue[T]) Snapshot() []T {
	return snapshotOf(&q.guarded)
}

// ForEach invokes visitor once per element, head first, against one
// consistent view. The first error halts iteration and is returned after the
// lock is released.
func (q *Queue[T]) ForEach(visitor func(T) error) error {
	return forEachOf(&q.guarded, visitor)
}

// Map returns a new queue holding fn applied to every element, built from
// one consistent snapshot.
func (q *Queue[T]) Map(fn func(T) T) *Queue[T] {
	return &Queue[T]{newGuarded(nil, mapOf(&q.guarded, fn))}
}

// Filter returns a new queue holding the elements for which pred is true,
// built from one consistent snapshot.
func (q *Queue[T]) Filter(pred func(T) bool) *Queue[T] {
	return &Queue[T]{newGuarded(nil, filterOf(&q.guarded, pred))}
}

// All returns an iterator over the elements, head first. The read lock is
// held for the duration of the loop.
func (q *Queue[T]) All() iter.Seq[T] {
	return allOf(&q.guarded)
}
