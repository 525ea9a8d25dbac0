package hoard

import (
	"iter"

	"github.com/ByteMirror/hoard/locking"
)

// ring is a growable circular buffer. Keeping both ends amortized O(1) is
// what separates the deque from a plain slice-backed sequence.
type ring[T any] struct {
	items []T
	head  int
	size  int
}

func (r *ring[T]) grow() {
	if r.size < len(r.items) {
		return
	}
	capacity := len(r.items) * 2
	if capacity == 0 {
		capacity = 8
	}
	items := make([]T, capacity)
	for i := 0; i < r.size; i++ {
		items[i] = r.items[(r.head+i)%len(r.items)]
	}
	r.items = items
	r.head = 0
}

func (r *ring[T]) pushBack(v T) {
	r.grow()
	r.items[(r.head+r.size)%len(r.items)] = v
	r.size++
}

func (r *ring[T]) pushFront(v T) {
	r.grow()
	r.head = (r.head - 1 + len(r.items)) % len(r.items)
	r.items[r.head] = v
	r.size++
}

func (r *ring[T]) popFront() (T, bool) {
	var v T
	if r.size == 0 {
		return v, false
	}
	v = r.items[r.head]
	var zero T
	r.items[r.head] = zero
	r.head = (r.head + 1) % len(r.items)
	r.size--
	return v, true
}

func (r *ring[T]) popBack() (T, bool) {
	var v T
	if r.size == 0 {
		return v, false
	}
	idx := (r.head + r.size - 1) % len(r.items)
	v = r.items[idx]
	var zero T
	r.items[idx] = zero
	r.size--
	return v, true
}

func (r *ring[T]) at(i int) T {
	return r.items[(r.head+i)%len(r.items)]
}

func (r *ring[T]) snapshot() []T {
	out := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.at(i)
	}
	return out
}

// Deque is a concurrency-safe double-ended queue with amortized O(1)
// append and removal at both ends.
type Deque[T any] struct {
	guarded[ring[T]]
}

// NewDeque creates a deque seeded with items front to back, guarded by the
// default concurrent-read strategy.
func NewDeque[T any](items ...T) *Deque[T] {
	return NewDequeWith[T](nil, items...)
}

// NewDequeWith creates a deque guarded by the given strategy. A nil strategy
// selects the default.
func NewDequeWith[T any](s locking.Strategy, items ...T) *Deque[T] {
	var buf ring[T]
	for _, v := range items {
		buf.pushBack(v)
	}
	return &Deque[T]{newGuarded(s, buf)}
}

// Len returns the number of elements.
func (dq *Deque[T]) Len() int {
	n := 0
	dq.read(func(buf ring[T]) { n = buf.size })
	return n
}

// IsEmpty reports whether the deque has no elements.
func (dq *Deque[T]) IsEmpty() bool {
	return dq.Len() == 0
}

// Clear removes all elements.
func (dq *Deque[T]) Clear() {
	dq.write(func(buf *ring[T]) { *buf = ring[T]{} })
}

// PushFront places v at the front.
func (dq *Deque[T]) PushFront(v T) {
	dq.write(func(buf *ring[T]) { buf.pushFront(v) })
}

// PushBack places v at the back.
func (dq *Deque[T]) PushBack(v T) {
	dq.write(func(buf *ring[T]) { buf.pushBack(v) })
}

// PopFront removes and returns the front element, or the zero value and
// false when the deque is empty.
func (dq *Deque[T]) PopFront() (T, bool) {
	var v T
	ok := false
	dq.write(func(buf *ring[T]) { v, ok = buf.popFront() })
	return v, ok
}

// PopBack removes and returns the back element, or the zero value and false
// when the deque is empty.
func (dq *Deque[T]) PopBack() (T, bool) {
	var v T
	ok := false
	dq.write(func(buf *ring[T]) { v, ok = buf.popBack() })
	return v, ok
}

// Front returns the front element without removing it, or the zero value and
// false when the deque is empty.
func (dq *Deque[T]) Front() (T, bool) {
	var v T
	ok := false
	dq.read(func(buf ring[T]) {
		if buf.size > 0 {
			v = buf.at(0)
			ok = true
		}
	})
	return v, ok
}

// Back returns the back element without removing it, or the zero value and
// false when the deque is empty.
func (dq *Deque[T]) Back() (T, bool) {
	var v T
	ok := false
	dq.read(func(buf ring[T]) {
		if buf.size > 0 {
			v = buf.at(buf.size - 1)
			ok = true
		}
	})
	return v, ok
}

// Snapshot returns an independent copy of the elements, front first.
func (dq *Deque[T]) Snapshot() []T {
	var out []T
	dq.read(func(buf ring[T]) { out = buf.snapshot() })
	return out
}

// ForEach invokes visitor once per element, front first, against one
// consistent view. The first error halts iteration and is returned after the
// lock is released.
func (dq *Deque[T]) ForEach(visitor func(T) error) error {
	var err error
	dq.read(func(buf ring[T]) {
		for i := 0; i < buf.size; i++ {
			if err = visitor(buf.at(i)); err != nil {
				return
			}
		}
	})
	return err
}

// Map returns a new deque holding fn applied to every element, built from
// one consistent snapshot.
func (dq *Deque[T]) Map(fn func(T) T) *Deque[T] {
	var out ring[T]
	dq.read(func(buf ring[T]) {
		for i := 0; i < buf.size; i++ {
			out.pushBack(fn(buf.at(i)))
		}
	})
	return &Deque[T]{newGuarded(nil, out)}
}

// Filter returns a new deque holding the elements for which pred is true,
// built from one consistent snapshot.
func (dq *Deque[T]) Filter(pred func(T) bool) *Deque[T] {
	var out ring[T]
	dq.read(func(buf ring[T]) {
		for i := 0; i < buf.size; i++ {
			if v := buf.at(i); pred(v) {
				out.pushBack(v)
			}
		}
	})
	return &Deque[T]{newGuarded(nil, out)}
}

// All returns an iterator over the elements, front first. The read lock is
// held for the duration of the loop.
func (dq *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		dq.read(func(buf ring[T]) {
			for i := 0; i < buf.size; i++ {
				if !yield(buf.at(i)) {
					return
				}
			}
		})
	}
}
