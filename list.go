package hoard

import (
	"iter"

	"github.com/ByteMirror/hoard/locking"
)

// List is a concurrency-safe ordered sequence with positional access.
// The element type must be comparable so membership checks work.
type List[T comparable] struct {
	guarded[[]T]
}

// NewList creates a list seeded with items, guarded by the default
// concurrent-read strategy.
func NewList[T comparable](items ...T) *List[T] {
	return NewListWith[T](nil, items...)
}

// NewListWith creates a list guarded by the given strategy. A nil strategy
// selects the default.
func NewListWith[T comparable](s locking.Strategy, items ...T) *List[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &List[T]{newGuarded(s, buf)}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	n := 0
	l.read(func(buf []T) { n = len(buf) })
	return n
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.write(func(buf *[]T) { *buf = nil })
}

// Append adds items to the end of the list. Amortized O(1) per element.
func (l *List[T]) Append(items ...T) {
	l.write(func(buf *[]T) { *buf = append(*buf, items...) })
}

// Insert places v at position i, shifting later elements right. i may equal
// Len, which appends. Out-of-range positions, negative included, are silent
// no-ops.
func (l *List[T]) Insert(i int, v T) {
	l.write(func(buf *[]T) {
		if i < 0 || i > len(*buf) {
			return
		}
		var zero T
		*buf = append(*buf, zero)
		copy((*buf)[i+1:], (*buf)[i:])
		(*buf)[i] = v
	})
}

// RemoveAt removes and returns the element at position i. An out-of-range
// position returns the zero value and false, leaving the list unchanged.
func (l *List[T]) RemoveAt(i int) (T, bool) {
	var v T
	ok := false
	l.write(func(buf *[]T) {
		if i < 0 || i >= len(*buf) {
			return
		}
		v = (*buf)[i]
		copy((*buf)[i:], (*buf)[i+1:])
		var zero T
		(*buf)[len(*buf)-1] = zero
		*buf = (*buf)[:len(*buf)-1]
		ok = true
	})
	return v, ok
}

// Get returns the element at position i, or the zero value and false when i
// is out of range.
func (l *List[T]) Get(i int) (T, bool) {
	var v T
	ok := false
	l.read(func(buf []T) {
		if i >= 0 && i < len(buf) {
			v = buf[i]
			ok = true
		}
	})
	return v, ok
}

// Set stores v at position i. Out-of-range positions are silent no-ops.
func (l *List[T]) Set(i int, v T) {
	l.write(func(buf *[]T) {
		if i >= 0 && i < len(*buf) {
			(*buf)[i] = v
		}
	})
}

// First returns the first element, or the zero value and false when empty.
func (l *List[T]) First() (T, bool) {
	return l.Get(0)
}

// Last returns the last element, or the zero value and false when empty.
func (l *List[T]) Last() (T, bool) {
	var v T
	ok := false
	l.read(func(buf []T) {
		if len(buf) > 0 {
			v = buf[len(buf)-1]
			ok = true
		}
	})
	return v, ok
}

// Contains reports whether v is present.
func (l *List[T]) Contains(v T) bool {
	return l.Index(v) >= 0
}

// Index returns the position of the first occurrence of v, or -1 when v is
// not present.
func (l *List[T]) Index(v T) int {
	idx := -1
	l.read(func(buf []T) {
		for i, item := range buf {
			if item == v {
				idx = i
				return
			}
		}
	})
	return idx
}

// Snapshot returns an independent copy of the elements in order. The copy
// never observes later mutations.
func (l *List[T]) Snapshot() []T {
	return snapshotOf(&l.guarded)
}

// ForEach invokes visitor once per element against one consistent view. The
// first error halts iteration and is returned after the lock is released.
func (l *List[T]) ForEach(visitor func(T) error) error {
	return forEachOf(&l.guarded, visitor)
}

// Map returns a new list holding fn applied to every element, built from one
// consistent snapshot.
func (l *List[T]) Map(fn func(T) T) *List[T] {
	return &List[T]{newGuarded(nil, mapOf(&l.guarded, fn))}
}

// Filter returns a new list holding the elements for which pred is true,
// built from one consistent snapshot.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	return &List[T]{newGuarded(nil, filterOf(&l.guarded, pred))}
}

// All returns an iterator over the elements in order. The read lock is held
// for the duration of the loop.
func (l *List[T]) All() iter.Seq[T] {
	return allOf(&l.guarded)
}
