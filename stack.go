package hoard

import (
	"iter"

	"github.com/ByteMirror/hoard/locking"
)

// Stack is a concurrency-safe last-in, first-out stack.
type Stack[T any] struct {
	guarded[[]T]
}

// NewStack creates a stack seeded with items bottom first, guarded by the
// default concurrent-read strategy.
func NewStack[T any](items ...T) *Stack[T] {
	return NewStackWith[T](nil, items...)
}

// NewStackWith creates a stack guarded by the given strategy. A nil strategy
// selects the default.
func NewStackWith[T any](s locking.Strategy, items ...T) *Stack[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &Stack[T]{newGuarded(s, buf)}
}

// Len returns the number of stacked elements.
func (st *Stack[T]) Len() int {
	n := 0
	st.read(func(buf []T) { n = len(buf) })
	return n
}

// IsEmpty reports whether the stack has no elements.
func (st *Stack[T]) IsEmpty() bool {
	return st.Len() == 0
}

// Clear removes all elements.
func (st *Stack[T]) Clear() {
	st.write(func(buf *[]T) { *buf = nil })
}

// Push places v on top of the stack.
func (st *Stack[T]) Push(v T) {
	st.write(func(buf *[]T) { *buf = append(*buf, v) })
}

// Pop removes and returns the top element, or the zero value and false when
// the stack is empty.
func (st *Stack[T]) Pop() (T, bool) {
	var v T
	ok := false
	st.write(func(buf *[]T) {
		if len(*buf) == 0 {
			return
		}
		last := len(*buf) - 1
		v = (*buf)[last]
		// Zero the vacated slot so the backing array does not pin the
		// element.
		var zero T
		(*buf)[last] = zero
		*buf = (*buf)[:last]
		ok = true
	})
	return v, ok
}

// Peek returns the top element without removing it, or the zero value and
// false when the stack is empty.
func (st *Stack[T]) Peek() (T, bool) {
	var v T
	ok := false
	st.read(func(buf []T) {
		if len(buf) > 0 {
			v = buf[len(buf)-1]
			ok = true
		}
	})
	return v, ok
}

// Snapshot returns an independent copy of the elements, bottom first.
func (st *Stack[T]) Snapshot() []T {
	return snapshotOf(&st.guarded)
}

// ForEach invokes visitor once per element, bottom first, against one
// consistent view. The first error halts iteration and is returned after the
// lock is released.
func (st *Stack[T]) ForEach(visitor func(T) error) error {
	return forEachOf(&st.guarded, visitor)
}

// Map returns a new stack holding fn applied to every element, built from
// one consistent snapshot.
func (st *Stack[T]) Map(fn func(T) T) *Stack[T] {
	return &Stack[T]{newGuarded(nil, mapOf(&st.guarded, fn))}
}

// Filter returns a new stack holding the elements for which pred is true,
// built from one consistent snapshot.
func (st *Stack[T]) Filter(pred func(T) bool) *Stack[T] {
	return &Stack[T]{newGuarded(nil, filterOf(&st.guarded, pred))}
}

// All returns an iterator over the elements, bottom first. The read lock is
// held for the duration of the loop.
func (st *Stack[T]) All() iter.Seq[T] {
	return allOf(&st.guarded)
}
