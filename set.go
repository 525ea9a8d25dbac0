package hoard

import (
	"iter"
	"sync/atomic"

	"github.com/ByteMirror/hoard/locking"
)

// setIdentity hands out a stable identity per Set instance. Binary set
// operations acquire both read locks in ascending identity order, never in
// call-site order, so two sets operating on each other from opposite
// goroutines cannot deadlock.
var setIdentity atomic.Uint64

// Set is a concurrency-safe collection of unique elements with set algebra.
type Set[T comparable] struct {
	id uint64
	guarded[map[T]struct{}]
}

// NewSet creates a set seeded with members, guarded by the default
// concurrent-read strategy. Duplicate members collapse.
func NewSet[T comparable](members ...T) *Set[T] {
	return NewSetWith[T](nil, members...)
}

// NewSetWith creates a set guarded by the given strategy. A nil strategy
// selects the default.
func NewSetWith[T comparable](s locking.Strategy, members ...T) *Set[T] {
	buf := make(map[T]struct{}, len(members))
	for _, m := range members {
		buf[m] = struct{}{}
	}
	return &Set[T]{
		id:      setIdentity.Add(1),
		guarded: newGuarded(s, buf),
	}
}

func newSetFrom[T comparable](buf map[T]struct{}) *Set[T] {
	return &Set[T]{
		id:      setIdentity.Add(1),
		guarded: newGuarded(nil, buf),
	}
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	n := 0
	s.read(func(buf map[T]struct{}) { n = len(buf) })
	return n
}

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes all members.
func (s *Set[T]) Clear() {
	s.write(func(buf *map[T]struct{}) { *buf = make(map[T]struct{}) })
}

// Insert adds v and reports whether it was newly added. Inserting a present
// member returns false, never an error.
func (s *Set[T]) Insert(v T) bool {
	added := false
	s.write(func(buf *map[T]struct{}) {
		if _, ok := (*buf)[v]; !ok {
			(*buf)[v] = struct{}{}
			added = true
		}
	})
	return added
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	removed := false
	s.write(func(buf *map[T]struct{}) {
		if _, ok := (*buf)[v]; ok {
			delete(*buf, v)
			removed = true
		}
	})
	return removed
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	ok := false
	s.read(func(buf map[T]struct{}) { _, ok = buf[v] })
	return ok
}

// Members returns an independent copy of the members. Order is unspecified.
func (s *Set[T]) Members() []T {
	var out []T
	s.read(func(buf map[T]struct{}) {
		out = make([]T, 0, len(buf))
		for v := range buf {
			out = append(out, v)
		}
	})
	return out
}

// ForEach invokes visitor once per member against one consistent view. The
// first error halts iteration and is returned after the lock is released.
func (s *Set[T]) ForEach(visitor func(T) error) error {
	var err error
	s.read(func(buf map[T]struct{}) {
		for v := range buf {
			if err = visitor(v); err != nil {
				return
			}
		}
	})
	return err
}

// Map returns a new set holding fn applied to every member, built from one
// consistent snapshot. Collisions in fn's output collapse.
func (s *Set[T]) Map(fn func(T) T) *Set[T] {
	out := make(map[T]struct{})
	s.read(func(buf map[T]struct{}) {
		for v := range buf {
			out[fn(v)] = struct{}{}
		}
	})
	return newSetFrom(out)
}

// Filter returns a new set holding the members for which pred is true, built
// from one consistent snapshot.
func (s *Set[T]) Filter(pred func(T) bool) *Set[T] {
	out := make(map[T]struct{})
	s.read(func(buf map[T]struct{}) {
		for v := range buf {
			if pred(v) {
				out[v] = struct{}{}
			}
		}
	})
	return newSetFrom(out)
}

// All returns an iterator over the members. The read lock is held for the
// duration of the loop.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.read(func(buf map[T]struct{}) {
			for v := range buf {
				if !yield(v) {
					return
				}
			}
		})
	}
}

// withBoth runs fn with read access to both operand buffers, acquiring the
// two locks in ascending identity order. The same-instance case acquires
// once.
func (s *Set[T]) withBoth(other *Set[T], fn func(mine, theirs map[T]struct{})) {
	if s == other {
		s.read(func(buf map[T]struct{}) { fn(buf, buf) })
		return
	}
	first, second := s, other
	if other.id < s.id {
		first, second = other, s
	}
	first.gate.Read(func() {
		second.gate.Read(func() {
			fn(s.buf, other.buf)
		})
	})
}

// Union returns a new set holding every member of either operand.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := make(map[T]struct{})
	s.withBoth(other, func(mine, theirs map[T]struct{}) {
		for v := range mine {
			out[v] = struct{}{}
		}
		for v := range theirs {
			out[v] = struct{}{}
		}
	})
	return newSetFrom(out)
}

// Intersection returns a new set holding the members present in both
// operands.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := make(map[T]struct{})
	s.withBoth(other, func(mine, theirs map[T]struct{}) {
		small, large := mine, theirs
		if len(theirs) < len(mine) {
			small, large = theirs, mine
		}
		for v := range small {
			if _, ok := large[v]; ok {
				out[v] = struct{}{}
			}
		}
	})
	return newSetFrom(out)
}

// Subtracting returns a new set holding the members of s that are not in
// other.
func (s *Set[T]) Subtracting(other *Set[T]) *Set[T] {
	out := make(map[T]struct{})
	s.withBoth(other, func(mine, theirs map[T]struct{}) {
		for v := range mine {
			if _, ok := theirs[v]; !ok {
				out[v] = struct{}{}
			}
		}
	})
	return newSetFrom(out)
}

// SymmetricDifference returns a new set holding the members present in
// exactly one operand.
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	out := make(map[T]struct{})
	s.withBoth(other, func(mine, theirs map[T]struct{}) {
		for v := range mine {
			if _, ok := theirs[v]; !ok {
				out[v] = struct{}{}
			}
		}
		for v := range theirs {
			if _, ok := mine[v]; !ok {
				out[v] = struct{}{}
			}
		}
	})
	return newSetFrom(out)
}

// IsSubsetOf reports whether every member of s is in other.
func (s *Set[T]) IsSubsetOf(other *Set[T]) bool {
	subset := true
	s.withBoth(other, func(mine, theirs map[T]struct{}) {
		for v := range mine {
			if _, ok := theirs[v]; !ok {
				subset = false
				return
			}
		}
	})
	return subset
}

// IsSupersetOf reports whether every member of other is in s.
func (s *Set[T]) IsSupersetOf(other *Set[T]) bool {
	return other.IsSubsetOf(s)
}

// IsDisjointWith reports whether the operands share no members.
func (s *Set[T]) IsDisjointWith(other *Set[T]) bool {
	disjoint := true
	s.withBoth(other, func(mine, theirs map[T]struct{}) {
		small, large := mine, theirs
		if len(theirs) < len(mine) {
			small, large = theirs, mine
		}
		for v := range small {
			if _, ok := large[v]; ok {
				disjoint = false
				return
			}
		}
	})
	return disjoint
}
