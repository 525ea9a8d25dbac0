// Package hoard provides generic, concurrency-safe collection types built on
// a pluggable synchronization strategy.
//
// Every collection owns a private buffer and a locking.Strategy; callers never
// see the buffer itself, only copies (snapshots) or single-element results.
// All variants accept an injected strategy at construction and default to the
// concurrent-read strategy when none is given.
//
// # Collection Variants
//
// List - ordered sequence with positional access
//
//	l := hoard.NewList(1, 2, 3)
//	l.Append(4)
//	v, ok := l.Get(0)
//
// Dict - associative map with key-based access
//
//	d := hoard.NewDict[string, int]()
//	d.Set("k", 10)
//	prev, ok := d.Update("k", 20)
//
// Set - unique elements with set algebra
//
//	s := hoard.NewSet(1, 2, 3)
//	u := s.Union(hoard.NewSet(3, 4, 5))
//
// Queue - first-in, first-out
//
//	q := hoard.NewQueue[int]()
//	q.Enqueue(1)
//	v, ok := q.Dequeue()
//
// Stack - last-in, first-out
//
//	st := hoard.NewStack[int]()
//	st.Push(1)
//	v, ok := st.Pop()
//
// Deque - double-ended queue with amortized O(1) at both ends
//
//	dq := hoard.NewDeque[int]()
//	dq.PushFront(1)
//	dq.PushBack(2)
//
// # Semantics
//
// Absence is a normal result, never an error: lookups and removals report a
// second boolean return, out-of-range writes are silent no-ops, and negative
// indices behave exactly like too-large ones. An error returned by a visitor
// passed to ForEach halts iteration and propagates only after the collection's
// lock is released.
//
// Snapshot, Map, and Filter each capture one consistent view under a single
// lock acquisition; the returned copy never observes later mutations.
//
// Binary set operations touch two instances and acquire both read locks in
// ascending order of a stable per-instance identity, so two sets computing
// algebra against each other from opposite goroutines cannot deadlock.
//
// Operations are synchronous: each call returns immediately or blocks the
// calling goroutine until its strategy grants access. There is no timeout,
// no cancellation, and no fairness guarantee among blocked callers.
package hoard

// Version of the hoard package
const Version = "1.0.0"
