package hoard

import (
	"github.com/ByteMirror/hoard/locking"
)

// Collection is the minimal capability every variant exposes. Each method is
// a single atomic operation performed under one strategy acquisition; Len is
// never derived by iterating outside the lock.
type Collection interface {
	// Len returns the number of elements, reflecting only completed
	// operations.
	Len() int

	// IsEmpty reports whether the collection holds no elements.
	IsEmpty() bool

	// Clear removes all elements.
	Clear()
}

// guarded pairs a private buffer with the strategy that sequences access to
// it. The six variants build on read/write instead of hand-rolling lock
// acquisition, so the buffer is only ever touched inside a held scope.
type guarded[B any] struct {
	gate locking.Strategy
	buf  B
}

func newGuarded[B any](s locking.Strategy, buf B) guarded[B] {
	if s == nil {
		s = locking.Default()
	}
	return guarded[B]{gate: s, buf: buf}
}

// read runs fn with shared access to the buffer. fn must not retain or
// mutate the buffer.
func (g *guarded[B]) read(fn func(buf B)) {
	g.gate.Read(func() { fn(g.buf) })
}

// write runs fn with exclusive access to the buffer.
func (g *guarded[B]) write(fn func(buf *B)) {
	g.gate.Write(func() { fn(&g.buf) })
}

var (
	_ Collection = (*List[int])(nil)
	_ Collection = (*Dict[string, int])(nil)
	_ Collection = (*Set[int])(nil)
	_ Collection = (*Queue[int])(nil)
	_ Collection = (*Stack[int])(nil)
	_ Collection = (*Deque[int])(nil)
)
