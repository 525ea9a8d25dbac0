package locking

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// DefaultGateWidth is the read concurrency of gates created by NewGate.
const DefaultGateWidth = 64

// GateStrategy implements the Strategy contract on top of a weighted
// semaphore rather than a native reader-writer lock. Work is granted in FIFO
// submission order: a Read occupies one of the gate's slots and runs
// concurrently with other reads, while a Write claims every slot at once.
// Because waiters are served in order, a pending Write acts as a barrier -
// reads submitted before it drain first, the Write runs alone, and work
// submitted after it resumes once the Write releases.
//
// Externally equivalent to RWLockStrategy; useful where queue-like fairness
// across submissions is wanted.
type GateStrategy struct {
	sem   *semaphore.Weighted
	slots int64
}

// NewGate creates a gate with DefaultGateWidth concurrent read slots.
func NewGate() *GateStrategy {
	return NewGateWidth(DefaultGateWidth)
}

// NewGateWidth creates a gate admitting up to width concurrent reads. A width
// below one is treated as one, which degenerates to a fully exclusive gate.
func NewGateWidth(width int) *GateStrategy {
	if width < 1 {
		width = 1
	}
	return &GateStrategy{
		sem:   semaphore.NewWeighted(int64(width)),
		slots: int64(width),
	}
}

// Read runs fn while holding a single slot.
func (g *GateStrategy) Read(fn func()) {
	g.acquire(1)
	defer g.sem.Release(1)
	fn()
}

// Write runs fn while holding every slot, excluding all other work.
func (g *GateStrategy) Write(fn func()) {
	g.acquire(g.slots)
	defer g.sem.Release(g.slots)
	fn()
}

func (g *GateStrategy) acquire(n int64) {
	// Acquire blocks until the slots are granted. With a background context
	// it can only fail if the semaphore itself is broken, which is not a
	// recoverable state for callers holding shared data behind this gate.
	if err := g.sem.Acquire(context.Background(), n); err != nil {
		panic("locking: gate acquire failed: " + err.Error())
	}
}

var _ Strategy = (*GateStrategy)(nil)
