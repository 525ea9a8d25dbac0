package locking

import "sync"

// RWLockStrategy allows any number of concurrent readers while a writer waits
// for in-flight reads to drain and then excludes everything until done. Best
// fit for read-heavy workloads.
type RWLockStrategy struct {
	mu sync.RWMutex
}

// NewRWLock creates a concurrent-read / exclusive-write strategy.
func NewRWLock() *RWLockStrategy {
	return &RWLockStrategy{}
}

// Read runs fn under the shared side of the lock.
func (s *RWLockStrategy) Read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// Write runs fn under the exclusive side of the lock.
func (s *RWLockStrategy) Write(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// ExclusiveStrategy serializes reads and writes behind a single mutex. Slower
// than RWLockStrategy for read-heavy callers, but simpler to reason about.
type ExclusiveStrategy struct {
	mu sync.Mutex
}

// NewExclusive creates a fully exclusive strategy.
func NewExclusive() *ExclusiveStrategy {
	return &ExclusiveStrategy{}
}

// Read runs fn alone; reads are not concurrent under this strategy.
func (s *ExclusiveStrategy) Read(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Write runs fn alone.
func (s *ExclusiveStrategy) Write(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

var (
	_ Strategy = (*RWLockStrategy)(nil)
	_ Strategy = (*ExclusiveStrategy)(nil)
)
