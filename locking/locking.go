// Package locking provides swappable synchronization strategies for guarding
// shared state.
//
// A Strategy grants two kinds of access to whatever state its owner protects:
// Read access, which may run concurrently with other reads depending on the
// implementation, and Write access, which always runs fully alone. All three
// implementations share the same external contract and can be substituted for
// one another at construction time:
//
// RWLockStrategy - concurrent reads, exclusive writes (the default)
//
//	s := locking.NewRWLock()
//	s.Read(func() { ... })
//	s.Write(func() { ... })
//
// ExclusiveStrategy - one caller at a time, reads included
//
//	s := locking.NewExclusive()
//
// GateStrategy - FIFO slot gate where a write acts as a barrier
//
//	s := locking.NewGate()
//
// Every implementation releases its primitive via defer, so a panic raised
// inside the guarded function unwinds only after the strategy is released.
// A strategy owns no domain data; it only sequences access.
package locking

// Strategy sequences access to state owned by its holder.
//
// Read runs fn guaranteeing no concurrent Write on the same instance overlaps
// it. Write runs fn with full mutual exclusion against every other Read and
// Write on the same instance. Both calls block until access is granted; there
// is no timeout and no cancellation. Relative ordering among blocked callers
// is implementation-defined.
type Strategy interface {
	Read(fn func())
	Write(fn func())
}

// Default returns the strategy used by collections when none is injected:
// concurrent reads with exclusive writes.
func Default() Strategy {
	return NewRWLock()
}
