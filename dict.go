package hoard

import (
	"iter"

	"github.com/ByteMirror/hoard/locking"
)

// Dict is a concurrency-safe associative map. Keys are unique by
// construction; re-insertion overwrites.
type Dict[K comparable, V any] struct {
	guarded[map[K]V]
}

// NewDict creates an empty dict guarded by the default concurrent-read
// strategy.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return NewDictWith[K, V](nil)
}

// NewDictWith creates an empty dict guarded by the given strategy. A nil
// strategy selects the default.
func NewDictWith[K comparable, V any](s locking.Strategy) *Dict[K, V] {
	return &Dict[K, V]{newGuarded(s, make(map[K]V))}
}

// NewDictFrom creates a dict seeded with a copy of items.
func NewDictFrom[K comparable, V any](items map[K]V) *Dict[K, V] {
	buf := make(map[K]V, len(items))
	for k, v := range items {
		buf[k] = v
	}
	return &Dict[K, V]{newGuarded(nil, buf)}
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int {
	n := 0
	d.read(func(buf map[K]V) { n = len(buf) })
	return n
}

// IsEmpty reports whether the dict has no entries.
func (d *Dict[K, V]) IsEmpty() bool {
	return d.Len() == 0
}

// Clear removes all entries.
func (d *Dict[K, V]) Clear() {
	d.write(func(buf *map[K]V) { *buf = make(map[K]V) })
}

// Get returns the value stored under k, or the zero value and false when the
// key is missing.
func (d *Dict[K, V]) Get(k K) (V, bool) {
	var v V
	ok := false
	d.read(func(buf map[K]V) { v, ok = buf[k] })
	return v, ok
}

// Set stores v under k, overwriting any previous value.
func (d *Dict[K, V]) Set(k K, v V) {
	d.write(func(buf *map[K]V) { (*buf)[k] = v })
}

// Update stores v under k and returns the previous value, or the zero value
// and false when the key was absent.
func (d *Dict[K, V]) Update(k K, v V) (V, bool) {
	var prev V
	ok := false
	d.write(func(buf *map[K]V) {
		prev, ok = (*buf)[k]
		(*buf)[k] = v
	})
	return prev, ok
}

// Remove deletes k and returns the removed value, or the zero value and
// false when the key was absent.
func (d *Dict[K, V]) Remove(k K) (V, bool) {
	var v V
	ok := false
	d.write(func(buf *map[K]V) {
		v, ok = (*buf)[k]
		delete(*buf, k)
	})
	return v, ok
}

// Delete removes k, ignoring whether it was present.
func (d *Dict[K, V]) Delete(k K) {
	d.write(func(buf *map[K]V) { delete(*buf, k) })
}

// Has reports whether k is present.
func (d *Dict[K, V]) Has(k K) bool {
	_, ok := d.Get(k)
	return ok
}

// GetOrSet returns the existing value for k when present. Otherwise it
// stores v and returns it. The loaded result is true when the value was
// already there.
func (d *Dict[K, V]) GetOrSet(k K, v V) (actual V, loaded bool) {
	d.write(func(buf *map[K]V) {
		if existing, ok := (*buf)[k]; ok {
			actual, loaded = existing, true
			return
		}
		(*buf)[k] = v
		actual = v
	})
	return actual, loaded
}

// Keys returns an independent point-in-time copy of the keys. Order is
// unspecified.
func (d *Dict[K, V]) Keys() []K {
	var out []K
	d.read(func(buf map[K]V) {
		out = make([]K, 0, len(buf))
		for k := range buf {
			out = append(out, k)
		}
	})
	return out
}

// Values returns an independent point-in-time copy of the values. Order is
// unspecified.
func (d *Dict[K, V]) Values() []V {
	var out []V
	d.read(func(buf map[K]V) {
		out = make([]V, 0, len(buf))
		for _, v := range buf {
			out = append(out, v)
		}
	})
	return out
}

// Items returns an independent copy of the entries at the instant of capture.
func (d *Dict[K, V]) Items() map[K]V {
	var out map[K]V
	d.read(func(buf map[K]V) {
		out = make(map[K]V, len(buf))
		for k, v := range buf {
			out[k] = v
		}
	})
	return out
}

// ForEach invokes visitor once per entry against one consistent view. The
// first error halts iteration and is returned after the lock is released.
func (d *Dict[K, V]) ForEach(visitor func(K, V) error) error {
	var err error
	d.read(func(buf map[K]V) {
		for k, v := range buf {
			if err = visitor(k, v); err != nil {
				return
			}
		}
	})
	return err
}

// All returns an iterator over the entries. The read lock is held for the
// duration of the loop.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		d.read(func(buf map[K]V) {
			for k, v := range buf {
				if !yield(k, v) {
					return
				}
			}
		})
	}
}
