package hoard

import "iter"

// Shared sequence capability for the slice-backed variants (List, Queue,
// Stack). Each helper captures one consistent view under a single strategy
// acquisition; the deferred release in the strategy guarantees that a fault
// raised by a caller-supplied closure propagates only after the lock is gone.

func snapshotOf[T any](g *guarded[[]T]) []T {
	var out []T
	g.read(func(buf []T) {
		out = make([]T, len(buf))
		copy(out, buf)
	})
	return out
}

func forEachOf[T any](g *guarded[[]T], visitor func(T) error) error {
	var err error
	g.read(func(buf []T) {
		for _, v := range buf {
			if err = visitor(v); err != nil {
				return
			}
		}
	})
	return err
}

func mapOf[T any](g *guarded[[]T], fn func(T) T) []T {
	var out []T
	g.read(func(buf []T) {
		out = make([]T, len(buf))
		for i, v := range buf {
			out[i] = fn(v)
		}
	})
	return out
}

func filterOf[T any](g *guarded[[]T], pred func(T) bool) []T {
	var out []T
	g.read(func(buf []T) {
		out = make([]T, 0, len(buf))
		for _, v := range buf {
			if pred(v) {
				out = append(out, v)
			}
		}
	})
	return out
}

// allOf holds the read lock for the duration of the loop, so the yielded
// elements form one consistent view.
func allOf[T any](g *guarded[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		g.read(func(buf []T) {
			for _, v := range buf {
				if !yield(v) {
					return
				}
			}
		})
	}
}
