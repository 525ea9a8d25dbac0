package hoard

import (
	"testing"

	"github.com/ByteMirror/hoard/locking"
)

// BenchmarkListAppend measures single-goroutine append throughput
func BenchmarkListAppend(b *testing.B) {
	l := NewList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

// BenchmarkListGetParallel measures read scaling under the default strategy
func BenchmarkListGetParallel(b *testing.B) {
	l := NewList[int]()
	for i := 0; i < 1024; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Get(i % 1024)
			i++
		}
	})
}

// BenchmarkListGetExclusive measures the same workload with reads serialized
func BenchmarkListGetExclusive(b *testing.B) {
	l := NewListWith[int](locking.NewExclusive())
	for i := 0; i < 1024; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Get(i % 1024)
			i++
		}
	})
}

// BenchmarkListGetGate measures the same workload through the semaphore gate
func BenchmarkListGetGate(b *testing.B) {
	l := NewListWith[int](locking.NewGate())
	for i := 0; i < 1024; i++ {
		l.Append(i)
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Get(i % 1024)
			i++
		}
	})
}

// BenchmarkDictSetGet measures mixed map access
func BenchmarkDictSetGet(b *testing.B) {
	d := NewDict[int, int]()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%4 == 0 {
				d.Set(i%1024, i)
			} else {
				d.Get(i % 1024)
			}
			i++
		}
	})
}

// BenchmarkQueueEnqueueDequeue measures queue churn
func BenchmarkQueueEnqueueDequeue(b *testing.B) {
	q := NewQueue[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		q.Dequeue()
	}
}

// BenchmarkDequeBothEnds measures ring-buffer churn at both ends
func BenchmarkDequeBothEnds(b *testing.B) {
	dq := NewDeque[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dq.PushFront(i)
		dq.PushBack(i)
		dq.PopFront()
		dq.PopBack()
	}
}

// BenchmarkSetUnion measures the double-locked algebra path
func BenchmarkSetUnion(b *testing.B) {
	x := NewSet[int]()
	y := NewSet[int]()
	for i := 0; i < 256; i++ {
		x.Insert(i)
		y.Insert(i + 128)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Union(y)
	}
}
