package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-typed-collections/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.From(items)
}

func BenchmarkAppend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := collections.Empty[int]()
		for j := 0; j < 1_000; j++ {
			_ = c.Append(j)
		}
	}
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Filter(func(n int, _ collections.Key) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = collections.Map(c, nil, func(n int, _ collections.Key) int { return n * 2 })
	}
}

func BenchmarkReduce(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reduce(func(acc, n int) int { return acc + n }, 0)
	}
}

func BenchmarkChunk(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Chunk(100)
	}
}

func BenchmarkToJSON(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.ToJSON()
	}
}

func BenchmarkGetNth(b *testing.B) {
	c := makeInts(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetNth(500)
	}
}
