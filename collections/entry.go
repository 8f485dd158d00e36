package collections

import (
	"fmt"
	"iter"
)

// Entry is one key/value pair of a collection, as returned by
// [Collection.Entries].
type Entry[T any] struct {
	Key   Key
	Value T
}

// String returns a human-readable representation: "(key, value)".
func (e Entry[T]) String() string {
	return fmt.Sprintf("(%s, %v)", e.Key, e.Value)
}

// Container is the keyed lookup surface satisfied by [Collection]. Accept it
// in your own functions when they only need to look values up.
type Container[T any] interface {
	// Has reports whether key is present.
	Has(key Key) bool

	// Get returns the value under key, or an error matching [ErrNotFound].
	Get(key Key) (T, error)
}

var _ Container[any] = (*Collection[any])(nil)

// All returns an iterator over the key/value pairs of c. The pairs are
// captured when iteration starts, so every range over All sees the contents
// at that moment and can be restarted.
//
//	for key, value := range c.All() {
//	    fmt.Println(key, value)
//	}
func (c *Collection[T]) All() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for _, e := range c.Entries() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Each calls fn(value, key) for every value in order.
func (c *Collection[T]) Each(fn func(T, Key)) {
	for k, v := range c.All() {
		fn(v, k)
	}
}
