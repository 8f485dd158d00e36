package collections

import (
	"fmt"

	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// keyStore is the insertion-ordered map behind a Collection.
type keyStore interface {
	maps.Map
	Iterator() linkedhashmap.Iterator
}

// Collection is an ordered, key-addressable store of values of type T whose
// every element satisfies a validation policy.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)                     // accepts any value
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//	c, err := collections.NewWithPolicy(collections.Numeric(), 1, "2.5")
//
// # Keys
//
// Values are addressed by [Key]: an integer [Index] or a string [Label].
// A collection built from a plain sequence has keys 0..n-1 and is
// sequential; [Collection.Set] with a label or a non-contiguous index makes
// it keyed. The shape decides how the collection serialises (array vs.
// object) and how [Collection.Absorb] merges.
//
// # Validation
//
// The policy given at construction runs on every value inserted by
// construction, Append, Set, Absorb and decoding, and on every value of a
// collection rebuilt by Map, Filter, Slice and Chunk. Those rebuilt
// collections keep the source's policy. A rejected value yields a
// [ValidationError] and leaves the target unchanged.
//
// # Concurrency
//
// A Collection is not safe for concurrent mutation. Callbacks passed to
// Walk, Map, Filter and Reduce must not mutate the collection they are
// iterating.
//
// The zero value is an empty, permissive collection ready to use.
type Collection[T any] struct {
	store  keyStore
	policy Validator[T]
	next   int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a permissive Collection from a variadic list of items keyed
// 0..n-1.
func New[T any](items ...T) *Collection[T] { return From(items) }

// From creates a permissive Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	c, _ := build(AcceptAll[T](), "new", items)
	return c
}

// Empty creates an empty permissive Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{store: linkedhashmap.New(), policy: AcceptAll[T]()}
}

// NewWithPolicy creates a Collection governed by policy. Every item is
// validated in order; the first rejected item aborts construction and no
// collection is returned. A nil policy accepts everything.
func NewWithPolicy[T any](policy Validator[T], items ...T) (*Collection[T], error) {
	return build(policy, "new", items)
}

func build[T any](policy Validator[T], op string, items []T) (*Collection[T], error) {
	if policy == nil {
		policy = AcceptAll[T]()
	}
	c := &Collection[T]{store: linkedhashmap.New(), policy: policy}
	for i, item := range items {
		if err := policy.Validate(item); err != nil {
			return nil, c.reject(op, Index(i), i, item, err)
		}
		c.store.Put(Index(i), item)
	}
	c.next = len(items)
	return c, nil
}

// derive returns an empty collection sharing c's policy.
func (c *Collection[T]) derive() *Collection[T] {
	return &Collection[T]{store: linkedhashmap.New(), policy: c.Policy()}
}

func (c *Collection[T]) m() keyStore {
	if c.store == nil {
		c.store = linkedhashmap.New()
	}
	return c.store
}

// Policy returns the validation policy governing c.
func (c *Collection[T]) Policy() Validator[T] {
	if c.policy == nil {
		c.policy = AcceptAll[T]()
	}
	return c.policy
}

func (c *Collection[T]) reject(op string, key Key, pos int, value T, reason error) error {
	err := &ValidationError{Op: op, Key: key, Position: pos, Value: value, Reason: reason}
	log().Debug("collections: value rejected",
		"op", op, "key", key.String(), "position", pos, "error", reason)
	return err
}

func (c *Collection[T]) fault(key Key, cause error) error {
	err := &ContainerError{Key: key, Cause: cause}
	log().Error("collections: store fault", "key", key.String(), "error", cause)
	return err
}

// put stores value under key without validating and advances the next free
// index past key.
func (c *Collection[T]) put(key Key, value T) {
	c.m().Put(key, value)
	if i, ok := key.Int(); ok && i >= c.next {
		c.next = i + 1
	}
}

func as[T any](raw any) (T, bool) {
	if raw == nil {
		var zero T
		return zero, true
	}
	v, ok := raw.(T)
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Append validates value and stores it under the next free index: one past
// the largest index ever assigned in c (0 when none). An index freed by
// Unset is not reused.
func (c *Collection[T]) Append(value T) error {
	key := Index(c.next)
	if err := c.Policy().Validate(value); err != nil {
		return c.reject("append", key, -1, value, err)
	}
	c.put(key, value)
	return nil
}

// Set validates value and stores it under key. An existing key keeps its
// position; a new key goes last.
func (c *Collection[T]) Set(key Key, value T) error {
	if !key.valid() {
		return &ArgumentError{Op: "set", Arg: "key", Value: key.index}
	}
	if err := c.Policy().Validate(value); err != nil {
		return c.reject("set", key, -1, value, err)
	}
	c.put(key, value)
	return nil
}

// Unset removes key. Absent keys are ignored.
func (c *Collection[T]) Unset(key Key) {
	c.m().Remove(key)
}

// RenameKey moves the value stored under oldKey to newKey. If newKey already
// exists its value is overwritten in place; otherwise newKey goes last. An
// absent oldKey is a no-op. The value is not re-validated.
func (c *Collection[T]) RenameKey(oldKey, newKey Key) error {
	for _, k := range []Key{oldKey, newKey} {
		if !k.valid() {
			return &ArgumentError{Op: "rename", Arg: "key", Value: k.index}
		}
	}
	raw, ok := c.m().Get(oldKey)
	if !ok || oldKey == newKey {
		return nil
	}
	v, _ := as[T](raw)
	c.put(newKey, v)
	c.m().Remove(oldKey)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Has reports whether key is present.
func (c *Collection[T]) Has(key Key) bool {
	_, ok := c.m().Get(key)
	return ok
}

// Get returns the value stored under key. It returns a [NotFoundError] when
// key is absent and a [ContainerError] if the store faults.
func (c *Collection[T]) Get(key Key) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			value, err = zero, c.fault(key, fmt.Errorf("panic: %v", r))
		}
	}()
	raw, ok := c.m().Get(key)
	if !ok {
		return value, &NotFoundError{Key: key}
	}
	v, ok := as[T](raw)
	if !ok {
		return value, c.fault(key, fmt.Errorf("stored value of type %T does not match collection type", raw))
	}
	return v, nil
}

// GetNth returns the n-th value (1-based) in current order. It returns the
// zero value and false when n < 1 or n > Count().
func (c *Collection[T]) GetNth(n int) (T, bool) {
	values := c.Values()
	if n < 1 || n > len(values) {
		var zero T
		return zero, false
	}
	return values[n-1], true
}

// GetFirst returns the first value, or false when c is empty.
func (c *Collection[T]) GetFirst() (T, bool) { return c.GetNth(1) }

// GetLast returns the last value, or false when c is empty.
func (c *Collection[T]) GetLast() (T, bool) { return c.GetNth(c.Count()) }

// Keys returns the keys in current order.
func (c *Collection[T]) Keys() []Key {
	keys := make([]Key, 0, c.Count())
	for _, k := range c.m().Keys() {
		keys = append(keys, k.(Key))
	}
	return keys
}

// Values returns a copy of the values in current order.
func (c *Collection[T]) Values() []T {
	out := make([]T, 0, c.Count())
	it := c.m().Iterator()
	for it.Next() {
		v, _ := as[T](it.Value())
		out = append(out, v)
	}
	return out
}

// Entries returns the key/value pairs in current order.
func (c *Collection[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, c.Count())
	it := c.m().Iterator()
	for it.Next() {
		v, _ := as[T](it.Value())
		out = append(out, Entry[T]{Key: it.Key().(Key), Value: v})
	}
	return out
}

// Count returns the number of values.
func (c *Collection[T]) Count() int { return c.m().Size() }

// IsEmpty reports whether c holds no values.
func (c *Collection[T]) IsEmpty() bool { return c.Count() == 0 }

// IsNotEmpty reports whether c holds at least one value.
func (c *Collection[T]) IsNotEmpty() bool { return c.Count() > 0 }

// IsSequential reports whether the keys are exactly 0..Count()-1 in
// ascending order. An empty collection is sequential.
func (c *Collection[T]) IsSequential() bool {
	for i, k := range c.m().Keys() {
		if k.(Key) != Index(i) {
			return false
		}
	}
	return true
}

// String returns the JSON projection of c. It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.Values())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// rebuild creates a collection with c's policy from entries, validating each
// value. Keys are kept when keepKeys is set, otherwise renumbered from 0.
func (c *Collection[T]) rebuild(op string, entries []Entry[T], keepKeys bool) (*Collection[T], error) {
	out := c.derive()
	for pos, e := range entries {
		key := Index(pos)
		if keepKeys {
			key = e.Key
		}
		if err := out.policy.Validate(e.Value); err != nil {
			return nil, out.reject(op, key, pos, e.Value, err)
		}
		out.put(key, e.Value)
	}
	return out, nil
}

// Filter returns a new collection with the values for which fn returns
// true. A keyed source keeps its keys; a sequential one is renumbered.
func (c *Collection[T]) Filter(fn func(T, Key) bool) (*Collection[T], error) {
	keyed := !c.IsSequential()
	kept := make([]Entry[T], 0, c.Count())
	for _, e := range c.Entries() {
		if fn(e.Value, e.Key) {
			kept = append(kept, e)
		}
	}
	return c.rebuild("filter", kept, keyed)
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, Key) bool) (*Collection[T], error) {
	return c.Filter(func(v T, k Key) bool { return !fn(v, k) })
}

// Map returns a new collection with every value replaced by fn(value, key),
// keyed like [Collection.Filter]. The result is validated by c's policy, so
// a value out of contract fails the whole result.
//
// For a transformation to another element type use the package-level [Map].
func (c *Collection[T]) Map(fn func(T, Key) T) (*Collection[T], error) {
	keyed := !c.IsSequential()
	entries := c.Entries()
	for i, e := range entries {
		entries[i].Value = fn(e.Value, e.Key)
	}
	return c.rebuild("map", entries, keyed)
}

// Walk calls fn with a pointer to every value, in order, and stores whatever
// fn leaves behind. Keys and count do not change. Values written by fn are
// not validated; call [Collection.Check] afterwards if fn may break the
// policy.
func (c *Collection[T]) Walk(fn func(value *T, key Key)) {
	for _, e := range c.Entries() {
		v := e.Value
		fn(&v, e.Key)
		if _, ok := c.m().Get(e.Key); ok {
			c.m().Put(e.Key, v)
		}
	}
}

// Reduce folds the values left to right. With initial the fold starts from
// initial[0]; without it the first value seeds the accumulator. An empty
// collection without initial returns the zero value and false.
//
// For reductions to another type use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(acc, value T) T, initial ...T) (T, bool) {
	values := c.Values()
	var acc T
	switch {
	case len(initial) > 0:
		acc = initial[0]
	case len(values) == 0:
		return acc, false
	default:
		acc, values = values[0], values[1:]
	}
	for _, v := range values {
		acc = fn(acc, v)
	}
	return acc, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & merging
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a new sequential collection with the values starting at
// offset. A negative offset counts from the end. Without length the slice
// runs to the end; a negative length stops that many values before the end.
//
//	c.Slice(3, 5)   // five values starting with the fourth
//	c.Slice(-2)     // last two values
//	c.Slice(1, -1)  // all but the first and the last
func (c *Collection[T]) Slice(offset int, length ...int) (*Collection[T], error) {
	entries := c.Entries()
	start, end := sliceBounds(len(entries), offset, length...)
	return c.rebuild("slice", entries[start:end], false)
}

func sliceBounds(total, offset int, length ...int) (int, int) {
	if offset < 0 {
		offset = max(total+offset, 0)
	}
	if offset > total {
		return total, total
	}
	end := total
	if len(length) > 0 {
		if l := length[0]; l < 0 {
			end = total + l
		} else {
			end = min(offset+l, total)
		}
	}
	return offset, max(end, offset)
}

// Chunk splits the values into consecutive collections of size values each;
// the last one may be shorter. Every chunk is sequential and keeps c's
// policy. size <= 0 returns an [ArgumentError] matching
// [ErrInvalidChunkSize].
func (c *Collection[T]) Chunk(size int) ([]*Collection[T], error) {
	if size <= 0 {
		return nil, &ArgumentError{Op: "chunk", Arg: "size", Value: size, Err: ErrInvalidChunkSize}
	}
	entries := c.Entries()
	chunks := make([]*Collection[T], 0, (len(entries)+size-1)/size)
	for i := 0; i < len(entries); i += size {
		chunk, err := c.rebuild("chunk", entries[i:min(i+size, len(entries))], false)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Absorb merges other into c. When c is sequential every value of other is
// appended; otherwise every key of other is set in c, overwriting on
// collision. The shape of c is checked once, before anything is merged.
// All values are validated against c's policy first, so a rejected value
// leaves c untouched.
func (c *Collection[T]) Absorb(other *Collection[T]) error {
	if other == nil {
		return &ArgumentError{Op: "absorb", Arg: "collection", Value: nil}
	}
	entries := other.Entries()
	policy := c.Policy()
	for pos, e := range entries {
		if err := policy.Validate(e.Value); err != nil {
			return c.reject("absorb", e.Key, pos, e.Value, err)
		}
	}
	if c.IsSequential() {
		for _, e := range entries {
			c.put(Index(c.next), e.Value)
		}
		return nil
	}
	for _, e := range entries {
		c.put(e.Key, e.Value)
	}
	return nil
}
