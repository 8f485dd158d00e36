package collections

import (
	"fmt"
	"reflect"
)

// SelfValidator is implemented by values that can check their own state.
type SelfValidator interface {
	Validate() bool
}

// SelfValidating returns the policy requiring values to implement
// [SelfValidator] and to report themselves valid.
func SelfValidating[T any]() Validator[T] {
	return ValidatorFunc[T](func(v T) error {
		sv, ok := any(v).(SelfValidator)
		if !ok || isNilPointer(sv) {
			return ErrNotSelfValidating
		}
		if !sv.Validate() {
			return ErrSelfCheckFailed
		}
		return nil
	})
}

// isNilPointer reports whether v is nil or a nil pointer wrapped in a
// non-nil interface.
func isNilPointer(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ExactKind returns the policy requiring the dynamic type of every value to
// be exactly kind. Types that merely implement the same interface, and
// pointer/value variants of kind, are rejected. A nil kind accepts
// everything.
func ExactKind[T any](kind reflect.Type) Validator[T] {
	if kind == nil {
		return AcceptAll[T]()
	}
	return ValidatorFunc[T](func(v T) error {
		if got := reflect.TypeOf(any(v)); got != kind {
			return fmt.Errorf("%w: got %v, want %v", ErrKindMismatch, got, kind)
		}
		return nil
	})
}

// KindOf is [ExactKind] for the type K.
func KindOf[T, K any]() Validator[T] {
	return ExactKind[T](reflect.TypeFor[K]())
}

// Objects is a collection of self-validating values, optionally restricted
// to one exact dynamic type.
type Objects[T any] struct {
	*Collection[T]
}

// NewObjects validates values with [SelfValidating] and, when kind is not
// nil, [ExactKind].
//
//	shapes, err := collections.NewObjects[Shape](reflect.TypeFor[*Circle](), c1, c2)
func NewObjects[T any](kind reflect.Type, values ...T) (*Objects[T], error) {
	c, err := NewWithPolicy(All(SelfValidating[T](), ExactKind[T](kind)), values...)
	return wrap(c, err, asObjects[T])
}

func asObjects[T any](c *Collection[T]) *Objects[T] { return &Objects[T]{Collection: c} }

// Filter is [Collection.Filter] returning Objects.
func (o *Objects[T]) Filter(fn func(T, Key) bool) (*Objects[T], error) {
	c, err := o.Collection.Filter(fn)
	return wrap(c, err, asObjects[T])
}

// Reject is [Collection.Reject] returning Objects.
func (o *Objects[T]) Reject(fn func(T, Key) bool) (*Objects[T], error) {
	c, err := o.Collection.Reject(fn)
	return wrap(c, err, asObjects[T])
}

// Map is [Collection.Map] returning Objects.
func (o *Objects[T]) Map(fn func(T, Key) T) (*Objects[T], error) {
	c, err := o.Collection.Map(fn)
	return wrap(c, err, asObjects[T])
}

// Slice is [Collection.Slice] returning Objects.
func (o *Objects[T]) Slice(offset int, length ...int) (*Objects[T], error) {
	c, err := o.Collection.Slice(offset, length...)
	return wrap(c, err, asObjects[T])
}

// Chunk is [Collection.Chunk] returning Objects.
func (o *Objects[T]) Chunk(size int) ([]*Objects[T], error) {
	cs, err := o.Collection.Chunk(size)
	return wrapEach(cs, err, asObjects[T])
}
