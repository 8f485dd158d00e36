package collections

import "go.uber.org/multierr"

// Validator is a validation policy: it decides which values a collection may
// hold. A nil error accepts the value; a non-nil error rejects it and becomes
// [ValidationError.Reason].
//
// Validators must be pure. They run on every insertion and again whenever a
// collection is rebuilt from another one.
type Validator[T any] interface {
	Validate(value T) error
}

// ValidatorFunc adapts an ordinary function to [Validator].
type ValidatorFunc[T any] func(value T) error

// Validate calls f(value).
func (f ValidatorFunc[T]) Validate(value T) error { return f(value) }

type acceptAll[T any] struct{}

func (acceptAll[T]) Validate(T) error { return nil }

// AcceptAll returns the permissive policy used by [New], [From] and [Empty].
func AcceptAll[T any]() Validator[T] { return acceptAll[T]{} }

// All combines validators; a value must satisfy every one of them. They run
// in order and the first rejection wins.
//
//	policy := collections.All(collections.SelfValidating[Shape](), collections.KindOf[Shape, *Circle]())
func All[T any](validators ...Validator[T]) Validator[T] {
	return ValidatorFunc[T](func(value T) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v.Validate(value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Check re-runs the collection's policy over every stored value and returns
// every violation combined. Use it after [Collection.Walk] to confirm the
// callback kept values in contract. Individual failures can be listed with
// [multierr.Errors].
func (c *Collection[T]) Check() error {
	var errs error
	for pos, e := range c.Entries() {
		if err := c.Policy().Validate(e.Value); err != nil {
			errs = multierr.Append(errs, c.reject("check", e.Key, pos, e.Value, err))
		}
	}
	return errs
}
