package collections

import "strings"

// NonEmptyString returns the policy rejecting the empty string.
func NonEmptyString() Validator[string] {
	return ValidatorFunc[string](func(s string) error {
		if s == "" {
			return ErrEmptyString
		}
		return nil
	})
}

// Text is a collection of non-empty strings.
type Text struct {
	*Collection[string]
}

func asText(c *Collection[string]) *Text { return &Text{Collection: c} }

// NewText validates values with [NonEmptyString] and returns them as Text.
func NewText(values ...string) (*Text, error) {
	c, err := NewWithPolicy(NonEmptyString(), values...)
	return wrap(c, err, asText)
}

// Concat joins the values in order, separated by glue[0] or ", ".
func (t *Text) Concat(glue ...string) string {
	sep := ", "
	if len(glue) > 0 {
		sep = glue[0]
	}
	return strings.Join(t.Values(), sep)
}

// Filter is [Collection.Filter] returning Text.
func (t *Text) Filter(fn func(string, Key) bool) (*Text, error) {
	c, err := t.Collection.Filter(fn)
	return wrap(c, err, asText)
}

// Reject is [Collection.Reject] returning Text.
func (t *Text) Reject(fn func(string, Key) bool) (*Text, error) {
	c, err := t.Collection.Reject(fn)
	return wrap(c, err, asText)
}

// Map is [Collection.Map] returning Text.
func (t *Text) Map(fn func(string, Key) string) (*Text, error) {
	c, err := t.Collection.Map(fn)
	return wrap(c, err, asText)
}

// Slice is [Collection.Slice] returning Text.
func (t *Text) Slice(offset int, length ...int) (*Text, error) {
	c, err := t.Collection.Slice(offset, length...)
	return wrap(c, err, asText)
}

// Chunk is [Collection.Chunk] returning Text.
func (t *Text) Chunk(size int) ([]*Text, error) {
	cs, err := t.Collection.Chunk(size)
	return wrapEach(cs, err, asText)
}
