package collections_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-typed-collections/collections"
)

type circle struct{ radius float64 }

func (c *circle) Validate() bool { return c.radius > 0 }

type square struct{ side float64 }

func (s *square) Validate() bool { return s.side > 0 }

type tag string

func (t tag) Validate() bool { return t != "" }

func TestNewObjects(t *testing.T) {
	t.Run("any self-validating value", func(t *testing.T) {
		objs, err := collections.NewObjects[collections.SelfValidator](nil, &circle{1}, &square{2})
		require.NoError(t, err)
		assert.Equal(t, 2, objs.Count())
	})

	t.Run("failed self-check", func(t *testing.T) {
		_, err := collections.NewObjects[collections.SelfValidator](nil, &circle{1}, &circle{0})
		assert.ErrorIs(t, err, collections.ErrSelfCheckFailed)
		var verr *collections.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 1, verr.Position)
	})

	t.Run("value without self-validation", func(t *testing.T) {
		_, err := collections.NewObjects[any](nil, &circle{1}, 42)
		assert.ErrorIs(t, err, collections.ErrNotSelfValidating)

		_, err = collections.NewObjects[any](nil, nil)
		assert.ErrorIs(t, err, collections.ErrNotSelfValidating)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var missing *circle
		_, err := collections.NewObjects[collections.SelfValidator](nil, &circle{1}, missing)
		assert.ErrorIs(t, err, collections.ErrNotSelfValidating)

		_, err = collections.NewObjects(reflect.TypeFor[*circle](), missing)
		assert.ErrorIs(t, err, collections.ErrNotSelfValidating)
	})

	t.Run("exact kind", func(t *testing.T) {
		kind := reflect.TypeFor[*circle]()
		objs, err := collections.NewObjects[collections.SelfValidator](kind, &circle{1}, &circle{2})
		require.NoError(t, err)

		err = objs.Append(&square{1})
		assert.ErrorIs(t, err, collections.ErrKindMismatch)
		assert.Equal(t, 2, objs.Count())
	})

	t.Run("exact kind is not satisfied by the pointer type", func(t *testing.T) {
		t1 := tag("a")
		_, err := collections.NewObjects[collections.SelfValidator](reflect.TypeFor[tag](), tag("x"), &t1)
		assert.ErrorIs(t, err, collections.ErrKindMismatch)
	})
}

func TestPolicyComposition(t *testing.T) {
	policy := collections.All(
		collections.SelfValidating[collections.SelfValidator](),
		collections.KindOf[collections.SelfValidator, *square](),
	)

	c, err := collections.NewWithPolicy(policy, collections.SelfValidator(&square{3}))
	require.NoError(t, err)

	assert.ErrorIs(t, c.Append(&square{0}), collections.ErrSelfCheckFailed)
	assert.ErrorIs(t, c.Append(&circle{1}), collections.ErrKindMismatch)
	assert.NoError(t, c.Append(&square{1}))
}

func TestValidatorFunc(t *testing.T) {
	positive := collections.ValidatorFunc[int](func(n int) error {
		if n <= 0 {
			return assert.AnError
		}
		return nil
	})
	c, err := collections.NewWithPolicy(collections.All[int](positive, nil), 1, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Append(-1), assert.AnError)
	assert.ErrorIs(t, c.Append(-1), collections.ErrInvalidItem)
}

func TestObjectsCombinatorsKeepType(t *testing.T) {
	objs, err := collections.NewObjects[collections.SelfValidator](nil, &circle{1}, &square{2}, &circle{3})
	require.NoError(t, err)

	circles, err := objs.Filter(func(v collections.SelfValidator, _ collections.Key) bool {
		_, ok := v.(*circle)
		return ok
	})
	require.NoError(t, err)
	assert.Equal(t, 2, circles.Count())
	assert.ErrorIs(t, circles.Append(&circle{0}), collections.ErrSelfCheckFailed)

	chunks, err := objs.Chunk(2)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 1, chunks[1].Count())
}
