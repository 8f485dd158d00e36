package collections

import (
	"math"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

// Numeric returns the policy accepting Go integer and finite floating-point
// values and strings holding a decimal number: optional sign, optional
// fraction, optional exponent, surrounding white space ignored ("5.6", " -3",
// "1e3"). NaN and infinities are rejected with [ErrNotFinite].
func Numeric() Validator[any] {
	return ValidatorFunc[any](checkNumeric)
}

func checkNumeric(v any) error {
	switch x := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return nil
	case float32:
		return checkFinite(float64(x))
	case float64:
		return checkFinite(x)
	case string:
		if _, err := parseDecimal(x); err != nil {
			return ErrNotNumeric
		}
		return nil
	}
	return ErrNotNumeric
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNotFinite
	}
	return nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Numbers is a collection of numeric values, mixed Go numbers and numeric
// strings alike, governed by [Numeric].
type Numbers struct {
	*Collection[any]
}

func asNumbers(c *Collection[any]) *Numbers { return &Numbers{Collection: c} }

// NewNumbers validates values with [Numeric] and returns them as Numbers.
func NewNumbers(values ...any) (*Numbers, error) {
	c, err := NewWithPolicy(Numeric(), values...)
	return wrap(c, err, asNumbers)
}

// FromNumbers builds Numbers from values of any Go numeric type. Values of
// a named numeric type are stored as int64, uint64 or float64. NaN and
// infinite floats are dropped.
func FromNumbers[N constraints.Integer | constraints.Float](values ...N) *Numbers {
	items := make([]any, 0, len(values))
	for _, v := range values {
		var item any = v
		if checkNumeric(item) == ErrNotNumeric {
			item = underlyingNumber(reflect.ValueOf(v))
		}
		if checkNumeric(item) == nil {
			items = append(items, item)
		}
	}
	c, _ := NewWithPolicy(Numeric(), items...)
	return asNumbers(c)
}

func underlyingNumber(rv reflect.Value) any {
	switch {
	case rv.CanInt():
		return rv.Int()
	case rv.CanUint():
		return rv.Uint()
	case rv.CanFloat():
		return rv.Float()
	}
	return nil
}

// Integers returns a new Numbers holding every value as an int, truncated
// toward zero ("5.6" becomes 5, -2.5 becomes -2, "1.5e3" becomes 1500). A
// value outside the int range fails the whole conversion with a
// [ValidationError] whose reason is [ErrOutOfRange]. n is unchanged.
func (n *Numbers) Integers() (*Numbers, error) {
	return n.coerce("integers", func(v any) (any, error) { return toInt(v) })
}

// Floats returns a new Numbers holding every value as a float64. A numeric
// string too large for float64 fails with [ErrOutOfRange]. n is unchanged.
func (n *Numbers) Floats() (*Numbers, error) {
	return n.coerce("floats", func(v any) (any, error) { return toFloat(v) })
}

func (n *Numbers) coerce(op string, conv func(any) (any, error)) (*Numbers, error) {
	entries := n.Entries()
	for pos, e := range entries {
		v, err := conv(e.Value)
		if err != nil {
			return nil, n.reject(op, e.Key, pos, e.Value, err)
		}
		entries[pos].Value = v
	}
	c, err := n.rebuild(op, entries, true)
	return wrap(c, err, asNumbers)
}

// Filter is [Collection.Filter] returning Numbers.
func (n *Numbers) Filter(fn func(any, Key) bool) (*Numbers, error) {
	c, err := n.Collection.Filter(fn)
	return wrap(c, err, asNumbers)
}

// Reject is [Collection.Reject] returning Numbers.
func (n *Numbers) Reject(fn func(any, Key) bool) (*Numbers, error) {
	c, err := n.Collection.Reject(fn)
	return wrap(c, err, asNumbers)
}

// Map is [Collection.Map] returning Numbers.
func (n *Numbers) Map(fn func(any, Key) any) (*Numbers, error) {
	c, err := n.Collection.Map(fn)
	return wrap(c, err, asNumbers)
}

// Slice is [Collection.Slice] returning Numbers.
func (n *Numbers) Slice(offset int, length ...int) (*Numbers, error) {
	c, err := n.Collection.Slice(offset, length...)
	return wrap(c, err, asNumbers)
}

// Chunk is [Collection.Chunk] returning Numbers.
func (n *Numbers) Chunk(size int) ([]*Numbers, error) {
	cs, err := n.Collection.Chunk(size)
	return wrapEach(cs, err, asNumbers)
}

var (
	minInt = decimal.NewFromInt(math.MinInt)
	maxInt = decimal.NewFromInt(math.MaxInt)
)

// 2^63 as float64; the first float above the int range.
const intLimit = -float64(math.MinInt)

func toInt(v any) (int, error) {
	switch x := v.(type) {
	case string:
		d, err := parseDecimal(x)
		if err != nil {
			return 0, err
		}
		d = d.Truncate(0)
		if d.LessThan(minInt) || d.GreaterThan(maxInt) {
			return 0, ErrOutOfRange
		}
		return int(d.IntPart()), nil
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case uint:
		return uintToInt(uint64(x))
	case uint64:
		return uintToInt(x)
	case uintptr:
		return uintToInt(uint64(x))
	}
	return cast.ToIntE(v)
}

func floatToInt(f float64) (int, error) {
	if err := checkFinite(f); err != nil {
		return 0, ErrOutOfRange
	}
	t := math.Trunc(f)
	if t < -intLimit || t >= intLimit {
		return 0, ErrOutOfRange
	}
	return int(t), nil
}

func uintToInt(u uint64) (int, error) {
	if u > math.MaxInt {
		return 0, ErrOutOfRange
	}
	return int(u), nil
}

func toFloat(v any) (float64, error) {
	var f float64
	if s, ok := v.(string); ok {
		d, err := parseDecimal(s)
		if err != nil {
			return 0, err
		}
		f, _ = d.Float64()
	} else {
		var err error
		if f, err = cast.ToFloat64E(v); err != nil {
			return 0, err
		}
	}
	if checkFinite(f) != nil {
		return 0, ErrOutOfRange
	}
	return f, nil
}
