package collections

import "strconv"

// Key addresses an element: either a non-negative integer index or a string
// label. Keys are comparable and can be used as map keys.
//
// The zero Key is Index(0).
type Key struct {
	label string
	index int
	named bool
}

// Index returns an integer key.
func Index(i int) Key { return Key{index: i} }

// Label returns a string key. A label that is the canonical decimal form of a
// non-negative integer ("0", "42", but not "042" or "-1") becomes the
// equivalent [Index] key, so Label("3") == Index(3).
func Label(s string) Key {
	if i, ok := canonicalIndex(s); ok {
		return Index(i)
	}
	return Key{label: s, named: true}
}

// IsIndex reports whether k is an integer key.
func (k Key) IsIndex() bool { return !k.named }

// Int returns the integer value of an index key.
func (k Key) Int() (int, bool) {
	if k.named {
		return 0, false
	}
	return k.index, true
}

// String returns the label, or the decimal form of an index. It is the form
// used for JSON and YAML object keys.
func (k Key) String() string {
	if k.named {
		return k.label
	}
	return strconv.Itoa(k.index)
}

func (k Key) valid() bool { return k.named || k.index >= 0 }

func canonicalIndex(s string) (int, bool) {
	if s == "" || len(s) > 1 && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
