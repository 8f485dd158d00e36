package collections

import (
	"bytes"
	"fmt"
	"reflect"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ToJSON encodes c as a JSON array when it is sequential and as a JSON object
// keyed by [Key.String] otherwise. Object members keep collection order.
//
// Values whose dynamic type has no JSON form (functions, channels, complex
// numbers, unsafe pointers) are skipped without error. Keep collections
// homogeneous if that would hide a mistake.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	seq := c.IsSequential()
	var buf bytes.Buffer
	if seq {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}
	first := true
	for _, e := range c.Entries() {
		if !projectable(e.Value) {
			continue
		}
		raw, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("collections: encoding key %s: %w", e.Key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if !seq {
			name, _ := json.Marshal(e.Key.String())
			buf.Write(name)
			buf.WriteByte(':')
		}
		buf.Write(raw)
	}
	if seq {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler using [Collection.ToJSON].
func (c *Collection[T]) MarshalJSON() ([]byte, error) { return c.ToJSON() }

// FromJSON decodes a JSON array or object into a new collection governed by
// policy. Arrays produce keys 0..n-1; objects keep their member order, and
// member names are turned into keys with [Label].
func FromJSON[T any](policy Validator[T], data []byte) (*Collection[T], error) {
	c := &Collection[T]{policy: policy}
	if err := c.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

// UnmarshalJSON replaces the contents of c with the decoded array or object.
// Every element is validated by c's policy; on failure c is left as it was.
// JSON null leaves c unchanged.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return &ArgumentError{Op: "decode", Arg: "input", Value: abbreviate(data), Err: ErrMalformedJSON}
	}
	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return nil
	}
	if !doc.IsArray() && !doc.IsObject() {
		return &ArgumentError{Op: "decode", Arg: "input", Value: abbreviate(data), Err: ErrMalformedJSON}
	}

	out := c.derive()
	pos := 0
	var err error
	doc.ForEach(func(name, raw gjson.Result) bool {
		key := Index(pos)
		if doc.IsObject() {
			key = Label(name.String())
		}
		var value T
		if err = json.Unmarshal([]byte(raw.Raw), &value); err != nil {
			err = fmt.Errorf("collections: decoding key %s: %w", key, err)
			return false
		}
		if verr := out.policy.Validate(value); verr != nil {
			err = out.reject("decode", key, pos, value, verr)
			return false
		}
		out.put(key, value)
		pos++
		return true
	})
	if err != nil {
		return err
	}
	c.store, c.next, c.policy = out.store, out.next, out.policy
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same shape and skip rules
// as [Collection.ToJSON]: a sequence when c is sequential, otherwise a
// mapping in collection order.
func (c *Collection[T]) MarshalYAML() (any, error) {
	seq := c.IsSequential()
	node := &yaml.Node{Kind: yaml.SequenceNode}
	if !seq {
		node.Kind = yaml.MappingNode
	}
	for _, e := range c.Entries() {
		if !projectable(e.Value) {
			continue
		}
		var value yaml.Node
		if err := value.Encode(e.Value); err != nil {
			return nil, fmt.Errorf("collections: encoding key %s: %w", e.Key, err)
		}
		if !seq {
			tag := "!!str"
			if e.Key.IsIndex() {
				tag = "!!int"
			}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: e.Key.String()})
		}
		node.Content = append(node.Content, &value)
	}
	return node, nil
}

type jsonMarshaler interface {
	MarshalJSON() ([]byte, error)
}

// projectable reports whether v has a JSON form.
func projectable(v any) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(jsonMarshaler); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return false
	}
	return true
}

func abbreviate(data []byte) string {
	const limit = 32
	if len(data) > limit {
		return string(data[:limit]) + "…"
	}
	return string(data)
}
