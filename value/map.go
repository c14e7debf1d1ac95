package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is a string-keyed mapping that remembers insertion order. Setting
// an existing key replaces its value in place; iteration, Keys, and JSON
// encoding all follow the order keys were first added. The zero value is
// an empty map ready for use.
type Map struct {
	keys  []string
	items map[string]any
}

func NewMap() *Map {
	return &Map{}
}

func (m *Map) Set(key string, v any) {
	if m.items == nil {
		m.items = make(map[string]any)
	}
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = v
}

func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.items[key]
	return v, ok
}

func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Iterate yields entries in insertion order, for use with range.
func (m *Map) Iterate(yield func(string, any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !yield(k, m.items[k]) {
			return
		}
	}
}

// MarshalJSON writes the entries as a JSON object in insertion order,
// with HTML escaping disabled.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(m.items[k]); err != nil {
			return nil, fmt.Errorf("encode value for key %q: %w", k, err)
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the contents with the object encoded in data,
// keeping the order keys appear in the text.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return wrapDecodeError(data, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return wrapDecodeError(data, fmt.Errorf("cannot decode %v into an object", tok))
	}
	m.keys = nil
	m.items = nil
	if err := decodeObject(dec, m); err != nil {
		return wrapDecodeError(data, err)
	}
	return nil
}
