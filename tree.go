package bee

import "strings"

// Value is a node of a normalized record tree. It is implemented by
// Scalar, Sequence and *Mapping only.
type Value interface {
	isValue()
}

// ScalarType identifies the kind of a Scalar.
type ScalarType int

// ScalarType constants.
const (
	StringType ScalarType = iota
	NumberType
	BoolType
	NullType
)

// Scalar is a leaf value. Text holds the value's textual form as it appeared
// in the source, so numbers keep their original spelling.
type Scalar struct {
	Type ScalarType
	Text string
}

func (Scalar) isValue() {}

// String returns a String scalar.
func String(s string) Scalar { return Scalar{Type: StringType, Text: s} }

// Number returns a Number scalar with the given textual form.
func Number(text string) Scalar { return Scalar{Type: NumberType, Text: text} }

// Bool returns a Bool scalar.
func Bool(b bool) Scalar {
	if b {
		return Scalar{Type: BoolType, Text: "true"}
	}
	return Scalar{Type: BoolType, Text: "false"}
}

// Null returns the null scalar.
func Null() Scalar { return Scalar{Type: NullType, Text: "null"} }

// Sequence is an ordered list of values.
type Sequence []Value

func (Sequence) isValue() {}

// Mapping is an ordered map of unique string keys to values.
// The zero value is not usable; use NewMapping.
type Mapping struct {
	keys   []string
	values map[string]Value
}

func (*Mapping) isValue() {}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Set stores v under key. Replacing an existing key keeps its position.
func (m *Mapping) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns a copy of the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// KeysOf returns the immediate keys of a record root. A sequence whose first
// element is a mapping (a CSV table) yields that row's keys. Any other value
// yields an empty, non-nil slice.
func KeysOf(v Value) []string {
	switch v := v.(type) {
	case *Mapping:
		return v.Keys()
	case Sequence:
		if len(v) > 0 {
			if row, ok := v[0].(*Mapping); ok {
				return row.Keys()
			}
		}
	}
	return []string{}
}

// Lookup finds key at the top level of a record root. For a mapping this is
// the immediate key. For a sequence of mappings it is the column: the values
// of key in every row that has it, in row order.
func Lookup(v Value, key string) (Value, bool) {
	switch v := v.(type) {
	case *Mapping:
		return v.Get(key)
	case Sequence:
		var column Sequence
		for _, elem := range v {
			row, ok := elem.(*Mapping)
			if !ok {
				continue
			}
			if cell, ok := row.Get(key); ok {
				column = append(column, cell)
			}
		}
		if column == nil {
			return nil, false
		}
		return column, true
	}
	return nil, false
}

// Inline returns the single-line printed form of v.
// Scalars print their text, sequences print as [a, b] and mappings as {k: v}.
func Inline(v Value) string {
	var b strings.Builder
	writeInline(&b, v)
	return b.String()
}

func writeInline(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case Scalar:
		b.WriteString(v.Text)
	case Sequence:
		b.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeInline(b, elem)
		}
		b.WriteByte(']')
	case *Mapping:
		b.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteString(": ")
			writeInline(b, v.values[k])
		}
		b.WriteByte('}')
	}
}
