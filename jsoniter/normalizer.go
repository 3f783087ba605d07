// Package jsoniter provides a JSON implementation of bee.Normalizer built on
// json-iterator's streaming Iterator, which preserves object key order and
// the source spelling of numbers.
package jsoniter

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/bee"
	jsoniter "github.com/json-iterator/go"
)

// Ensure Normalizer implements bee.Normalizer at compile time.
var _ bee.Normalizer = (*Normalizer)(nil)

// Normalizer converts JSON documents into record trees.
type Normalizer struct {
	api jsoniter.API
}

// NewNormalizer creates a new JSON Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{api: jsoniter.ConfigDefault}
}

// Normalize parses raw as a single JSON document whose root is an object.
// An empty document or a non-object root is EEMPTY; malformed JSON or
// trailing content after the root is EFORMAT. Invalid UTF-8 in strings is
// replaced with U+FFFD.
func (n *Normalizer) Normalize(source string, raw []byte) (bee.Value, error) {
	iter := jsoniter.ParseBytes(n.api, raw)
	next := iter.WhatIsNext()
	if next == jsoniter.InvalidValue && errors.Is(iter.Error, io.EOF) {
		// WhatIsNext only sets io.EOF when the input holds nothing but whitespace.
		return nil, bee.SourceErrorf(bee.EEMPTY, source, "empty JSON document")
	}

	if next == jsoniter.InvalidValue {
		return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid JSON: unexpected character")
	}
	if next != jsoniter.ObjectValue {
		// A number ending the input leaves io.EOF behind.
		iter.Skip()
		if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
			return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid JSON: %v", iter.Error)
		}
		return nil, bee.SourceErrorf(bee.EEMPTY, source, "top-level JSON value is not an object")
	}
	// The walk below does not check number syntax or truncation.
	if !n.api.Valid(raw) {
		return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid JSON")
	}

	v := readValue(iter)
	if iter.Error != nil {
		return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid JSON: %v", iter.Error)
	}

	// A clean end of input leaves io.EOF on the iterator.
	if iter.WhatIsNext() != jsoniter.InvalidValue || !errors.Is(iter.Error, io.EOF) {
		return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid JSON: unexpected content after top-level value")
	}
	return v, nil
}

// readValue reads the next value from iter. Errors are recorded on iter.
func readValue(iter *jsoniter.Iterator) bee.Value {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		m := bee.NewMapping()
		iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			m.Set(validUTF8(key), readValue(it))
			return it.Error == nil
		})
		return m
	case jsoniter.ArrayValue:
		seq := bee.Sequence{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			seq = append(seq, readValue(it))
			return it.Error == nil
		})
		return seq
	case jsoniter.StringValue:
		return bee.String(validUTF8(iter.ReadString()))
	case jsoniter.NumberValue:
		return bee.Number(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		return bee.Bool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		return bee.Null()
	default:
		iter.ReportError("readValue", "unexpected character")
		return bee.Null()
	}
}

func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
