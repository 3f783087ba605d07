// Package csv provides a CSV implementation of bee.Normalizer.
package csv

import (
	"bytes"
	"encoding/csv"
	"errors"

	"github.com/fwojciec/bee"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Ensure Normalizer implements bee.Normalizer at compile time.
var _ bee.Normalizer = (*Normalizer)(nil)

// Normalizer converts CSV tables into a sequence of row mappings.
type Normalizer struct {
	// Comma is the field delimiter. Defaults to ','.
	Comma rune
}

// NewNormalizer creates a new comma-separated Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{Comma: ','}
}

// Normalize parses raw with its first record as the header. Each data row
// becomes a mapping from header names to string values.
// Returns EFORMAT for malformed or ragged input and for duplicate header
// names, and EEMPTY when there are no data rows.
func (n *Normalizer) Normalize(source string, raw []byte) (bee.Value, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	if n.Comma != 0 {
		r.Comma = n.Comma
	}

	records, err := r.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid CSV at line %d: %v", parseErr.Line, parseErr.Err)
		}
		return nil, bee.SourceErrorf(bee.EFORMAT, source, "invalid CSV: %v", err)
	}
	if len(records) < 2 {
		return nil, bee.SourceErrorf(bee.EEMPTY, source, "no data rows in CSV")
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, bee.SourceErrorf(bee.EFORMAT, source, "duplicate CSV column %q", name)
		}
		seen[name] = true
	}

	rows := make(bee.Sequence, 0, len(records)-1)
	for _, record := range records[1:] {
		row := bee.NewMapping()
		for i, name := range header {
			row.Set(name, bee.String(record[i]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
