package bee

import (
	"context"
	"path/filepath"
	"strings"
)

// SourceKind identifies the format of a raw source.
type SourceKind string

// SourceKind constants.
const (
	KindJSON SourceKind = "json"
	KindCSV  SourceKind = "csv"
	KindXML  SourceKind = "xml"
	KindAPI  SourceKind = "api"
)

// SourceKindFromPath returns the kind of a file from its extension.
// Returns EUNSUPPORTED for unrecognized extensions.
func SourceKindFromPath(path string) (SourceKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return KindJSON, nil
	case ".csv":
		return KindCSV, nil
	case ".xml":
		return KindXML, nil
	}
	return "", SourceErrorf(EUNSUPPORTED, path, "unsupported file type %q", filepath.Ext(path))
}

// Normalizer converts raw source content into a record tree.
type Normalizer interface {
	// Normalize parses raw as the normalizer's format.
	// Returns EFORMAT if raw does not parse and EEMPTY if it parses to no
	// usable top-level content. Errors carry source as their identifier.
	Normalize(source string, raw []byte) (Value, error)
}

// NormalizeAPIResult accepts a search API result as a record tree.
// The result must be a mapping; it is not transformed.
func NormalizeAPIResult(source string, v Value) (Value, error) {
	m, ok := v.(*Mapping)
	if !ok || m == nil {
		return nil, SourceErrorf(EFORMAT, source, "search result is not an object")
	}
	return m, nil
}

// SourceLoader reads and normalizes a source file.
type SourceLoader interface {
	// LoadSource returns the normalized tree for the file at path.
	// Returns ENOTFOUND, EPERMISSION, EUNSUPPORTED or a Normalizer error.
	LoadSource(ctx context.Context, path string) (Value, error)
}

// Searcher queries a remote search API.
type Searcher interface {
	// Search returns the API's result object for query.
	// Returns EAPI if the request fails.
	Search(ctx context.Context, query string) (*Mapping, error)
}

// Appender appends bytes to a file, creating it if needed.
type Appender interface {
	// Append writes p at the end of the file at path.
	// Returns EPERMISSION if the file cannot be opened for writing.
	Append(path string, p []byte) error
}

// LineReader reads commands from the user one line at a time.
type LineReader interface {
	// ReadLine returns the next line without its terminator.
	// Returns io.EOF at end of input and ErrInterrupt when the line is abandoned.
	ReadLine() (string, error)
	Close() error
}
