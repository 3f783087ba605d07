// Package fs provides file system access for bee: reading source files for
// normalization and appending rendered output to files.
package fs

import (
	"context"
	"errors"
	"os"

	"github.com/fwojciec/bee"
)

// Ensure Loader implements bee.SourceLoader at compile time.
var _ bee.SourceLoader = (*Loader)(nil)

// Loader reads source files and normalizes them by file extension.
type Loader struct {
	normalizers map[bee.SourceKind]bee.Normalizer
}

// NewLoader creates a Loader using the given normalizer for each kind.
func NewLoader(normalizers map[bee.SourceKind]bee.Normalizer) *Loader {
	return &Loader{normalizers: normalizers}
}

// LoadSource reads the file at path and normalizes it according to its
// extension. The kind is checked before the file is opened.
func (l *Loader) LoadSource(ctx context.Context, path string) (bee.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind, err := bee.SourceKindFromPath(path)
	if err != nil {
		return nil, err
	}
	n, ok := l.normalizers[kind]
	if !ok {
		return nil, bee.SourceErrorf(bee.EUNSUPPORTED, path, "no normalizer for %s files", kind)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError(path, err)
	}

	return n.Normalize(path, raw)
}

// fileError converts an os error into an application error for path.
func fileError(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return bee.SourceErrorf(bee.ENOTFOUND, path, "file not found")
	case errors.Is(err, os.ErrPermission):
		return bee.SourceErrorf(bee.EPERMISSION, path, "permission denied")
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return bee.SourceErrorf(bee.EINVALID, path, "%v", pathErr.Err)
	}
	return bee.SourceErrorf(bee.EINTERNAL, path, "%v", err)
}
