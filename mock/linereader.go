package mock

import (
	"io"

	"github.com/fwojciec/bee"
)

var _ bee.LineReader = (*LineReader)(nil)

// LineReader is a mock implementation of bee.LineReader.
type LineReader struct {
	ReadLineFn func() (string, error)
	CloseFn    func() error
}

func (r *LineReader) ReadLine() (string, error) {
	return r.ReadLineFn()
}

func (r *LineReader) Close() error {
	return r.CloseFn()
}

// NewLines returns a LineReader that yields lines in order and then io.EOF.
func NewLines(lines ...string) *LineReader {
	return &LineReader{
		ReadLineFn: func() (string, error) {
			if len(lines) == 0 {
				return "", io.EOF
			}
			line := lines[0]
			lines = lines[1:]
			return line, nil
		},
		CloseFn: func() error { return nil },
	}
}
