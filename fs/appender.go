package fs

import (
	"os"

	"github.com/fwojciec/bee"
)

// Ensure Appender implements bee.Appender at compile time.
var _ bee.Appender = (*Appender)(nil)

// Appender appends to files on disk, creating them with mode 0644.
type Appender struct{}

// NewAppender creates a new Appender.
func NewAppender() *Appender {
	return &Appender{}
}

// Append opens path for appending, writes p and closes the file.
func (a *Appender) Append(path string, p []byte) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fileError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError(path, cerr)
		}
	}()

	if _, err := f.Write(p); err != nil {
		return fileError(path, err)
	}
	return nil
}
