package mock

import "github.com/fwojciec/bee"

var _ bee.Appender = (*Appender)(nil)

// Appender is a mock implementation of bee.Appender.
type Appender struct {
	AppendFn func(path string, p []byte) error
}

func (a *Appender) Append(path string, p []byte) error {
	return a.AppendFn(path, p)
}
