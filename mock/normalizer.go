package mock

import "github.com/fwojciec/bee"

var _ bee.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of bee.Normalizer.
type Normalizer struct {
	NormalizeFn func(source string, raw []byte) (bee.Value, error)
}

func (n *Normalizer) Normalize(source string, raw []byte) (bee.Value, error) {
	return n.NormalizeFn(source, raw)
}
