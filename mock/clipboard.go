package mock

import "github.com/fwojciec/diffedit"

// Compile-time interface verification.
var _ diffedit.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of diffedit.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
