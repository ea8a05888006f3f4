// Package clipboard provides system clipboard operations.
package clipboard

import (
	clipboardlib "github.com/atotto/clipboard"
	"github.com/fwojciec/diffedit"
)

// Ensure System implements the Clipboard interface.
var _ diffedit.Clipboard = (*System)(nil)

// System implements Clipboard using the platform's native clipboard.
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	return clipboardlib.WriteAll(content)
}
