package mock

import (
	"context"

	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var _ diffedit.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of diffedit.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, diff *diffedit.FileDiff) error
}

func (v *Viewer) View(ctx context.Context, diff *diffedit.FileDiff) error {
	return v.ViewFn(ctx, diff)
}
