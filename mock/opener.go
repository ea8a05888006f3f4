package mock

import (
	"context"

	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var _ diffedit.Opener = (*Opener)(nil)

// Opener is a mock implementation of diffedit.Opener.
type Opener struct {
	OpenDiffFn func(ctx context.Context, oldPath, newPath string, editor diffedit.Editor) error
}

func (o *Opener) OpenDiff(ctx context.Context, oldPath, newPath string, editor diffedit.Editor) error {
	return o.OpenDiffFn(ctx, oldPath, newPath, editor)
}
