package mock

import (
	"context"

	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var _ diffedit.Differ = (*Differ)(nil)

// Differ is a mock implementation of diffedit.Differ.
type Differ struct {
	DiffFn func(ctx context.Context, oldPath, newPath string) (*diffedit.FileDiff, error)
}

func (d *Differ) Diff(ctx context.Context, oldPath, newPath string) (*diffedit.FileDiff, error) {
	return d.DiffFn(ctx, oldPath, newPath)
}

// Compile-time interface verification.
var _ diffedit.WordDiffer = (*WordDiffer)(nil)

// WordDiffer is a mock implementation of diffedit.WordDiffer.
type WordDiffer struct {
	DiffFn func(old, new string) (oldSegs, newSegs []diffedit.Segment)
}

func (w *WordDiffer) Diff(old, new string) (oldSegs, newSegs []diffedit.Segment) {
	return w.DiffFn(old, new)
}
