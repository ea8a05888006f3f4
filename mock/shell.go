// Package mock provides mock implementations of diffedit interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var _ diffedit.Prober = (*Prober)(nil)

// Prober is a mock implementation of diffedit.Prober.
type Prober struct {
	ProbeFn func(command string) bool
}

func (p *Prober) Probe(command string) bool {
	return p.ProbeFn(command)
}

// Compile-time interface verification.
var _ diffedit.Runner = (*Runner)(nil)

// Runner is a mock implementation of diffedit.Runner.
type Runner struct {
	RunFn func(command string) error
}

func (r *Runner) Run(command string) error {
	return r.RunFn(command)
}

// Compile-time interface verification.
var _ diffedit.Spawner = (*Spawner)(nil)

// Spawner is a mock implementation of diffedit.Spawner.
type Spawner struct {
	SpawnFn func(ctx context.Context, name string, args []string) (int, error)
}

func (s *Spawner) Spawn(ctx context.Context, name string, args []string) (int, error) {
	return s.SpawnFn(ctx, name, args)
}
