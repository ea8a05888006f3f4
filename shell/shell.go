// Package shell executes command lines through the platform shell.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var (
	_ diffedit.Prober  = (*Shell)(nil)
	_ diffedit.Runner  = (*Shell)(nil)
	_ diffedit.Spawner = (*Shell)(nil)
)

// Shell runs command lines through the platform shell: cmd.exe (or COMSPEC)
// on Windows, sh elsewhere.
type Shell struct {
	windows bool
}

// New creates a Shell for the current platform.
func New() *Shell {
	return &Shell{windows: runtime.GOOS == "windows"}
}

// Probe reports whether command exits successfully. Output is discarded.
func (s *Shell) Probe(command string) bool {
	return s.command(context.Background(), command).Run() == nil
}

// Run executes command in the foreground with the caller's standard streams
// attached, blocking until it exits. A non-zero exit is returned as an error.
func (s *Shell) Run(command string) error {
	cmd := s.command(context.Background(), command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Spawn runs name with args appended through the shell, standard streams
// attached, blocking until the process exits. The exit code is returned;
// an error is returned only when the process could not be started or was
// interrupted before exiting.
func (s *Shell) Spawn(ctx context.Context, name string, args []string) (int, error) {
	line := name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}

	cmd := s.command(ctx, line)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}

func (s *Shell) command(ctx context.Context, line string) *exec.Cmd {
	if s.windows {
		comspec := os.Getenv("COMSPEC")
		if comspec == "" {
			comspec = "cmd.exe"
		}
		return exec.CommandContext(ctx, comspec, "/c", line)
	}
	return exec.CommandContext(ctx, "sh", "-c", line)
}
