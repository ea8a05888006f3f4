package diffedit

import (
	"context"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Availability reports which editors are usable on this host.
type Availability struct {
	Prober  Prober
	Windows bool // Selects Windows lookup commands and probe syntax
}

// NewAvailability creates an Availability for the current platform.
func NewAvailability(p Prober) *Availability {
	return &Availability{Prober: p, Windows: runtime.GOOS == "windows"}
}

// HasEditor reports whether the editor's executable exists on PATH.
// For EditorEnv the command comes from VISUAL (preferred) or EDITOR; only
// the first whitespace-delimited token is probed, since configured values
// may carry arguments (e.g. "code --wait"). Unknown editors report false.
func (a *Availability) HasEditor(e Editor) bool {
	if e == EditorEnv {
		raw, ok := envEditor()
		if !ok {
			return false
		}
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			return false
		}
		return a.Prober.Probe(probeCommand(fields[0], a.Windows))
	}

	d, ok := DescriptorOf(e)
	if !ok {
		return false
	}
	return a.Prober.Probe(probeCommand(d.Command(a.Windows), a.Windows))
}

// AllowedInSandbox reports whether the editor may run while the process is
// sandboxed. The sandbox restricts GUI editors only; the terminal editor
// and the environment-configured editor inherit the current terminal and
// are always allowed.
func (a *Availability) AllowedInSandbox(e Editor) bool {
	if e == EditorEnv {
		return true
	}
	d, ok := DescriptorOf(e)
	if !ok {
		return false
	}
	return d.SandboxAllowed
}

// IsAvailable reports whether the editor exists and is permitted under the
// current sandbox policy. Sandbox state is read at call time. Unknown or
// empty editors report false.
func (a *Availability) IsAvailable(e Editor) bool {
	return a.HasEditor(e) && (!sandboxed() || a.AllowedInSandbox(e))
}

// Detect returns the first usable editor: the environment-configured one
// when set and present, then the registry in priority order.
func (a *Availability) Detect() (Editor, bool) {
	if a.IsAvailable(EditorEnv) {
		return EditorEnv, true
	}
	for _, e := range Editors() {
		if a.IsAvailable(e) {
			return e, true
		}
	}
	return "", false
}

// Available probes all concrete editors concurrently and returns the
// usable subset in priority order.
func (a *Availability) Available(ctx context.Context) ([]Editor, error) {
	editors := Editors()
	usable := make([]bool, len(editors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, e := range editors {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			usable[i] = a.IsAvailable(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Editor
	for i, e := range editors {
		if usable[i] {
			out = append(out, e)
		}
	}
	return out, nil
}

// probeCommand returns the platform's command-existence check for name.
func probeCommand(name string, windows bool) string {
	if windows {
		return "where.exe " + name
	}
	return "command -v " + name
}

// envEditor returns the raw editor command configured in the environment,
// preferring VISUAL over EDITOR. Empty values count as unset.
func envEditor() (string, bool) {
	if v := os.Getenv("VISUAL"); v != "" {
		return v, true
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v, true
	}
	return "", false
}

// sandboxed reports whether the process runs inside a restricted sandbox.
func sandboxed() bool {
	return os.Getenv("SANDBOX") != ""
}
