package diffedit

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Compile-time interface verification.
var _ Opener = (*Launcher)(nil)

// Launcher builds and executes editor diff invocations.
type Launcher struct {
	Spawner Spawner
	Runner  Runner
	Stderr  io.Writer // Diagnostic output; nil falls back to os.Stderr
	Windows bool      // Selects Windows lookup commands and quoting rules
}

// NewLauncher creates a Launcher for the current platform.
func NewLauncher(s Spawner, r Runner) *Launcher {
	return &Launcher{
		Spawner: s,
		Runner:  r,
		Stderr:  os.Stderr,
		Windows: runtime.GOOS == "windows",
	}
}

// DiffCommand builds the invocation that opens a side-by-side diff of
// oldPath and newPath in the editor. Returns false when no command can be
// built: unknown editors, or EditorEnv with neither VISUAL nor EDITOR set.
func (l *Launcher) DiffCommand(oldPath, newPath string, e Editor) (*Command, bool) {
	if e == EditorEnv {
		raw, ok := envEditor()
		if !ok {
			return nil, false
		}
		// The configured value is the command verbatim, embedded flags and
		// all; only GUI/terminal classification looks at the first token.
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			return nil, false
		}
		if guiCommandNames()[fields[0]] {
			return &Command{Name: raw, Args: guiDiffArgs(oldPath, newPath), Mode: LaunchGUI}, true
		}
		return &Command{Name: raw, Args: terminalDiffArgs(oldPath, newPath), Mode: LaunchTerminal}, true
	}

	d, ok := DescriptorOf(e)
	if !ok {
		return nil, false
	}
	return &Command{
		Name: d.Command(l.Windows),
		Args: d.DiffArgs(oldPath, newPath),
		Mode: d.Mode,
	}, true
}

// OpenDiff opens the editor's diff view and blocks until the session ends.
// When no command resolves, the condition is reported on Stderr and nil is
// returned; the caller proceeds as if no diff occurred.
func (l *Launcher) OpenDiff(ctx context.Context, oldPath, newPath string, e Editor) error {
	cmd, ok := l.DiffCommand(oldPath, newPath, e)
	if !ok {
		fmt.Fprintln(l.stderr(), "No diff tool available. Install a supported editor.")
		return nil
	}

	if cmd.Mode == LaunchGUI {
		code, err := l.Spawner.Spawn(ctx, cmd.Name, cmd.Args)
		if err != nil {
			return err
		}
		if code != 0 {
			return fmt.Errorf("%s exited with code %d", e, code)
		}
		return nil
	}

	return l.Runner.Run(shellLine(cmd.Name, cmd.Args, l.Windows))
}

func (l *Launcher) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}

// shellLine assembles one shell command line. On Windows the command and
// arguments join unquoted; elsewhere every argument (not the command) is
// wrapped in double quotes so flag values carrying shell metacharacters
// survive re-parsing.
func shellLine(name string, args []string, windows bool) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if windows {
			parts = append(parts, a)
		} else {
			parts = append(parts, `"`+a+`"`)
		}
	}
	return strings.Join(parts, " ")
}
