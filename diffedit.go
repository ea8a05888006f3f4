// Package diffedit resolves external editors and opens side-by-side diff
// views in them, handing off file comparisons from an interactive CLI.
package diffedit

import "context"

// Editor identifies a supported external editor.
type Editor string

// Supported editor identifiers.
const (
	EditorVSCode   Editor = "vscode"
	EditorVSCodium Editor = "vscodium"
	EditorWindsurf Editor = "windsurf"
	EditorCursor   Editor = "cursor"
	EditorVim      Editor = "vim"
	EditorZed      Editor = "zed"

	// EditorEnv derives the editor command from the VISUAL or EDITOR
	// environment variable instead of the static registry.
	EditorEnv Editor = "env"
)

// ParseEditor converts external input to an Editor.
// Returns false for anything outside the supported set.
func ParseEditor(s string) (Editor, bool) {
	switch Editor(s) {
	case EditorVSCode, EditorVSCodium, EditorWindsurf, EditorCursor,
		EditorVim, EditorZed, EditorEnv:
		return Editor(s), true
	}
	return "", false
}

// LaunchMode describes how an editor is invoked.
type LaunchMode int

// Launch modes.
const (
	// LaunchGUI spawns a windowed editor as a subprocess and waits for it
	// to exit.
	LaunchGUI LaunchMode = iota
	// LaunchTerminal runs a terminal editor in the foreground, taking over
	// the caller's terminal until it exits.
	LaunchTerminal
)

// Command is a fully resolved editor invocation.
type Command struct {
	Name string   // Executable or raw command string (may carry embedded arguments)
	Args []string // Diff-mode arguments, already ordered
	Mode LaunchMode
}

// Prober checks whether a command line succeeds on this host.
type Prober interface {
	// Probe runs command through the platform shell and reports whether it
	// exited successfully. Output is discarded.
	Probe(command string) bool
}

// Runner executes a command line in the foreground.
type Runner interface {
	// Run executes command through the platform shell with the caller's
	// standard streams attached, blocking until it exits. A non-zero exit
	// is returned as an error.
	Run(command string) error
}

// Spawner starts an editor subprocess and waits for it.
type Spawner interface {
	// Spawn runs name with args through the platform shell with the
	// caller's standard streams attached, blocking until the process
	// exits. It returns the exit code, or an error if the process could
	// not be started.
	Spawn(ctx context.Context, name string, args []string) (int, error)
}

// Opener opens a side-by-side diff of two files in an external editor.
type Opener interface {
	// OpenDiff opens the editor's diff view comparing oldPath and newPath,
	// blocking until the editor session ends.
	OpenDiff(ctx context.Context, oldPath, newPath string, editor Editor) error
}
