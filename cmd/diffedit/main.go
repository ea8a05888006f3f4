package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/diffedit"
	"github.com/fwojciec/diffedit/bubbletea"
	"github.com/fwojciec/diffedit/chroma"
	"github.com/fwojciec/diffedit/clipboard"
	"github.com/fwojciec/diffedit/gitdiff"
	"github.com/fwojciec/diffedit/godiff"
	"github.com/fwojciec/diffedit/shell"
)

// ErrNoChanges is returned when the files have no differences to display.
var ErrNoChanges = errors.New("no changes to display")

// CLI defines the diffedit command structure.
type CLI struct {
	// Default command (runs when no subcommand given)
	Open OpenCmd `cmd:"" default:"withargs" help:"Open a side-by-side diff of two files"`

	Editors EditorsCmd `cmd:"" help:"List supported editors and their availability"`
}

// OpenCmd is the default command that opens a diff in an editor.
type OpenCmd struct {
	Old     string `arg:"" help:"Path to the old file"`
	New     string `arg:"" help:"Path to the new file"`
	Editor  string `flag:"" optional:"" help:"Editor to use (vscode, vscodium, windsurf, cursor, zed, vim, env)"`
	Preview bool   `flag:"" help:"Render the diff in the terminal instead of launching an editor"`
}

// Run executes the open command.
func (c *OpenCmd) Run(app *App) error {
	ctx, cancel := signalContext()
	defer cancel()
	return app.OpenDiff(ctx, c.Old, c.New, c.Editor, c.Preview)
}

// EditorsCmd lists supported editors.
type EditorsCmd struct{}

// Run executes the editors command.
func (c *EditorsCmd) Run(app *App) error {
	ctx, cancel := signalContext()
	defer cancel()
	return app.ListEditors(ctx)
}

// App encapsulates the application logic for testing.
type App struct {
	Availability *diffedit.Availability
	Opener       diffedit.Opener
	Differ       diffedit.Differ
	Viewer       diffedit.Viewer
	Config       *Config
	Out          io.Writer
}

// OpenDiff resolves an editor and opens the diff in it. An explicitly
// requested editor that cannot be used is an error; when no editor is
// configured or detected, the diff falls back to the in-terminal preview.
func (a *App) OpenDiff(ctx context.Context, oldPath, newPath, editorFlag string, preview bool) error {
	if preview {
		return a.preview(ctx, oldPath, newPath)
	}

	// The --editor flag wins over DIFFEDIT_EDITOR.
	request := editorFlag
	if request == "" {
		request = a.Config.Editor
	}
	if request != "" {
		editor, ok := diffedit.ParseEditor(request)
		if !ok {
			return fmt.Errorf("unknown editor %q", request)
		}
		if !a.Availability.IsAvailable(editor) {
			return fmt.Errorf("editor %q is not available", request)
		}
		return a.Opener.OpenDiff(ctx, oldPath, newPath, editor)
	}

	editor, ok := a.Availability.Detect()
	if !ok {
		return a.preview(ctx, oldPath, newPath)
	}
	return a.Opener.OpenDiff(ctx, oldPath, newPath, editor)
}

// preview renders the diff in the terminal pager.
func (a *App) preview(ctx context.Context, oldPath, newPath string) error {
	diff, err := a.Differ.Diff(ctx, oldPath, newPath)
	if err != nil {
		return err
	}
	if diff.IsBinary {
		fmt.Fprintf(a.Out, "Binary files %s and %s differ\n", diff.OldPath, diff.NewPath)
		return nil
	}
	if len(diff.Hunks) == 0 {
		return ErrNoChanges
	}
	return a.Viewer.View(ctx, diff)
}

// ListEditors prints every supported editor with its lookup command,
// availability, and sandbox policy.
func (a *App) ListEditors(ctx context.Context) error {
	available, err := a.Availability.Available(ctx)
	if err != nil {
		return err
	}
	usable := make(map[diffedit.Editor]bool, len(available))
	for _, e := range available {
		usable[e] = true
	}

	fmt.Fprintf(a.Out, "%-10s %-16s %-10s %s\n", "EDITOR", "COMMAND", "AVAILABLE", "SANDBOX")
	for _, e := range diffedit.Editors() {
		d, _ := diffedit.DescriptorOf(e)
		avail := "no"
		if usable[e] {
			avail = "yes"
		}
		policy := "blocked"
		if d.SandboxAllowed {
			policy = "allowed"
		}
		fmt.Fprintf(a.Out, "%-10s %-16s %-10s %s\n", e, d.Command(a.Availability.Windows), avail, policy)
	}

	// The env pseudo-editor resolves through VISUAL/EDITOR, not the registry.
	avail := "no"
	if a.Availability.IsAvailable(diffedit.EditorEnv) {
		avail = "yes"
	}
	fmt.Fprintf(a.Out, "%-10s %-16s %-10s %s\n", diffedit.EditorEnv, "(VISUAL/EDITOR)", avail, "allowed")
	return nil
}

// signalContext returns a context canceled on interrupt or termination.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newApp wires the production dependencies.
func newApp() (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	theme := config.ResolveTheme()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return nil, err
	}

	// Prefer git for diffing; fall back to the pure Go differ.
	var differ diffedit.Differ
	if gitdiff.Detect() {
		differ = gitdiff.NewDiffer()
	} else {
		differ = godiff.NewDiffer()
	}

	sh := shell.New()
	return &App{
		Availability: diffedit.NewAvailability(sh),
		Opener:       diffedit.NewLauncher(sh, sh),
		Differ:       differ,
		Viewer: bubbletea.NewViewer(theme,
			bubbletea.WithLanguageDetector(chroma.NewDetector()),
			bubbletea.WithTokenizer(tokenizer),
			bubbletea.WithWordDiffer(godiff.NewWordDiffer()),
			bubbletea.WithClipboard(clipboard.NewSystem()),
		),
		Config: config,
		Out:    os.Stdout,
	}, nil
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli)

	app, err := newApp()
	kctx.FatalIfErrorf(err)

	err = kctx.Run(app)
	kctx.FatalIfErrorf(err)
}
