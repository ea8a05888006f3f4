// Package bubbletea implements the interactive diff pager on the Bubble Tea
// framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffedit"
)

// statusBarHeight is the number of terminal rows reserved below the viewport.
const statusBarHeight = 1

// Model is the Bubble Tea model for the diff pager.
type Model struct {
	diff *diffedit.FileDiff

	languageDetector diffedit.LanguageDetector
	tokenizer        diffedit.Tokenizer
	wordDiffer       diffedit.WordDiffer
	clipboard        diffedit.Clipboard

	keymap   KeyMap
	styles   diffedit.Styles
	palette  diffedit.Palette
	renderer *lipgloss.Renderer

	viewport   viewport.Model
	width      int
	ready      bool
	pendingKey string
	statusMsg  string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer         *lipgloss.Renderer
	theme            diffedit.Theme
	languageDetector diffedit.LanguageDetector
	tokenizer        diffedit.Tokenizer
	wordDiffer       diffedit.WordDiffer
	clipboard        diffedit.Clipboard
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t diffedit.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithLanguageDetector sets the language detector for syntax highlighting.
func WithLanguageDetector(d diffedit.LanguageDetector) ModelOption {
	return func(cfg *modelConfig) {
		cfg.languageDetector = d
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t diffedit.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithWordDiffer sets the word differ for word-level highlighting.
func WithWordDiffer(d diffedit.WordDiffer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.wordDiffer = d
	}
}

// WithClipboard sets the clipboard used by the yank binding.
func WithClipboard(c diffedit.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// NewModel creates a Model for the given diff.
func NewModel(diff *diffedit.FileDiff, opts ...ModelOption) Model {
	var cfg modelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		diff:             diff,
		languageDetector: cfg.languageDetector,
		tokenizer:        cfg.tokenizer,
		wordDiffer:       cfg.wordDiffer,
		clipboard:        cfg.clipboard,
		keymap:           DefaultKeyMap(),
		renderer:         cfg.renderer,
	}
	// A nil theme renders without color.
	if cfg.theme != nil {
		m.styles = cfg.theme.Styles()
		m.palette = cfg.theme.Palette()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m = m.handleResize(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey dispatches one key press. Keys outside the keymap fall through
// to the viewport, which keeps its own pager bindings working.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// gg: the first g arms the sequence, the second jumps to the top.
	if m.pendingKey == "g" {
		m.pendingKey = ""
		if key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			return m, nil
		}
	} else if key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = "g"
		return m, nil
	}

	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Yank):
		m.statusMsg = m.yank()
	case key.Matches(msg, m.keymap.GotoBottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
	case key.Matches(msg, m.keymap.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keymap.Down):
		m.viewport.ScrollDown(1)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleResize sizes the viewport under the status bar. Content re-renders
// only when the width changes; height changes just move the window.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	widthChanged := m.width != msg.Width
	m.width = msg.Width

	if !m.ready {
		m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
		m.viewport.SetContent(m.renderContent())
		m.ready = true
		return m
	}

	m.viewport.Width = msg.Width
	m.viewport.Height = msg.Height - statusBarHeight
	if widthChanged {
		m.viewport.SetContent(m.renderContent())
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// renderContent renders the diff for the viewport at the current width.
func (m Model) renderContent() string {
	return renderDiff(renderConfig{
		diff:             m.diff,
		styles:           m.styles,
		renderer:         m.renderer,
		width:            m.width,
		languageDetector: m.languageDetector,
		tokenizer:        m.tokenizer,
		wordDiffer:       m.wordDiffer,
	})
}

// yank copies the diff to the clipboard and returns status bar feedback.
func (m Model) yank() string {
	if m.clipboard == nil {
		return "clipboard unavailable"
	}
	if err := m.clipboard.Copy(plainDiffText(m.diff)); err != nil {
		return "copy failed"
	}
	return "copied diff to clipboard"
}

// plainDiffText serializes the diff as unified diff text for the clipboard.
func plainDiffText(diff *diffedit.FileDiff) string {
	if diff == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", diff.OldPath, diff.NewPath)
	for _, hunk := range diff.Hunks {
		sb.WriteString(formatHunkHeader(hunk) + "\n")
		for _, line := range hunk.Lines {
			sb.WriteString(linePrefixFor(line.Type) + line.Content + "\n")
			if line.NoNewline {
				sb.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return sb.String()
}

// newStyle creates a lipgloss style on the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusStyle returns a style with the status bar background and the given
// foreground.
func (m Model) statusStyle(fg diffedit.Color) lipgloss.Style {
	return m.newStyle().
		Background(lipgloss.Color(m.palette.UIBackground)).
		Foreground(lipgloss.Color(fg))
}

// statusBarView renders the bottom bar: hunk position, stats, scroll
// position, and either the key hints or transient yank feedback, all
// right-aligned.
func (m Model) statusBarView() string {
	bar := m.statusStyle(m.palette.Foreground)
	dim := m.statusStyle(m.palette.Context)
	sep := m.statusStyle(m.palette.UIForeground).Render(" │ ")

	positions := computeHunkPositions(m.diff)
	current, total := m.currentPosition(positions)
	w := digitWidth(total)

	var added, deleted int
	if m.diff != nil {
		added, deleted = m.diff.Stats()
	}

	hint := dim.Render("j/k:scroll  y:yank  q:quit")
	if m.statusMsg != "" {
		hint = bar.Render(m.statusMsg)
	}

	content := strings.Join([]string{
		bar.Render(fmt.Sprintf("hunk %*d/%-*d", w, current, w, total)),
		bar.Render(fmt.Sprintf("+%d -%d", added, deleted)),
		bar.Render(m.scrollPosition()),
		hint,
	}, sep) + bar.Render("  ")

	if pad := m.width - lipgloss.Width(content); pad > 0 {
		content = bar.Render(strings.Repeat(" ", pad)) + content
	}
	return content
}

// currentPosition maps the viewport offset to a 1-based hunk index.
func (m Model) currentPosition(positions []int) (current, total int) {
	if len(positions) == 0 {
		return 0, 0
	}

	current = 1
	for i, pos := range positions {
		if pos > m.viewport.YOffset {
			break
		}
		current = i + 1
	}
	return current, len(positions)
}

// scrollPosition describes the viewport offset: Top, Bot, or a percentage.
func (m Model) scrollPosition() string {
	switch {
	case m.viewport.AtTop():
		return "Top"
	case m.viewport.AtBottom():
		return "Bot"
	default:
		return fmt.Sprintf("%2d%%", int(m.viewport.ScrollPercent()*100))
	}
}

// Compile-time interface verification.
var _ diffedit.Viewer = (*Viewer)(nil)

// Viewer implements diffedit.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// NewViewer creates a Viewer. The options are applied to every model it runs.
func NewViewer(theme diffedit.Theme, opts ...ModelOption) *Viewer {
	return &Viewer{opts: append([]ModelOption{WithTheme(theme)}, opts...)}
}

// View displays the diff and blocks until the user exits.
func (v *Viewer) View(ctx context.Context, diff *diffedit.FileDiff) error {
	m := NewModel(diff, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
