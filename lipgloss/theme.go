// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/diffedit"

// Compile-time interface verification.
var _ diffedit.Theme = (*Theme)(nil)

// Theme implements diffedit.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  diffedit.Styles
	palette diffedit.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() diffedit.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() diffedit.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// Catppuccin Mocha.
const (
	mochaBase     diffedit.Color = "#1e1e2e"
	mochaText     diffedit.Color = "#cdd6f4"
	mochaSurface0 diffedit.Color = "#313244"
	mochaOverlay0 diffedit.Color = "#6c7086"
	mochaOverlay2 diffedit.Color = "#9399b2"
	mochaSubtext0 diffedit.Color = "#a6adc8"
	mochaGreen    diffedit.Color = "#a6e3a1"
	mochaRed      diffedit.Color = "#f38ba8"
	mochaYellow   diffedit.Color = "#f9e2af"
	mochaMauve    diffedit.Color = "#cba6f7"
	mochaPeach    diffedit.Color = "#fab387"
	mochaSky      diffedit.Color = "#89dceb"
	mochaBlue     diffedit.Color = "#89b4fa"
)

// Catppuccin Latte.
const (
	latteBase     diffedit.Color = "#eff1f5"
	latteText     diffedit.Color = "#4c4f69"
	latteMantle   diffedit.Color = "#e6e9ef"
	latteOverlay0 diffedit.Color = "#9ca0b0"
	latteSubtext0 diffedit.Color = "#6c6f85"
	latteGreen    diffedit.Color = "#40a02b"
	latteRed      diffedit.Color = "#d20f39"
	latteYellow   diffedit.Color = "#df8e1d"
	latteMauve    diffedit.Color = "#8839ef"
	lattePeach    diffedit.Color = "#fe640b"
	latteSky      diffedit.Color = "#04a5e5"
	latteBlue     diffedit.Color = "#1e66f5"
)

// DarkTheme returns a theme for dark terminal backgrounds, built on
// Catppuccin Mocha. Added and deleted line backgrounds are kept very dark
// so syntax colors stay readable on top of them.
func DarkTheme() *Theme {
	return newTheme(darkPalette, "#004000", "#3f0001", mochaBase)
}

// LightTheme returns a theme for light terminal backgrounds, built on
// Catppuccin Latte.
func LightTheme() *Theme {
	return newTheme(lightPalette, "#d4f4d4", "#f4d4d4", "#ffffff")
}

// newTheme derives the style set from a palette. Added and deleted lines
// take their backgrounds from addedBG and deletedBG; word-level highlights
// invert them, putting highlightFG text on the full-strength diff color.
func newTheme(p diffedit.Palette, addedBG, deletedBG, highlightFG diffedit.Color) *Theme {
	return &Theme{
		palette: p,
		styles: diffedit.Styles{
			Added:            pair(p.Added, addedBG),
			Deleted:          pair(p.Deleted, deletedBG),
			Context:          pair(p.Context, ""),
			HunkHeader:       pair(p.UIAccent, ""),
			FileHeader:       pair(p.Modified, p.UIBackground),
			LineNumber:       pair(p.Context, ""),
			AddedGutter:      pair(p.Added, addedBG),
			DeletedGutter:    pair(p.Deleted, deletedBG),
			AddedHighlight:   pair(highlightFG, p.Added),
			DeletedHighlight: pair(highlightFG, p.Deleted),
			StatusBar:        pair(p.UIForeground, p.UIBackground),
		},
	}
}

func pair(fg, bg diffedit.Color) diffedit.ColorPair {
	return diffedit.ColorPair{Foreground: string(fg), Background: string(bg)}
}

var darkPalette = diffedit.Palette{
	Background: mochaBase,
	Foreground: mochaText,

	Added:    mochaGreen,
	Deleted:  mochaRed,
	Modified: mochaYellow,
	Context:  mochaOverlay0,

	Keyword:     mochaMauve,
	String:      mochaGreen,
	Number:      mochaPeach,
	Comment:     mochaOverlay0,
	Operator:    mochaSky,
	Function:    mochaBlue,
	Type:        mochaYellow,
	Constant:    mochaPeach,
	Punctuation: mochaOverlay2,

	UIBackground: mochaSurface0,
	UIForeground: mochaSubtext0,
	UIAccent:     mochaBlue,
}

var lightPalette = diffedit.Palette{
	Background: latteBase,
	Foreground: latteText,

	Added:    latteGreen,
	Deleted:  latteRed,
	Modified: latteYellow,
	Context:  latteOverlay0,

	Keyword:     latteMauve,
	String:      latteGreen,
	Number:      lattePeach,
	Comment:     latteOverlay0,
	Operator:    latteSky,
	Function:    latteBlue,
	Type:        latteYellow,
	Constant:    lattePeach,
	Punctuation: latteSubtext0,

	UIBackground: latteMantle,
	UIForeground: latteSubtext0,
	UIAccent:     latteBlue,
}
