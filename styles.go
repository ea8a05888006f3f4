package diffedit

// ColorPair is a foreground/background combination. Colors are hex strings
// in "#RRGGBB" form; an empty string leaves that channel at the terminal
// default.
type ColorPair struct {
	Foreground string
	Background string
}

// Styles holds the color pairs for every visual element of a rendered diff.
type Styles struct {
	Added            ColorPair // + lines
	Deleted          ColorPair // - lines
	Context          ColorPair // Unchanged lines
	HunkHeader       ColorPair // @@ ... @@ headers
	FileHeader       ColorPair // Top line naming the file
	LineNumber       ColorPair // Gutter numbers on context lines
	AddedGutter      ColorPair // Gutter numbers on + lines
	DeletedGutter    ColorPair // Gutter numbers on - lines
	AddedHighlight   ColorPair // Changed spans inside + lines
	DeletedHighlight ColorPair // Changed spans inside - lines
	StatusBar        ColorPair // Viewer status bar
}

// Color is a single hex color in "#RRGGBB" format.
type Color string

// Palette defines the semantic colors a theme provides for syntax
// highlighting and UI chrome.
type Palette struct {
	// Base colors
	Background Color
	Foreground Color

	// Diff colors
	Added    Color
	Deleted  Color
	Modified Color
	Context  Color

	// Syntax colors
	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Constant    Color
	Punctuation Color

	// UI chrome
	UIBackground Color
	UIForeground Color
	UIAccent     Color
}

// Theme supplies the colors for rendering diffs. Implementations provide
// light and dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
