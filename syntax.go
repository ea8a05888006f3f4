package diffedit

// Token is a run of source text with one visual style.
type Token struct {
	Text  string // Token text; line splitting guarantees no newlines
	Style Style  // Colors and weight to render the text with
}

// Style is the visual treatment for a token.
type Style struct {
	Foreground string // Hex color ("#ff0000"); empty keeps the line's color
	Bold       bool
}

// Tokenizer produces syntax tokens for source code.
type Tokenizer interface {
	// TokenizeLines lexes source in full and returns its tokens grouped by
	// line. Implementations return nil for languages they cannot lex.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector names the language of a file from its path.
type LanguageDetector interface {
	// DetectFromPath returns a language name usable with TokenizeLines,
	// or "" when the path gives no usable signal.
	DetectFromPath(path string) string
}
