package mock

import "github.com/fwojciec/diffedit"

// Compile-time interface verification.
var _ diffedit.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of diffedit.Tokenizer.
type Tokenizer struct {
	TokenizeLinesFn func(language, source string) [][]diffedit.Token
}

// TokenizeLines calls the mocked function.
func (t *Tokenizer) TokenizeLines(language, source string) [][]diffedit.Token {
	return t.TokenizeLinesFn(language, source)
}

// Compile-time interface verification.
var _ diffedit.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of diffedit.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

// DetectFromPath calls the mocked function.
func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}
