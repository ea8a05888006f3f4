package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var _ diffedit.LanguageDetector = (*Detector)(nil)

// Detector maps file paths to language names using chroma's lexer registry.
type Detector struct{}

// NewDetector returns a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFromPath matches the path's base name against known lexer filename
// patterns and returns the lexer's language name, or "" when nothing matches.
func (d *Detector) DetectFromPath(path string) string {
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
