// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var _ diffedit.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to diffedit styles.
type StyleFunc func(chromalib.TokenType) diffedit.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer returns a Tokenizer that styles tokens with styleFunc.
// StyleFromPalette builds a suitable function from a theme palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines lexes source as a single unit and splits the resulting token
// stream by line, so multi-line constructs like block comments keep their
// styling on every line they touch. Returns nil when the language is
// unsupported or lexing fails, and an empty slice for empty source.
func (t *Tokenizer) TokenizeLines(language, source string) [][]diffedit.Token {
	if source == "" {
		return [][]diffedit.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce merges runs of same-typed tokens, keeping the per-line
	// slices short.
	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return nil
	}

	tokens := iterator.Tokens()
	styled := make([]diffedit.Token, 0, len(tokens))
	for _, tok := range tokens {
		styled = append(styled, diffedit.Token{
			Text:  tok.Value,
			Style: t.styleFunc(tok.Type),
		})
	}
	return splitTokensByLine(styled)
}

// splitTokensByLine splits a flat token stream into per-line slices, cutting
// tokens that span newlines at each boundary. The newlines themselves are
// dropped; a line with no tokens stays nil.
func splitTokensByLine(tokens []diffedit.Token) [][]diffedit.Token {
	if len(tokens) == 0 {
		return [][]diffedit.Token{}
	}

	var result [][]diffedit.Token
	var current []diffedit.Token

	for _, tok := range tokens {
		text := tok.Text
		for {
			head, rest, found := strings.Cut(text, "\n")
			if head != "" {
				current = append(current, diffedit.Token{Text: head, Style: tok.Style})
			}
			if !found {
				break
			}
			result = append(result, current)
			current = nil
			text = rest
		}
	}

	if len(current) > 0 {
		result = append(result, current)
	}

	return result
}
