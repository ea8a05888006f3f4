package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffedit"
	"github.com/fwojciec/diffedit/chroma"
	"github.com/stretchr/testify/assert"
)

func TestStyleFromPalette(t *testing.T) {
	t.Parallel()

	styleFunc := chroma.StyleFromPalette(testPalette)

	cases := []struct {
		name string
		tt   chromalib.TokenType
		want diffedit.Style
	}{
		{"keywords are bold", chromalib.Keyword, diffedit.Style{Foreground: string(testPalette.Keyword), Bold: true}},
		{"keyword namespace maps to keyword color", chromalib.KeywordNamespace, diffedit.Style{Foreground: string(testPalette.Keyword), Bold: true}},
		{"type keywords have their own color", chromalib.KeywordType, diffedit.Style{Foreground: string(testPalette.Type), Bold: true}},
		{"strings", chromalib.String, diffedit.Style{Foreground: string(testPalette.String)}},
		{"string doubles map to string color", chromalib.StringDouble, diffedit.Style{Foreground: string(testPalette.String)}},
		{"numbers", chromalib.Number, diffedit.Style{Foreground: string(testPalette.Number)}},
		{"comments", chromalib.Comment, diffedit.Style{Foreground: string(testPalette.Comment)}},
		{"single-line comments map to comment color", chromalib.CommentSingle, diffedit.Style{Foreground: string(testPalette.Comment)}},
		{"operators", chromalib.Operator, diffedit.Style{Foreground: string(testPalette.Operator)}},
		{"function names", chromalib.NameFunction, diffedit.Style{Foreground: string(testPalette.Function)}},
		{"constants", chromalib.NameConstant, diffedit.Style{Foreground: string(testPalette.Constant)}},
		{"punctuation", chromalib.Punctuation, diffedit.Style{Foreground: string(testPalette.Punctuation)}},
		{"unknown token types get the empty style", chromalib.Error, diffedit.Style{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, styleFunc(tc.tt))
		})
	}
}
