package chroma_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/diffedit"
	"github.com/fwojciec/diffedit/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPalette assigns each token class its own color so assertions can tell
// the classes apart.
var testPalette = diffedit.Palette{
	Keyword:     "#c000c0",
	String:      "#00a000",
	Number:      "#d07000",
	Comment:     "#707070",
	Operator:    "#00b0b0",
	Function:    "#2020d0",
	Type:        "#c0c000",
	Constant:    "#d00000",
	Punctuation: "#909090",
}

func newTestTokenizer(t *testing.T) *chroma.Tokenizer {
	t.Helper()
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(testPalette))
	require.NoError(t, err)
	return tokenizer
}

// joinLine reconstructs a line's text from its tokens.
func joinLine(tokens []diffedit.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func TestNewTokenizer_NilStyleFunc(t *testing.T) {
	t.Parallel()

	_, err := chroma.NewTokenizer(nil)

	require.Error(t, err)
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	t.Run("tokenizes Go code line by line", func(t *testing.T) {
		t.Parallel()

		tokenizer := newTestTokenizer(t)
		lines := tokenizer.TokenizeLines("go", "package app\n\nfunc run() {}\n")

		require.Len(t, lines, 3)
		assert.Equal(t, "package app", joinLine(lines[0]))
		assert.Empty(t, lines[1])
		assert.Equal(t, "func run() {}", joinLine(lines[2]))

		var foundKeyword bool
		for _, tok := range lines[2] {
			if tok.Text == "func" {
				foundKeyword = true
				assert.Equal(t, string(testPalette.Keyword), tok.Style.Foreground)
				assert.True(t, tok.Style.Bold)
			}
		}
		assert.True(t, foundKeyword, "no func keyword token on line 3")
	})

	t.Run("carries multi-line comment context across lines", func(t *testing.T) {
		t.Parallel()

		tokenizer := newTestTokenizer(t)
		lines := tokenizer.TokenizeLines("go", "/* first\nsecond */\npackage app\n")

		require.Len(t, lines, 3)
		assert.Equal(t, "/* first", joinLine(lines[0]))
		assert.Equal(t, "second */", joinLine(lines[1]))

		// The second line only reads as a comment with full-file context;
		// line-at-a-time lexing would misclassify it.
		require.NotEmpty(t, lines[1])
		assert.Equal(t, string(testPalette.Comment), lines[1][0].Style.Foreground)
	})

	t.Run("unknown language yields nil", func(t *testing.T) {
		t.Parallel()

		tokenizer := newTestTokenizer(t)
		lines := tokenizer.TokenizeLines("nonexistent-language-xyz", "some code")

		assert.Nil(t, lines)
	})

	t.Run("empty source yields an empty slice", func(t *testing.T) {
		t.Parallel()

		tokenizer := newTestTokenizer(t)
		lines := tokenizer.TokenizeLines("go", "")

		assert.Empty(t, lines)
	})

	t.Run("strings take the palette string color", func(t *testing.T) {
		t.Parallel()

		tokenizer := newTestTokenizer(t)
		lines := tokenizer.TokenizeLines("go", `s := "hello"`+"\n")

		require.Len(t, lines, 1)

		var foundString bool
		for _, tok := range lines[0] {
			if strings.Contains(tok.Text, "hello") {
				foundString = true
				assert.Equal(t, string(testPalette.String), tok.Style.Foreground)
			}
		}
		assert.True(t, foundString, "no string literal token found")
	})
}
