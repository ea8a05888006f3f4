package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffedit"
)

// StyleFromPalette returns a StyleFunc that colors chroma token types with
// the palette's syntax colors. Token types outside the mapped groups render
// unstyled, inheriting the diff line's own colors.
func StyleFromPalette(p diffedit.Palette) StyleFunc {
	return func(tt chromalib.TokenType) diffedit.Style {
		switch tt {
		// Type keywords take the type color, not the keyword color.
		case chromalib.KeywordType:
			return diffedit.Style{Foreground: string(p.Type), Bold: true}

		case chromalib.Keyword, chromalib.KeywordConstant,
			chromalib.KeywordDeclaration, chromalib.KeywordNamespace,
			chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return diffedit.Style{Foreground: string(p.Keyword), Bold: true}

		case chromalib.Comment, chromalib.CommentHashbang,
			chromalib.CommentMultiline, chromalib.CommentPreproc,
			chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return diffedit.Style{Foreground: string(p.Comment)}

		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick,
			chromalib.StringChar, chromalib.StringDelimiter, chromalib.StringDoc,
			chromalib.StringDouble, chromalib.StringEscape, chromalib.StringHeredoc,
			chromalib.StringInterpol, chromalib.StringOther, chromalib.StringRegex,
			chromalib.StringSingle, chromalib.StringSymbol:
			return diffedit.Style{Foreground: string(p.String)}

		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat,
			chromalib.NumberHex, chromalib.NumberInteger,
			chromalib.NumberIntegerLong, chromalib.NumberOct:
			return diffedit.Style{Foreground: string(p.Number)}

		case chromalib.Operator, chromalib.OperatorWord:
			return diffedit.Style{Foreground: string(p.Operator)}

		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return diffedit.Style{Foreground: string(p.Function)}

		case chromalib.NameConstant:
			return diffedit.Style{Foreground: string(p.Constant)}

		case chromalib.Punctuation:
			return diffedit.Style{Foreground: string(p.Punctuation)}

		default:
			return diffedit.Style{}
		}
	}
}
