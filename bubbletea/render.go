package bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffedit"
)

// minGutterWidth is the minimum width of each line number column in the gutter.
const minGutterWidth = 4

// wordDiffThreshold is the minimum share of unchanged text a line pair needs
// before word-level highlighting reads better than whole-line coloring.
const wordDiffThreshold = 0.30

// renderConfig carries everything renderDiff needs.
type renderConfig struct {
	diff             *diffedit.FileDiff
	styles           diffedit.Styles
	renderer         *lipgloss.Renderer
	width            int
	languageDetector diffedit.LanguageDetector
	tokenizer        diffedit.Tokenizer
	wordDiffer       diffedit.WordDiffer
}

// renderDiff converts a FileDiff to a styled string sized to the terminal
// width. A nil renderer falls back to the global lipgloss renderer.
func renderDiff(cfg renderConfig) string {
	if cfg.diff == nil {
		return ""
	}
	return newDiffRenderer(cfg).render()
}

// lineClass bundles the styles applied to one line type: the gutter column,
// the line body, and the word-level highlight, plus the raw colors needed
// when token styles are assembled per token.
type lineClass struct {
	gutter    lipgloss.Style
	base      lipgloss.Style
	highlight lipgloss.Style
	colors    diffedit.ColorPair
}

// diffRenderer renders one FileDiff with styles precomputed per line type.
type diffRenderer struct {
	cfg         renderConfig
	gutterWidth int
	fileHeader  lipgloss.Style
	hunkHeader  lipgloss.Style
	added       lineClass
	deleted     lineClass
	context     lineClass
	language    string
}

func newDiffRenderer(cfg renderConfig) *diffRenderer {
	r := &diffRenderer{
		cfg:         cfg,
		gutterWidth: gutterWidthFor(cfg.diff),
		fileHeader:  pairStyle(cfg.styles.FileHeader, cfg.renderer),
		hunkHeader:  pairStyle(cfg.styles.HunkHeader, cfg.renderer),
		added: lineClass{
			gutter:    pairStyle(cfg.styles.AddedGutter, cfg.renderer),
			base:      pairStyle(cfg.styles.Added, cfg.renderer),
			highlight: pairStyle(cfg.styles.AddedHighlight, cfg.renderer),
			colors:    cfg.styles.Added,
		},
		deleted: lineClass{
			gutter:    pairStyle(cfg.styles.DeletedGutter, cfg.renderer),
			base:      pairStyle(cfg.styles.Deleted, cfg.renderer),
			highlight: pairStyle(cfg.styles.DeletedHighlight, cfg.renderer),
			colors:    cfg.styles.Deleted,
		},
		context: lineClass{
			gutter: pairStyle(cfg.styles.LineNumber, cfg.renderer),
			base:   pairStyle(cfg.styles.Context, cfg.renderer),
			colors: cfg.styles.Context,
		},
	}
	if cfg.languageDetector != nil {
		r.language = cfg.languageDetector.DetectFromPath(displayPath(cfg.diff))
	}
	return r
}

func (r *diffRenderer) render() string {
	var sb strings.Builder
	sb.WriteString(r.fileHeader.Render(r.headerLine()))
	sb.WriteString("\n")

	switch {
	case r.cfg.diff.IsBinary:
		sb.WriteString(r.context.base.Render("(binary files differ)"))
		sb.WriteString("\n")
	case len(r.cfg.diff.Hunks) == 0:
		sb.WriteString(r.context.base.Render("(no changes)"))
		sb.WriteString("\n")
	default:
		for _, hunk := range r.cfg.diff.Hunks {
			r.renderHunk(&sb, hunk)
		}
	}
	return sb.String()
}

// headerLine builds "── path ──…── +N -M ──", stretching the fill to the
// terminal width.
func (r *diffRenderer) headerLine() string {
	added, deleted := r.cfg.diff.Stats()
	lead := "── " + displayPath(r.cfg.diff) + " "
	tail := fmt.Sprintf(" +%d -%d ──", added, deleted)

	fill := r.cfg.width - lipgloss.Width(lead) - lipgloss.Width(tail)
	if fill < 3 {
		fill = 3
	}
	return lead + strings.Repeat("─", fill) + tail
}

func (r *diffRenderer) renderHunk(sb *strings.Builder, hunk diffedit.Hunk) {
	sb.WriteString(r.hunkHeader.Render(formatHunkHeader(hunk)))
	sb.WriteString("\n")

	segments := computeLinePairSegments(hunk.Lines, r.cfg.wordDiffer)
	tokens := tokenizeHunkLines(hunk, r.language, r.cfg.tokenizer)

	for i, line := range hunk.Lines {
		var lineTokens []diffedit.Token
		if tokens != nil {
			lineTokens = tokens[i]
		}
		sb.WriteString(r.renderLine(line, segments[i], lineTokens))
		sb.WriteString("\n")
	}
}

// renderLine renders one diff line: the gutter, a separator space carrying
// the line background, the +/-/space prefix, and the content. Word-level
// segments win over syntax tokens; added and deleted lines pad their
// background to the full width.
func (r *diffRenderer) renderLine(line diffedit.Line, segs []diffedit.Segment, tokens []diffedit.Token) string {
	class := r.classFor(line.Type)

	var sb strings.Builder
	sb.WriteString(r.gutter(line, class))
	sb.WriteString(class.base.Render(" "))

	prefix := linePrefixFor(line.Type)
	switch {
	case segs != nil:
		sb.WriteString(renderSegments(prefix, segs, class, r.cfg.width))
	case tokens != nil:
		sb.WriteString(r.renderTokens(prefix, tokens, class, r.cfg.width))
	default:
		text := prefix + ExpandTabs(line.Content, lipgloss.Width(prefix))
		if line.Type == diffedit.LineAdded || line.Type == diffedit.LineDeleted {
			text = padLine(text, r.cfg.width)
		}
		sb.WriteString(class.base.Render(text))
	}
	return sb.String()
}

func (r *diffRenderer) classFor(t diffedit.LineType) lineClass {
	switch t {
	case diffedit.LineAdded:
		return r.added
	case diffedit.LineDeleted:
		return r.deleted
	default:
		return r.context
	}
}

// gutter renders the two right-aligned line number columns. Zero numbers
// (the absent side of an add or delete) leave their column blank; the color
// change alone separates gutter from code.
func (r *diffRenderer) gutter(line diffedit.Line, class lineClass) string {
	return class.gutter.Render(
		formatLineNum(line.OldLineNum, r.gutterWidth) + " " +
			formatLineNum(line.NewLineNum, r.gutterWidth) + " ")
}

func (r *diffRenderer) newStyle() lipgloss.Style {
	if r.cfg.renderer != nil {
		return r.cfg.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// renderSegments renders a paired line with its changed spans highlighted,
// padding the background to the full width.
func renderSegments(prefix string, segs []diffedit.Segment, class lineClass, width int) string {
	var sb strings.Builder
	sb.WriteString(class.base.Render(prefix))

	col := lipgloss.Width(prefix)
	for _, seg := range segs {
		text := ExpandTabs(seg.Text, col)
		col += lipgloss.Width(text)

		style := class.base
		if seg.Changed {
			style = class.highlight
		}
		sb.WriteString(style.Render(text))
	}

	if col < width {
		sb.WriteString(class.base.Render(strings.Repeat(" ", width-col)))
	}
	return sb.String()
}

// renderTokens renders a syntax-highlighted line. Each token combines its
// syntax foreground with the line's diff background; tokens without a
// foreground inherit the diff foreground.
func (r *diffRenderer) renderTokens(prefix string, tokens []diffedit.Token, class lineClass, width int) string {
	var sb strings.Builder
	sb.WriteString(class.base.Render(prefix))

	col := lipgloss.Width(prefix)
	for _, tok := range tokens {
		style := r.newStyle()
		if class.colors.Background != "" {
			style = style.Background(lipgloss.Color(class.colors.Background))
		}
		switch {
		case tok.Style.Foreground != "":
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		case class.colors.Foreground != "":
			style = style.Foreground(lipgloss.Color(class.colors.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}

		text := ExpandTabs(tok.Text, col)
		col += lipgloss.Width(text)
		sb.WriteString(style.Render(text))
	}

	if col < width {
		sb.WriteString(class.base.Render(strings.Repeat(" ", width-col)))
	}
	return sb.String()
}

// side accumulates one side of a hunk for tokenization: the side's source
// text plus, per source line, the hunk line index its tokens land on (-1
// drops them, used for context lines on the old side).
type side struct {
	src     strings.Builder
	indexes []int
}

func (s *side) add(content string, idx int) {
	s.src.WriteString(content)
	s.src.WriteByte('\n')
	s.indexes = append(s.indexes, idx)
}

func (s *side) tokenize(tokenizer diffedit.Tokenizer, language string, out [][]diffedit.Token) bool {
	tokens := tokenizer.TokenizeLines(language, s.src.String())
	if tokens == nil {
		return false
	}
	for pos, idx := range s.indexes {
		if idx >= 0 && pos < len(tokens) {
			out[idx] = tokens[pos]
		}
	}
	return true
}

// tokenizeHunkLines tokenizes a hunk for syntax highlighting. Each side is
// lexed as one source so multi-line constructs keep their context; context
// lines belong to both sides but take their tokens from the new one.
// Returns nil when no tokenizer or language is available, or when the
// language defeats the tokenizer.
func tokenizeHunkLines(hunk diffedit.Hunk, language string, tokenizer diffedit.Tokenizer) [][]diffedit.Token {
	if tokenizer == nil || language == "" {
		return nil
	}

	var oldSide, newSide side
	for i, line := range hunk.Lines {
		switch line.Type {
		case diffedit.LineDeleted:
			oldSide.add(line.Content, i)
		case diffedit.LineAdded:
			newSide.add(line.Content, i)
		default:
			oldSide.add(line.Content, -1)
			newSide.add(line.Content, i)
		}
	}

	result := make([][]diffedit.Token, len(hunk.Lines))
	okNew := newSide.tokenize(tokenizer, language, result)
	okOld := oldSide.tokenize(tokenizer, language, result)
	if !okNew && !okOld {
		return nil
	}
	return result
}

// computeLinePairSegments pairs each run of deleted lines with the run of
// added lines that immediately follows it, 1:1 in order, and computes
// word-level segments for every pair that keeps enough unchanged text.
// Returns a map from hunk line index to segments; unpaired lines are absent.
func computeLinePairSegments(lines []diffedit.Line, wordDiffer diffedit.WordDiffer) map[int][]diffedit.Segment {
	if wordDiffer == nil {
		return nil
	}

	segments := make(map[int][]diffedit.Segment)
	for i := 0; i < len(lines); {
		if lines[i].Type != diffedit.LineDeleted {
			i++
			continue
		}

		delStart := i
		delEnd := runEnd(lines, delStart, diffedit.LineDeleted)
		addEnd := runEnd(lines, delEnd, diffedit.LineAdded)

		// Leftover lines of the longer run render whole-line.
		pairs := min(delEnd-delStart, addEnd-delEnd)
		for j := 0; j < pairs; j++ {
			del, add := delStart+j, delEnd+j
			oldSegs, newSegs := wordDiffer.Diff(lines[del].Content, lines[add].Content)
			if wordDiffUseful(oldSegs) && wordDiffUseful(newSegs) {
				segments[del] = oldSegs
				segments[add] = newSegs
			}
		}

		i = addEnd
	}
	return segments
}

// runEnd returns the index just past the run of typ starting at start.
func runEnd(lines []diffedit.Line, start int, typ diffedit.LineType) int {
	end := start
	for end < len(lines) && lines[end].Type == typ {
		end++
	}
	return end
}

// wordDiffUseful reports whether enough of a line survived for changed
// segments to stand out; rewrites past the threshold read better as
// whole-line changes.
func wordDiffUseful(segments []diffedit.Segment) bool {
	var unchanged, total int
	for _, seg := range segments {
		total += len(seg.Text)
		if !seg.Changed {
			unchanged += len(seg.Text)
		}
	}
	if total == 0 {
		return false
	}
	return float64(unchanged)/float64(total) >= wordDiffThreshold
}

// gutterWidthFor sizes the line number columns to the largest number in the
// diff, with a floor that keeps short diffs aligned.
func gutterWidthFor(diff *diffedit.FileDiff) int {
	var maxNum int
	for _, hunk := range diff.Hunks {
		for _, line := range hunk.Lines {
			maxNum = max(maxNum, line.OldLineNum, line.NewLineNum)
		}
	}
	return max(digitWidth(maxNum), minGutterWidth)
}

// formatLineNum right-aligns a line number to width columns; zero (the
// absent side) renders as blanks.
func formatLineNum(num, width int) string {
	if num == 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, num)
}

// pairStyle converts a ColorPair to a lipgloss style on the given renderer.
// Empty colors stay unset so the terminal default shows through.
func pairStyle(cp diffedit.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := lipgloss.NewStyle()
	if renderer != nil {
		style = renderer.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// formatHunkHeader renders the unified-diff header for a hunk.
func formatHunkHeader(hunk diffedit.Hunk) string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
	if hunk.Section == "" {
		return header
	}
	return header + " " + hunk.Section
}

// linePrefixFor returns the unified-diff marker for a line type.
func linePrefixFor(lineType diffedit.LineType) string {
	switch lineType {
	case diffedit.LineAdded:
		return "+"
	case diffedit.LineDeleted:
		return "-"
	default:
		return " "
	}
}

// padLine extends line to width display columns so its background reaches
// the right edge. Wide runes are measured, not counted.
func padLine(line string, width int) string {
	if pad := width - lipgloss.Width(line); pad > 0 {
		return line + strings.Repeat(" ", pad)
	}
	return line
}

// displayPath returns the header path: the new side, falling back to the
// old side for pure deletions.
func displayPath(diff *diffedit.FileDiff) string {
	if diff.NewPath == "" {
		return diff.OldPath
	}
	return diff.NewPath
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n < 1 {
		return 1
	}
	return len(strconv.Itoa(n))
}

// computeHunkPositions returns the content line each hunk header lands on.
// Line 0 is the file header, so the first hunk header is line 1. Width
// never moves headers, so positions can be computed once per diff.
func computeHunkPositions(diff *diffedit.FileDiff) []int {
	if diff == nil || diff.IsBinary {
		return nil
	}

	positions := make([]int, 0, len(diff.Hunks))
	next := 1
	for _, hunk := range diff.Hunks {
		positions = append(positions, next)
		next += 1 + len(hunk.Lines)
	}
	return positions
}
