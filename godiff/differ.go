// Package godiff computes file and word diffs in pure Go using the
// go-diff library. It backs the terminal preview when git is unavailable.
package godiff

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/diffedit"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ diffedit.Differ = (*Differ)(nil)

// defaultContext is the number of unchanged lines kept around each change.
const defaultContext = 3

// binarySniffLen bounds how many leading bytes are examined for NUL when
// deciding whether a file is binary, mirroring git's heuristic.
const binarySniffLen = 8000

// Differ implements diffedit.Differ with diffmatchpatch line diffs.
type Differ struct {
	Context int // Context lines around changes; zero means the default of 3
}

// NewDiffer creates a Differ with default settings.
func NewDiffer() *Differ {
	return &Differ{Context: defaultContext}
}

// Diff compares the contents of oldPath and newPath. Identical files
// produce a FileDiff with no hunks; IsBinary is set only when binary
// contents actually differ, matching git's --no-index behavior.
func (d *Differ) Diff(_ context.Context, oldPath, newPath string) (*diffedit.FileDiff, error) {
	oldData, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, fmt.Errorf("read old file: %w", err)
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return nil, fmt.Errorf("read new file: %w", err)
	}

	fd := &diffedit.FileDiff{OldPath: oldPath, NewPath: newPath}

	if bytes.Equal(oldData, newData) {
		return fd, nil
	}
	if isBinary(oldData) || isBinary(newData) {
		fd.IsBinary = true
		return fd, nil
	}

	// Line-mode pipeline: encode whole lines as characters so the diff
	// operates on lines, then translate back. Semantic cleanup is skipped
	// here because it can merge edits across line boundaries; it belongs
	// to the word differ.
	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(string(oldData), string(newData))
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	context := d.Context
	if context <= 0 {
		context = defaultContext
	}
	ops := flatten(diffs)
	markNoEOL(ops, oldData, newData)
	fd.Hunks = buildHunks(ops, context)
	return fd, nil
}

// lineOp is one line of the flattened diff with its line numbers assigned.
type lineOp struct {
	typ       diffedit.LineType
	text      string
	oldLine   int // 0 for added lines
	newLine   int // 0 for deleted lines
	noNewline bool
}

// flatten expands line-aligned diffs into per-line operations, numbering
// lines in both files as it goes.
func flatten(diffs []diffmatchpatch.Diff) []lineOp {
	var ops []lineOp
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, lineOp{typ: diffedit.LineContext, text: text, oldLine: oldLine, newLine: newLine})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, lineOp{typ: diffedit.LineDeleted, text: text, oldLine: oldLine})
				oldLine++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, lineOp{typ: diffedit.LineAdded, text: text, newLine: newLine})
				newLine++
			}
		}
	}
	return ops
}

// splitLines splits diff text into lines, dropping the empty remainder a
// trailing newline produces.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// markNoEOL flags the final line of either file when that file does not end
// with a newline, mirroring git's "\ No newline at end of file" marker.
func markNoEOL(ops []lineOp, oldData, newData []byte) {
	oldLast, oldNoEOL := lastLine(oldData)
	newLast, newNoEOL := lastLine(newData)
	if !oldNoEOL && !newNoEOL {
		return
	}
	for i := range ops {
		if oldNoEOL && ops[i].oldLine == oldLast {
			ops[i].noNewline = true
		}
		if newNoEOL && ops[i].newLine == newLast {
			ops[i].noNewline = true
		}
	}
}

// lastLine returns the 1-based number of the final line in data and whether
// that line lacks a trailing newline.
func lastLine(data []byte) (int, bool) {
	if len(data) == 0 || data[len(data)-1] == '\n' {
		return 0, false
	}
	return bytes.Count(data, []byte{'\n'}) + 1, true
}

// buildHunks groups changed lines into hunks, keeping context unchanged
// lines around each change and merging changes whose context overlaps.
func buildHunks(ops []lineOp, context int) []diffedit.Hunk {
	var changed []int
	for i, op := range ops {
		if op.typ != diffedit.LineContext {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	type span struct{ lo, hi int }
	var spans []span
	cur := span{changed[0], changed[0]}
	for _, idx := range changed[1:] {
		if idx-cur.hi-1 <= 2*context {
			cur.hi = idx
			continue
		}
		spans = append(spans, cur)
		cur = span{idx, idx}
	}
	spans = append(spans, cur)

	hunks := make([]diffedit.Hunk, 0, len(spans))
	for _, sp := range spans {
		lo := max(sp.lo-context, 0)
		hi := min(sp.hi+context, len(ops)-1)
		hunks = append(hunks, makeHunk(ops[lo:hi+1]))
	}
	return hunks
}

// makeHunk materializes a hunk from a window of line operations.
func makeHunk(ops []lineOp) diffedit.Hunk {
	var h diffedit.Hunk
	for _, op := range ops {
		h.Lines = append(h.Lines, diffedit.Line{
			Type:       op.typ,
			Content:    op.text,
			OldLineNum: op.oldLine,
			NewLineNum: op.newLine,
			NoNewline:  op.noNewline,
		})
		if op.oldLine > 0 {
			if h.OldStart == 0 {
				h.OldStart = op.oldLine
			}
			h.OldCount++
		}
		if op.newLine > 0 {
			if h.NewStart == 0 {
				h.NewStart = op.newLine
			}
			h.NewCount++
		}
	}
	return h
}

// isBinary reports whether data looks like binary content: a NUL byte in
// the leading section.
func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}
