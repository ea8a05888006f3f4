package godiff

import (
	"github.com/fwojciec/diffedit"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Compile-time interface verification.
var _ diffedit.WordDiffer = (*WordDiffer)(nil)

// WordDiffer implements diffedit.WordDiffer with character-level diffs and
// semantic cleanup, which pulls change boundaries toward word edges.
type WordDiffer struct{}

// NewWordDiffer creates a new WordDiffer.
func NewWordDiffer() *WordDiffer {
	return &WordDiffer{}
}

// Diff returns segments for both strings, marking the changed portions.
func (w *WordDiffer) Diff(old, new string) (oldSegs, newSegs []diffedit.Segment) {
	if old == "" && new == "" {
		return nil, nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(old, new, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldSegs = appendSegment(oldSegs, d.Text, false)
			newSegs = appendSegment(newSegs, d.Text, false)
		case diffmatchpatch.DiffDelete:
			oldSegs = appendSegment(oldSegs, d.Text, true)
		case diffmatchpatch.DiffInsert:
			newSegs = appendSegment(newSegs, d.Text, true)
		}
	}
	return oldSegs, newSegs
}

// appendSegment extends the previous segment when the changed flag matches,
// so consecutive diffs on one side collapse into a single segment.
func appendSegment(segs []diffedit.Segment, text string, changed bool) []diffedit.Segment {
	if n := len(segs); n > 0 && segs[n-1].Changed == changed {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, diffedit.Segment{Text: text, Changed: changed})
}
