package diffedit

import "context"

// FileDiff is the line-level comparison of two files.
type FileDiff struct {
	OldPath  string
	NewPath  string
	IsBinary bool // Binary comparisons carry no hunks
	Hunks    []Hunk
}

// Stats counts the added and deleted lines across all hunks.
func (f FileDiff) Stats() (added, deleted int) {
	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Type {
			case LineAdded:
				added++
			case LineDeleted:
				deleted++
			}
		}
	}
	return added, deleted
}

// Hunk is a contiguous run of changes with its surrounding context.
type Hunk struct {
	OldStart int    // First old-file line covered by the hunk
	OldCount int    // Old-file lines covered, context included
	NewStart int    // First new-file line covered by the hunk
	NewCount int    // New-file lines covered, context included
	Section  string // Function context from the hunk header, when known
	Lines    []Line
}

// Line is one row of a hunk.
type Line struct {
	Type       LineType
	Content    string // Text without its trailing newline
	OldLineNum int    // 0 on added lines
	NewLineNum int    // 0 on deleted lines
	NoNewline  bool   // Set when the file ends here without a newline
}

// LineType classifies a diff line.
type LineType int

// Line types.
const (
	LineContext LineType = iota
	LineAdded
	LineDeleted
)

// Segment is a span of a line marked changed or kept, produced by
// word-level diffing of a deleted/added line pair.
type Segment struct {
	Text    string
	Changed bool
}

// Differ compares two files on disk line by line.
type Differ interface {
	// Diff compares oldPath against newPath. Identical files produce a
	// FileDiff with no hunks.
	Diff(ctx context.Context, oldPath, newPath string) (*FileDiff, error)
}

// WordDiffer splits a pair of lines into changed and kept spans.
type WordDiffer interface {
	// Diff returns parallel segment slices for the old and new line.
	Diff(old, new string) (oldSegs, newSegs []Segment)
}

// Viewer presents a diff in the terminal.
type Viewer interface {
	// View displays the diff and blocks until the user exits.
	View(ctx context.Context, diff *FileDiff) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// Copy places content on the system clipboard.
	Copy(content string) error
}
