// Package gitdiff computes file diffs by shelling out to git and parsing
// its output with bluekeyes/go-gitdiff.
package gitdiff

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffedit"
)

// Compile-time interface verification.
var _ diffedit.Differ = (*Differ)(nil)

// Differ computes diffs by running git diff --no-index. git handles
// encoding quirks and binary detection, and its histogram algorithm
// produces better-aligned hunks than a plain Myers diff.
type Differ struct{}

// NewDiffer creates a new git-backed Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Detect reports whether a git binary is available on PATH.
func Detect() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Diff compares the files at oldPath and newPath. git exits with code 1
// when the files differ, which is a result rather than a failure. An
// exit of 1 with an empty stdout means git could not read an input and
// put the explanation on stderr; that and higher exit codes are errors.
func (d *Differ) Diff(ctx context.Context, oldPath, newPath string) (*diffedit.FileDiff, error) {
	args := []string{"diff", "--no-index", "--", oldPath, newPath}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	hasOutput := len(bytes.TrimSpace(output)) > 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		switch {
		case ok && exitErr.ExitCode() == 1 && hasOutput:
			// Differences found; the diff is on stdout.
		case ok:
			return nil, fmt.Errorf("git diff failed: %s", bytes.TrimSpace(exitErr.Stderr))
		default:
			return nil, fmt.Errorf("git diff failed: %w", err)
		}
	}

	fd := &diffedit.FileDiff{OldPath: oldPath, NewPath: newPath}
	if !hasOutput {
		return fd, nil
	}
	if isBinaryDiff(output) {
		fd.IsBinary = true
		return fd, nil
	}

	files, _, err := gitdiff.Parse(bytes.NewReader(output))
	if err != nil {
		return nil, fmt.Errorf("parse git output: %w", err)
	}
	if len(files) == 0 {
		return fd, nil
	}

	convertFile(fd, files[0])
	return fd, nil
}

// isBinaryDiff reports whether output carries git's binary marker. A
// binary pair gets a "Binary files ... differ" line in place of hunks,
// with no ---/+++ header lines for the parser to take names from. The
// marker sits at column 0; lines inside hunks carry a +/-/space prefix.
func isBinaryDiff(output []byte) bool {
	for _, line := range bytes.Split(output, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("Binary files ")) && bytes.HasSuffix(line, []byte(" differ")) {
			return true
		}
	}
	return false
}

// convertFile fills fd from the parsed file. The caller's path spelling
// is kept; git reports names with a/ and b/ prefixes.
func convertFile(fd *diffedit.FileDiff, f *gitdiff.File) {
	fd.IsBinary = f.IsBinary

	fd.Hunks = make([]diffedit.Hunk, 0, len(f.TextFragments))
	for _, frag := range f.TextFragments {
		fd.Hunks = append(fd.Hunks, convertFragment(frag))
	}
}

func convertFragment(frag *gitdiff.TextFragment) diffedit.Hunk {
	hunk := diffedit.Hunk{
		OldStart: int(frag.OldPosition),
		OldCount: int(frag.OldLines),
		NewStart: int(frag.NewPosition),
		NewCount: int(frag.NewLines),
		Section:  frag.Comment,
	}

	// Numbering runs through the hunk from its start positions; each side
	// advances only on lines it contains.
	oldNum := int(frag.OldPosition)
	newNum := int(frag.NewPosition)

	for _, l := range frag.Lines {
		line := diffedit.Line{
			Content:   strings.TrimSuffix(l.Line, "\n"),
			NoNewline: l.NoEOL(),
		}

		switch l.Op {
		case gitdiff.OpAdd:
			line.Type = diffedit.LineAdded
			line.NewLineNum = newNum
			newNum++
		case gitdiff.OpDelete:
			line.Type = diffedit.LineDeleted
			line.OldLineNum = oldNum
			oldNum++
		case gitdiff.OpContext:
			line.Type = diffedit.LineContext
			line.OldLineNum = oldNum
			line.NewLineNum = newNum
			oldNum++
			newNum++
		}

		hunk.Lines = append(hunk.Lines, line)
	}

	return hunk
}
