package gitdiff_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/diffedit"
	"github.com/fwojciec/diffedit/gitdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireGit skips the test when no git binary is installed.
func requireGit(t *testing.T) {
	t.Helper()
	if !gitdiff.Detect() {
		t.Skip("git not installed")
	}
}

// writeFile creates a fixture file and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetect(t *testing.T) {
	requireGit(t)
	t.Parallel()

	assert.True(t, gitdiff.Detect())
}

func TestDiffer_Diff_IdenticalFiles(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", "same\ncontent\n")
	new := writeFile(t, dir, "new.txt", "same\ncontent\n")

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	assert.Empty(t, diff.Hunks)
	assert.False(t, diff.IsBinary)
	assert.Equal(t, old, diff.OldPath)
	assert.Equal(t, new, diff.NewPath)
}

func TestDiffer_Diff_ModifiedFile(t *testing.T) {
	requireGit(t)
	t.Parallel()

	oldContent := `package main

func main() {
	println("hello")
}
`
	newContent := `package main

func main() {
	println("hello world")
	println("goodbye")
}
`
	dir := t.TempDir()
	old := writeFile(t, dir, "old.go", oldContent)
	new := writeFile(t, dir, "new.go", newContent)

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	assert.False(t, diff.IsBinary)

	require.Len(t, diff.Hunks, 1)
	h := diff.Hunks[0]
	assert.Equal(t, 1, h.OldStart)
	assert.Equal(t, 5, h.OldCount)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 6, h.NewCount)

	// 4 context + 1 deleted + 2 added = 7 lines
	require.Len(t, h.Lines, 7)

	assert.Equal(t, diffedit.LineContext, h.Lines[0].Type)
	assert.Equal(t, "package main", h.Lines[0].Content)
	assert.Equal(t, 1, h.Lines[0].OldLineNum)
	assert.Equal(t, 1, h.Lines[0].NewLineNum)

	assert.Equal(t, diffedit.LineDeleted, h.Lines[3].Type)
	assert.Equal(t, "\tprintln(\"hello\")", h.Lines[3].Content)
	assert.Equal(t, 4, h.Lines[3].OldLineNum)
	assert.Equal(t, 0, h.Lines[3].NewLineNum)

	assert.Equal(t, diffedit.LineAdded, h.Lines[4].Type)
	assert.Equal(t, "\tprintln(\"hello world\")", h.Lines[4].Content)
	assert.Equal(t, 0, h.Lines[4].OldLineNum)
	assert.Equal(t, 4, h.Lines[4].NewLineNum)

	assert.Equal(t, diffedit.LineAdded, h.Lines[5].Type)
	assert.Equal(t, "\tprintln(\"goodbye\")", h.Lines[5].Content)
	assert.Equal(t, 0, h.Lines[5].OldLineNum)
	assert.Equal(t, 5, h.Lines[5].NewLineNum)

	assert.Equal(t, diffedit.LineContext, h.Lines[6].Type)
	assert.Equal(t, "}", h.Lines[6].Content)
	assert.Equal(t, 5, h.Lines[6].OldLineNum)
	assert.Equal(t, 6, h.Lines[6].NewLineNum)

	added, deleted := diff.Stats()
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, deleted)
}

func TestDiffer_Diff_DistantChangesSplitIntoHunks(t *testing.T) {
	requireGit(t)
	t.Parallel()

	var oldSB, newSB strings.Builder
	for i := 1; i <= 25; i++ {
		fmt.Fprintf(&oldSB, "line %d\n", i)
		if i == 2 || i == 20 {
			fmt.Fprintf(&newSB, "LINE %d\n", i)
		} else {
			fmt.Fprintf(&newSB, "line %d\n", i)
		}
	}
	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", oldSB.String())
	new := writeFile(t, dir, "new.txt", newSB.String())

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	require.Len(t, diff.Hunks, 2)

	assert.Equal(t, 1, diff.Hunks[0].OldStart)
	assert.Equal(t, 5, diff.Hunks[0].OldCount)

	assert.Equal(t, 17, diff.Hunks[1].OldStart)
	assert.Equal(t, 7, diff.Hunks[1].OldCount)
	assert.Equal(t, 17, diff.Hunks[1].NewStart)
	assert.Equal(t, 7, diff.Hunks[1].NewCount)
}

func TestDiffer_Diff_EmptyOldFile(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", "")
	new := writeFile(t, dir, "new.txt", "a\nb\n")

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	require.Len(t, diff.Hunks, 1)

	h := diff.Hunks[0]
	assert.Equal(t, 0, h.OldStart)
	assert.Equal(t, 0, h.OldCount)
	assert.Equal(t, 1, h.NewStart)
	assert.Equal(t, 2, h.NewCount)

	require.Len(t, h.Lines, 2)
	for i, line := range h.Lines {
		assert.Equal(t, diffedit.LineAdded, line.Type)
		assert.Equal(t, 0, line.OldLineNum)
		assert.Equal(t, i+1, line.NewLineNum)
	}
}

func TestDiffer_Diff_NoNewlineAtEOF(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", "old")
	new := writeFile(t, dir, "new.txt", "new")

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	require.Len(t, diff.Hunks, 1)

	h := diff.Hunks[0]
	require.Len(t, h.Lines, 2)

	assert.Equal(t, diffedit.LineDeleted, h.Lines[0].Type)
	assert.Equal(t, "old", h.Lines[0].Content)
	assert.True(t, h.Lines[0].NoNewline)

	assert.Equal(t, diffedit.LineAdded, h.Lines[1].Type)
	assert.Equal(t, "new", h.Lines[1].Content)
	assert.True(t, h.Lines[1].NoNewline)
}

func TestDiffer_Diff_BinaryFiles(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old.bin", "\x00\x01\x02")
	new := writeFile(t, dir, "new.bin", "\x00\x01\x03")

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	assert.True(t, diff.IsBinary)
	assert.Empty(t, diff.Hunks)
}

func TestDiffer_Diff_TextContainingBinaryMarker(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", "plain\n")
	new := writeFile(t, dir, "new.txt", "plain\nBinary files a and b differ\n")

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	assert.False(t, diff.IsBinary)
	require.Len(t, diff.Hunks, 1)
}

func TestDiffer_Diff_IdenticalBinaryFiles(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old.bin", "\x00\x01\x02")
	new := writeFile(t, dir, "new.bin", "\x00\x01\x02")

	diff, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.NoError(t, err)
	assert.False(t, diff.IsBinary)
	assert.Empty(t, diff.Hunks)
}

func TestDiffer_Diff_MissingFile(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := filepath.Join(dir, "missing.txt")
	new := writeFile(t, dir, "new.txt", "content\n")

	_, err := gitdiff.NewDiffer().Diff(context.Background(), old, new)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "git diff failed")
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestDiffer_Diff_CanceledContext(t *testing.T) {
	requireGit(t)
	t.Parallel()

	dir := t.TempDir()
	old := writeFile(t, dir, "old.txt", "a\n")
	new := writeFile(t, dir, "new.txt", "b\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gitdiff.NewDiffer().Diff(ctx, old, new)

	require.Error(t, err)
}
