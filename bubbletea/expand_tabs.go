package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tabWidth is the number of columns per tab stop.
const tabWidth = 8

// ExpandTabs replaces tabs in s with spaces aligned to 8-column tab stops.
// startCol is the screen column where s will be rendered; the gutter shifts
// diff lines right, so the first tab stop depends on it.
func ExpandTabs(s string, startCol int) string {
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + tabWidth)
	col := startCol
	for _, r := range s {
		if r != '\t' {
			sb.WriteRune(r)
			col += lipgloss.Width(string(r))
			continue
		}
		pad := tabWidth - col%tabWidth
		sb.WriteString(strings.Repeat(" ", pad))
		col += pad
	}
	return sb.String()
}
