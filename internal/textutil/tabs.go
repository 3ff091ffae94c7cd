package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop distance used for log messages.
const DefaultTabWidth = 4

// ExpandTabs pads every tab out to the next multiple of tabWidth columns.
// Columns are counted per grapheme cluster, so wide characters before a tab
// shorten its padding.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || strings.IndexByte(text, '\t') < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + tabWidth)
	col := 0
	for cluster, width := range Graphemes(text) {
		if cluster != "\t" {
			b.WriteString(cluster)
			col += width
			continue
		}
		pad := tabWidth - col%tabWidth
		b.WriteString(strings.Repeat(" ", pad))
		col += pad
	}
	return b.String()
}

// RuneColumns maps each rune index of an input buffer to the column it starts
// at. The extra last element is the width of the whole buffer, where the
// cursor sits after typing. Zero width runes count as one column so every
// keystroke moves the cursor.
func RuneColumns(runes []rune) []int {
	cols := make([]int, 0, len(runes)+1)
	col := 0
	for _, r := range runes {
		cols = append(cols, col)
		col += max(runewidth.RuneWidth(r), 1)
	}
	return append(cols, col)
}
