package textutil

import (
	"iter"

	"github.com/rivo/uniseg"
)

// DisplayWidth reports the number of terminal columns text occupies, summing
// the width of each extended grapheme cluster.
func DisplayWidth(text string) int {
	width := 0
	for _, w := range Graphemes(text) {
		width += w
	}
	return width
}

// Graphemes yields each extended grapheme cluster of text together with its
// column width (0, 1 or 2). Invalid UTF-8 bytes come out as single clusters of
// width 1.
func Graphemes(text string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		state := -1
		rest := text
		for rest != "" {
			var cluster string
			var width int
			cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(cluster, clampWidth(width)) {
				return
			}
		}
	}
}

func clampWidth(w int) int {
	switch {
	case w < 0:
		return 0
	case w > 2:
		return 2
	}
	return w
}
