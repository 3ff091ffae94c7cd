package textutil

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"pgregory.net/rapid"
)

var (
	styleA = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleB = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
)

// narrowClusterGen yields single-column clusters without spaces.
func narrowClusterGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"a", "b", "z", "0", "é", "é", "ж", "-"})
}

// clusterGen mixes narrow and wide clusters.
func clusterGen() *rapid.Generator[string] {
	return rapid.SampledFrom([]string{"a", "b", "q", "é", "é", "中", "文", "\U0001F600", "ж"})
}

func lineGen(clusters *rapid.Generator[string]) *rapid.Generator[Line] {
	return rapid.Custom(func(t *rapid.T) Line {
		n := rapid.IntRange(0, 5).Draw(t, "spans")
		line := make(Line, 0, n)
		for i := 0; i < n; i++ {
			parts := rapid.SliceOfN(clusters, 0, 6).Draw(t, "clusters")
			style := rapid.SampledFrom([]tcell.Style{tcell.StyleDefault, styleA, styleB}).Draw(t, "style")
			line = append(line, Span{Content: strings.Join(parts, ""), Style: style})
		}
		return line
	})
}

type styledCell struct {
	text  string
	style tcell.Style
}

// flatten expands a line into clusters with their styles so lines can be
// compared independent of how content is grouped into spans.
func flatten(line Line) []styledCell {
	var cells []styledCell
	for _, span := range line {
		for cluster := range Graphemes(span.Content) {
			cells = append(cells, styledCell{text: cluster, style: span.Style})
		}
	}
	return cells
}

func sameCells(a, b []styledCell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rowStrings(rows []Line) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.String()
	}
	return out
}
