package textutil

import "github.com/gdamore/tcell/v2"

// Ellipsis marks a row that was cut short.
const Ellipsis = "…"

// Layout fits text into maxWidth columns scrolled horizontally by offset.
//
// With wrap enabled every line is wrapped at maxWidth first and each resulting
// row is then cropped by offset. Without wrap every line is cropped by offset;
// a line whose full width exceeds maxWidth is then cut to at most maxWidth
// columns with an ellipsis in the last visible one, even when scrolling has
// brought its tail into view. The returned rows need no further offsetting.
func Layout(text Text, maxWidth int, wrap bool, offset int) Text {
	if maxWidth <= 0 {
		return Text{}
	}

	out := make(Text, 0, len(text))
	for _, line := range text {
		if wrap {
			for _, row := range WrapLine(line, maxWidth) {
				out = append(out, shiftLeft(row, offset))
			}
			continue
		}

		overflow := line.Width() > maxWidth
		row := shiftLeft(line, offset)
		if overflow {
			row = Truncate(row, maxWidth)
		}
		out = append(out, row)
	}
	return out
}

// shiftLeft crops offset columns and turns the crop residual into leading
// blanks.
func shiftLeft(line Line, offset int) Line {
	if offset <= 0 {
		return line
	}
	if offset >= line.Width() {
		return Line{}
	}
	residual, cropped := CropLeft(line, offset)
	if residual == 0 {
		return cropped
	}
	return append(Line{Raw(spaces(residual))}, cropped...)
}

type cell struct {
	text  string
	width int
	style tcell.Style
}

// Truncate cuts line to at most width columns and replaces the last visible
// cluster with Ellipsis, keeping that cluster's style. A wide cluster that
// straddles the edge is replaced by blanks in its style.
func Truncate(line Line, width int) Line {
	if width <= 0 {
		return Line{}
	}

	cells := make([]cell, 0, width)
	used := 0
fill:
	for _, span := range line {
		for cluster, cw := range Graphemes(span.Content) {
			if used+cw > width {
				for ; used < width; used++ {
					cells = append(cells, cell{text: " ", width: 1, style: span.Style})
				}
				break fill
			}
			cells = append(cells, cell{text: cluster, width: cw, style: span.Style})
			used += cw
		}
	}

	last := len(cells) - 1
	for last >= 0 && cells[last].width == 0 {
		last--
	}
	if last < 0 {
		return Line{}
	}
	c := cells[last]
	cells[last] = cell{text: spaces(c.width-1) + Ellipsis, width: c.width, style: c.style}
	return mergeCells(cells[:last+1])
}

func mergeCells(cells []cell) Line {
	var line Line
	for i := 0; i < len(cells); {
		j := i
		content := ""
		for j < len(cells) && cells[j].style == cells[i].style {
			content += cells[j].text
			j++
		}
		line = append(line, Span{Content: content, Style: cells[i].style})
		i = j
	}
	return line
}
