package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/filez/internal/state"
	"github.com/kk-code-lab/filez/internal/textutil"
)

// drawLine paints line from (x, y), one grapheme cluster per cell group, and
// stops before maxWidth columns are exceeded. A wide cluster that would only
// half fit is replaced by a blank. It returns the column after the last
// painted cell.
func (r *Renderer) drawLine(x, y, maxWidth int, line textutil.Line) int {
	end := x + maxWidth
	for _, span := range line {
		for cluster, width := range textutil.Graphemes(span.Content) {
			if x >= end {
				return x
			}
			if width == 0 {
				continue
			}
			if x+width > end {
				r.screen.SetContent(x, y, ' ', nil, span.Style)
				return x + 1
			}
			runes := []rune(cluster)
			r.screen.SetContent(x, y, runes[0], runes[1:], span.Style)
			x += width
		}
	}
	return x
}

func (r *Renderer) drawString(x, y, maxWidth int, text string, style tcell.Style) int {
	return r.drawLine(x, y, maxWidth, textutil.LineOf(textutil.Styled(text, style)))
}

// drawTruncated draws line cut to width with a trailing ellipsis.
func (r *Renderer) drawTruncated(x, y, width int, line textutil.Line) int {
	if line.Width() > width {
		line = textutil.Truncate(line, width)
	}
	return r.drawLine(x, y, width, line)
}

func (r *Renderer) fill(rect statepkg.Rect, ch rune, style tcell.Style) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawBlock draws a single-line border around rect with title on the top
// edge.
func (r *Renderer) drawBlock(rect statepkg.Rect, title string, focused bool) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	style := r.theme.border(focused)
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	if title != "" && rect.W > 4 {
		label := textutil.LineOf(textutil.Styled(" "+title+" ", style.Bold(focused)))
		r.drawTruncated(left+1, top, rect.W-2, label)
	}
}

// padRight pads line with blanks up to width columns.
func padRight(line textutil.Line, width int, style tcell.Style) textutil.Line {
	if gap := width - line.Width(); gap > 0 {
		line = append(line, textutil.Styled(blanks(gap), style))
	}
	return line
}

func padLeft(line textutil.Line, width int, style tcell.Style) textutil.Line {
	if gap := width - line.Width(); gap > 0 {
		return append(textutil.LineOf(textutil.Styled(blanks(gap), style)), line...)
	}
	return line
}

func blanks(n int) string {
	return strings.Repeat(" ", max(n, 0))
}
