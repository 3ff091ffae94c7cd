package render

import "math"

var (
	// barGlyphs fill a cell from the bottom, used along vertical tracks.
	barGlyphs = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	// blockGlyphs fill a cell from the left, used along horizontal tracks.
	blockGlyphs = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}
)

// SliderSpan returns the continuous span of a scrollbar thumb inside a track
// of viewport cells. The thumb length is viewport*(viewport/total). Nothing is
// scrollable when total is zero, the offset is past the end or the viewport
// already shows everything; the span is then (0, 0). reversed mirrors the
// span for tracks that grow from the far end.
func SliderSpan(offset, total, viewport int, reversed bool) (float64, float64) {
	if total <= 0 || offset >= total || viewport >= total || viewport <= 0 {
		return 0, 0
	}
	if offset < 0 {
		offset = 0
	}

	win := float64(viewport)
	length := win * (win / float64(total))
	start := clampFloat((win-length)*float64(offset)/float64(total), 0, win)
	end := clampFloat(start+length, 0, win)
	if reversed {
		return win - end, win - start
	}
	return start, end
}

// Eighths rounds a fraction of a cell to the nearest eighth.
func Eighths(frac float64) int {
	n := int(math.Round(frac * 8))
	switch {
	case n < 0:
		return 0
	case n > 8:
		return 8
	}
	return n
}

// BarGlyph is the vertical-track glyph filled frac of a cell from the bottom.
func BarGlyph(frac float64) rune {
	return barGlyphs[Eighths(frac)]
}

// BlockGlyph is the horizontal-track glyph filled frac of a cell from the left.
func BlockGlyph(frac float64) rune {
	return blockGlyphs[Eighths(frac)]
}

// SliderCell is one painted cell of a scrollbar thumb. Inverted cells swap the
// thumb and track colors: the glyph then draws the track part.
type SliderCell struct {
	Index    int
	Glyph    rune
	Inverted bool
}

// SliderCells turns a span from SliderSpan into the cells to paint along a
// track of extent cells. The first and last cells get partial glyphs so the
// thumb moves in eighths of a cell.
func SliderCells(start, end float64, extent int, vertical bool) []SliderCell {
	if end <= start || extent <= 0 {
		return nil
	}

	first := int(math.Floor(start))
	last := int(math.Floor(end))
	startFrac := start - float64(first)
	endFrac := end - float64(last)

	var cells []SliderCell
	for i := first; i <= last && i < extent; i++ {
		c := SliderCell{Index: i, Glyph: '█'}
		switch {
		case i == last:
			if endFrac == 0 {
				continue
			}
			if vertical {
				// lower part is track, upper part is thumb
				c.Glyph = BarGlyph(1 - endFrac)
				c.Inverted = true
			} else {
				c.Glyph = BlockGlyph(endFrac)
			}
			if i == first {
				// thumb starts and ends inside one cell; approximate with its
				// covered fraction
				c.Glyph, c.Inverted = partialGlyph(end-start, vertical), false
			}
		case i == first:
			if vertical {
				c.Glyph = BarGlyph(1 - startFrac)
			} else {
				c.Glyph = BlockGlyph(startFrac)
				c.Inverted = true
			}
		}
		if c.Glyph == ' ' && !c.Inverted {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

func partialGlyph(frac float64, vertical bool) rune {
	if vertical {
		return BarGlyph(frac)
	}
	return BlockGlyph(frac)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
