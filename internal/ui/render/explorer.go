package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/filez/internal/fs"
	statepkg "github.com/kk-code-lab/filez/internal/state"
	"github.com/kk-code-lab/filez/internal/textutil"
)

func (r *Renderer) drawExplorer(e *statepkg.ExplorerState, p statepkg.PanelLayout, focused bool, now time.Time) {
	title := e.ID.Title()
	if e.Loading {
		title += " (loading)"
	}
	r.drawBlock(p.Outer, title, focused)
	if p.Body.Empty() && p.Header.Empty() {
		return
	}

	widths := statepkg.ColumnWidths(e.Rows, now)
	total := statepkg.TableWidth(widths)

	r.drawTableRow(p.Header, e.OffsetX, r.headerLine(widths))

	start, end := e.List.Visible()
	selected := e.List.Selected()
	for i := start; i < end; i++ {
		y := p.Body.Y + i - start
		if y >= p.Body.Bottom() {
			break
		}
		line := r.explorerRow(e.Rows[i], i == selected, focused, widths, now)
		row := statepkg.Rect{X: p.Body.X, Y: y, W: p.Body.W, H: 1}
		if i == selected {
			r.fill(row, ' ', r.rowBase(true, focused))
		}
		r.drawTableRow(row, e.OffsetX, line)
	}

	if !p.VScroll.Empty() {
		s, t := SliderSpan(e.List.Offset, len(e.Rows), p.Body.H, false)
		r.drawSlider(p.VScroll, s, t, true)
	}
	if !p.HScroll.Empty() {
		s, t := SliderSpan(e.OffsetX, total, p.Body.W, false)
		r.drawSlider(p.HScroll, s, t, false)
	}
	if !p.Footer.Empty() {
		r.drawExplorerFooter(e, p.Footer)
	}
}

// drawTableRow crops line by offset and draws it into row. A wide cluster cut
// by the crop leaves blank columns in its place.
func (r *Renderer) drawTableRow(row statepkg.Rect, offset int, line textutil.Line) {
	if row.Empty() {
		return
	}
	residual, cropped := textutil.CropLeft(line, offset)
	if residual >= row.W {
		return
	}
	r.drawLine(row.X+residual, row.Y, row.W-residual, cropped)
}

func (r *Renderer) headerLine(widths [statepkg.ColumnCount]int) textutil.Line {
	style := r.theme.base().Foreground(r.theme.HeaderFg).Bold(true)
	return joinColumns(widths, func(i int) textutil.Line {
		return textutil.LineOf(textutil.Styled(statepkg.ColumnHeaders[i], style))
	}, style)
}

// joinColumns lays out one table row: every column padded to its width and
// columns separated by ColumnSpacing blanks.
func joinColumns(widths [statepkg.ColumnCount]int, cell func(int) textutil.Line, gap tcell.Style) textutil.Line {
	var line textutil.Line
	for i := range statepkg.ColumnCount {
		if i > 0 {
			line = append(line, textutil.Styled(blanks(statepkg.ColumnSpacing), gap))
		}
		c := cell(i)
		if i == statepkg.ColSize {
			c = padLeft(c, widths[i], gap)
		} else {
			c = padRight(c, widths[i], gap)
		}
		line = append(line, c...)
	}
	return line
}

func (r *Renderer) rowBase(selected, focused bool) tcell.Style {
	style := r.theme.base()
	switch {
	case selected && focused:
		style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	case selected:
		style = style.Bold(true)
	}
	return style
}

func (r *Renderer) explorerRow(row statepkg.Row, selected, focused bool, widths [statepkg.ColumnCount]int, now time.Time) textutil.Line {
	cells := statepkg.RowCells(row, selected, now)
	base := r.rowBase(selected, focused)
	highlighted := selected && focused

	return joinColumns(widths, func(i int) textutil.Line {
		switch i {
		case statepkg.ColName:
			return r.nameCell(row, cells[i], base, highlighted)
		case statepkg.ColPerm:
			return r.permCell(cells[i], base, highlighted)
		case statepkg.ColAction:
			style := base
			if !highlighted {
				switch row.Mark {
				case statepkg.MarkUpload:
					style = style.Foreground(r.theme.UploadFg)
				case statepkg.MarkDelete:
					style = style.Foreground(r.theme.DeleteFg)
				}
			}
			return textutil.LineOf(textutil.Styled(cells[i], style))
		}
		return textutil.LineOf(textutil.Styled(cells[i], base))
	}, base)
}

// nameCell colors the name by entry kind and highlights the search hit.
func (r *Renderer) nameCell(row statepkg.Row, name string, base tcell.Style, highlighted bool) textutil.Line {
	style := base
	if !highlighted {
		switch row.Entry.Kind {
		case fsutil.KindDir:
			style = style.Foreground(r.theme.DirectoryFg)
		case fsutil.KindSymlink:
			style = style.Foreground(r.theme.SymlinkFg)
		case fsutil.KindDotDot:
			style = style.Foreground(r.theme.DotDotFg)
		default:
			style = style.Foreground(r.theme.FileFg)
		}
		if row.Entry.IsDir {
			style = style.Bold(true)
		}
	}

	if name != row.Entry.Name {
		// control characters show up as marked placeholders, unhighlighted
		return textutil.SanitizeLine(row.Entry.Name, style, style.Foreground(r.theme.ErrorFg))
	}
	if !row.Matched() || row.MatchEnd > len(name) {
		return textutil.LineOf(textutil.Styled(name, style))
	}
	match := style.Background(r.theme.MatchBg).Foreground(r.theme.MatchFg)
	var line textutil.Line
	if row.MatchStart > 0 {
		line = append(line, textutil.Styled(name[:row.MatchStart], style))
	}
	line = append(line, textutil.Styled(name[row.MatchStart:row.MatchEnd], match))
	if row.MatchEnd < len(name) {
		line = append(line, textutil.Styled(name[row.MatchEnd:], style))
	}
	return line
}

// permCell dims the '-' placeholders of the permission bits.
func (r *Renderer) permCell(perm string, base tcell.Style, highlighted bool) textutil.Line {
	if highlighted {
		return textutil.LineOf(textutil.Styled(perm, base))
	}
	dim := base.Foreground(r.theme.DimFg)
	var line textutil.Line
	for i := 0; i < len(perm); {
		j := i
		isDash := perm[i] == '-'
		for j < len(perm) && (perm[j] == '-') == isDash {
			j++
		}
		style := base
		if isDash {
			style = dim
		}
		line = append(line, textutil.Styled(perm[i:j], style))
		i = j
	}
	return line
}

// drawExplorerFooter shows the directory on the left and the listing options
// on the right.
func (r *Renderer) drawExplorerFooter(e *statepkg.ExplorerState, footer statepkg.Rect) {
	base := r.theme.base()
	options := "Sort: " + e.Sort.String()
	if e.SortReverse {
		options += " (rev)"
	}
	if e.ShowHidden {
		options = "Hidden  " + options
	}
	optionsW := textutil.DisplayWidth(options)

	pathW := footer.W
	if optionsW+1 < footer.W {
		pathW = footer.W - optionsW - 1
		r.drawString(footer.Right()-optionsW, footer.Y, optionsW, options, base.Foreground(r.theme.DimFg))
	}
	path := textutil.LineOf(textutil.Styled(textutil.SanitizeTerminalText(e.Dir), base))
	r.drawTruncated(footer.X, footer.Y, pathW, path)
}
