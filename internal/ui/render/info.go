package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/filez/internal/logging"
	statepkg "github.com/kk-code-lab/filez/internal/state"
	"github.com/kk-code-lab/filez/internal/textutil"
)

func (r *Renderer) drawInfo(info *statepkg.InfoState, p statepkg.PanelLayout, focused bool) {
	title := statepkg.PanelInfo.Title()
	if info.Dropped > 0 {
		title += " (dropped " + formatCompactNumber(info.Dropped) + ")"
	}
	r.drawBlock(p.Outer, title, focused)
	if p.Inner.Empty() {
		return
	}

	r.drawInfoTabs(info, p.Header)
	if p.Body.Empty() {
		return
	}

	start, end := info.Window(p.Body.H)
	text := r.infoText(info, start, end)
	rows := textutil.Layout(text, p.Body.W, info.Wrap, info.OffsetX)
	// Wrapped entries can take several rows; keep the newest ones in view.
	if over := len(rows) - p.Body.H; over > 0 {
		rows = rows[over:]
	}
	for i, row := range rows {
		r.drawLine(p.Body.X, p.Body.Y+i, p.Body.W, row)
	}

	s, t := SliderSpan(info.Offset(), info.Len(info.Tab), p.Body.H, true)
	r.drawSlider(p.VScroll, s, t, true)
	if !info.Wrap && !p.HScroll.Empty() {
		s, t := SliderSpan(info.OffsetX, text.Width(), p.Body.W, false)
		r.drawSlider(p.HScroll, s, t, false)
	}
}

// drawInfoTabs draws the tab titles at the positions TabHits reports so that
// clicks land on the tab they show.
func (r *Renderer) drawInfoTabs(info *statepkg.InfoState, row statepkg.Rect) {
	if row.Empty() {
		return
	}
	base := r.theme.base()
	active := base.Reverse(true).Bold(true)
	divider := base.Foreground(r.theme.DimFg)
	for i, hit := range statepkg.TabHits(statepkg.InfoTabTitles, row.X, row.Y) {
		if hit.X >= row.Right() {
			return
		}
		style := base
		if statepkg.InfoTab(i) == info.Tab {
			style = active
		}
		label := " " + statepkg.InfoTabTitles[i] + " "
		x := r.drawString(hit.X, hit.Y, row.Right()-hit.X, label, style)
		if i < len(statepkg.InfoTabTitles)-1 && x < row.Right() {
			r.screen.SetContent(x, row.Y, tcell.RuneVLine, nil, divider)
		}
	}
}

// infoText builds the lines for entries [start, end) of the current tab.
func (r *Renderer) infoText(info *statepkg.InfoState, start, end int) textutil.Text {
	text := make(textutil.Text, 0, end-start)
	for i := start; i < end; i++ {
		switch info.Tab {
		case statepkg.TabLog:
			text = append(text, r.recordLine(info.Records[i]))
		case statepkg.TabQueue:
			text = append(text, r.queueLine(info.Queue[i]))
		case statepkg.TabOk:
			text = append(text, r.resultLine(info.Ok[i]))
		case statepkg.TabErr:
			text = append(text, r.resultLine(info.Err[i]))
		}
	}
	return text
}

// recordLine renders "[15:04:05 LEVEL target] message key=value".
func (r *Renderer) recordLine(rec logging.Record) textutil.Line {
	base := r.theme.base()
	dim := base.Foreground(r.theme.DimFg)
	parts := statepkg.RecordParts(rec)
	return textutil.LineOf(
		textutil.Styled(parts[0], dim),
		textutil.Styled(parts[1], r.theme.level(rec.Level)),
		textutil.Styled(parts[2], dim),
		textutil.Styled(parts[3], base),
	)
}

func (r *Renderer) queueLine(item statepkg.QueueItem) textutil.Line {
	base := r.theme.base()
	markStyle := base.Foreground(r.theme.UploadFg)
	if item.Mark == statepkg.MarkDelete {
		markStyle = base.Foreground(r.theme.DeleteFg)
	}
	parts := statepkg.QueueParts(item)
	return textutil.LineOf(
		textutil.Styled(parts[0], markStyle),
		textutil.Styled(parts[1], base.Foreground(r.theme.DimFg)),
		textutil.Styled(parts[2], base),
	)
}

func (r *Renderer) resultLine(res statepkg.OpResult) textutil.Line {
	base := r.theme.base()
	parts := statepkg.ResultParts(res)
	line := textutil.LineOf(
		textutil.Styled(parts[0], base.Foreground(r.theme.DimFg)),
		textutil.Styled(parts[1], base.Bold(true)),
		textutil.Styled(parts[2], base),
	)
	if len(parts) > 3 {
		line = append(line, textutil.Styled(parts[3], base.Foreground(r.theme.ErrorFg)))
	}
	return line
}
