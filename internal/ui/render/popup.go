package render

import (
	statepkg "github.com/kk-code-lab/filez/internal/state"
	"github.com/kk-code-lab/filez/internal/textutil"
)

func (r *Renderer) drawPopup(p *statepkg.Popup, screenW, screenH int) {
	window := statepkg.PopupRect(p.Kind, screenW, screenH)
	if window.Empty() {
		return
	}
	r.fill(window, ' ', r.theme.base().Background(r.theme.PopupBg))

	switch p.Kind {
	case statepkg.PopupConfirm:
		r.drawConfirmPopup(p.Confirm, window)
	case statepkg.PopupHelp:
		r.drawHelpPopup(p.Help, window)
	case statepkg.PopupInput:
		r.drawInputPopup(p.Input, window)
	}
}

func (r *Renderer) drawConfirmPopup(c *statepkg.ConfirmState, window statepkg.Rect) {
	title := c.Title
	if title == "" {
		title = "Confirm"
	}
	r.drawBlock(window, title, true)
	inner := window.Inset(1)
	if inner.Empty() {
		return
	}

	base := r.theme.base()
	ok, no := statepkg.ConfirmButtons(window)
	msgRows := textutil.Layout(textutil.StyledText(textutil.SanitizeTerminalText(c.Message), base), inner.W, true, 0)
	top := inner.Y + max((ok.Y-inner.Y-len(msgRows))/2, 0)
	for i, row := range msgRows {
		y := top + i
		if y >= ok.Y {
			break
		}
		r.drawLine(inner.X+max((inner.W-row.Width())/2, 0), y, inner.W, row)
	}

	r.drawButton(ok, "Ok", c.Choice == statepkg.ChoiceOk)
	r.drawButton(no, "No", c.Choice == statepkg.ChoiceNo)
}

func (r *Renderer) drawButton(area statepkg.Rect, label string, chosen bool) {
	if area.Empty() {
		return
	}
	style := r.theme.base()
	if chosen {
		style = style.Reverse(true).Bold(true)
	}
	label = "[ " + label + " ]"
	w := textutil.DisplayWidth(label)
	r.drawString(area.X+max((area.W-w)/2, 0), area.Y, area.W, label, style)
}

// drawInputPopup shows the target directory above the edited name and places
// the terminal cursor at the insertion point, scrolling long names.
func (r *Renderer) drawInputPopup(in *statepkg.InputState, window statepkg.Rect) {
	r.drawBlock(window, in.Prompt, true)
	inner := window.Inset(1)
	if inner.Empty() {
		return
	}

	base := r.theme.base()
	dir := textutil.LineOf(textutil.Styled("in "+textutil.SanitizeTerminalText(in.Dir), base.Foreground(r.theme.DimFg)))
	r.drawTruncated(inner.X, inner.Y, inner.W, dir)
	if inner.H < 2 {
		return
	}

	y := inner.Y + 1
	cursor := textutil.RuneColumns(in.Buffer)[in.Cursor]
	shift := max(cursor-(inner.W-1), 0)
	value := textutil.LineOf(textutil.Styled(string(in.Buffer), base.Bold(true)))
	residual, cropped := textutil.CropLeft(value, shift)
	r.drawLine(inner.X+residual, y, inner.W-residual, cropped)
	r.screen.ShowCursor(inner.X+cursor-shift, y)
}
