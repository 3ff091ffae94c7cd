package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/filez/internal/state"
	"github.com/kk-code-lab/filez/internal/textutil"
)

func (r *Renderer) drawHelpPopup(help *statepkg.HelpState, window statepkg.Rect) {
	r.drawBlock(window, "Help", true)
	inner := window.Inset(1)
	if inner.Empty() {
		return
	}

	lines := statepkg.HelpLines()
	offset := max(min(help.Offset, len(lines)-1), 0)
	base := r.theme.base()
	section := base.Foreground(r.theme.HeaderFg).Bold(true)
	for i, line := range lines[offset:] {
		if i >= inner.H {
			break
		}
		style := base
		if line != "" && !strings.HasPrefix(line, " ") {
			style = section
		}
		r.drawTruncated(inner.X+1, inner.Y+i, inner.W-1, textutil.LineOf(textutil.Styled(line, style)))
	}

	track := statepkg.Rect{X: window.Right() - 1, Y: inner.Y, W: 1, H: inner.H}
	s, t := SliderSpan(offset, len(lines), inner.H, false)
	r.drawSlider(track, s, t, true)
}
