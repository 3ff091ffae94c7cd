package render

import (
	"strings"
	"time"

	statepkg "github.com/kk-code-lab/filez/internal/state"
	"github.com/kk-code-lab/filez/internal/textutil"
)

const (
	statusHelpText = "HELP: (?)help (q)exit"
	yankNoticeTime = 2 * time.Second
)

// buildStatusHelpSegments assembles the key hints shown in the status line
// for the focused panel.
func buildStatusHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := []string{statusHelpText}
	switch state.Focus {
	case statepkg.PanelNone:
		segments = append(segments, "(↵)focus")
	case statepkg.PanelLocal, statepkg.PanelRemote:
		if state.ClipboardAvailable {
			segments = append(segments, "(y)yank path")
		}
		if state.EditorAvailable {
			segments = append(segments, "(e)edit")
		}
	case statepkg.PanelInfo:
		segments = append(segments, "(w)wrap")
	}
	return segments
}

func (r *Renderer) drawStatus(state *statepkg.AppState, row statepkg.Rect, now time.Time) {
	if row.Empty() {
		return
	}
	base := r.theme.base()
	line := textutil.LineOf(textutil.Styled(strings.Join(buildStatusHelpSegments(state), " "), base.Foreground(r.theme.DimFg)))
	if state.Pending != "" {
		line = append(line, textutil.Styled("  "+textutil.SanitizeTerminalText(state.Pending), base.Foreground(r.theme.PendingFg).Bold(true)))
	}
	if !state.LastYankTime.IsZero() && now.Sub(state.LastYankTime) < yankNoticeTime {
		line = append(line, textutil.Styled("  path copied", base.Foreground(r.theme.OkFg)))
	}
	if state.LastError != nil {
		msg := textutil.SanitizeTerminalText(state.LastError.Error())
		line = append(line, textutil.Styled("  "+msg, base.Foreground(r.theme.ErrorFg)))
	}
	r.drawTruncated(row.X, row.Y, row.W, line)
}
