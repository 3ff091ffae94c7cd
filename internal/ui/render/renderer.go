package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/filez/internal/state"
)

// Renderer handles drawing to the screen
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the complete UI for state. Nothing is drawn while the screen
// is too small for a layout.
func (r *Renderer) Render(state *statepkg.AppState) {
	if r.screen == nil || state == nil {
		return
	}
	r.screen.Clear()
	r.screen.HideCursor()

	layout := state.Layout
	if layout.Status.Empty() && layout.Local.Outer.Empty() {
		r.screen.Show()
		return
	}

	now := renderTime(state)
	for _, e := range state.Explorers() {
		r.drawExplorer(e, layout.Panel(e.ID), state.Focus == e.ID, now)
	}
	if !layout.Info.Outer.Empty() {
		r.drawInfo(state.Info, layout.Info, state.Focus == statepkg.PanelInfo)
	}
	r.drawStatus(state, layout.Status, now)

	if state.Status == statepkg.StatusPopup && state.Popup != nil {
		r.drawPopup(state.Popup, state.ScreenWidth, state.ScreenHeight)
	}

	r.screen.Show()
}

func renderTime(state *statepkg.AppState) time.Time {
	if state.Now != nil {
		return state.Now()
	}
	return time.Now()
}

// drawSlider paints the thumb of a scrollbar over track. Vertical tracks run
// top to bottom.
func (r *Renderer) drawSlider(track statepkg.Rect, start, end float64, vertical bool) {
	extent := track.W
	if vertical {
		extent = track.H
	}
	thumb := r.theme.base().Foreground(r.theme.SliderFg).Background(r.theme.SliderBg)
	inverted := r.theme.base().Foreground(r.theme.SliderBg).Background(r.theme.SliderFg)
	for _, c := range SliderCells(start, end, extent, vertical) {
		style := thumb
		if c.Inverted {
			style = inverted
		}
		x, y := track.X+c.Index, track.Y
		if vertical {
			x, y = track.X, track.Y+c.Index
		}
		r.screen.SetContent(x, y, c.Glyph, nil, style)
	}
}
