package state

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Right is the column just past r.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the row just past r.
func (r Rect) Bottom() int { return r.Y + r.H }

// PanelLayout places the parts of a bordered panel.
type PanelLayout struct {
	Outer  Rect
	Inner  Rect
	Header Rect // table header or tab row
	Body   Rect // scrollable rows
	// VScroll runs down the right border next to Body; HScroll runs along a
	// spare row under Body.
	VScroll Rect
	HScroll Rect
	Footer  Rect
}

// Layout is the arrangement of all panels for one screen size.
type Layout struct {
	Width, Height int
	Local         PanelLayout
	Remote        PanelLayout
	Info          PanelLayout
	Status        Rect
}

const (
	infoPanelHeight = 20
	minScreenWidth  = 2
	minScreenHeight = 6
)

// ComputeLayout splits the screen: a status row at the bottom, the info panel
// above it when there is room for it, and two explorers side by side on top.
// Screens too small to draw on get an empty layout.
func ComputeLayout(width, height int) Layout {
	layout := Layout{Width: width, Height: height}
	if width < minScreenWidth || height < minScreenHeight {
		return layout
	}

	rest := height
	statusH := 0
	if rest > 1 {
		statusH = 1
	}
	rest -= statusH
	infoH := 0
	if rest > infoPanelHeight {
		infoH = infoPanelHeight
	}
	rest -= infoH

	half := width / 2
	layout.Local = explorerLayout(Rect{X: 0, Y: 0, W: half, H: rest})
	layout.Remote = explorerLayout(Rect{X: half, Y: 0, W: width - half, H: rest})
	if infoH > 0 {
		layout.Info = infoLayout(Rect{X: 0, Y: rest, W: width, H: infoH})
	}
	layout.Status = Rect{X: 0, Y: rest + infoH, W: width, H: statusH}
	return layout
}

func explorerLayout(outer Rect) PanelLayout {
	inner := outer.Inset(1)
	p := PanelLayout{Outer: outer, Inner: inner}
	if inner.Empty() {
		return p
	}

	tableH := inner.H
	if inner.H >= 3 {
		tableH = inner.H - 2
		p.HScroll = Rect{X: inner.X, Y: inner.Y + tableH, W: inner.W, H: 1}
		p.Footer = Rect{X: inner.X, Y: inner.Y + tableH + 1, W: inner.W, H: 1}
	}
	p.Header = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: 1}
	p.Body = Rect{X: inner.X, Y: inner.Y + 1, W: inner.W, H: tableH - 1}
	p.VScroll = Rect{X: outer.Right() - 1, Y: p.Body.Y, W: 1, H: p.Body.H}
	return p
}

func infoLayout(outer Rect) PanelLayout {
	inner := outer.Inset(1)
	p := PanelLayout{Outer: outer, Inner: inner}
	if inner.Empty() {
		return p
	}
	p.Header = Rect{X: inner.X, Y: inner.Y, W: inner.W, H: 1}
	p.Body = Rect{X: inner.X, Y: inner.Y + 1, W: inner.W, H: inner.H - 1}
	p.VScroll = Rect{X: outer.Right() - 1, Y: p.Body.Y, W: 1, H: p.Body.H}
	p.HScroll = Rect{X: inner.X, Y: outer.Bottom() - 1, W: inner.W, H: 1}
	return p
}

// Panel returns the layout of an explorer or the info panel.
func (l Layout) Panel(id PanelID) PanelLayout {
	switch id {
	case PanelLocal:
		return l.Local
	case PanelRemote:
		return l.Remote
	case PanelInfo:
		return l.Info
	}
	return PanelLayout{Outer: l.Status, Inner: l.Status, Body: l.Status}
}

// PanelAt returns the panel under the cell (x, y).
func (l Layout) PanelAt(x, y int) PanelID {
	switch {
	case l.Local.Outer.Contains(x, y):
		return PanelLocal
	case l.Remote.Outer.Contains(x, y):
		return PanelRemote
	case l.Info.Outer.Contains(x, y):
		return PanelInfo
	case l.Status.Contains(x, y):
		return PanelStatus
	}
	return PanelNone
}

// centered returns a w×h rect centered on the screen, clamped to fit.
func centered(screenW, screenH, w, h int) Rect {
	w = min(w, screenW)
	h = min(h, screenH)
	return Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: max(w, 0), H: max(h, 0)}
}

// PopupRect is the window of a popup of kind on a screen of the given size.
func PopupRect(kind PopupKind, screenW, screenH int) Rect {
	switch kind {
	case PopupHelp:
		mx := max((screenW-screenW/3)/2, 3)
		my := max((screenH-screenH*5/6)/2, 3)
		return Rect{X: mx, Y: my, W: max(screenW-2*mx, 0), H: max(screenH-2*my, 0)}
	case PopupInput:
		return centered(screenW, screenH, 50, 5)
	default:
		return centered(screenW, screenH, 60, 10)
	}
}

// ConfirmButtons returns the Ok and No button regions of a confirm popup
// drawn in window.
func ConfirmButtons(window Rect) (ok, no Rect) {
	inner := window.Inset(1)
	if inner.Empty() {
		return Rect{}, Rect{}
	}
	row := inner.Bottom() - 1
	half := inner.W / 2
	return Rect{X: inner.X, Y: row, W: half, H: 1}, Rect{X: inner.X + half, Y: row, W: inner.W - half, H: 1}
}

// TabHits returns the clickable region of each tab title laid out from x on
// row y: every title is padded by one cell on each side and tabs are
// separated by a one-cell divider.
func TabHits(titles []string, x, y int) []Rect {
	hits := make([]Rect, len(titles))
	for i, title := range titles {
		w := len([]rune(title)) + 2
		hits[i] = Rect{X: x, Y: y, W: w, H: 1}
		x += w + 1
	}
	return hits
}
