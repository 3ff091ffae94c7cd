package state

import (
	"time"
)

// PanelID names a focusable region of the screen.
type PanelID int

const (
	PanelNone PanelID = iota
	PanelLocal
	PanelRemote
	PanelInfo
	PanelStatus
)

// Title is the label drawn on the panel border.
func (p PanelID) Title() string {
	switch p {
	case PanelLocal:
		return "Local"
	case PanelRemote:
		return "Remote"
	case PanelInfo:
		return "Info"
	case PanelStatus:
		return "Status"
	}
	return ""
}

// Status is the top-level mode of the application.
type Status int

const (
	StatusNormal Status = iota
	StatusPopup
	StatusQuit
)

// AppState is the single source of truth
type AppState struct {
	Local  *ExplorerState
	Remote *ExplorerState
	Info   *InfoState

	Focus  PanelID
	Status Status
	Popup  *Popup

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
	Layout       Layout

	// Pending is the unfinished key sequence shown in the status line.
	Pending string

	// Status line
	ClipboardAvailable bool
	EditorAvailable    bool
	LastYankTime       time.Time

	// Error state
	LastError error

	// DirectoryLoader reads directories in the background when set together
	// with a dispatch hook; otherwise reads happen inline.
	DirectoryLoader DirectoryLoader
	Now             func() time.Time

	dispatchAction func(Action)
	nextLoadToken  int
}

// NewAppState builds the state for two explorers and the info panel.
func NewAppState(local, remote *ExplorerState, info *InfoState) *AppState {
	local.ID, remote.ID = PanelLocal, PanelRemote
	return &AppState{
		Local:  local,
		Remote: remote,
		Info:   info,
		Now:    time.Now,
	}
}

// SetDispatch exposes the reducer dispatch hook to other packages.
func (s *AppState) SetDispatch(fn func(Action)) {
	s.dispatchAction = fn
}

func (s *AppState) getDispatch() func(Action) {
	return s.dispatchAction
}

// Explorer returns the explorer with id, or nil for other panels.
func (s *AppState) Explorer(id PanelID) *ExplorerState {
	switch id {
	case PanelLocal:
		return s.Local
	case PanelRemote:
		return s.Remote
	}
	return nil
}

// FocusedExplorer returns the focused explorer, or nil.
func (s *AppState) FocusedExplorer() *ExplorerState {
	return s.Explorer(s.Focus)
}

// Explorers returns both explorers, local first.
func (s *AppState) Explorers() []*ExplorerState {
	return []*ExplorerState{s.Local, s.Remote}
}

// Queue lists the marked entries of both explorers.
func (s *AppState) Queue() []QueueItem {
	return append(s.Local.Queue(), s.Remote.Queue()...)
}

func (s *AppState) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *AppState) resize(width, height int) {
	s.ScreenWidth, s.ScreenHeight = width, height
	s.Layout = ComputeLayout(width, height)
	s.Local.Resize(s.Layout.Local.Body.H)
	s.Remote.Resize(s.Layout.Remote.Body.H)
	s.Info.Resize(s.Layout.Info.Body.H)
}
