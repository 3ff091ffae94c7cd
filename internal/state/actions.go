package state

import (
	"github.com/kk-code-lab/filez/internal/logging"
)

// Action is the base interface for all state mutations
type Action interface{}

// ===== EXPLORER ACTIONS =====
// These apply to the focused explorer.

type SelectUpAction struct{}
type SelectDownAction struct{}
type HalfPageUpAction struct{}
type HalfPageDownAction struct{}
type TopAction struct{}    // gg
type BottomAction struct{} // G
type OpenAction struct{}
type ParentAction struct{}
type StartDirAction struct{}
type ReloadAction struct{}
type ToggleHiddenAction struct{}
type CycleSortAction struct{}
type ToggleReverseAction struct{}

type MarkAction struct {
	Mark Mark
}

// ExecuteQueueAction reports the queued tasks. Nothing is transferred.
type ExecuteQueueAction struct{}

// ===== SEARCH ACTIONS =====

type SearchAction struct {
	Query string
}
type ClearSearchAction struct{}
type NextMatchAction struct{}
type PrevMatchAction struct{}

// ===== SCROLL ACTIONS =====

// ScrollXAction shifts the focused panel's columns.
type ScrollXAction struct {
	Delta int
}

// ScrollAtAction scrolls the panel under the pointer.
type ScrollAtAction struct {
	X, Y   int
	DX, DY int
}

// ===== INFO ACTIONS =====

type InfoTabAction struct {
	Delta int
}
type InfoScrollAction struct {
	Delta int
}
type InfoJumpEndAction struct{}
type ToggleWrapAction struct{}

// ===== FOCUS ACTIONS =====

type FocusAction struct {
	Panel PanelID
}

// FocusMoveAction moves focus towards Direction, one of 'h', 'j', 'k', 'l'.
type FocusMoveAction struct {
	Direction rune
}
type ClearFocusAction struct{}

// ClickAction is a completed left click.
type ClickAction struct {
	X, Y int
}

// ===== POPUP ACTIONS =====

type ShowExitAction struct{}
type ShowHelpAction struct{}
type ShowCreateAction struct {
	IsDir bool
}
type PopupKeyAction struct {
	Key KeyPress
}

// CreateEntryAction creates Name in Dir through the panel's host.
type CreateEntryAction struct {
	Panel PanelID
	Dir   string
	Name  string
	IsDir bool
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// PendingKeysAction shows an unfinished key sequence in the status line.
type PendingKeysAction struct {
	Keys string
}

// LogRecordsAction delivers records drained from the logger.
type LogRecordsAction struct {
	Records []logging.Record
	Dropped uint64
}

// DirectoryChangedAction reloads panels showing Path.
type DirectoryChangedAction struct {
	Path string
}

type DirectoryLoadResultAction DirectoryLoadResult

type YankPathAction struct{}
type OpenEditorAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
