package input

import (
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/filez/internal/logging"
	statepkg "github.com/kk-code-lab/filez/internal/state"
)

// DefaultWaitTimeout cancels an unfinished key sequence.
const DefaultWaitTimeout = 5 * time.Second

const maxLeaderKeys = 5

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingLeader
	pendingG
	pendingSearch
	pendingClick
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan  chan statepkg.Action
	state       *statepkg.AppState // Reference to current state for mode checking
	log         *logging.Logger
	waitTimeout time.Duration
	now         func() time.Time

	pending      pendingKind
	keys         []rune
	pendingSince time.Time
	clickX       int
	clickY       int
	dragging     bool
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action, log *logging.Logger, waitTimeout time.Duration) *InputHandler {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	return &InputHandler{
		actionChan:  actionChan,
		log:         log.With("input"),
		waitTimeout: waitTimeout,
		now:         time.Now,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into Actions. It returns false when the
// application should quit immediately.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventMouse:
		ih.processMouseEvent(ev)
		return true
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.emit(statepkg.ResizeAction{Width: w, Height: h})
		return true
	default:
		return true
	}
}

// Tick cancels a key sequence that has been waiting longer than the timeout.
func (ih *InputHandler) Tick(now time.Time) {
	if ih.pending == pendingNone || now.Sub(ih.pendingSince) <= ih.waitTimeout {
		return
	}
	if ih.pending != pendingClick {
		ih.log.Info("key sequence timed out", "keys", ih.pendingText())
	}
	ih.clearPending()
}

func (ih *InputHandler) emit(action statepkg.Action) {
	ih.actionChan <- action
}

func (ih *InputHandler) startPending(kind pendingKind) {
	ih.pending = kind
	ih.keys = ih.keys[:0]
	ih.pendingSince = ih.now()
	ih.emitPending()
}

func (ih *InputHandler) clearPending() {
	wasKeys := ih.pending != pendingNone && ih.pending != pendingClick
	ih.pending = pendingNone
	ih.keys = ih.keys[:0]
	if wasKeys {
		ih.emitPending()
	}
}

func (ih *InputHandler) emitPending() {
	ih.emit(statepkg.PendingKeysAction{Keys: ih.pendingText()})
}

func (ih *InputHandler) pendingText() string {
	switch ih.pending {
	case pendingLeader:
		return "<space>" + string(ih.keys)
	case pendingG:
		return "g"
	case pendingSearch:
		return "/" + string(ih.keys)
	}
	return ""
}

func (ih *InputHandler) focus() statepkg.PanelID {
	if ih.state == nil {
		return statepkg.PanelNone
	}
	return ih.state.Focus
}

func (ih *InputHandler) popupOpen() bool {
	return ih.state != nil && ih.state.Status == statepkg.StatusPopup
}

func (ih *InputHandler) explorerFocused() bool {
	f := ih.focus()
	return f == statepkg.PanelLocal || f == statepkg.PanelRemote
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.emit(statepkg.QuitAction{})
		return false
	}

	if ih.popupOpen() {
		ih.emit(statepkg.PopupKeyAction{Key: statepkg.KeyPress{Key: ev.Key(), Rune: ev.Rune()}})
		return true
	}

	if ih.pending != pendingNone && ih.pending != pendingClick {
		ih.processPending(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.ClearFocusAction{})
		return true
	case tcell.KeyCtrlZ:
		ih.emit(statepkg.SuspendAction{})
		return true
	case tcell.KeyEnter:
		if ih.focus() == statepkg.PanelNone {
			ih.emit(statepkg.FocusAction{Panel: statepkg.PanelLocal})
			return true
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModShift != 0 {
			r = unicode.ToUpper(r)
		}
		switch r {
		case 'q':
			ih.emit(statepkg.ShowExitAction{})
			return true
		case '?':
			ih.emit(statepkg.ShowHelpAction{})
			return true
		case ' ':
			ih.startPending(pendingLeader)
			return true
		}
	}

	switch ih.focus() {
	case statepkg.PanelLocal, statepkg.PanelRemote:
		ih.explorerKey(ev)
	case statepkg.PanelInfo:
		ih.infoKey(ev)
	}
	return true
}

func (ih *InputHandler) processPending(ev *tcell.EventKey) {
	switch ih.pending {
	case pendingLeader:
		if ev.Key() != tcell.KeyRune {
			ih.clearPending()
			return
		}
		ih.keys = append(ih.keys, ev.Rune())
		ih.pendingSince = ih.now()
		if len(ih.keys) == 2 && ih.keys[0] == 'w' && strings.ContainsRune("hjkl", ih.keys[1]) {
			ih.emit(statepkg.FocusMoveAction{Direction: ih.keys[1]})
			ih.clearPending()
			return
		}
		if len(ih.keys) >= maxLeaderKeys {
			ih.log.Info("unknown leader sequence", "keys", string(ih.keys))
			ih.clearPending()
			return
		}
		ih.emitPending()

	case pendingG:
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'g' {
			ih.emit(statepkg.TopAction{})
		}
		ih.clearPending()

	case pendingSearch:
		switch ev.Key() {
		case tcell.KeyRune:
			if len(ih.keys) >= statepkg.MaxSearchLength {
				ih.log.Info("search query too long", "limit", statepkg.MaxSearchLength)
				ih.clearPending()
				return
			}
			ih.keys = append(ih.keys, ev.Rune())
			ih.pendingSince = ih.now()
			ih.emitPending()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(ih.keys) > 0 {
				ih.keys = ih.keys[:len(ih.keys)-1]
			}
			ih.pendingSince = ih.now()
			ih.emitPending()
		case tcell.KeyEnter:
			query := string(ih.keys)
			ih.clearPending()
			ih.emit(statepkg.SearchAction{Query: query})
		default:
			ih.clearPending()
		}
	}
}

func (ih *InputHandler) explorerKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.emit(statepkg.SelectUpAction{})
	case tcell.KeyDown:
		ih.emit(statepkg.SelectDownAction{})
	case tcell.KeyLeft:
		ih.emit(statepkg.ScrollXAction{Delta: -1})
	case tcell.KeyRight:
		ih.emit(statepkg.ScrollXAction{Delta: 1})
	case tcell.KeyEnter:
		ih.emit(statepkg.OpenAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.emit(statepkg.ParentAction{})
	case tcell.KeyCtrlU:
		ih.emit(statepkg.HalfPageUpAction{})
	case tcell.KeyCtrlD:
		ih.emit(statepkg.HalfPageDownAction{})
	case tcell.KeyCtrlL:
		ih.emit(statepkg.ClearSearchAction{})
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModShift != 0 {
			r = unicode.ToUpper(r)
		}
		switch r {
		case 'k':
			ih.emit(statepkg.SelectUpAction{})
		case 'j':
			ih.emit(statepkg.SelectDownAction{})
		case 'g':
			ih.startPending(pendingG)
		case 'G':
			ih.emit(statepkg.BottomAction{})
		case '.':
			ih.emit(statepkg.StartDirAction{})
		case '/':
			ih.startPending(pendingSearch)
		case 'n':
			ih.emit(statepkg.NextMatchAction{})
		case 'N':
			ih.emit(statepkg.PrevMatchAction{})
		case 'U':
			ih.emit(statepkg.MarkAction{Mark: statepkg.MarkUpload})
		case 'D':
			ih.emit(statepkg.MarkAction{Mark: statepkg.MarkDelete})
		case 'C':
			ih.emit(statepkg.MarkAction{Mark: statepkg.MarkNone})
		case 'x':
			ih.emit(statepkg.ExecuteQueueAction{})
		case 'H':
			ih.emit(statepkg.ToggleHiddenAction{})
		case 's':
			ih.emit(statepkg.CycleSortAction{})
		case 'S':
			ih.emit(statepkg.ToggleReverseAction{})
		case '<':
			ih.emit(statepkg.ScrollXAction{Delta: -1})
		case '>':
			ih.emit(statepkg.ScrollXAction{Delta: 1})
		case 'r':
			ih.emit(statepkg.ReloadAction{})
		case 'a':
			ih.emit(statepkg.ShowCreateAction{})
		case 'A':
			ih.emit(statepkg.ShowCreateAction{IsDir: true})
		case 'y':
			ih.emit(statepkg.YankPathAction{})
		case 'e':
			if ih.state != nil && ih.state.EditorAvailable {
				ih.emit(statepkg.OpenEditorAction{})
			}
		}
	}
}

func (ih *InputHandler) infoKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.emit(statepkg.InfoScrollAction{Delta: -1})
	case tcell.KeyDown:
		ih.emit(statepkg.InfoScrollAction{Delta: 1})
	case tcell.KeyLeft:
		ih.emit(statepkg.InfoTabAction{Delta: -1})
	case tcell.KeyRight:
		ih.emit(statepkg.InfoTabAction{Delta: 1})
	case tcell.KeyCtrlL:
		ih.emit(statepkg.InfoJumpEndAction{})
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			ih.emit(statepkg.InfoScrollAction{Delta: -1})
		case 'j':
			ih.emit(statepkg.InfoScrollAction{Delta: 1})
		case 'h':
			ih.emit(statepkg.InfoTabAction{Delta: -1})
		case 'l':
			ih.emit(statepkg.InfoTabAction{Delta: 1})
		case 'w':
			ih.emit(statepkg.ToggleWrapAction{})
		case '<':
			ih.emit(statepkg.ScrollXAction{Delta: -1})
		case '>':
			ih.emit(statepkg.ScrollXAction{Delta: 1})
		}
	}
}

// processMouseEvent turns a left press and release on the same cell into a
// click and wheel motion into scrolling of the panel under the pointer.
func (ih *InputHandler) processMouseEvent(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	dx, dy := 0, 0
	switch {
	case buttons&tcell.WheelUp != 0:
		dy = -1
	case buttons&tcell.WheelDown != 0:
		dy = 1
	case buttons&tcell.WheelLeft != 0:
		dx = -1
	case buttons&tcell.WheelRight != 0:
		dx = 1
	}
	if dx != 0 || dy != 0 {
		if ev.Modifiers()&tcell.ModShift != 0 {
			dx, dy = dy, 0
		}
		ih.emit(statepkg.ScrollAtAction{X: x, Y: y, DX: dx, DY: dy})
		return
	}

	switch {
	case buttons&tcell.Button1 != 0:
		if ih.dragging {
			return
		}
		if ih.pending == pendingClick {
			if x != ih.clickX || y != ih.clickY {
				ih.pending = pendingNone
				ih.dragging = true
			}
			return
		}
		if ih.pending != pendingNone {
			ih.clearPending()
		}
		ih.pending = pendingClick
		ih.pendingSince = ih.now()
		ih.clickX, ih.clickY = x, y
	case buttons == tcell.ButtonNone:
		ih.dragging = false
		if ih.pending == pendingClick && x == ih.clickX && y == ih.clickY {
			ih.pending = pendingNone
			ih.emit(statepkg.ClickAction{X: x, Y: y})
		}
	}
}
