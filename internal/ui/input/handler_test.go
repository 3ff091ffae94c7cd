package input

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/filez/internal/state"
)

func newTestHandler(focus statepkg.PanelID) (*InputHandler, chan statepkg.Action, *statepkg.AppState) {
	actionChan := make(chan statepkg.Action, 32)
	handler := NewInputHandler(actionChan, nil, time.Second)
	state := &statepkg.AppState{Focus: focus}
	handler.SetState(state)
	return handler, actionChan, state
}

func drain(ch chan statepkg.Action) []statepkg.Action {
	var out []statepkg.Action
	for {
		select {
		case a := <-ch:
			out = append(out, a)
		default:
			return out
		}
	}
}

// withoutPending drops status-line updates.
func withoutPending(actions []statepkg.Action) []statepkg.Action {
	var out []statepkg.Action
	for _, a := range actions {
		if _, ok := a.(statepkg.PendingKeysAction); !ok {
			out = append(out, a)
		}
	}
	return out
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestExplorerKeyBindings(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{runeKey('j'), statepkg.SelectDownAction{}},
		{specialKey(tcell.KeyUp), statepkg.SelectUpAction{}},
		{runeKey('G'), statepkg.BottomAction{}},
		{specialKey(tcell.KeyEnter), statepkg.OpenAction{}},
		{specialKey(tcell.KeyBackspace2), statepkg.ParentAction{}},
		{specialKey(tcell.KeyCtrlD), statepkg.HalfPageDownAction{}},
		{specialKey(tcell.KeyCtrlU), statepkg.HalfPageUpAction{}},
		{specialKey(tcell.KeyCtrlL), statepkg.ClearSearchAction{}},
		{runeKey('.'), statepkg.StartDirAction{}},
		{runeKey('U'), statepkg.MarkAction{Mark: statepkg.MarkUpload}},
		{runeKey('D'), statepkg.MarkAction{Mark: statepkg.MarkDelete}},
		{runeKey('C'), statepkg.MarkAction{Mark: statepkg.MarkNone}},
		{runeKey('x'), statepkg.ExecuteQueueAction{}},
		{runeKey('n'), statepkg.NextMatchAction{}},
		{runeKey('N'), statepkg.PrevMatchAction{}},
		{runeKey('H'), statepkg.ToggleHiddenAction{}},
		{runeKey('s'), statepkg.CycleSortAction{}},
		{runeKey('S'), statepkg.ToggleReverseAction{}},
		{runeKey('>'), statepkg.ScrollXAction{Delta: 1}},
		{runeKey('a'), statepkg.ShowCreateAction{}},
		{runeKey('A'), statepkg.ShowCreateAction{IsDir: true}},
		{runeKey('y'), statepkg.YankPathAction{}},
		{runeKey('q'), statepkg.ShowExitAction{}},
		{runeKey('?'), statepkg.ShowHelpAction{}},
		{specialKey(tcell.KeyEscape), statepkg.ClearFocusAction{}},
	}

	for _, tt := range tests {
		handler, ch, _ := newTestHandler(statepkg.PanelRemote)
		handler.ProcessEvent(tt.ev)
		got := drain(ch)
		if len(got) != 1 || !reflect.DeepEqual(got[0], tt.want) {
			t.Fatalf("%s: got %#v, want %#v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestInfoKeyBindings(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{runeKey('j'), statepkg.InfoScrollAction{Delta: 1}},
		{runeKey('k'), statepkg.InfoScrollAction{Delta: -1}},
		{runeKey('l'), statepkg.InfoTabAction{Delta: 1}},
		{runeKey('h'), statepkg.InfoTabAction{Delta: -1}},
		{runeKey('w'), statepkg.ToggleWrapAction{}},
		{specialKey(tcell.KeyCtrlL), statepkg.InfoJumpEndAction{}},
	}

	for _, tt := range tests {
		handler, ch, _ := newTestHandler(statepkg.PanelInfo)
		handler.ProcessEvent(tt.ev)
		got := drain(ch)
		if len(got) != 1 || !reflect.DeepEqual(got[0], tt.want) {
			t.Fatalf("%s: got %#v, want %#v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestEnterWithoutFocusFocusesLocal(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelNone)
	handler.ProcessEvent(specialKey(tcell.KeyEnter))

	got := drain(ch)
	if len(got) != 1 || got[0] != (statepkg.FocusAction{Panel: statepkg.PanelLocal}) {
		t.Fatalf("got %#v", got)
	}

	handler.ProcessEvent(runeKey('j'))
	if got := drain(ch); len(got) != 0 {
		t.Fatalf("unfocused j should do nothing, got %#v", got)
	}
}

func TestCtrlCQuits(t *testing.T) {
	handler, ch, state := newTestHandler(statepkg.PanelLocal)
	state.Status = statepkg.StatusPopup

	if handler.ProcessEvent(specialKey(tcell.KeyCtrlC)) {
		t.Fatalf("Ctrl+C should stop the loop")
	}
	if got := drain(ch); len(got) != 1 || got[0] != (statepkg.QuitAction{}) {
		t.Fatalf("got %#v", got)
	}
}

func TestPopupReceivesAllKeys(t *testing.T) {
	handler, ch, state := newTestHandler(statepkg.PanelLocal)
	state.Status = statepkg.StatusPopup

	handler.ProcessEvent(runeKey('q'))
	got := drain(ch)
	want := statepkg.PopupKeyAction{Key: statepkg.KeyPress{Key: tcell.KeyRune, Rune: 'q'}}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %#v", got)
	}
}

func TestLeaderMovesFocus(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)

	handler.ProcessEvent(runeKey(' '))
	handler.ProcessEvent(runeKey('w'))
	actions := drain(ch)
	if p, ok := actions[len(actions)-1].(statepkg.PendingKeysAction); !ok || p.Keys != "<space>w" {
		t.Fatalf("pending keys not shown: %#v", actions)
	}

	handler.ProcessEvent(runeKey('l'))
	got := drain(ch)
	if len(got) != 2 || got[0] != (statepkg.FocusMoveAction{Direction: 'l'}) || got[1] != (statepkg.PendingKeysAction{}) {
		t.Fatalf("got %#v", got)
	}

	handler.ProcessEvent(runeKey('j'))
	if got := withoutPending(drain(ch)); len(got) != 1 || got[0] != (statepkg.SelectDownAction{}) {
		t.Fatalf("sequence should be finished, got %#v", got)
	}
}

func TestLeaderGivesUpAfterFiveKeys(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)

	handler.ProcessEvent(runeKey(' '))
	for _, r := range "zzzzz" {
		handler.ProcessEvent(runeKey(r))
	}
	if got := withoutPending(drain(ch)); len(got) != 0 {
		t.Fatalf("unknown sequence emitted %#v", got)
	}
	handler.ProcessEvent(runeKey('k'))
	if got := withoutPending(drain(ch)); len(got) != 1 || got[0] != (statepkg.SelectUpAction{}) {
		t.Fatalf("got %#v", got)
	}
}

func TestGGJumpsToTop(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)

	handler.ProcessEvent(runeKey('g'))
	handler.ProcessEvent(runeKey('g'))
	if got := withoutPending(drain(ch)); len(got) != 1 || got[0] != (statepkg.TopAction{}) {
		t.Fatalf("got %#v", got)
	}

	handler.ProcessEvent(runeKey('g'))
	handler.ProcessEvent(runeKey('j'))
	if got := withoutPending(drain(ch)); len(got) != 0 {
		t.Fatalf("g followed by another key is swallowed, got %#v", got)
	}
}

func TestSearchInput(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)

	handler.ProcessEvent(runeKey('/'))
	for _, r := range "docx" {
		handler.ProcessEvent(runeKey(r))
	}
	handler.ProcessEvent(specialKey(tcell.KeyBackspace2))
	actions := drain(ch)
	if p := actions[len(actions)-1].(statepkg.PendingKeysAction); p.Keys != "/doc" {
		t.Fatalf("pending = %q", p.Keys)
	}

	handler.ProcessEvent(specialKey(tcell.KeyEnter))
	got := withoutPending(drain(ch))
	if len(got) != 1 || got[0] != (statepkg.SearchAction{Query: "doc"}) {
		t.Fatalf("got %#v", got)
	}
}

func TestSearchInputLimit(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)

	handler.ProcessEvent(runeKey('/'))
	for i := 0; i < statepkg.MaxSearchLength; i++ {
		handler.ProcessEvent(runeKey('a'))
	}
	handler.ProcessEvent(specialKey(tcell.KeyEnter))
	got := withoutPending(drain(ch))
	if len(got) != 1 || len(got[0].(statepkg.SearchAction).Query) != statepkg.MaxSearchLength {
		t.Fatalf("a query of the maximum length should be accepted, got %#v", got)
	}

	handler.ProcessEvent(runeKey('/'))
	for i := 0; i <= statepkg.MaxSearchLength; i++ {
		handler.ProcessEvent(runeKey('a'))
	}
	handler.ProcessEvent(specialKey(tcell.KeyEnter))
	got = withoutPending(drain(ch))
	if len(got) != 1 || got[0] != (statepkg.OpenAction{}) {
		t.Fatalf("overlong query should abort the search, got %#v", got)
	}
}

func TestPendingSequenceTimesOut(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return now }

	handler.ProcessEvent(runeKey(' '))
	handler.Tick(now.Add(500 * time.Millisecond))
	if handler.pending != pendingLeader {
		t.Fatalf("sequence cancelled too early")
	}
	handler.Tick(now.Add(2 * time.Second))
	if handler.pending != pendingNone {
		t.Fatalf("sequence should time out")
	}
	actions := drain(ch)
	if actions[len(actions)-1] != (statepkg.PendingKeysAction{}) {
		t.Fatalf("status line should be cleared, got %#v", actions)
	}
}

func TestMouseClickNeedsPressAndRelease(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)

	handler.ProcessEvent(tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone))
	if got := drain(ch); len(got) != 0 {
		t.Fatalf("press alone should not click, got %#v", got)
	}
	handler.ProcessEvent(tcell.NewEventMouse(5, 7, tcell.ButtonNone, tcell.ModNone))
	if got := drain(ch); len(got) != 1 || got[0] != (statepkg.ClickAction{X: 5, Y: 7}) {
		t.Fatalf("got %#v", got)
	}
}

func TestMouseDragCancelsClick(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelLocal)

	handler.ProcessEvent(tcell.NewEventMouse(5, 7, tcell.Button1, tcell.ModNone))
	handler.ProcessEvent(tcell.NewEventMouse(6, 7, tcell.Button1, tcell.ModNone))
	handler.ProcessEvent(tcell.NewEventMouse(6, 7, tcell.ButtonNone, tcell.ModNone))
	if got := drain(ch); len(got) != 0 {
		t.Fatalf("drag should not click, got %#v", got)
	}
}

func TestMouseWheel(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelNone)

	handler.ProcessEvent(tcell.NewEventMouse(3, 4, tcell.WheelDown, tcell.ModNone))
	handler.ProcessEvent(tcell.NewEventMouse(3, 4, tcell.WheelUp, tcell.ModShift))
	handler.ProcessEvent(tcell.NewEventMouse(3, 4, tcell.WheelRight, tcell.ModNone))
	got := drain(ch)
	want := []statepkg.Action{
		statepkg.ScrollAtAction{X: 3, Y: 4, DY: 1},
		statepkg.ScrollAtAction{X: 3, Y: 4, DX: -1},
		statepkg.ScrollAtAction{X: 3, Y: 4, DX: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestResizeEmitsAction(t *testing.T) {
	handler, ch, _ := newTestHandler(statepkg.PanelNone)
	handler.ProcessEvent(tcell.NewEventResize(80, 24))
	if got := drain(ch); len(got) != 1 || got[0] != (statepkg.ResizeAction{Width: 80, Height: 24}) {
		t.Fatalf("got %#v", got)
	}
}
