package state

import (
	"github.com/gdamore/tcell/v2"
)

// PopupKind tags the variant held by a Popup.
type PopupKind int

const (
	PopupConfirm PopupKind = iota
	PopupHelp
	PopupInput
)

// KeyPress is a key delivered to a popup.
type KeyPress struct {
	Key  tcell.Key
	Rune rune
}

// ConfirmChoice is the button highlighted in a confirm popup.
type ConfirmChoice int

const (
	ChoiceOk ConfirmChoice = iota
	ChoiceNo
	ChoiceCancel
)

// ConfirmState is a yes/no question. OnAccept is emitted when Ok is chosen.
type ConfirmState struct {
	Title    string
	Message  string
	Choice   ConfirmChoice
	OnAccept Action
}

// HelpState scrolls the key binding reference.
type HelpState struct {
	Offset int
}

// InputState is a one-line text prompt.
type InputState struct {
	Prompt string
	Buffer []rune
	Cursor int
	Panel  PanelID
	Dir    string
	IsDir  bool
}

// Value is the current input text.
func (s *InputState) Value() string {
	return string(s.Buffer)
}

// Popup is a modal window drawn over the panels. Kind selects which of
// Confirm, Help or Input is set.
type Popup struct {
	Kind    PopupKind
	Confirm *ConfirmState
	Help    *HelpState
	Input   *InputState

	done   bool
	result Action
}

// NewConfirmPopup asks msg and emits onAccept when confirmed.
func NewConfirmPopup(msg string, onAccept Action) *Popup {
	return &Popup{Kind: PopupConfirm, Confirm: &ConfirmState{Message: msg, OnAccept: onAccept}}
}

// NewExitPopup asks before quitting.
func NewExitPopup() *Popup {
	return NewConfirmPopup("exit filez?", QuitAction{})
}

// NewHelpPopup shows the key bindings.
func NewHelpPopup() *Popup {
	return &Popup{Kind: PopupHelp, Help: &HelpState{}}
}

// NewInputPopup prompts for the name of a file or directory to create in dir.
func NewInputPopup(panel PanelID, dir string, isDir bool) *Popup {
	prompt := "new file"
	if isDir {
		prompt = "new directory"
	}
	return &Popup{Kind: PopupInput, Input: &InputState{Prompt: prompt, Panel: panel, Dir: dir, IsDir: isDir}}
}

// Done reports whether the popup should close.
func (p *Popup) Done() bool {
	return p.done
}

// Result is the action to dispatch once the popup closed, or nil.
func (p *Popup) Result() Action {
	return p.result
}

func (p *Popup) finish(result Action) {
	p.done = true
	p.result = result
}

// HandleKey feeds a key press to the popup.
func (p *Popup) HandleKey(k KeyPress) {
	if p.done {
		return
	}
	switch p.Kind {
	case PopupConfirm:
		p.confirmKey(k)
	case PopupHelp:
		p.helpKey(k)
	case PopupInput:
		p.inputKey(k)
	}
}

func (p *Popup) confirmKey(k KeyPress) {
	c := p.Confirm
	switch {
	case k.Key == tcell.KeyEsc:
		c.Choice = ChoiceCancel
		p.finish(nil)
	case k.Key == tcell.KeyEnter:
		p.acceptChoice()
	case k.Key == tcell.KeyRight || (k.Key == tcell.KeyRune && k.Rune == 'l'):
		c.Choice = ChoiceNo
	case k.Key == tcell.KeyLeft || (k.Key == tcell.KeyRune && k.Rune == 'h'):
		c.Choice = ChoiceOk
	case k.Key == tcell.KeyTab:
		if c.Choice == ChoiceOk {
			c.Choice = ChoiceNo
		} else {
			c.Choice = ChoiceOk
		}
	}
}

func (p *Popup) acceptChoice() {
	if p.Confirm.Choice == ChoiceOk {
		p.finish(p.Confirm.OnAccept)
		return
	}
	p.finish(nil)
}

func (p *Popup) helpKey(k KeyPress) {
	h := p.Help
	switch {
	case k.Key == tcell.KeyEsc:
		p.finish(nil)
	case k.Key == tcell.KeyRune:
		switch k.Rune {
		case 'q', '?':
			p.finish(nil)
		case 'j':
			h.Offset = min(h.Offset+1, max(len(HelpLines())-1, 0))
		case 'k':
			h.Offset = max(h.Offset-1, 0)
		}
	case k.Key == tcell.KeyDown:
		h.Offset = min(h.Offset+1, max(len(HelpLines())-1, 0))
	case k.Key == tcell.KeyUp:
		h.Offset = max(h.Offset-1, 0)
	}
}

func (p *Popup) inputKey(k KeyPress) {
	in := p.Input
	switch k.Key {
	case tcell.KeyEsc:
		p.finish(nil)
	case tcell.KeyEnter:
		if len(in.Buffer) == 0 {
			p.finish(nil)
			return
		}
		p.finish(CreateEntryAction{Panel: in.Panel, Dir: in.Dir, Name: in.Value(), IsDir: in.IsDir})
	case tcell.KeyLeft:
		in.Cursor = max(in.Cursor-1, 0)
	case tcell.KeyRight:
		in.Cursor = min(in.Cursor+1, len(in.Buffer))
	case tcell.KeyHome, tcell.KeyCtrlA:
		in.Cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		in.Cursor = len(in.Buffer)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if in.Cursor > 0 {
			in.Buffer = append(in.Buffer[:in.Cursor-1], in.Buffer[in.Cursor:]...)
			in.Cursor--
		}
	case tcell.KeyDelete:
		if in.Cursor < len(in.Buffer) {
			in.Buffer = append(in.Buffer[:in.Cursor], in.Buffer[in.Cursor+1:]...)
		}
	case tcell.KeyRune:
		in.Buffer = append(in.Buffer[:in.Cursor], append([]rune{k.Rune}, in.Buffer[in.Cursor:]...)...)
		in.Cursor++
	}
}

// HandleClick handles a left click at (x, y) on a screen of the given size.
func (p *Popup) HandleClick(x, y, screenW, screenH int) {
	if p.done {
		return
	}
	window := PopupRect(p.Kind, screenW, screenH)
	if p.Kind == PopupConfirm {
		ok, no := ConfirmButtons(window)
		switch {
		case ok.Contains(x, y):
			p.Confirm.Choice = ChoiceOk
			p.acceptChoice()
			return
		case no.Contains(x, y):
			p.Confirm.Choice = ChoiceNo
			p.acceptChoice()
			return
		}
	}
	if !window.Contains(x, y) {
		if p.Kind == PopupConfirm {
			p.Confirm.Choice = ChoiceCancel
		}
		p.finish(nil)
	}
}
