package state

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/filez/internal/logging"
)

type directoryPostLoadFunc func(*StateReducer, *AppState, *ExplorerState) error

// StateReducer applies actions to the application state.
type StateReducer struct {
	log                *logging.Logger
	directoryCallbacks map[int][]directoryPostLoadFunc
}

// NewStateReducer creates a new reducer
func NewStateReducer(log *logging.Logger) *StateReducer {
	return &StateReducer{
		log:                log.With("state"),
		directoryCallbacks: make(map[int][]directoryPostLoadFunc),
	}
}

// invalidator is implemented by hosts that cache listings.
type invalidator interface {
	Invalidate(dir string)
}

// Reduce applies action to state. State is mutated in place and returned.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== ALWAYS HANDLED =====

	case QuitAction:
		state.Status = StatusQuit
		return state, nil

	case ResizeAction:
		state.resize(a.Width, a.Height)
		return state, nil

	case PendingKeysAction:
		state.Pending = a.Keys
		return state, nil

	case LogRecordsAction:
		state.Info.AppendRecords(a.Records)
		state.Info.Dropped = a.Dropped
		return state, nil

	case DirectoryLoadResultAction:
		return state, r.applyLoadResult(state, DirectoryLoadResult(a))

	case DirectoryChangedAction:
		return state, r.refreshPath(state, a.Path)

	case CreateEntryAction:
		return state, r.createEntry(state, a)
	}

	if state.Status == StatusPopup {
		return r.reducePopup(state, action)
	}

	switch a := action.(type) {

	// ===== POPUPS =====

	case ShowExitAction:
		r.openPopup(state, NewExitPopup())
		return state, nil

	case ShowHelpAction:
		r.openPopup(state, NewHelpPopup())
		return state, nil

	case ShowCreateAction:
		e := state.FocusedExplorer()
		if e == nil {
			return state, nil
		}
		r.openPopup(state, NewInputPopup(e.ID, e.Dir, a.IsDir))
		return state, nil

	// ===== FOCUS =====

	case FocusAction:
		state.Focus = a.Panel
		return state, nil

	case FocusMoveAction:
		state.Focus = moveFocus(state.Focus, a.Direction, !state.Layout.Info.Outer.Empty())
		return state, nil

	case ClearFocusAction:
		state.Focus = PanelNone
		return state, nil

	// ===== MOUSE =====

	case ClickAction:
		r.click(state, a.X, a.Y)
		return state, nil

	case ScrollAtAction:
		r.scrollAt(state, a)
		return state, nil

	case ScrollXAction:
		if state.Focus == PanelInfo {
			state.Info.ScrollX(a.Delta, state.Layout.Info.Body.W)
			return state, nil
		}
		if e := state.FocusedExplorer(); e != nil {
			r.scrollExplorerX(state, e, a.Delta)
		}
		return state, nil

	// ===== INFO =====

	case InfoTabAction:
		if a.Delta > 0 {
			state.Info.NextTab()
		} else if a.Delta < 0 {
			state.Info.PrevTab()
		}
		return state, nil

	case InfoScrollAction:
		state.Info.Scroll(-a.Delta)
		return state, nil

	case InfoJumpEndAction:
		state.Info.JumpToEnd()
		return state, nil

	case ToggleWrapAction:
		state.Info.ToggleWrap()
		return state, nil
	}

	e := state.FocusedExplorer()
	if e == nil {
		return state, nil
	}
	return r.reduceExplorer(state, e, action)
}

func (r *StateReducer) reduceExplorer(state *AppState, e *ExplorerState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case SelectUpAction:
		e.List.SelectUp()
	case SelectDownAction:
		e.List.SelectDown()
	case HalfPageUpAction:
		e.List.HalfPageUp()
	case HalfPageDownAction:
		e.List.HalfPageDown()
	case TopAction:
		e.List.Top()
	case BottomAction:
		e.List.Bottom()

	case OpenAction:
		row, ok := e.Selected()
		if !ok || !row.Entry.Enterable() {
			return state, nil
		}
		return state, r.changeDirectory(state, e, row.Entry.FullPath, nil)

	case ParentAction:
		parent := e.ParentDir()
		if parent == e.Dir {
			return state, nil
		}
		child := e.Dir
		return state, r.changeDirectory(state, e, parent, func(_ *StateReducer, _ *AppState, e *ExplorerState) error {
			e.selectPath(child)
			return nil
		})

	case StartDirAction:
		return state, r.changeDirectory(state, e, e.StartDir, func(_ *StateReducer, _ *AppState, e *ExplorerState) error {
			e.List.SelectDown()
			return nil
		})

	case ReloadAction:
		if inv, ok := e.Host.(invalidator); ok {
			inv.Invalidate(e.Dir)
		}
		return state, r.changeDirectory(state, e, e.Dir, nil)

	// ===== VIEW =====

	case ToggleHiddenAction:
		e.ToggleHidden()
	case CycleSortAction:
		e.CycleSort()
		r.log.Debug("sort changed", "panel", e.ID.Title(), "sort", e.Sort.String())
	case ToggleReverseAction:
		e.ToggleReverse()

	// ===== MARKS =====

	case MarkAction:
		if e.SetMark(a.Mark) {
			state.Info.SetQueue(state.Queue())
		}

	case ExecuteQueueAction:
		queue := state.Queue()
		r.log.Info("Executing tasks...", "count", len(queue))
		for _, item := range queue {
			r.log.Info("task", "action", item.Mark.String(), "panel", item.Panel.Title(), "path", item.Path)
		}

	// ===== SEARCH =====

	case SearchAction:
		e.ApplySearch(a.Query)
		if row, ok := e.Selected(); ok && !row.Matched() {
			e.NextMatch()
		}
		r.log.Debug("search", "panel", e.ID.Title(), "query", a.Query)
	case ClearSearchAction:
		e.ClearSearch()
	case NextMatchAction:
		e.NextMatch()
	case PrevMatchAction:
		e.PrevMatch()
	}
	return state, nil
}

func (r *StateReducer) reducePopup(state *AppState, action Action) (*AppState, error) {
	p := state.Popup
	if p == nil {
		r.log.Error("popup status without popup")
		state.Status = StatusNormal
		return state, nil
	}

	switch a := action.(type) {
	case PopupKeyAction:
		p.HandleKey(a.Key)
	case ClickAction:
		p.HandleClick(a.X, a.Y, state.ScreenWidth, state.ScreenHeight)
	case ScrollAtAction:
		if p.Kind == PopupHelp {
			p.Help.Offset = max(min(p.Help.Offset+a.DY, len(HelpLines())-1), 0)
		}
	default:
		return state, nil
	}

	if !p.Done() {
		return state, nil
	}
	state.Popup = nil
	state.Status = StatusNormal
	if result := p.Result(); result != nil {
		return r.Reduce(state, result)
	}
	return state, nil
}

func (r *StateReducer) openPopup(state *AppState, p *Popup) {
	state.Popup = p
	state.Status = StatusPopup
}

// moveFocus follows the screen arrangement: explorers side by side above the
// info panel.
func moveFocus(current PanelID, direction rune, infoVisible bool) PanelID {
	switch direction {
	case 'h':
		if current == PanelRemote || current == PanelNone || current == PanelStatus {
			return PanelLocal
		}
	case 'l':
		if current == PanelLocal || current == PanelNone || current == PanelStatus {
			return PanelRemote
		}
	case 'j':
		if infoVisible && current != PanelInfo {
			return PanelInfo
		}
	case 'k':
		if current != PanelLocal && current != PanelRemote {
			return PanelLocal
		}
	}
	return current
}

func (r *StateReducer) click(state *AppState, x, y int) {
	id := state.Layout.PanelAt(x, y)
	if id == PanelNone {
		return
	}
	state.Focus = id
	panel := state.Layout.Panel(id)

	if id == PanelInfo {
		hits := TabHits(InfoTabTitles, panel.Header.X, panel.Header.Y)
		for i, hit := range hits {
			if hit.Contains(x, y) {
				state.Info.SelectTab(InfoTab(i))
				return
			}
		}
		return
	}

	if e := state.Explorer(id); e != nil && panel.Body.Contains(x, y) {
		e.List.SelectRow(y - panel.Body.Y)
	}
}

func (r *StateReducer) scrollAt(state *AppState, a ScrollAtAction) {
	id := state.Layout.PanelAt(a.X, a.Y)
	switch id {
	case PanelInfo:
		state.Info.Scroll(-a.DY)
		state.Info.ScrollX(a.DX, state.Layout.Info.Body.W)
	case PanelLocal, PanelRemote:
		e := state.Explorer(id)
		e.List.Scroll(a.DY)
		if a.DX != 0 {
			r.scrollExplorerX(state, e, a.DX)
		}
	}
}

func (r *StateReducer) scrollExplorerX(state *AppState, e *ExplorerState, delta int) {
	content := TableWidth(ColumnWidths(e.Rows, state.now()))
	e.ScrollX(delta, content, state.Layout.Panel(e.ID).Body.W)
}

// changeDirectory lists dir into e, inline or through the loader. post runs
// once the listing is in place.
func (r *StateReducer) changeDirectory(state *AppState, e *ExplorerState, dir string, post directoryPostLoadFunc) error {
	dir = filepath.Clean(dir)

	loader := state.DirectoryLoader
	dispatch := state.getDispatch()
	if loader == nil || dispatch == nil {
		entries, err := e.Host.ReadDir(context.Background(), dir)
		if err != nil {
			return r.loadFailed(e, dir, err)
		}
		e.SetEntries(dir, entries)
		if post != nil {
			return post(r, state, e)
		}
		return nil
	}

	if e.loadToken != 0 {
		loader.Cancel(e.loadToken)
		r.dropDirectoryCallbacks(e.loadToken)
	}

	state.nextLoadToken++
	token := state.nextLoadToken
	e.loadToken = token
	e.Loading = true
	if post != nil {
		r.directoryCallbacks[token] = append(r.directoryCallbacks[token], post)
	}

	loader.Start(DirectoryLoadRequest{
		Token: token,
		Panel: e.ID,
		Path:  dir,
		Host:  e.Host,
		Callback: func(result DirectoryLoadResult) {
			dispatch(DirectoryLoadResultAction(result))
		},
	})
	return nil
}

func (r *StateReducer) dropDirectoryCallbacks(token int) {
	if token == 0 {
		return
	}
	delete(r.directoryCallbacks, token)
}

func (r *StateReducer) applyLoadResult(state *AppState, result DirectoryLoadResult) error {
	e := state.Explorer(result.Panel)
	if e == nil || result.Token != e.loadToken {
		return nil
	}
	e.loadToken = 0
	e.Loading = false

	callbacks := r.directoryCallbacks[result.Token]
	delete(r.directoryCallbacks, result.Token)

	if result.Err != nil {
		return r.loadFailed(e, result.Path, result.Err)
	}
	e.SetEntries(result.Path, result.Entries)
	for _, cb := range callbacks {
		if err := cb(r, state, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *StateReducer) loadFailed(e *ExplorerState, dir string, err error) error {
	e.Loading = false
	e.LastError = err
	r.log.ErrorErr("cannot list directory", err, "panel", e.ID.Title(), "path", dir)
	return fmt.Errorf("list %s: %w", dir, err)
}

// refreshPath reloads every panel showing dir.
func (r *StateReducer) refreshPath(state *AppState, dir string) error {
	var errs []error
	for _, e := range state.Explorers() {
		if e.Dir != dir {
			continue
		}
		if inv, ok := e.Host.(invalidator); ok {
			inv.Invalidate(dir)
		}
		if err := r.changeDirectory(state, e, dir, nil); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *StateReducer) createEntry(state *AppState, a CreateEntryAction) error {
	e := state.Explorer(a.Panel)
	if e == nil {
		return nil
	}
	name := strings.TrimSpace(a.Name)
	op := "create file"
	if a.IsDir {
		op = "create directory"
	}
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		err := fmt.Errorf("%s: invalid name %q", op, a.Name)
		r.recordResult(state, op, filepath.Join(a.Dir, a.Name), err)
		return err
	}

	ctx := context.Background()
	path := filepath.Join(a.Dir, name)
	exists, err := e.Host.Exists(ctx, path)
	if err == nil && exists {
		err = fmt.Errorf("%s: %s already exists", op, path)
	}
	if err == nil {
		if a.IsDir {
			err = e.Host.CreateDir(ctx, path)
		} else {
			err = e.Host.CreateFile(ctx, path)
		}
	}
	r.recordResult(state, op, path, err)
	if err != nil {
		return err
	}

	if e.Dir != a.Dir {
		return nil
	}
	return r.changeDirectory(state, e, a.Dir, func(_ *StateReducer, _ *AppState, e *ExplorerState) error {
		e.selectPath(path)
		return nil
	})
}

func (r *StateReducer) recordResult(state *AppState, op, path string, err error) {
	state.Info.AddResult(OpResult{Time: state.now(), Op: op, Path: path, Err: err})
	if err != nil {
		r.log.ErrorErr(op+" failed", err, "path", path)
		return
	}
	r.log.Info(op, "path", path)
}

// LoadInitial lists the start directories of both explorers inline.
func (r *StateReducer) LoadInitial(state *AppState) error {
	for _, e := range state.Explorers() {
		entries, err := e.Host.ReadDir(context.Background(), e.Dir)
		if err != nil {
			return r.loadFailed(e, e.Dir, err)
		}
		e.SetEntries(e.Dir, entries)
	}
	state.Info.SetQueue(state.Queue())
	return nil
}
