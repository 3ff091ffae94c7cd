package state

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	fsutil "github.com/kk-code-lab/filez/internal/fs"
)

// SortKey selects the explorer ordering.
type SortKey int

const (
	SortName SortKey = iota
	SortSize
	SortModified
	SortType
	sortKeyCount
)

var sortKeyNames = [sortKeyCount]string{"name", "size", "modified", "type"}

func (k SortKey) String() string {
	if k < 0 || k >= sortKeyCount {
		return "name"
	}
	return sortKeyNames[k]
}

// ParseSortKey maps a config value to a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	for i, name := range sortKeyNames {
		if strings.EqualFold(s, name) {
			return SortKey(i), nil
		}
	}
	return SortName, fmt.Errorf("unknown sort key %q", s)
}

// Next cycles name → size → modified → type → name.
func (k SortKey) Next() SortKey {
	return (k + 1) % sortKeyCount
}

// Mark flags an entry for a queued transfer task.
type Mark int

const (
	MarkNone Mark = iota
	MarkUpload
	MarkDelete
)

func (m Mark) String() string {
	switch m {
	case MarkUpload:
		return "Upload"
	case MarkDelete:
		return "Delete"
	}
	return ""
}

// Row is one explorer table row.
type Row struct {
	Entry fsutil.Entry
	Mark  Mark
	// MatchStart and MatchEnd are the byte range of the search hit in
	// Entry.Name.
	MatchStart int
	MatchEnd   int
}

// Matched reports whether the row matches the active search.
func (r Row) Matched() bool {
	return r.MatchEnd > r.MatchStart
}

// QueueItem is a marked entry waiting for its task.
type QueueItem struct {
	Panel PanelID
	Path  string
	Mark  Mark
}

// MaxSearchLength caps the search query typed after '/'.
const MaxSearchLength = 20

// ExplorerState is one directory panel.
type ExplorerState struct {
	ID          PanelID
	Host        fsutil.Host
	StartDir    string
	Dir         string
	Rows        []Row
	List        ListView
	OffsetX     int
	ShowHidden  bool
	Sort        SortKey
	SortReverse bool
	Search      string
	Loading     bool
	LastError   error

	entries   []fsutil.Entry
	marks     map[string]Mark
	loadToken int
}

// NewExplorerState creates a panel that will list dir through host.
func NewExplorerState(host fsutil.Host, dir string) *ExplorerState {
	return &ExplorerState{
		Host:     host,
		StartDir: dir,
		Dir:      dir,
		marks:    make(map[string]Mark),
	}
}

// SetEntries replaces the listing. Reloading the same directory keeps the
// selected entry and search; a new directory starts at the top.
func (e *ExplorerState) SetEntries(dir string, entries []fsutil.Entry) {
	keep := ""
	if dir == e.Dir {
		if row, ok := e.Selected(); ok {
			keep = row.Entry.FullPath
		}
	} else {
		e.List.Top()
		e.OffsetX = 0
		e.Search = ""
	}
	e.Dir = dir
	e.entries = entries
	e.LastError = nil
	e.rebuild(keep)
}

// rebuild filters, sorts and annotates entries into Rows, then reselects
// keepPath if it is still listed.
func (e *ExplorerState) rebuild(keepPath string) {
	rows := make([]Row, 0, len(e.entries))
	var parent []Row
	for _, entry := range e.entries {
		if !e.ShowHidden && entry.IsHidden() {
			continue
		}
		row := Row{Entry: entry, Mark: e.marks[entry.FullPath]}
		row.MatchStart, row.MatchEnd = matchRange(entry.Name, e.Search)
		if entry.Kind == fsutil.KindDotDot {
			parent = append(parent, row)
			continue
		}
		rows = append(rows, row)
	}

	less := e.lessFunc()
	sort.SliceStable(rows, func(i, j int) bool {
		if e.SortReverse {
			return less(rows[j].Entry, rows[i].Entry)
		}
		return less(rows[i].Entry, rows[j].Entry)
	})
	e.Rows = append(parent, rows...)

	e.List.Resize(len(e.Rows), e.List.Height)
	if keepPath != "" {
		e.selectPath(keepPath)
	}
}

// lessFunc orders entries by kind first, then by the sort key.
func (e *ExplorerState) lessFunc() func(a, b fsutil.Entry) bool {
	return func(a, b fsutil.Entry) bool {
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		switch e.Sort {
		case SortSize:
			if a.Size != b.Size {
				return a.Size < b.Size
			}
		case SortModified:
			if !a.Modified.Equal(b.Modified) {
				return a.Modified.Before(b.Modified)
			}
		case SortType:
			if a.Ext != b.Ext {
				return a.Ext < b.Ext
			}
		}
		return a.Name < b.Name
	}
}

func matchRange(name, query string) (int, int) {
	if query == "" {
		return 0, 0
	}
	idx := strings.Index(name, query)
	if idx < 0 {
		return 0, 0
	}
	return idx, idx + len(query)
}

// selectPath selects the row for path if it is listed.
func (e *ExplorerState) selectPath(path string) bool {
	for i, row := range e.Rows {
		if row.Entry.FullPath == path {
			e.List.SelectIndex(i)
			return true
		}
	}
	return false
}

// Resize sets the number of visible rows.
func (e *ExplorerState) Resize(height int) {
	e.List.Resize(len(e.Rows), height)
}

// Selected returns the selected row.
func (e *ExplorerState) Selected() (Row, bool) {
	idx := e.List.Selected()
	if idx < 0 || idx >= len(e.Rows) {
		return Row{}, false
	}
	return e.Rows[idx], true
}

// SetMark marks the selected entry. The ".." row cannot be marked.
func (e *ExplorerState) SetMark(mark Mark) bool {
	idx := e.List.Selected()
	if idx < 0 || idx >= len(e.Rows) || e.Rows[idx].Entry.Kind == fsutil.KindDotDot {
		return false
	}
	path := e.Rows[idx].Entry.FullPath
	if mark == MarkNone {
		delete(e.marks, path)
	} else {
		e.marks[path] = mark
	}
	e.Rows[idx].Mark = mark
	return true
}

// Queue lists marked entries sorted by path.
func (e *ExplorerState) Queue() []QueueItem {
	items := make([]QueueItem, 0, len(e.marks))
	for path, mark := range e.marks {
		items = append(items, QueueItem{Panel: e.ID, Path: path, Mark: mark})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items
}

// ApplySearch highlights entries whose name contains query.
func (e *ExplorerState) ApplySearch(query string) {
	e.Search = query
	for i := range e.Rows {
		e.Rows[i].MatchStart, e.Rows[i].MatchEnd = matchRange(e.Rows[i].Entry.Name, query)
	}
}

// ClearSearch removes search highlighting.
func (e *ExplorerState) ClearSearch() {
	e.ApplySearch("")
}

// NextMatch selects the next matching row below the selection. The selection
// stays put when there is none.
func (e *ExplorerState) NextMatch() bool {
	for i := e.List.Selected() + 1; i < len(e.Rows); i++ {
		if e.Rows[i].Matched() {
			e.List.SelectIndex(i)
			return true
		}
	}
	return false
}

// PrevMatch selects the previous matching row above the selection.
func (e *ExplorerState) PrevMatch() bool {
	for i := e.List.Selected() - 1; i >= 0; i-- {
		if e.Rows[i].Matched() {
			e.List.SelectIndex(i)
			return true
		}
	}
	return false
}

// ToggleHidden shows or hides dot-files.
func (e *ExplorerState) ToggleHidden() {
	e.ShowHidden = !e.ShowHidden
	e.reselect()
}

// CycleSort switches to the next sort key.
func (e *ExplorerState) CycleSort() {
	e.Sort = e.Sort.Next()
	e.reselect()
}

// ToggleReverse flips the sort direction. ".." stays first.
func (e *ExplorerState) ToggleReverse() {
	e.SortReverse = !e.SortReverse
	e.reselect()
}

func (e *ExplorerState) reselect() {
	keep := ""
	if row, ok := e.Selected(); ok {
		keep = row.Entry.FullPath
	}
	e.rebuild(keep)
}

// ParentDir is the directory Backspace moves to.
func (e *ExplorerState) ParentDir() string {
	return filepath.Dir(e.Dir)
}

// ScrollX shifts the table horizontally, limited so that the last column
// can still be reached in a view of viewWidth cells.
func (e *ExplorerState) ScrollX(delta, contentWidth, viewWidth int) {
	e.OffsetX = max(min(e.OffsetX+delta, contentWidth-viewWidth), 0)
}
