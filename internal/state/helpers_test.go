package state

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"time"

	fsutil "github.com/kk-code-lab/filez/internal/fs"
	"github.com/kk-code-lab/filez/internal/logging"
)

// memHost is an in-memory Host. Directories map to their children; ".." is
// added on read like LocalHost does.
type memHost struct {
	dirs  map[string][]fsutil.Entry
	reads int
}

func newMemHost() *memHost {
	return &memHost{dirs: make(map[string][]fsutil.Entry)}
}

func (h *memHost) addDir(path string) {
	if _, ok := h.dirs[path]; !ok {
		h.dirs[path] = nil
	}
	parent := filepath.Dir(path)
	if parent == path {
		return
	}
	h.addDir(parent)
	for _, e := range h.dirs[parent] {
		if e.FullPath == path {
			return
		}
	}
	name := filepath.Base(path)
	h.dirs[parent] = append(h.dirs[parent], fsutil.Entry{Name: name, FullPath: path, Kind: fsutil.KindDir, IsDir: true})
}

func (h *memHost) addFile(path string, size int64) {
	dir := filepath.Dir(path)
	h.addDir(dir)
	name := filepath.Base(path)
	h.dirs[dir] = append(h.dirs[dir], fsutil.Entry{
		Name:     name,
		FullPath: path,
		Ext:      fsutil.Extension(name),
		Kind:     fsutil.KindFile,
		Size:     size,
		Modified: time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(size) * time.Minute),
	})
}

func (h *memHost) ReadDir(_ context.Context, dir string) ([]fsutil.Entry, error) {
	h.reads++
	children, ok := h.dirs[dir]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	entries := make([]fsutil.Entry, 0, len(children)+1)
	if parent := filepath.Dir(dir); parent != dir {
		entries = append(entries, fsutil.DotDot(parent))
	}
	sorted := append([]fsutil.Entry(nil), children...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name > sorted[j].Name })
	return append(entries, sorted...), nil
}

func (h *memHost) Exists(_ context.Context, path string) (bool, error) {
	if _, ok := h.dirs[path]; ok {
		return true, nil
	}
	for _, e := range h.dirs[filepath.Dir(path)] {
		if e.FullPath == path {
			return true, nil
		}
	}
	return false, nil
}

func (h *memHost) CreateDir(ctx context.Context, path string) error {
	if ok, _ := h.Exists(ctx, path); ok {
		return iofs.ErrExist
	}
	if _, ok := h.dirs[filepath.Dir(path)]; !ok {
		return errors.New("parent missing")
	}
	h.addDir(path)
	return nil
}

func (h *memHost) CreateFile(ctx context.Context, path string) error {
	if ok, _ := h.Exists(ctx, path); ok {
		return iofs.ErrExist
	}
	h.addFile(path, 0)
	return nil
}

var testRoot = filepath.Join(string(filepath.Separator), "data")

func testPath(parts ...string) string {
	return filepath.Join(append([]string{testRoot}, parts...)...)
}

// sampleHost has /data with files, a dot-file and two directories.
func sampleHost() *memHost {
	h := newMemHost()
	h.addFile(testPath("b.txt"), 30)
	h.addFile(testPath("a.go"), 10)
	h.addFile(testPath("c.md"), 20)
	h.addFile(testPath(".env"), 1)
	h.addDir(testPath("src"))
	h.addDir(testPath("docs"))
	h.addFile(testPath("src", "main.go"), 5)
	return h
}

func rowNames(e *ExplorerState) []string {
	names := make([]string, len(e.Rows))
	for i, row := range e.Rows {
		names[i] = row.Entry.Name
	}
	return names
}

func newTestExplorer(h *memHost, dir string, height int) *ExplorerState {
	e := NewExplorerState(h, dir)
	entries, err := h.ReadDir(context.Background(), dir)
	if err != nil {
		panic(err)
	}
	e.SetEntries(dir, entries)
	e.Resize(height)
	return e
}

func newTestState(h *memHost) *AppState {
	local := NewExplorerState(h, testRoot)
	remote := NewExplorerState(h, testPath("src"))
	state := NewAppState(local, remote, NewInfoState(100, true))
	state.Now = func() time.Time { return time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC) }
	state.Focus = PanelLocal
	reducer := NewStateReducer(nil)
	if err := reducer.LoadInitial(state); err != nil {
		panic(err)
	}
	state.resize(120, 60)
	return state
}

func newTestReducer() (*StateReducer, *logging.Logger) {
	log := logging.New(logging.Options{Capacity: 64, MinLevel: logging.LevelTrace})
	return NewStateReducer(log), log
}

func mustReduce(r *StateReducer, state *AppState, actions ...Action) error {
	for _, a := range actions {
		if _, err := r.Reduce(state, a); err != nil {
			return err
		}
	}
	return nil
}

func filepathParent(path string) string {
	return filepath.Dir(path)
}
