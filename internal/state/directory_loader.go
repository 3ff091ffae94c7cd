package state

import (
	"context"
	"sync"

	fsutil "github.com/kk-code-lab/filez/internal/fs"
)

// DirectoryLoader reads directories off the UI goroutine.
type DirectoryLoader interface {
	Start(req DirectoryLoadRequest)
	Cancel(token int)
}

// DirectoryLoadRequest asks for Path to be listed through Host for Panel.
type DirectoryLoadRequest struct {
	Token    int
	Panel    PanelID
	Path     string
	Host     fsutil.Host
	Callback func(DirectoryLoadResult)
}

func (req DirectoryLoadRequest) valid() bool {
	return req.Token != 0 && req.Path != "" && req.Host != nil && req.Callback != nil
}

// DirectoryLoadResult is handed to the request callback unless the load was
// cancelled first.
type DirectoryLoadResult struct {
	Token   int
	Panel   PanelID
	Path    string
	Entries []fsutil.Entry
	Err     error
}

type asyncDirectoryLoader struct {
	mu      sync.Mutex
	running map[int]context.CancelFunc
}

// NewAsyncDirectoryLoader runs every load in its own goroutine.
func NewAsyncDirectoryLoader() DirectoryLoader {
	return &asyncDirectoryLoader{running: make(map[int]context.CancelFunc)}
}

func (l *asyncDirectoryLoader) Start(req DirectoryLoadRequest) {
	if !req.valid() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.mu.Lock()
	l.running[req.Token] = cancel
	l.mu.Unlock()
	go l.run(ctx, req)
}

func (l *asyncDirectoryLoader) run(ctx context.Context, req DirectoryLoadRequest) {
	defer l.Cancel(req.Token)

	entries, err := req.Host.ReadDir(ctx, req.Path)
	if ctx.Err() != nil {
		return
	}
	req.Callback(DirectoryLoadResult{
		Token:   req.Token,
		Panel:   req.Panel,
		Path:    req.Path,
		Entries: entries,
		Err:     err,
	})
}

// Cancel stops a running load; its callback will not fire.
func (l *asyncDirectoryLoader) Cancel(token int) {
	l.mu.Lock()
	cancel, ok := l.running[token]
	delete(l.running, token)
	l.mu.Unlock()
	if ok {
		cancel()
	}
}
