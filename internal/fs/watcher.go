package fs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kk-code-lab/filez/internal/logging"
)

// DefaultDebounce groups bursts of filesystem events into one notification.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports directories whose contents changed. Only the directories
// passed to the last Watch call are observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	log       *logging.Logger
	debounce  time.Duration
	changes   chan string
	done      chan struct{}

	mu      sync.Mutex
	watched map[string]struct{}
}

// NewWatcher starts an fsnotify watcher. Changed directories are delivered on
// Changes once events have been quiet for debounce.
func NewWatcher(log *logging.Logger, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		fsWatcher: fsw,
		log:       log.With("watcher"),
		debounce:  debounce,
		changes:   make(chan string, 16),
		done:      make(chan struct{}),
		watched:   make(map[string]struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers the directories whose contents changed.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Watch replaces the set of observed directories. A directory that cannot be
// watched is skipped and reported in the returned error; the others are still
// watched.
func (w *Watcher) Watch(dirs ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	want := make(map[string]struct{}, len(dirs))
	for _, dir := range dirs {
		want[filepath.Clean(dir)] = struct{}{}
	}
	for dir := range w.watched {
		if _, keep := want[dir]; !keep {
			if err := w.fsWatcher.Remove(dir); err != nil {
				w.log.Debug("unwatch failed", "dir", dir, "error", err)
			}
			delete(w.watched, dir)
		}
	}
	var errs []error
	for dir := range want {
		if _, ok := w.watched[dir]; ok {
			continue
		}
		if err := w.fsWatcher.Add(dir); err != nil {
			w.log.Warn("cannot watch directory", "dir", dir, "error", err)
			errs = append(errs, fmt.Errorf("watching directory %s: %w", dir, err))
			continue
		}
		w.watched[dir] = struct{}{}
	}
	return errors.Join(errs...)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]struct{})
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			pending[filepath.Dir(event.Name)] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			for dir := range pending {
				select {
				case w.changes <- dir:
				default:
					w.log.Debug("change notification dropped", "dir", dir)
				}
				delete(pending, dir)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}
