package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/filez/internal/config"
	fsutil "github.com/kk-code-lab/filez/internal/fs"
	"github.com/kk-code-lab/filez/internal/logging"
	statepkg "github.com/kk-code-lab/filez/internal/state"
	"github.com/kk-code-lab/filez/internal/tracing"
	inputui "github.com/kk-code-lab/filez/internal/ui/input"
	renderui "github.com/kk-code-lab/filez/internal/ui/render"
)

const (
	actionBuffer    = 64
	shutdownTimeout = 2 * time.Second
)

// Options configure a new Application.
type Options struct {
	Config config.Config
	// Left and Right are the start directories of the two explorers.
	Left  string
	Right string
	Log   *logging.Logger
	// Screen overrides the terminal screen, mainly for tests. It must not be
	// initialized yet.
	Screen tcell.Screen
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.AppState
	reducer  *statepkg.StateReducer
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	actionCh chan statepkg.Action
	log      *logging.Logger
	rootLog  *logging.Logger
	watcher  *fsutil.Watcher
	tracer   *tracing.Provider

	frameInterval  time.Duration
	shouldQuit     bool
	suspended      bool
	watchedDirs    [2]string
	lastDropped    uint64
	editorCmd      []string
	writeClipboard func(string) error
}

// NewApplication sets up the screen, the filesystem stack and both explorers.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	log := opts.Log

	tracer, err := tracing.NewProvider(tracing.Config{
		Enabled:    cfg.Trace.Enabled,
		Exporter:   cfg.Trace.Exporter,
		FilePath:   cfg.Trace.File,
		SampleRate: cfg.Trace.SampleRate,
	})
	if err != nil {
		return nil, err
	}

	host := newHost(cfg.FS, log, tracer)
	local, err := newExplorer(host, opts.Left, cfg.UI)
	if err != nil {
		_ = tracer.Shutdown(context.Background())
		return nil, err
	}
	remote, err := newExplorer(host, opts.Right, cfg.UI)
	if err != nil {
		_ = tracer.Shutdown(context.Background())
		return nil, err
	}

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			_ = tracer.Shutdown(context.Background())
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		_ = tracer.Shutdown(context.Background())
		return nil, err
	}
	// Parse mouse sequences so clicks and wheel events don't leak as key events.
	screen.EnableMouse()

	editorCmd, editorAvail := newEditorFinder().Find(cfg.UI.Editor)

	state := statepkg.NewAppState(local, remote, statepkg.NewInfoState(cfg.UI.Scrollback, cfg.UI.WrapLogs))
	state.Focus = statepkg.PanelLocal
	state.ClipboardAvailable = clipboardAvailable()
	state.EditorAvailable = editorAvail

	actionCh := make(chan statepkg.Action, actionBuffer)
	state.SetDispatch(func(action statepkg.Action) {
		select {
		case actionCh <- action:
		default:
			go func() { actionCh <- action }()
		}
	})
	state.DirectoryLoader = statepkg.NewAsyncDirectoryLoader()

	reducer := statepkg.NewStateReducer(log)
	w, h := screen.Size()
	if _, err := reducer.Reduce(state, statepkg.ResizeAction{Width: w, Height: h}); err != nil {
		screen.Fini()
		_ = tracer.Shutdown(context.Background())
		return nil, err
	}
	if err := reducer.LoadInitial(state); err != nil {
		screen.Fini()
		_ = tracer.Shutdown(context.Background())
		return nil, err
	}

	inputHandler := inputui.NewInputHandler(actionCh, log, cfg.UI.WaitTimeout)
	inputHandler.SetState(state)

	app := &Application{
		screen:         screen,
		state:          state,
		reducer:        reducer,
		renderer:       renderui.NewRenderer(screen),
		input:          inputHandler,
		actionCh:       actionCh,
		log:            log.With("app"),
		rootLog:        log,
		tracer:         tracer,
		frameInterval:  cfg.UI.FrameInterval,
		editorCmd:      editorCmd,
		writeClipboard: writeClipboard,
	}
	if cfg.FS.Watch {
		app.startWatcher(cfg.FS.Debounce)
	}
	app.log.Info("started", "local", local.Dir, "remote", remote.Dir, "tracing", tracer.Enabled())
	return app, nil
}

// newHost stacks the listing cache over traced local disk access.
func newHost(cfg config.FSConfig, log *logging.Logger, tracer *tracing.Provider) fsutil.Host {
	var host fsutil.Host = fsutil.NewTracedHost(fsutil.NewLocalHost(log), tracer.Tracer())
	if cfg.CacheTTL > 0 {
		host = fsutil.NewCachedHost(host, cfg.CacheTTL)
	}
	return host
}

func newExplorer(host fsutil.Host, dir string, cfg config.UIConfig) (*statepkg.ExplorerState, error) {
	if dir == "" {
		dir = "."
	}
	resolved, err := fsutil.Canonical(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot open %s: not a directory", dir)
	}

	sortKey, err := statepkg.ParseSortKey(cfg.SortBy)
	if err != nil {
		return nil, err
	}
	e := statepkg.NewExplorerState(host, resolved)
	e.ShowHidden = cfg.ShowHidden
	e.Sort = sortKey
	e.SortReverse = cfg.SortReverse
	return e, nil
}

func (app *Application) startWatcher(debounce time.Duration) {
	watcher, err := fsutil.NewWatcher(app.rootLog, debounce)
	if err != nil {
		app.log.Warn("directory watching disabled", "error", err)
		return
	}
	app.watcher = watcher
	app.syncWatches()
}

// syncWatches points the watcher at the directories the explorers show.
func (app *Application) syncWatches() {
	if app.watcher == nil {
		return
	}
	dirs := [2]string{app.state.Local.Dir, app.state.Remote.Dir}
	if dirs == app.watchedDirs {
		return
	}
	app.watchedDirs = dirs
	if err := app.watcher.Watch(dirs[:]...); err != nil {
		app.log.Warn("cannot watch directory", "error", err)
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.watcher != nil {
		_ = app.watcher.Close()
	}
	app.screen.Fini()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.tracer.Shutdown(ctx)
}

// State exposes the application state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}
