package app

import (
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/filez/internal/state"
)

const defaultFrameInterval = 15 * time.Millisecond

// Run processes events until the user quits.
func (app *Application) Run() {
	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	var changes <-chan string
	if app.watcher != nil {
		changes = app.watcher.Changes()
	}

	interval := app.frameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	frames := time.NewTicker(interval)
	defer frames.Stop()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case now := <-frames.C:
			if app.handleFrame(now) {
				renderPending = true
			}
		case dir := <-changes:
			if app.handleAction(statepkg.DirectoryChangedAction{Path: dir}) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
	app.log.Info("exiting")
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventMouse, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleFrame moves drained log records into the info panel and expires
// pending key sequences.
func (app *Application) handleFrame(now time.Time) bool {
	changed := false
	records := app.rootLog.Drain(0)
	dropped := app.rootLog.Dropped()
	if len(records) > 0 || dropped != app.lastDropped {
		app.lastDropped = dropped
		app.handleAction(statepkg.LogRecordsAction{Records: records, Dropped: dropped})
		changed = true
	}

	app.input.Tick(now)
	if !app.state.LastYankTime.IsZero() && now.Sub(app.state.LastYankTime) < 3*time.Second {
		// keep redrawing until the copy notice disappears
		changed = true
	}
	return changed
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	}

	changed := app.handleAppAction(action)
	if app.state.Status == statepkg.StatusQuit {
		app.shouldQuit = true
	}
	app.syncWatches()
	return changed
}

func (app *Application) handleAppAction(action statepkg.Action) bool {
	switch action.(type) {
	case statepkg.YankPathAction:
		return app.handleClipboard()
	case statepkg.OpenEditorAction:
		return app.handleEditorOpen()
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.log.Debug("action failed", "action", actionName(action), "error", err)
	}
	return true
}
