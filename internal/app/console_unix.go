//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/filez/internal/state"
)

// contSignals are delivered when the shell resumes a stopped filez.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

// flushConsoleInput has nothing to do: resuming the screen resets the tty.
func flushConsoleInput() error {
	return nil
}

// suspendToShell hands the terminal back and stops the process (Ctrl-Z).
func (app *Application) suspendToShell() {
	if err := app.screen.Suspend(); err != nil {
		app.log.ErrorErr("cannot suspend screen", err)
		return
	}
	app.suspended = true
	app.log.Debug("suspended")
	// Stopping the process group would also stop a wrapping shell function.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

// resumeAfterStop is reached both after the stop returns and from SIGCONT.
// Only the first call resumes the screen.
func (app *Application) resumeAfterStop() bool {
	if !app.suspended {
		return false
	}
	app.suspended = false
	if err := app.screen.Resume(); err != nil {
		app.log.ErrorErr("cannot resume screen", err)
		return false
	}
	app.screen.EnableMouse()
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.handleAppAction(statepkg.ResizeAction{Width: w, Height: h})
	}
	app.log.Debug("resumed")
	return true
}
