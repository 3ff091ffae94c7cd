//go:build windows

package app

import (
	"os"

	"golang.org/x/sys/windows"
)

func contSignals() []os.Signal {
	return nil
}

// flushConsoleInput drops keys typed into the console while the editor ran.
func flushConsoleInput() error {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	return windows.FlushConsoleInputBuffer(handle)
}

// Windows consoles have no job control, so Ctrl-Z only leaves a note.
func (app *Application) suspendToShell() {
	app.log.Debug("suspend is not supported on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
