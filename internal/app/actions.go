package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	statepkg "github.com/kk-code-lab/filez/internal/state"
)

var commandBuilder = exec.Command

func clipboardAvailable() bool {
	return !clipboard.Unsupported
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func actionName(action statepkg.Action) string {
	return fmt.Sprintf("%T", action)
}

// selectedPath is the full path of the selected entry of the focused
// explorer.
func (app *Application) selectedPath() (string, bool, bool) {
	e := app.state.FocusedExplorer()
	if e == nil {
		return "", false, false
	}
	row, ok := e.Selected()
	if !ok {
		return "", false, false
	}
	return row.Entry.FullPath, row.Entry.Enterable(), true
}

func (app *Application) handleClipboard() bool {
	if !app.state.ClipboardAvailable || app.writeClipboard == nil {
		return false
	}
	selected, _, ok := app.selectedPath()
	if !ok {
		return false
	}

	text := normalizeClipboardPath(selected, runtime.GOOS)
	if err := app.writeClipboard(text); err != nil {
		app.state.LastError = fmt.Errorf("copy to clipboard: %w", err)
		app.log.ErrorErr("copy to clipboard failed", err)
		return true
	}
	app.state.LastYankTime = time.Now()
	app.log.Info("copied path", "path", text)
	return true
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}

func (app *Application) handleEditorOpen() bool {
	if !app.state.EditorAvailable || len(app.editorCmd) == 0 {
		return false
	}

	filePath, isDir, ok := app.selectedPath()
	if !ok || isDir {
		return false
	}

	if err := app.openFileInEditor(filePath); err != nil {
		app.state.LastError = err
		app.log.ErrorErr("editor failed", err, "path", filePath)
	}
	// The file may have changed size or been renamed.
	app.handleAction(statepkg.DirectoryChangedAction{Path: filepath.Dir(filePath)})
	return true
}

// openFileInEditor hands the terminal to the editor. Outside windows the
// editor talks to /dev/tty so redirected stdio does not get in the way.
func (app *Application) openFileInEditor(filePath string) error {
	if len(app.editorCmd) == 0 {
		return errors.New("no editor configured")
	}
	args := app.editorArgsWithFile(filePath)
	if runtime.GOOS == "windows" {
		return app.runEditor(args, os.Stdin, os.Stdout, os.Stderr)
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		app.log.Debug("no controlling terminal, using stdio", "error", err)
		return app.openFileInEditorFallback(args)
	}
	defer func() {
		_ = tty.Close()
	}()
	return app.runEditor(args, tty, tty, tty)
}

func (app *Application) openFileInEditorFallback(args []string) error {
	return app.runEditor(args, os.Stdin, os.Stdout, os.Stderr)
}

// runEditor suspends the screen around the editor process and discards the
// keys typed while it ran.
func (app *Application) runEditor(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("suspend screen: %w", err)
	}
	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = stdin, stdout, stderr
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("resume screen: %w", err)
	}
	_ = flushConsoleInput()
	app.screen.Sync()
	if runErr != nil {
		return fmt.Errorf("%s: %w", args[0], runErr)
	}
	return nil
}

func (app *Application) editorArgsWithFile(filePath string) []string {
	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath
	return args
}
