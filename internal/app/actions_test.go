package app

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/filez/internal/state"
)

func TestNormalizeClipboardPathWindows(t *testing.T) {
	input := `C:\Users\me/project/sub/file.txt`
	got := normalizeClipboardPath(input, "windows")
	want := `C:\Users\me\project\sub\file.txt`
	if got != want {
		t.Fatalf("normalizeClipboardPath(%q, windows) = %q, want %q", input, got, want)
	}
}

func TestNormalizeClipboardPathUnix(t *testing.T) {
	input := "/tmp/project/dir/../file.txt"
	got := normalizeClipboardPath(input, "linux")
	want := "/tmp/project/file.txt"
	if got != want {
		t.Fatalf("normalizeClipboardPath(%q, linux) = %q, want %q", input, got, want)
	}
}

func TestHandleClipboardSetsLastErrorOnFailure(t *testing.T) {
	app := newTestApplication(t)
	app.state.ClipboardAvailable = true
	app.writeClipboard = func(string) error { return errors.New("no display") }

	app.handleAction(statepkg.YankPathAction{})

	if app.state.LastError == nil {
		t.Fatalf("expected clipboard failure to set LastError")
	}
	if got := app.state.LastError.Error(); !strings.Contains(got, "no display") {
		t.Fatalf("expected error to carry the cause, got %q", got)
	}
	if !app.state.LastYankTime.IsZero() {
		t.Fatalf("expected LastYankTime to remain zero on failure")
	}
}

func TestHandleClipboardUpdatesYankTimeOnSuccess(t *testing.T) {
	app := newTestApplication(t)
	app.state.ClipboardAvailable = true
	var copied string
	app.writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	app.handleAction(statepkg.SelectDownAction{})

	app.handleAction(statepkg.YankPathAction{})

	if app.state.LastYankTime.IsZero() {
		t.Fatalf("expected LastYankTime to update on success")
	}
	if app.state.LastError != nil {
		t.Fatalf("expected LastError to remain nil on success, got %v", app.state.LastError)
	}
	row, _ := app.state.Local.Selected()
	if copied != normalizeClipboardPath(row.Entry.FullPath, runtime.GOOS) {
		t.Fatalf("expected selected path %q to be copied, got %q", row.Entry.FullPath, copied)
	}
}

func TestHandleClipboardUnavailable(t *testing.T) {
	app := newTestApplication(t)
	app.state.ClipboardAvailable = false
	called := false
	app.writeClipboard = func(string) error {
		called = true
		return nil
	}

	app.handleAction(statepkg.YankPathAction{})

	if called {
		t.Fatalf("expected clipboard to stay untouched when unavailable")
	}
}

func TestOpenFileInEditorFallbackPropagatesError(t *testing.T) {
	app := &Application{
		screen: newTestScreen(t),
	}
	args := []string{"fake-editor", "--wait"}

	var recorded []string
	var err error
	withFakeCommandBuilder(t, 5, &recorded, func() {
		err = app.openFileInEditorFallback(args)
	})

	if err == nil {
		t.Fatalf("expected error from editor fallback")
	}
	if got := err.Error(); !strings.Contains(got, "fake-editor") {
		t.Fatalf("expected editor error to include command name, got %q", got)
	}
	assertCommandRecorded(t, recorded, args)
}

func TestEditorArgsWithFile(t *testing.T) {
	app := &Application{editorCmd: []string{"code", "--wait"}}
	got := app.editorArgsWithFile("/tmp/a.txt")
	assertCommandRecorded(t, got, []string{"code", "--wait", "/tmp/a.txt"})
	if len(app.editorCmd) != 2 {
		t.Fatalf("expected editor command to stay unchanged, got %v", app.editorCmd)
	}
}

func TestHandleEditorOpenIgnoresDirectories(t *testing.T) {
	app := newTestApplication(t)
	app.state.EditorAvailable = true
	app.editorCmd = []string{"fake-editor"}

	var recorded []string
	withFakeCommandBuilder(t, 0, &recorded, func() {
		// ".." is selected
		if app.handleEditorOpen() {
			t.Fatalf("expected directories to be skipped")
		}
	})
	if recorded != nil {
		t.Fatalf("expected no editor launch, got %v", recorded)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	code, err := strconv.Atoi(os.Getenv("HELPER_PROCESS_EXIT"))
	if err != nil {
		code = 1
	}
	os.Exit(code)
}

func withFakeCommandBuilder(t *testing.T, exitCode int, recorded *[]string, fn func()) {
	t.Helper()
	orig := commandBuilder
	commandBuilder = func(name string, args ...string) *exec.Cmd {
		if recorded != nil {
			*recorded = append([]string{name}, args...)
		}
		return helperProcessCommand(exitCode, name, args...)
	}
	defer func() {
		commandBuilder = orig
	}()
	fn()
}

func helperProcessCommand(exitCode int, name string, args ...string) *exec.Cmd {
	cmdArgs := []string{"-test.run=TestHelperProcess", "--", name}
	cmdArgs = append(cmdArgs, args...)
	cmd := exec.Command(os.Args[0], cmdArgs...)
	cmd.Env = append(os.Environ(),
		"GO_WANT_HELPER_PROCESS=1",
		"HELPER_PROCESS_EXIT="+strconv.Itoa(exitCode),
	)
	return cmd
}

func assertCommandRecorded(t *testing.T, recorded, want []string) {
	t.Helper()
	if len(recorded) != len(want) {
		t.Fatalf("expected command %v, got %v", want, recorded)
	}
	for i := range want {
		if recorded[i] != want[i] {
			t.Fatalf("expected command %v, got %v", want, recorded)
		}
	}
}
