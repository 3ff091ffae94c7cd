package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// editorFinder picks the command used by the 'e' key. The configured
// command wins over $VISUAL and $EDITOR, which win over the platform
// fallbacks.
type editorFinder struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

var editorFallbacks = map[string][][]string{
	"windows": {{"code", "--wait"}, {"notepad++.exe"}, {"notepad.exe"}},
	"":        {{"vim"}, {"vi"}, {"nano"}},
}

func newEditorFinder() editorFinder {
	return editorFinder{goos: runtime.GOOS, getenv: os.Getenv, lookPath: exec.LookPath}
}

// Find returns the editor argv, or false when nothing runnable is found.
func (f editorFinder) Find(configured string) ([]string, bool) {
	for _, cmd := range []string{configured, f.getenv("VISUAL"), f.getenv("EDITOR")} {
		if args, ok := f.resolve(splitCommand(cmd)); ok {
			return args, true
		}
	}

	fallbacks := editorFallbacks[""]
	if strings.EqualFold(f.goos, "windows") {
		fallbacks = editorFallbacks["windows"]
	}
	for _, def := range fallbacks {
		if args, ok := f.resolve(append([]string(nil), def...)); ok {
			return args, true
		}
	}
	return nil, false
}

// resolve replaces args[0] with its full path when it can be run.
func (f editorFinder) resolve(args []string) ([]string, bool) {
	if len(args) == 0 || args[0] == "" {
		return nil, false
	}
	path, err := f.lookPath(expandHome(args[0]))
	if err != nil {
		return nil, false
	}
	args[0] = path
	return args, true
}

// splitCommand splits an editor setting into arguments. Single and double
// quotes group words; each quote kind is literal inside the other.
func splitCommand(cmd string) []string {
	var (
		args  []string
		word  strings.Builder
		quote rune
		open  bool
	)
	for _, r := range strings.TrimSpace(cmd) {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote, open = r, true
		case quote == 0 && unicode.IsSpace(r):
			if open || word.Len() > 0 {
				args = append(args, word.String())
				word.Reset()
				open = false
			}
		default:
			word.WriteRune(r)
		}
	}
	if open || word.Len() > 0 {
		args = append(args, word.String())
	}
	return args
}

// expandHome resolves a leading "~" or "~/" against the home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
