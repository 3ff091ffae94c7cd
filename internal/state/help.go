package state

import (
	"fmt"

	"github.com/kk-code-lab/filez/internal/textutil"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{
		title: "Explorer",
		entries: []helpEntry{
			{keys: "j/k ↑/↓", desc: "Move selection"},
			{keys: "Ctrl+D/Ctrl+U", desc: "Half page down/up"},
			{keys: "gg / G", desc: "First / last entry"},
			{keys: "↵", desc: "Open directory"},
			{keys: "⌫", desc: "Parent directory"},
			{keys: ".", desc: "Back to start directory"},
			{keys: "< / >", desc: "Scroll columns"},
			{keys: "H", desc: "Toggle hidden files"},
			{keys: "s / S", desc: "Cycle sort / reverse"},
			{keys: "r", desc: "Reload"},
		},
	},
	{
		title: "Search",
		entries: []helpEntry{
			{keys: "/", desc: "Search names"},
			{keys: "n / N", desc: "Next / previous match"},
			{keys: "Ctrl+L", desc: "Clear matches"},
		},
	},
	{
		title: "Tasks",
		entries: []helpEntry{
			{keys: "U / D / C", desc: "Mark upload / delete / clear"},
			{keys: "x", desc: "Execute queued tasks"},
			{keys: "a / A", desc: "New file / directory"},
			{keys: "y", desc: "Yank path to clipboard"},
			{keys: "e", desc: "Open in $EDITOR"},
		},
	},
	{
		title: "Info",
		entries: []helpEntry{
			{keys: "h / l", desc: "Previous / next tab"},
			{keys: "j / k", desc: "Scroll"},
			{keys: "Ctrl+L", desc: "Jump to newest"},
			{keys: "w", desc: "Toggle wrapping"},
		},
	},
	{
		title: "Focus",
		entries: []helpEntry{
			{keys: "Space w h/j/k/l", desc: "Move focus"},
			{keys: "↵", desc: "Focus Local"},
			{keys: "Esc", desc: "Clear focus"},
		},
	},
	{
		title: "Exit",
		entries: []helpEntry{
			{keys: "q", desc: "Quit (asks first)"},
			{keys: "Ctrl+C", desc: "Quit immediately"},
			{keys: "Ctrl+Z", desc: "Suspend"},
			{keys: "?", desc: "Close this help"},
		},
	},
}

var helpLines = buildHelpLines()

// HelpLines is the key binding reference shown by the help popup. Section
// titles start at column zero, bindings are indented.
func HelpLines() []string {
	return helpLines
}

func buildHelpLines() []string {
	lines := make([]string, 0, 48)
	for i, section := range helpSections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpEntry(entry))
		}
	}
	return lines
}

func formatHelpEntry(entry helpEntry) string {
	keys := textutil.SanitizeTerminalText(entry.keys)
	pad := max(16-textutil.DisplayWidth(keys), 1)
	return fmt.Sprintf("  %s%*s%s", keys, pad, "", entry.desc)
}
