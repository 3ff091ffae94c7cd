package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "safe-file.txt"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\npath"
	got := SanitizeTerminalText(input)
	if got != "bad?[31m path" {
		t.Fatalf("expected sanitized string \"bad?[31m path\", got %q", got)
	}
	if containsControl(got) {
		t.Fatalf("sanitized text should not contain control characters: %q", got)
	}
}

func TestSanitizeTerminalTextReplacesFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c" + string(rune(0x00AD))
	got := SanitizeTerminalText(input)
	if containsRune(got, 0x202E) || containsRune(got, 0x200B) {
		t.Fatalf("sanitize left formatting runes in output: %q", got)
	}
	if !strings.Contains(got, "⟪RLO⟫") || !strings.Contains(got, "⟪ZWSP⟫") || !strings.Contains(got, "⟪SHY⟫") {
		t.Fatalf("expected formatting runes to be labeled, got %q", got)
	}
}

func TestSanitizeLineMarksReplacements(t *testing.T) {
	line := SanitizeLine("a\x1bb"+string(rune(0x200D))+"c", styleA, styleB)
	want := []Span{
		{Content: "a", Style: styleA},
		{Content: "?", Style: styleB},
		{Content: "b", Style: styleA},
		{Content: "⟪ZWJ⟫", Style: styleB},
		{Content: "c", Style: styleA},
	}
	if len(line) != len(want) {
		t.Fatalf("SanitizeLine = %#v", line)
	}
	for i := range want {
		if line[i] != want[i] {
			t.Fatalf("span %d = %#v, want %#v", i, line[i], want[i])
		}
	}
}

func TestSanitizeLineSafeInputIsOneSpan(t *testing.T) {
	line := SanitizeLine("notes.txt", styleA, styleB)
	if len(line) != 1 || line[0].Content != "notes.txt" || line[0].Style != styleA {
		t.Fatalf("SanitizeLine = %#v", line)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := ExpandTabs("a\tb", DefaultTabWidth); got != "a   b" {
		t.Fatalf("ExpandTabs = %q", got)
	}
	if got := ExpandTabs("中\tb", DefaultTabWidth); got != "中  b" {
		t.Fatalf("ExpandTabs wide = %q", got)
	}
}

func TestRuneColumns(t *testing.T) {
	cols := RuneColumns([]rune("a中b"))
	want := []int{0, 1, 3, 4}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("RuneColumns = %v, want %v", cols, want)
		}
	}
}

func containsControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

func containsRune(s string, target rune) bool {
	for _, r := range s {
		if r == target {
			return true
		}
	}
	return false
}
