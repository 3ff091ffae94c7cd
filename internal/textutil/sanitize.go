package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var formattingRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x180E: "⟪MVS⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0x206A: "⟪ISS⟫",
	0x206B: "⟪ASS⟫",
	0x206C: "⟪IAFS⟫",
	0x206D: "⟪AAFS⟫",
	0x206E: "⟪NADS⟫",
	0x206F: "⟪NODS⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText makes untrusted text safe to draw: control
// characters become '?', line breaks and tabs become spaces and invisible
// formatting runes become bracketed labels.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, unsafeRune) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := placeholder(r); ok {
			b.WriteString(label)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeLine is SanitizeTerminalText producing a styled line in which the
// placeholders are drawn with markStyle.
func SanitizeLine(text string, style, markStyle tcell.Style) Line {
	var line Line
	start := 0
	for i, r := range text {
		label, ok := placeholder(r)
		if !ok {
			continue
		}
		if i > start {
			line = append(line, Styled(text[start:i], style))
		}
		line = append(line, Styled(label, markStyle))
		start = i + utf8.RuneLen(r)
	}
	if start < len(text) || len(line) == 0 {
		line = append(line, Styled(text[start:], style))
	}
	return line
}

func unsafeRune(r rune) bool {
	_, ok := placeholder(r)
	return ok
}

func placeholder(r rune) (string, bool) {
	if label, ok := formattingRuneLabels[r]; ok {
		return label, true
	}
	switch {
	case r == '\t', r == '\n', r == '\r':
		return " ", true
	case r < 0x20, r == 0x7f:
		return "?", true
	}
	return "", false
}
