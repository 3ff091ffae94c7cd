package textutil

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Span is a run of text drawn with a single style. Spans cut from a larger
// string share its memory.
type Span struct {
	Content string
	Style   tcell.Style
}

// Raw returns an unstyled span.
func Raw(content string) Span {
	return Span{Content: content, Style: tcell.StyleDefault}
}

// Styled returns a span drawn with style.
func Styled(content string, style tcell.Style) Span {
	return Span{Content: content, Style: style}
}

// Width is the display width of the span.
func (s Span) Width() int {
	return DisplayWidth(s.Content)
}

// Line is a left-to-right sequence of spans occupying one terminal row.
type Line []Span

// LineOf builds a line from spans.
func LineOf(spans ...Span) Line {
	return Line(spans)
}

// Width is the display width of the line.
func (l Line) Width() int {
	width := 0
	for _, span := range l {
		width += span.Width()
	}
	return width
}

// String returns the unstyled content of the line.
func (l Line) String() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Content)
	}
	return b.String()
}

// Text is a block of lines.
type Text []Line

// PlainText splits s on newlines into unstyled lines.
func PlainText(s string) Text {
	return StyledText(s, tcell.StyleDefault)
}

// StyledText splits s on newlines into lines drawn with style.
func StyledText(s string, style tcell.Style) Text {
	parts := strings.Split(s, "\n")
	text := make(Text, 0, len(parts))
	for _, part := range parts {
		text = append(text, Line{Styled(part, style)})
	}
	return text
}

// Height is the number of lines in the block.
func (t Text) Height() int {
	return len(t)
}

// Width is the width of the widest line.
func (t Text) Width() int {
	width := 0
	for _, line := range t {
		if w := line.Width(); w > width {
			width = w
		}
	}
	return width
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
