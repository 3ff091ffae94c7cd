package textutil

// WrapLine splits line into rows no wider than maxWidth. Spans that fit are
// kept whole; an overflowing span is split on grapheme boundaries. Every row
// but the last is padded with unstyled spaces to exactly maxWidth. A cluster
// wider than maxWidth is replaced with a single space. An empty line yields one
// empty row.
func WrapLine(line Line, maxWidth int) []Line {
	if maxWidth <= 0 {
		return nil
	}

	var (
		rows     []Line
		current  Line
		position int
	)
	flush := func() {
		if pad := maxWidth - position; pad > 0 {
			current = append(current, Raw(spaces(pad)))
		}
		rows = append(rows, current)
		current, position = nil, 0
	}

	for _, span := range line {
		width := span.Width()
		if position+width <= maxWidth {
			if span.Content != "" {
				current = append(current, span)
			}
			position += width
			continue
		}

		content := span.Content
		start, end := 0, 0
		for cluster, cw := range Graphemes(content) {
			if position+cw > maxWidth {
				if end > start {
					current = append(current, Span{Content: content[start:end], Style: span.Style})
				}
				if len(current) > 0 {
					flush()
				}
				start = end
				if cw > maxWidth {
					end += len(cluster)
					start = end
					current = append(current, Span{Content: " ", Style: span.Style})
					position = 1
					continue
				}
			}
			end += len(cluster)
			position += cw
		}
		if end > start {
			current = append(current, Span{Content: content[start:end], Style: span.Style})
		}
	}

	if len(current) > 0 || len(rows) == 0 {
		if current == nil {
			current = Line{}
		}
		rows = append(rows, current)
	}
	return rows
}
