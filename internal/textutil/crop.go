package textutil

// CropLeft drops the first offset display columns of line.
//
// When offset ends inside a wide cluster, that cluster is dropped too and the
// returned residual is the number of blank columns the caller has to draw in
// its place so the rest of the line stays aligned. When offset is past the end
// of the line the result is empty and the residual is the unconsumed part of
// offset.
func CropLeft(line Line, offset int) (int, Line) {
	if offset <= 0 {
		return 0, line
	}

	remaining := offset
	for i, span := range line {
		width := span.Width()
		if remaining >= width {
			remaining -= width
			if remaining == 0 {
				return 0, line[i+1:]
			}
			continue
		}

		residual, rest := cropSpan(span, remaining)
		out := make(Line, 0, len(line)-i)
		if rest.Content != "" {
			out = append(out, rest)
		}
		return residual, append(out, line[i+1:]...)
	}
	return remaining, Line{}
}

// cropSpan removes crop columns from the front of span; crop is smaller than
// the span width.
func cropSpan(span Span, crop int) (int, Span) {
	pos := 0
	for cluster, width := range Graphemes(span.Content) {
		if crop == 0 {
			break
		}
		pos += len(cluster)
		if width > crop {
			return width - crop, Span{Content: span.Content[pos:], Style: span.Style}
		}
		crop -= width
	}
	return 0, Span{Content: span.Content[pos:], Style: span.Style}
}
