package state

// ListView is a window of Height rows over a list of Count rows. Cursor is
// the selected row relative to Offset. Offset may run past the last full
// page, down to the last row, so the list can be scrolled until only its
// final row is visible.
type ListView struct {
	Count  int
	Height int
	Offset int
	Cursor int
}

// Selected is the absolute index of the selected row.
func (v ListView) Selected() int {
	return v.Offset + v.Cursor
}

// Visible reports the [start, end) range of rows on screen.
func (v ListView) Visible() (int, int) {
	return v.Offset, min(v.Offset+v.Height, v.Count)
}

func (v ListView) selectable() int {
	return max(min(v.Count-v.Offset, v.Height), 0)
}

func (v *ListView) adjust() {
	v.Offset = max(min(v.Offset, v.Count-1), 0)
	v.Cursor = max(min(v.Cursor, v.selectable()-1), 0)
}

// Resize updates the row count and viewport height.
func (v *ListView) Resize(count, height int) {
	v.Count = max(count, 0)
	v.Height = max(height, 0)
	v.adjust()
}

// SelectUp moves the selection one row up, scrolling at the top edge.
func (v *ListView) SelectUp() {
	if v.Cursor > 0 {
		v.Cursor--
		return
	}
	v.ScrollUp()
}

// SelectDown moves the selection one row down, scrolling at the bottom edge.
func (v *ListView) SelectDown() {
	if v.Selected() >= v.Count-1 {
		return
	}
	if v.Cursor+1 >= v.selectable() {
		v.Offset++
	} else {
		v.Cursor++
	}
	v.adjust()
}

// ScrollUp moves the window one row up, keeping the cursor on screen.
func (v *ListView) ScrollUp() {
	if v.Offset > 0 {
		v.Offset--
	}
	v.adjust()
}

// ScrollDown moves the window one row down.
func (v *ListView) ScrollDown() {
	v.Offset++
	v.adjust()
}

// Scroll moves the window by n rows.
func (v *ListView) Scroll(n int) {
	for ; n > 0; n-- {
		v.ScrollDown()
	}
	for ; n < 0; n++ {
		v.ScrollUp()
	}
}

// Top selects the first row.
func (v *ListView) Top() {
	v.Offset, v.Cursor = 0, 0
}

// Bottom selects the last row, showing a full final page.
func (v *ListView) Bottom() {
	if bottom := max(v.Count-v.Height, 0); v.Offset < bottom {
		v.Offset = bottom
	}
	v.Cursor = max(v.Height-1, 0)
	v.adjust()
}

// HalfPageDown scrolls half a viewport down.
func (v *ListView) HalfPageDown() {
	v.Scroll(v.Height / 2)
}

// HalfPageUp scrolls half a viewport up.
func (v *ListView) HalfPageUp() {
	v.Scroll(-(v.Height / 2))
}

// SelectRow selects the row-th visible row. It reports false when that row
// is empty.
func (v *ListView) SelectRow(row int) bool {
	if row < 0 || row >= v.Height || v.Offset+row >= v.Count {
		return false
	}
	v.Cursor = row
	v.adjust()
	return true
}

// SelectIndex selects the absolute row index, scrolling it into view.
func (v *ListView) SelectIndex(index int) {
	if v.Count == 0 {
		return
	}
	index = max(min(index, v.Count-1), 0)
	switch {
	case index < v.Offset:
		v.Offset = index
	case v.Height > 0 && index >= v.Offset+v.Height:
		v.Offset = index - v.Height + 1
	}
	v.Cursor = index - v.Offset
	v.adjust()
}
