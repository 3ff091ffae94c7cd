package state

import (
	"fmt"
	"time"

	fsutil "github.com/kk-code-lab/filez/internal/fs"
	"github.com/kk-code-lab/filez/internal/textutil"
)

// Explorer table columns.
const (
	ColCursor = iota
	ColName
	ColSize
	ColModified
	ColPerm
	ColType
	ColAction
	ColumnCount
)

// ColumnSpacing is the gap between table columns.
const ColumnSpacing = 1

// ColumnHeaders are the explorer table titles.
var ColumnHeaders = [ColumnCount]string{"", "Name", "Size", "Modified", "Permissions", "Type", "Action"}

// FormatSize renders n bytes with binary units: "512B", "4.0K", "12M".
func FormatSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}
	value := float64(n)
	units := []string{"K", "M", "G", "T", "P", "E"}
	unit := ""
	for _, u := range units {
		value /= 1024
		unit = u
		if value < 1024 {
			break
		}
	}
	if value < 10 {
		return fmt.Sprintf("%.1f%s", value, unit)
	}
	return fmt.Sprintf("%.0f%s", value, unit)
}

// FormatModified shows the time of day for dates in the current year and the
// year otherwise.
func FormatModified(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if t.Year() == now.Year() {
		return t.Format("_2 Jan 15:04")
	}
	return t.Format("_2 Jan 2006")
}

// FormatPermissions renders the entry type marker followed by the rwx bits.
func FormatPermissions(e fsutil.Entry) string {
	var kind byte
	switch e.Kind {
	case fsutil.KindDir:
		kind = 'd'
	case fsutil.KindSymlink:
		kind = 'l'
	case fsutil.KindFile:
		kind = '.'
	default:
		kind = '?'
	}
	if e.Kind == fsutil.KindDotDot {
		return string(kind)
	}
	return string(kind) + e.Perm.String()
}

// RowCells returns the text of each column for row.
func RowCells(row Row, selected bool, now time.Time) [ColumnCount]string {
	var cells [ColumnCount]string
	if selected {
		cells[ColCursor] = ">"
	}
	e := row.Entry
	cells[ColName] = textutil.SanitizeTerminalText(e.Name)
	if e.Kind == fsutil.KindDotDot {
		cells[ColPerm] = FormatPermissions(e)
		return cells
	}
	if e.IsDir {
		cells[ColSize] = "-"
	} else {
		cells[ColSize] = FormatSize(e.Size)
	}
	cells[ColModified] = FormatModified(e.Modified, now)
	cells[ColPerm] = FormatPermissions(e)
	cells[ColType] = e.Ext
	cells[ColAction] = row.Mark.String()
	return cells
}

// ColumnWidths sizes every column to its widest cell or header.
func ColumnWidths(rows []Row, now time.Time) [ColumnCount]int {
	var widths [ColumnCount]int
	for i, h := range ColumnHeaders {
		widths[i] = textutil.DisplayWidth(h)
	}
	widths[ColCursor] = max(widths[ColCursor], 1)
	for _, row := range rows {
		for i, cell := range RowCells(row, false, now) {
			widths[i] = max(widths[i], textutil.DisplayWidth(cell))
		}
	}
	return widths
}

// TableWidth is the total width of a table with the given column widths.
func TableWidth(widths [ColumnCount]int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + ColumnSpacing*(ColumnCount-1)
}
