package state

import (
	"time"

	"github.com/kk-code-lab/filez/internal/logging"
	"github.com/kk-code-lab/filez/internal/textutil"
)

// InfoTab selects what the info panel shows.
type InfoTab int

const (
	TabLog InfoTab = iota
	TabQueue
	TabOk
	TabErr
	infoTabCount
)

// InfoTabTitles are the tab labels, in tab order.
var InfoTabTitles = []string{"LOG", "Queue", "Ok", "Err"}

func (t InfoTab) String() string {
	if t < 0 || t >= infoTabCount {
		return ""
	}
	return InfoTabTitles[t]
}

// DefaultScrollback bounds the number of log records kept for display.
const DefaultScrollback = 5000

// OpResult records the outcome of a filesystem operation.
type OpResult struct {
	Time time.Time
	Op   string
	Path string
	Err  error
}

// InfoState is the tabbed log and task panel. Offsets count rows back from
// the newest entry, so zero means the view follows new entries.
type InfoState struct {
	Tab        InfoTab
	Records    []logging.Record
	Scrollback int
	Queue      []QueueItem
	Ok         []OpResult
	Err        []OpResult
	Offsets    [infoTabCount]int
	Wrap       bool
	OffsetX    int
	Dropped    uint64
	Height     int
}

// NewInfoState creates an empty info panel.
func NewInfoState(scrollback int, wrap bool) *InfoState {
	if scrollback <= 0 {
		scrollback = DefaultScrollback
	}
	return &InfoState{Scrollback: scrollback, Wrap: wrap}
}

// Len is the number of entries of tab.
func (s *InfoState) Len(tab InfoTab) int {
	switch tab {
	case TabLog:
		return len(s.Records)
	case TabQueue:
		return len(s.Queue)
	case TabOk:
		return len(s.Ok)
	case TabErr:
		return len(s.Err)
	}
	return 0
}

// AppendRecords adds drained log records, dropping the oldest past the
// scrollback limit. A view scrolled back keeps showing the same records.
func (s *InfoState) AppendRecords(records []logging.Record) {
	if len(records) == 0 {
		return
	}
	s.Records = append(s.Records, records...)
	if over := len(s.Records) - s.Scrollback; over > 0 {
		s.Records = append(s.Records[:0:0], s.Records[over:]...)
	}
	if s.Offsets[TabLog] > 0 {
		s.Offsets[TabLog] += len(records)
	}
	s.clamp(TabLog)
}

// AddResult appends an operation result to the Ok or Err tab. Both tabs keep
// at most Scrollback results.
func (s *InfoState) AddResult(r OpResult) {
	tab := TabOk
	if r.Err != nil {
		s.Err = capResults(append(s.Err, r), s.Scrollback)
		tab = TabErr
	} else {
		s.Ok = capResults(append(s.Ok, r), s.Scrollback)
	}
	if s.Offsets[tab] > 0 {
		s.Offsets[tab]++
	}
	s.clamp(tab)
}

func capResults(results []OpResult, limit int) []OpResult {
	if over := len(results) - limit; over > 0 {
		return append(results[:0:0], results[over:]...)
	}
	return results
}

// SetQueue replaces the queue snapshot.
func (s *InfoState) SetQueue(items []QueueItem) {
	s.Queue = items
	s.clamp(TabQueue)
}

func (s *InfoState) clamp(tab InfoTab) {
	s.Offsets[tab] = max(min(s.Offsets[tab], s.Len(tab)-1), 0)
}

// Scroll moves the current tab's view; positive delta moves towards older
// entries.
func (s *InfoState) Scroll(delta int) {
	s.Offsets[s.Tab] += delta
	s.clamp(s.Tab)
}

// JumpToEnd returns the current tab to following the newest entry.
func (s *InfoState) JumpToEnd() {
	s.Offsets[s.Tab] = 0
}

// Offset is the current tab's offset from the newest entry.
func (s *InfoState) Offset() int {
	return s.Offsets[s.Tab]
}

// NextTab selects the tab to the right, wrapping around.
func (s *InfoState) NextTab() {
	s.Tab = (s.Tab + 1) % infoTabCount
}

// PrevTab selects the tab to the left, wrapping around.
func (s *InfoState) PrevTab() {
	s.Tab = (s.Tab + infoTabCount - 1) % infoTabCount
}

// SelectTab switches to tab if it exists.
func (s *InfoState) SelectTab(tab InfoTab) bool {
	if tab < 0 || tab >= infoTabCount {
		return false
	}
	s.Tab = tab
	return true
}

// ToggleWrap switches between wrapped and horizontally scrolled log lines.
func (s *InfoState) ToggleWrap() {
	s.Wrap = !s.Wrap
	s.OffsetX = 0
}

// ScrollX shifts unwrapped lines horizontally, stopping once the widest
// visible entry ends at the right edge of a view viewWidth columns wide.
func (s *InfoState) ScrollX(delta, viewWidth int) {
	if s.Wrap {
		return
	}
	content := 0
	start, end := s.Window(s.Height)
	for i := start; i < end; i++ {
		content = max(content, s.EntryWidth(s.Tab, i))
	}
	s.OffsetX = max(min(s.OffsetX+delta, content-viewWidth), 0)
}

// Resize sets the number of visible rows.
func (s *InfoState) Resize(height int) {
	s.Height = max(height, 0)
}

// Window returns the [start, end) range of entries of the current tab shown
// in a view of height rows, oldest first.
func (s *InfoState) Window(height int) (int, int) {
	end := s.Len(s.Tab) - s.Offset()
	start := max(end-height, 0)
	return start, max(end, 0)
}

// InfoTimeLayout formats entry times in the info panel.
const InfoTimeLayout = "15:04:05"

// EntryWidth is the number of columns entry i of tab takes when drawn.
func (s *InfoState) EntryWidth(tab InfoTab, i int) int {
	var parts []string
	switch tab {
	case TabLog:
		parts = RecordParts(s.Records[i])
	case TabQueue:
		parts = QueueParts(s.Queue[i])
	case TabOk:
		parts = ResultParts(s.Ok[i])
	case TabErr:
		parts = ResultParts(s.Err[i])
	}
	width := 0
	for _, part := range parts {
		width += textutil.DisplayWidth(part)
	}
	return width
}

// RecordParts splits a log record into its time, level, target and message
// segments, ready to draw.
func RecordParts(rec logging.Record) []string {
	msg := textutil.ExpandTabs(rec.Message+logging.FormatFields(rec.Fields), textutil.DefaultTabWidth)
	return []string{
		"[" + rec.Time.Format(InfoTimeLayout) + " ",
		rec.Level.String(),
		" " + textutil.SanitizeTerminalText(rec.Target) + "] ",
		textutil.SanitizeTerminalText(msg),
	}
}

// QueueParts splits a queued mark into its padded mark name, panel and path.
func QueueParts(item QueueItem) []string {
	mark := item.Mark.String()
	for len(mark) < len("Upload") {
		mark += " "
	}
	return []string{mark, " " + item.Panel.Title() + " ", textutil.SanitizeTerminalText(item.Path)}
}

// ResultParts splits an operation result into time, operation, path and,
// for failures, the error.
func ResultParts(r OpResult) []string {
	parts := []string{
		r.Time.Format(InfoTimeLayout) + " ",
		r.Op + " ",
		textutil.SanitizeTerminalText(r.Path),
	}
	if r.Err != nil {
		parts = append(parts, ": "+textutil.SanitizeTerminalText(r.Err.Error()))
	}
	return parts
}
