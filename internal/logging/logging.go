// Package logging delivers log records from any goroutine to the UI through a
// bounded channel. A Logger is constructed explicitly and handed to the code
// that needs it; there is no process-wide logger.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultCapacity is the number of undelivered records kept before new ones
// are dropped.
const DefaultCapacity = 1024

// Level represents log severity.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Record is one log event.
type Record struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
	Fields  []any
}

// Format renders the record as a single line:
//
//	2025-12-06T10:45:00 [ERROR] [fs] message key=value
func (r Record) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", r.Time.Format("2006-01-02T15:04:05"), r.Level, r.Target, r.Message)
	b.WriteString(FormatFields(r.Fields))
	return b.String()
}

// FormatFields renders key/value pairs as " key=value". An orphan key is
// printed as key=<missing>.
func FormatFields(fields []any) string {
	var b strings.Builder
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	return b.String()
}

// Options configures a Logger.
type Options struct {
	// Capacity bounds the delivery channel. Zero means DefaultCapacity.
	Capacity int
	// MinLevel drops records below this level before they are queued.
	MinLevel Level
	// Sink, when set, receives every formatted record and a notice for every
	// dropped one.
	Sink io.Writer
	// Now overrides the clock.
	Now func() time.Time
}

type core struct {
	records  chan Record
	minLevel Level
	now      func() time.Time
	dropped  atomic.Uint64

	sinkMu sync.Mutex
	sink   io.Writer
}

// Logger emits records for one target. Loggers derived with With share the
// same channel. A nil *Logger discards everything.
type Logger struct {
	core   *core
	target string
}

// New creates a logger for target "app".
func New(opts Options) *Logger {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Logger{
		core: &core{
			records:  make(chan Record, capacity),
			minLevel: opts.MinLevel,
			now:      now,
			sink:     opts.Sink,
		},
		target: "app",
	}
}

// Nop returns a logger that discards all records.
func Nop() *Logger {
	return nil
}

// With returns a logger for another target sharing this logger's channel.
func (l *Logger) With(target string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{core: l.core, target: target}
}

// Enabled reports whether records at level are kept.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.core.minLevel
}

// Log queues a record without blocking. When the channel is full the record
// is dropped and counted.
func (l *Logger) Log(level Level, msg string, fields ...any) {
	if !l.Enabled(level) {
		return
	}
	rec := Record{
		Time:    l.core.now(),
		Level:   level,
		Target:  l.target,
		Message: msg,
		Fields:  fields,
	}
	l.core.write(rec.Format())

	select {
	case l.core.records <- rec:
	default:
		n := l.core.dropped.Add(1)
		l.core.write(fmt.Sprintf("%s [WARN] [logging] channel full, dropped record total=%d", rec.Time.Format("2006-01-02T15:04:05"), n))
	}
}

func (c *core) write(line string) {
	if c.sink == nil {
		return
	}
	c.sinkMu.Lock()
	defer c.sinkMu.Unlock()
	_, _ = io.WriteString(c.sink, line+"\n")
}

func (l *Logger) Trace(msg string, fields ...any) { l.Log(LevelTrace, msg, fields...) }
func (l *Logger) Debug(msg string, fields ...any) { l.Log(LevelDebug, msg, fields...) }
func (l *Logger) Info(msg string, fields ...any)  { l.Log(LevelInfo, msg, fields...) }
func (l *Logger) Warn(msg string, fields ...any)  { l.Log(LevelWarn, msg, fields...) }
func (l *Logger) Error(msg string, fields ...any) { l.Log(LevelError, msg, fields...) }

// ErrorErr logs msg at error level with err attached as the "error" field.
func (l *Logger) ErrorErr(msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	l.Log(LevelError, msg, fields...)
}

// Drain returns up to limit queued records without blocking. limit <= 0 drains
// everything currently queued.
func (l *Logger) Drain(limit int) []Record {
	if l == nil {
		return nil
	}
	var out []Record
	for limit <= 0 || len(out) < limit {
		select {
		case rec := <-l.core.records:
			out = append(out, rec)
		default:
			return out
		}
	}
	return out
}

// Dropped reports how many records were lost to a full channel.
func (l *Logger) Dropped() uint64 {
	if l == nil {
		return 0
	}
	return l.core.dropped.Load()
}
