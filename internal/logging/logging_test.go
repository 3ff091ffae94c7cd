package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestRecordFormat(t *testing.T) {
	rec := Record{Time: fixedTime, Level: LevelError, Target: "fs", Message: "read failed", Fields: []any{"path", "/tmp", "orphan"}}
	require.Equal(t, "2025-12-06T10:45:00 [ERROR] [fs] read failed path=/tmp orphan=<missing>", rec.Format())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		"":        LevelInfo,
		"warning": LevelWarn,
		" error ": LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestLoggerDeliversInOrder(t *testing.T) {
	log := New(Options{Capacity: 8, Now: fixedClock})
	log.Info("one")
	log.With("fs").Warn("two", "path", "/x")

	recs := log.Drain(0)
	require.Len(t, recs, 2)
	require.Equal(t, "one", recs[0].Message)
	require.Equal(t, "app", recs[0].Target)
	require.Equal(t, "fs", recs[1].Target)
	require.Equal(t, LevelWarn, recs[1].Level)
	require.Empty(t, log.Drain(0))
}

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	log := New(Options{MinLevel: LevelWarn})
	log.Debug("hidden")
	log.Error("shown")
	recs := log.Drain(0)
	require.Len(t, recs, 1)
	require.Equal(t, "shown", recs[0].Message)
}

func TestLoggerDropsWhenFull(t *testing.T) {
	var sink bytes.Buffer
	log := New(Options{Capacity: 2, Sink: &sink, Now: fixedClock})
	for i := 0; i < 5; i++ {
		log.Info("msg", "i", i)
	}
	require.Equal(t, uint64(3), log.Dropped())
	require.Len(t, log.Drain(0), 2)
	require.Equal(t, 3, strings.Count(sink.String(), "dropped record"))
	require.Contains(t, sink.String(), "[INFO] [app] msg i=0")
}

func TestLoggerDrainLimit(t *testing.T) {
	log := New(Options{Capacity: 10})
	for i := 0; i < 5; i++ {
		log.Info("msg")
	}
	require.Len(t, log.Drain(3), 3)
	require.Len(t, log.Drain(3), 2)
}

func TestLoggerConcurrentProducers(t *testing.T) {
	log := New(Options{Capacity: 64})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				log.Debug("tick")
			}
		}()
	}
	wg.Wait()
	delivered := uint64(len(log.Drain(0)))
	require.Equal(t, uint64(160), delivered+log.Dropped())
}

func TestNilLoggerIsSafe(t *testing.T) {
	log := Nop()
	log.Info("ignored")
	log.With("x").ErrorErr("ignored", nil)
	require.Nil(t, log.Drain(0))
	require.Zero(t, log.Dropped())
	require.False(t, log.Enabled(LevelError))
}
