// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a zerolog.Logger that writes to testing.T's log.
func NewTestLogger(t testing.TB) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: testWriter{t}, TimeFormat: time.RFC3339, NoColor: true}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// RecordingLogger returns a logger that keeps its JSON lines for inspection.
func RecordingLogger() (zerolog.Logger, *Lines) {
	lines := &Lines{}
	return zerolog.New(lines).Level(zerolog.DebugLevel), lines
}

// Lines collects log lines.
type Lines struct {
	mu      sync.Mutex
	entries []string
}

// Write implements io.Writer.
func (l *Lines) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, strings.TrimSpace(string(p)))
	return len(p), nil
}

// Contains reports whether any line contains substr.
func (l *Lines) Contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

// Len returns the number of lines written.
func (l *Lines) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

type testWriter struct {
	t testing.TB
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}
