// Package testutil provides shared test doubles for the engine packages.
package testutil

import (
	"strings"
	"sync"

	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/logging"
)

// MockLogger implements logging.Logger and records every entry, so tests can
// assert on what the engine logged and at which level.
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []logging.Field
}

// NewMockLogger returns an empty capture logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) log(level, msg string, fields []logging.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields ...logging.Field) { m.log("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...logging.Field)  { m.log("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...logging.Field)  { m.log("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...logging.Field) { m.log("error", msg, fields) }

// With and Named return the same capture sink; tests assert on messages, not
// on logger structure.
func (m *MockLogger) With(fields ...logging.Field) logging.Logger { return m }
func (m *MockLogger) Named(name string) logging.Logger            { return m }

// Entries returns a copy of everything logged so far.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Clear discards captured entries.
func (m *MockLogger) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = m.entries[:0]
}

// HasEntry reports whether an entry at level whose message contains msg was
// logged.
func (m *MockLogger) HasEntry(level, msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Level == level && strings.Contains(e.Message, msg) {
			return true
		}
	}
	return false
}

// FieldValue returns the value of the named field in the first entry at
// level whose message contains msg, nil when absent.
func (m *MockLogger) FieldValue(level, msg, key string) interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Level != level || !strings.Contains(e.Message, msg) {
			continue
		}
		for _, f := range e.Fields {
			if f.Key == key {
				return f.Value
			}
		}
	}
	return nil
}
