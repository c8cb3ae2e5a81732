package logging

import "sync"

// MockLogger captures log entries for verification in tests. Loggers
// derived via WithError/WithField share the parent's entry log, so a test
// can inspect everything logged through any derived logger.
type MockLogger struct {
	mu            sync.Mutex
	shared        *entryLog
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log record.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

type entryLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (m *MockLogger) log() *entryLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shared == nil {
		m.shared = &entryLog{}
	}
	return m.shared
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	el := m.log()
	el.mu.Lock()
	defer el.mu.Unlock()
	el.entries = append(el.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// WithError returns a logger that records the error on subsequent entries.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		shared:        m.log(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a logger that records the field on subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &MockLogger{
		shared:        m.log(),
		pendingError:  m.pendingError,
		pendingFields: append(append([]Field{}, m.pendingFields...), Field{Key: key, Value: value}),
	}
}

// Entries returns a copy of everything recorded so far.
func (m *MockLogger) Entries() []LogEntry {
	el := m.log()
	el.mu.Lock()
	defer el.mu.Unlock()
	return append([]LogEntry{}, el.entries...)
}

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries() {
		if e.Message == msg {
			return true
		}
	}
	return false
}
