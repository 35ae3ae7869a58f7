package inventory

import (
	"fmt"
	"time"
)

// Entry represents a single operation log record
type Entry struct {
	Timestamp time.Time
	Message   string
}

// String renders the entry the way the report prints it
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Timestamp.Format(time.RFC3339), e.Message)
}

// LogSink receives operation log entries. The sink is owned by the caller;
// the store only appends to it and never reads entries back.
type LogSink interface {
	Append(entry Entry) error
}

// MemoryLog implements LogSink with in-memory storage
type MemoryLog struct {
	entries []Entry
}

// NewMemoryLog creates a new MemoryLog instance
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		entries: make([]Entry, 0),
	}
}

// Append adds a new entry to the log
func (l *MemoryLog) Append(entry Entry) error {
	l.entries = append(l.entries, entry)
	return nil
}

// Entries returns the logged entries
func (l *MemoryLog) Entries() []Entry {
	// Return a copy to prevent external modifications
	result := make([]Entry, len(l.entries))
	copy(result, l.entries)
	return result
}
