package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLogAppend(t *testing.T) {
	log := NewMemoryLog()

	require.NoError(t, log.Append(Entry{Timestamp: time.Now(), Message: "Added 1 of apple"}))
	require.NoError(t, log.Append(Entry{Timestamp: time.Now(), Message: "Added 2 of banana"}))

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Added 1 of apple", entries[0].Message)
	assert.Equal(t, "Added 2 of banana", entries[1].Message)
}

func TestMemoryLogEntriesReturnsCopy(t *testing.T) {
	log := NewMemoryLog()
	require.NoError(t, log.Append(Entry{Timestamp: time.Now(), Message: "Added 1 of apple"}))

	entries := log.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "Added 1 of apple", log.Entries()[0].Message)
}

func TestEntryString(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	entry := Entry{Timestamp: ts, Message: "Added 5 of grape"}

	assert.Equal(t, "2024-06-01T12:30:00Z: Added 5 of grape", entry.String())
}
