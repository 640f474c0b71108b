package engine

import (
	"sync"

	"github.com/kprusa/distsim/core"
)

// ChangeRecord is one entry in a ChangeLog: the node that changed, the
// simulated time the change was observed, and a full attribute snapshot.
type ChangeRecord struct {
	Node core.NodeID
	Time float64
	Snap map[string]any
}

// ChangeLog is an append-only sequence of ChangeRecords, mutex-guarded for a
// single-writer/poll-reader access pattern: the engine appends from its drain
// loop, an external observer polls from any other goroutine. This trades the
// channel-plus-goroutine shape of the ParProg2026 EventRecorder for a plain
// slice, since this module's consumer polls rather than blocks on delivery.
type ChangeLog struct {
	mu      sync.Mutex
	records []ChangeRecord
	cursor  int
}

// NewChangeLog returns an empty ChangeLog.
func NewChangeLog() *ChangeLog {
	return &ChangeLog{}
}

// Append records a new entry.
func (c *ChangeLog) Append(rec ChangeRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

// Len reports the total number of recorded entries.
func (c *ChangeLog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Next returns the next unread entry and advances the log's read cursor, or
// (ChangeRecord{}, false) if the consumer has caught up. Calling Next never
// removes entries, so a second observer reading the same ChangeLog would
// race the first's cursor; this module expects exactly one observer per run,
// per the external interface this log feeds.
func (c *ChangeLog) Next() (ChangeRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cursor >= len(c.records) {
		return ChangeRecord{}, false
	}
	rec := c.records[c.cursor]
	c.cursor++
	return rec, true
}

// All returns a copy of every entry recorded so far, in order.
func (c *ChangeLog) All() []ChangeRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ChangeRecord, len(c.records))
	copy(out, c.records)
	return out
}
