package tachyoncore

// ShadowEntry records one piece of speculative work awaiting
// confirmation.
type ShadowEntry struct {
	SyncID           uint64
	SpeculativeHash  uint64
	Committed        bool
}

// ShadowLedger is an append-only, in-memory log of speculative work.
// Not thread-safe: intended to be owned by a single coordinator.
type ShadowLedger struct {
	entries []ShadowEntry
}

// NewShadowLedger constructs an empty ShadowLedger.
func NewShadowLedger() *ShadowLedger {
	return &ShadowLedger{}
}

// PushSpeculative appends a new entry with Committed = false.
func (l *ShadowLedger) PushSpeculative(syncID, speculativeHash uint64) {
	l.entries = append(l.entries, ShadowEntry{SyncID: syncID, SpeculativeHash: speculativeHash})
}

// ConfirmCommit finds the first uncommitted entry with the given
// syncID, marks it committed, and returns true. It returns false if no
// such entry exists.
func (l *ShadowLedger) ConfirmCommit(syncID uint64) bool {
	for i := range l.entries {
		if l.entries[i].SyncID == syncID && !l.entries[i].Committed {
			l.entries[i].Committed = true
			return true
		}
	}
	return false
}

// CommittedCount returns the number of entries currently committed.
func (l *ShadowLedger) CommittedCount() int {
	n := 0
	for _, e := range l.entries {
		if e.Committed {
			n++
		}
	}
	return n
}
