// Package telemetry provides an optional, structured-logging view onto
// governance decisions and ledger activity produced by the tachyoncore
// package. It is never imported by tachyoncore itself: the core stays
// free of I/O, and a caller wires an Observer in only at the edge
// (see cmd/tachyon-bench).
package telemetry

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/joeycumines/go-tachyoncore"
)

// Observer receives notifications as envelopes move through governance
// and the ledgers. Implementations must not block the caller for long;
// the cmd/tachyon-bench harness calls these synchronously from its
// producer and consumer loops (tachyoncore itself never calls them).
type Observer interface {
	ObserveDecision(syncID uint64, decision tachyoncore.Decision, senderHash uint64)
	ObserveCommit(syncID uint64, shadowHash uint64)
}

// Logger is an Observer backed by a logiface.Logger using the stumpy
// zero-allocation JSON backend.
type Logger struct {
	log *logiface.Logger[*stumpy.Event]
}

// NewLogger builds a Logger configured by the given stumpy options
// (WithWriter, WithLevelField, and so on). With no options, stumpy
// writes newline-delimited JSON to os.Stderr.
func NewLogger(options ...stumpy.Option) *Logger {
	return &Logger{
		log: stumpy.L.New(stumpy.L.WithStumpy(options...)),
	}
}

func (l *Logger) ObserveDecision(syncID uint64, decision tachyoncore.Decision, senderHash uint64) {
	b := l.log.Info()
	if decision != tachyoncore.Accepted {
		b = l.log.Warning()
	}
	b.Uint64("sync_id", syncID).
		Str("decision", decision.String()).
		Uint64("sender_hash", senderHash).
		Log("governance decision")
}

func (l *Logger) ObserveCommit(syncID uint64, shadowHash uint64) {
	l.log.Info().
		Uint64("sync_id", syncID).
		Uint64("shadow_hash", shadowHash).
		Log("shadow ledger commit")
}

// compile time assertion
var _ Observer = (*Logger)(nil)
