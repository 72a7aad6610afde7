package tachyoncore

import (
	"sync/atomic"
	"time"
)

// Clock is a process-wide monotonic 64-bit timestamp source. Its zero
// value is ready to use, starting at zero.
//
// [Clock.Next] is wait-free absent contention and lock-free under
// contention: it loads the counter, computes a candidate ahead of both
// the previous counter value and the current wall clock, then publishes
// it with a sequentially-consistent compare-and-swap, retrying on
// failure. This guarantees every value returned by every [Clock.Next]
// call across every goroutine forms a strict total order.
type Clock struct {
	counter atomic.Uint64
}

// defaultClock is the package-wide Lamport clock used by [Builder].
var defaultClock Clock

// nowMillis returns the current Unix-epoch millisecond count. It panics
// if the system clock reports a time before the Unix epoch, since that
// represents an unrecoverable environment fault, not a caller error.
func nowMillis() uint64 {
	ms := time.Now().UnixMilli()
	if ms < 0 {
		panic("tachyoncore: wall clock reports a time before the Unix epoch")
	}
	return uint64(ms)
}

// Next returns a u64 strictly greater than every value previously
// returned by this Clock, and at least wallClockMillis+1.
func (c *Clock) Next() uint64 {
	wallClockMillis := nowMillis()
	for {
		observed := c.counter.Load()
		candidate := observed
		if wallClockMillis > candidate {
			candidate = wallClockMillis
		}
		if candidate == ^uint64(0) {
			// saturate rather than wrap
			candidate--
		}
		candidate++
		if c.counter.CompareAndSwap(observed, candidate) {
			return candidate
		}
	}
}

// NextTimestamp returns the next strictly-increasing Lamport timestamp
// from the package-wide default clock.
func NextTimestamp() uint64 {
	return defaultClock.Next()
}
