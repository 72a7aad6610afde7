// Package tachyoncore implements the production, governance, versioning,
// and buffering of fixed-size intent envelopes that flow through a
// higher-level agent pipeline.
//
// The core is intentionally pure: no I/O, no logging, no network or disk
// access. Envelopes are produced only through [Builder], validated by a
// three-stage governance pipeline ([GovernanceDecision]), timestamped by a
// process-wide [Clock], and optionally buffered through a [Ring] or
// checked out of a [Pool]. Observability is layered on from the outside,
// see the sibling telemetry package.
package tachyoncore

// IntentDimensions is the fixed length of an intent vector.
const IntentDimensions = 1024

// EntropySeedBytes is the fixed length of Metadata.EntropySeed.
const EntropySeedBytes = 32
