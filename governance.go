package tachyoncore

import "errors"

// Decision is the outcome of running the governance pipeline against an
// envelope.
type Decision int

const (
	// Accepted means all three gates passed.
	Accepted Decision = iota
	// DecisionInspiraRejected means the cognitive-state gate failed.
	DecisionInspiraRejected
	// DecisionFirmaRejected means the intent-vector gate failed.
	DecisionFirmaRejected
	// DecisionAuditRejected means the audit-clearance gate failed.
	DecisionAuditRejected
)

func (d Decision) String() string {
	switch d {
	case Accepted:
		return "Accepted"
	case DecisionInspiraRejected:
		return "InspiraRejected"
	case DecisionFirmaRejected:
		return "FirmaRejected"
	case DecisionAuditRejected:
		return "AuditRejected"
	default:
		return "Unknown"
	}
}

// Rejection is the typed, caller-visible outcome of a failed builder or
// governance check. It implements error and is comparable via
// errors.Is against the package-level Err* sentinels.
type Rejection struct {
	err error
}

func (r *Rejection) Error() string { return r.err.Error() }

// Unwrap supports errors.Is/errors.As against the sentinel values below.
func (r *Rejection) Unwrap() error { return r.err }

// Builder-shape sentinels: programmer errors, surfaced immediately.
var (
	ErrMissingCognitiveState = errors.New("tachyoncore: missing cognitive state")
	ErrMissingMetadata       = errors.New("tachyoncore: missing metadata")
	ErrMissingProvenance     = errors.New("tachyoncore: missing provenance")
)

// Governance rejection sentinels: data-driven, surfaced to the caller
// for disposition.
var (
	ErrInspiraRejected = errors.New("tachyoncore: inspira gate rejected cognitive state")
	ErrFirmaRejected   = errors.New("tachyoncore: firma gate rejected intent vector")
	ErrAuditRejected   = errors.New("tachyoncore: audit gate rejected provenance")
)

func newRejection(err error) *Rejection { return &Rejection{err: err} }

// GovernanceDecision runs the three-gate pipeline against env without
// producing an error: it names Accepted, or the first failing gate in
// order Inspira, Firma, Audit. Callers use it to obtain the decision
// they record with [ReplayLog.Push]; unlike Build, it has no
// missing-field preconditions.
func GovernanceDecision(env *Envelope) Decision {
	state := env.CognitiveState()
	if !inspiraPasses(state) {
		return DecisionInspiraRejected
	}
	vector := env.IntentVector()
	if !firmaPasses(&vector) {
		return DecisionFirmaRejected
	}
	if !env.Provenance().AuditClearance {
		return DecisionAuditRejected
	}
	return Accepted
}

// runGovernance runs Inspira -> Firma -> Audit in order against the
// not-yet-exposed fields of a freshly built envelope, short-circuiting
// on the first failure.
func runGovernance(state CognitiveState, vector *[IntentDimensions]float32, provenance Provenance) *Rejection {
	if !inspiraPasses(state) {
		return newRejection(ErrInspiraRejected)
	}
	if !firmaPasses(vector) {
		return newRejection(ErrFirmaRejected)
	}
	if !provenance.AuditClearance {
		return newRejection(ErrAuditRejected)
	}
	return nil
}

// inspiraPasses validates a CognitiveState: every component must lie in
// [-1.0, 1.0], and turbulence must not exceed 0.9.
func inspiraPasses(s CognitiveState) bool {
	if !s.IsNormalized() {
		return false
	}
	if s.Turbulence > 0.9 {
		return false
	}
	return true
}
