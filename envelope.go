package tachyoncore

import "unsafe"

// CognitiveState is an 8-float descriptor of a producer's disposition.
// Fixed C-style layout: 8 x float32, 32 bytes total, field order
// significant.
type CognitiveState struct {
	ExploreResolve      float32
	AbstractConcrete    float32
	SubjectiveObjective float32
	DivergentConvergent float32
	PassiveActive       float32
	EmotionalValence    float32
	EnergyLevel         float32
	Turbulence          float32
}

// IsNormalized reports whether every component lies in [-1.0, 1.0].
func (s CognitiveState) IsNormalized() bool {
	for _, v := range [...]float32{
		s.ExploreResolve,
		s.AbstractConcrete,
		s.SubjectiveObjective,
		s.DivergentConvergent,
		s.PassiveActive,
		s.EmotionalValence,
		s.EnergyLevel,
		s.Turbulence,
	} {
		if v < -1.0 || v > 1.0 {
			return false
		}
	}
	return true
}

// Metadata carries the remote-memory payload handoff descriptor. Fixed
// C-style layout, 48 bytes: entropy_seed[32], payload_ptr u64, rkey u32,
// ghost_flag u8, pad[3].
type Metadata struct {
	EntropySeed [EntropySeedBytes]byte
	PayloadPtr  uint64
	RKey        uint32
	GhostFlag   bool
	_           [3]byte
}

// Provenance carries sender and integrity descriptors. Fixed C-style
// layout, 24 bytes: sender_hash u64, integrity_hash u64,
// audit_clearance u8, pad[7].
type Provenance struct {
	SenderHash     uint64
	IntegrityHash  uint64
	AuditClearance bool
	_              [7]byte
}

// Envelope is the immutable, versioned record carrying an intent vector
// plus its validation and routing descriptors. Fixed C-style layout:
// sync_id u64, version u32, frozen u8, pad[3], intent_vector[1024]f32,
// CognitiveState, Metadata, Provenance. Total size is guarded at compile
// time (see the unsafe.Sizeof guards below) to stay within the
// 4192-4256 byte window this type's wire contract requires.
//
// Envelopes are produced only through [Builder]; once built they are
// logically immutable. There are no exported setters: mutation happens
// only by constructing a new version via [Envelope.NewVersion] or by
// passing a slot checked out of a [Pool] to [Rebuild], which
// re-initializes the slot through the same builder contract.
type Envelope struct {
	syncID     uint64
	version    uint32
	frozen     bool
	_          [3]byte
	vector     [IntentDimensions]float32
	cognitive  CognitiveState
	metadata   Metadata
	provenance Provenance
}

// compile-time layout guards: both expressions must be representable as
// non-negative array lengths, or the package fails to compile.
var (
	_ [unsafe.Sizeof(Envelope{}) - 4192]byte
	_ [4256 - unsafe.Sizeof(Envelope{})]byte
)

// sizeofEnvelope returns the in-memory size of an Envelope value, used
// by Pool to estimate huge-page block counts.
func sizeofEnvelope(e Envelope) uintptr { return unsafe.Sizeof(e) }

// SyncID returns the envelope's monotonic Lamport timestamp.
func (e *Envelope) SyncID() uint64 { return e.syncID }

// Version returns the envelope's version number (>= 1).
func (e *Envelope) Version() uint32 { return e.version }

// Frozen reports whether the envelope was produced by the builder. It
// is always true for any Envelope obtained through this package.
func (e *Envelope) Frozen() bool { return e.frozen }

// IntentVector returns the envelope's 1024-element intent vector.
func (e *Envelope) IntentVector() [IntentDimensions]float32 { return e.vector }

// CognitiveState returns the envelope's cognitive-state descriptor.
func (e *Envelope) CognitiveState() CognitiveState { return e.cognitive }

// Metadata returns the envelope's remote-memory metadata descriptor.
func (e *Envelope) Metadata() Metadata { return e.metadata }

// Provenance returns the envelope's provenance descriptor.
func (e *Envelope) Provenance() Provenance { return e.provenance }

// NewVersion builds a successor envelope with version = e.Version()+1,
// running the same governance pipeline as Build(). It returns a
// *Rejection on failure; the receiver is never mutated.
func (e *Envelope) NewVersion(nextVector [IntentDimensions]float32, nextState CognitiveState, nextMetadata Metadata, nextProvenance Provenance) (Envelope, *Rejection) {
	b := NewBuilder(nextVector).
		WithCognitiveState(nextState).
		WithMetadata(nextMetadata).
		WithProvenance(nextProvenance)
	return b.buildWithVersion(e.version + 1)
}
