package tachyoncore

// Builder collects the descriptors required to produce an Envelope and
// runs them through governance on Build. The zero value is not useful;
// construct one with NewBuilder.
//
// With* methods return the same *Builder to allow fluent chaining
// without an extra allocation per call (Go idiom, rather than the
// consuming-self style of the original Rust builder).
type Builder struct {
	vector     [IntentDimensions]float32
	cognitive  *CognitiveState
	metadata   *Metadata
	provenance *Provenance
}

// NewBuilder starts a Builder for the given intent vector, supplied by
// value.
func NewBuilder(vector [IntentDimensions]float32) *Builder {
	return &Builder{vector: vector}
}

// WithCognitiveState attaches the cognitive-state descriptor.
func (b *Builder) WithCognitiveState(s CognitiveState) *Builder {
	b.cognitive = &s
	return b
}

// WithMetadata attaches the remote-memory metadata descriptor.
func (b *Builder) WithMetadata(m Metadata) *Builder {
	b.metadata = &m
	return b
}

// WithProvenance attaches the provenance descriptor.
func (b *Builder) WithProvenance(p Provenance) *Builder {
	b.provenance = &p
	return b
}

// Build assigns a fresh sync id and version 1, runs governance, and
// returns either the frozen Envelope or a typed Rejection. Missing-field
// checks precede governance checks; within governance the order is
// Inspira -> Firma -> Audit, and the first failure short-circuits.
func (b *Builder) Build() (Envelope, *Rejection) {
	return b.buildWithVersion(1)
}

func (b *Builder) buildWithVersion(version uint32) (Envelope, *Rejection) {
	if b.cognitive == nil {
		return Envelope{}, newRejection(ErrMissingCognitiveState)
	}
	if b.metadata == nil {
		return Envelope{}, newRejection(ErrMissingMetadata)
	}
	if b.provenance == nil {
		return Envelope{}, newRejection(ErrMissingProvenance)
	}

	// sync_id and version are assigned unconditionally before governance
	// runs, so a rejected build still consumes a Lamport tick: this
	// matches the builder's reference construction, which sets sync_id
	// into the struct literal first and runs its governance veto
	// afterward on the fully-built value.
	env := Envelope{
		syncID:     NextTimestamp(),
		version:    version,
		frozen:     true,
		vector:     b.vector,
		cognitive:  *b.cognitive,
		metadata:   *b.metadata,
		provenance: *b.provenance,
	}

	if rej := runGovernance(env.cognitive, &env.vector, env.provenance); rej != nil {
		return Envelope{}, rej
	}

	return env, nil
}
