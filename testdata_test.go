package tachyoncore

// Shared test fixtures, mirroring the sample_vector/sample_state/
// sample_metadata/sample_provenance helpers from the Rust predecessor's
// test module.

func sampleVector() [IntentDimensions]float32 {
	var v [IntentDimensions]float32
	v[0] = 0.12
	v[1] = -0.45
	return v
}

func sampleState() CognitiveState {
	return CognitiveState{
		ExploreResolve:      0.7,
		AbstractConcrete:    -0.3,
		SubjectiveObjective: 0.2,
		DivergentConvergent: 0.8,
		PassiveActive:       0.9,
		EmotionalValence:    0.85,
		EnergyLevel:         0.92,
		Turbulence:          0.15,
	}
}

func sampleMetadata() Metadata {
	m := Metadata{
		PayloadPtr: 0x7ffd1234,
		RKey:       0xabcd,
		GhostFlag:  false,
	}
	for i := range m.EntropySeed {
		m.EntropySeed[i] = 7
	}
	return m
}

func sampleProvenance() Provenance {
	return Provenance{
		SenderHash:     IdentityHash("agent_alpha_v3"),
		IntegrityHash:  0xDEADBEEF,
		AuditClearance: true,
	}
}

func sampleBuilder() *Builder {
	return NewBuilder(sampleVector()).
		WithCognitiveState(sampleState()).
		WithMetadata(sampleMetadata()).
		WithProvenance(sampleProvenance())
}
