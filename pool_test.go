package tachyoncore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S7: pool of capacity 8 seeded with a valid envelope:
// ApproxHugepageBlocks() == 1; eight consecutive checkouts return
// slots 0..7 and the ninth returns slot 0.
func TestPool_S7_RoundRobinAndHugepageEstimate(t *testing.T) {
	template, rej := sampleBuilder().Build()
	require.Nil(t, rej)

	p := NewPool(8, template)
	assert.Equal(t, 8, p.Capacity())
	assert.Equal(t, 1, p.ApproxHugepageBlocks())

	var slots [8]*Envelope
	for i := 0; i < 8; i++ {
		slots[i] = p.Checkout()
	}
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			assert.NotSame(t, slots[i], slots[j])
		}
	}

	ninth := p.Checkout()
	assert.Same(t, slots[0], ninth)
}

func TestPool_PanicsOnInvalidCapacity(t *testing.T) {
	template, rej := sampleBuilder().Build()
	require.Nil(t, rej)
	assert.Panics(t, func() { NewPool(0, template) })
}

func TestPool_Rebuild(t *testing.T) {
	template, rej := sampleBuilder().Build()
	require.Nil(t, rej)

	p := NewPool(2, template)
	slot := p.Checkout()
	originalSyncID := slot.SyncID()

	rebuildRej := Rebuild(slot, sampleBuilder())
	require.Nil(t, rebuildRej)
	assert.Greater(t, slot.SyncID(), originalSyncID)
}

func TestPool_RebuildPropagatesRejection(t *testing.T) {
	template, rej := sampleBuilder().Build()
	require.Nil(t, rej)

	p := NewPool(1, template)
	slot := p.Checkout()
	before := *slot

	badProvenance := sampleProvenance()
	badProvenance.AuditClearance = false
	rebuildRej := Rebuild(slot, NewBuilder(sampleVector()).
		WithCognitiveState(sampleState()).
		WithMetadata(sampleMetadata()).
		WithProvenance(badProvenance))
	require.NotNil(t, rebuildRej)
	assert.Equal(t, before, *slot, "slot must be untouched on rejection")
}
