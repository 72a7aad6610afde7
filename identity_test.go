package tachyoncore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityHash_EmptyStringIsOffsetBasis(t *testing.T) {
	assert.Equal(t, uint64(0xcbf29ce484222325), IdentityHash(""))
}

// S8: IdentityHash("agent_alpha_v3") is constant across runs.
func TestIdentityHash_S8_ConstantAcrossCalls(t *testing.T) {
	a := IdentityHash("agent_alpha_v3")
	b := IdentityHash("agent_alpha_v3")
	assert.Equal(t, a, b)
	assert.NotEqual(t, uint64(0xcbf29ce484222325), a)
}

func TestIdentityHash_DifferentInputsUsuallyDiffer(t *testing.T) {
	assert.NotEqual(t, IdentityHash("agent_a"), IdentityHash("agent_b"))
}

func TestIdentityHash_Pure(t *testing.T) {
	inputs := []string{"", "x", "agent_alpha_v3", "a very long sender identifier string used for testing purposes"}
	for _, in := range inputs {
		assert.Equal(t, IdentityHash(in), IdentityHash(in))
	}
}
