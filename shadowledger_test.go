package tachyoncore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShadowLedger_PushAndConfirm(t *testing.T) {
	l := NewShadowLedger()
	l.PushSpeculative(1, 0xA)
	l.PushSpeculative(2, 0xB)

	assert.Equal(t, 0, l.CommittedCount())

	ok := l.ConfirmCommit(1)
	assert.True(t, ok)
	assert.Equal(t, 1, l.CommittedCount())

	ok = l.ConfirmCommit(99)
	assert.False(t, ok)
	assert.Equal(t, 1, l.CommittedCount())
}

func TestShadowLedger_ConfirmOnlyFirstUncommittedMatch(t *testing.T) {
	l := NewShadowLedger()
	l.PushSpeculative(5, 0x1)
	l.PushSpeculative(5, 0x2)

	assert.True(t, l.ConfirmCommit(5))
	assert.Equal(t, 1, l.CommittedCount())

	assert.True(t, l.ConfirmCommit(5))
	assert.Equal(t, 2, l.CommittedCount())

	assert.False(t, l.ConfirmCommit(5))
}
