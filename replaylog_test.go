package tachyoncore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayLog_PushAndRecords(t *testing.T) {
	env, rej := sampleBuilder().Build()
	require.Nil(t, rej)

	l := NewReplayLog()
	l.Push(&env, Accepted)

	records := l.Records()
	require.Len(t, records, 1)
	assert.Equal(t, env.SyncID(), records[0].SyncID)
	assert.Equal(t, env.Metadata().EntropySeed, records[0].EntropySeed)
	assert.Equal(t, Accepted, records[0].Decision)
}

func TestReplayLog_RecordsIsInsertionOrderAndIndependentCopy(t *testing.T) {
	env1, rej1 := sampleBuilder().Build()
	require.Nil(t, rej1)
	env2, rej2 := sampleBuilder().Build()
	require.Nil(t, rej2)

	l := NewReplayLog()
	l.Push(&env1, Accepted)
	l.Push(&env2, DecisionAuditRejected)

	records := l.Records()
	require.Len(t, records, 2)
	assert.Equal(t, env1.SyncID(), records[0].SyncID)
	assert.Equal(t, env2.SyncID(), records[1].SyncID)

	records[0].Decision = DecisionFirmaRejected
	assert.Equal(t, Accepted, l.Records()[0].Decision, "Records() must return an independent copy")
}
