package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bubblepop/internal/core"
)

func TestSessionFreshStart(t *testing.T) {
	s, err := New("alice", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Coins())
	assert.Equal(t, 0, s.BestScore())
}

func TestSessionApplyEvents(t *testing.T) {
	s, err := New("alice", nil)
	require.NoError(t, err)

	s.Apply([]core.Event{
		{Kind: core.EventMatch, Value: 4},
		{Kind: core.EventMatch, Value: 3},
	}, 10)
	assert.Equal(t, 70, s.Coins(), "coins should accumulate per popped bubble")

	s.Apply([]core.Event{
		{Kind: core.EventLevelCleared, Value: 3},
	}, 10)
	assert.Equal(t, 4, s.Level(), "clearing level 3 unlocks level 4")

	// Clearing an earlier level never regresses progress
	s.Apply([]core.Event{
		{Kind: core.EventLevelCleared, Value: 1},
	}, 10)
	assert.Equal(t, 4, s.Level())

	// Shot exhaustion carries no reward
	s.Apply([]core.Event{
		{Kind: core.EventShotsExhausted, Value: 4},
	}, 10)
	assert.Equal(t, 70, s.Coins())
}

func TestSessionRecordScore(t *testing.T) {
	s, err := New("alice", nil)
	require.NoError(t, err)

	s.RecordScore(500)
	assert.Equal(t, 500, s.BestScore())

	s.RecordScore(300)
	assert.Equal(t, 500, s.BestScore(), "lower score must not overwrite best")

	s.RecordScore(900)
	assert.Equal(t, 900, s.BestScore())
}

func TestSessionSpendCoins(t *testing.T) {
	s, err := New("alice", nil)
	require.NoError(t, err)

	s.Apply([]core.Event{{Kind: core.EventMatch, Value: 5}}, 10)
	require.Equal(t, 50, s.Coins())

	assert.True(t, s.SpendCoins(30))
	assert.Equal(t, 20, s.Coins())

	assert.False(t, s.SpendCoins(21), "overdraft must be rejected")
	assert.Equal(t, 20, s.Coins())

	assert.False(t, s.SpendCoins(-5), "negative cost must be rejected")
}

func TestSessionPersistence(t *testing.T) {
	store := NewMemoryStore()

	s, err := New("bob", store)
	require.NoError(t, err)

	s.Apply([]core.Event{
		{Kind: core.EventMatch, Value: 6},
		{Kind: core.EventLevelCleared, Value: 2},
	}, 10)
	s.RecordScore(420)
	require.NoError(t, s.Flush())

	// A new session for the same player sees the saved progress
	restored, err := New("bob", store)
	require.NoError(t, err)
	assert.Equal(t, 60, restored.Coins())
	assert.Equal(t, 3, restored.Level())
	assert.Equal(t, 420, restored.BestScore())

	// Other players start clean
	other, err := New("carol", store)
	require.NoError(t, err)
	assert.Equal(t, 0, other.Coins())
	assert.Equal(t, 1, other.Level())
}
