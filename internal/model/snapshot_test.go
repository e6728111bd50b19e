package model

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// playDice drives a match with a scripted dice sequence, moving with the
// deterministic auto pick whenever a move is available.
func playDice(t *testing.T, m *Match, seq []int32) {
	t.Helper()
	for _, d := range seq {
		if m.Over() {
			return
		}
		p := m.CurrentPlayer()
		rr, err := m.RollDice(p.ID(), d)
		require.NoError(t, err)
		if len(rr.MovableTokens) == 0 {
			continue
		}
		idx, ok := m.AutoChoice(p)
		require.True(t, ok)
		_, err = m.MoveToken(p.ID(), idx)
		require.NoError(t, err)
	}
}

var replaySeq = []int32{6, 3, 6, 5, 2, 6, 6, 1, 4, 6, 2, 3, 5, 6, 4, 1, 6, 6, 2, 5}

// Serializing mid-game and rehydrating must not change how the rest of the
// dice sequence plays out.
func TestSnapshotRoundTripReplay(t *testing.T) {
	straight := newStartedMatch(t, 2)
	playDice(t, straight, replaySeq)

	m := newStartedMatch(t, 2)
	playDice(t, m, replaySeq[:8])

	raw, err := json.Marshal(m.Snapshot())
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	restored, err := RestoreMatch(&snap)
	require.NoError(t, err)

	playDice(t, restored, replaySeq[8:])
	require.True(t, reflect.DeepEqual(straight.Snapshot(), restored.Snapshot()))
}

func TestSnapshotCarriesEverything(t *testing.T) {
	m := newStartedMatch(t, 4, WithTeamMode())
	m.PlayerByID(3).SetOnline(false)
	playDice(t, m, []int32{6, 6, 2})

	s := m.Snapshot()
	restored, err := RestoreMatch(s)
	require.NoError(t, err)

	require.Equal(t, m.TeamMode(), restored.TeamMode())
	require.Equal(t, m.Teams(), restored.Teams())
	require.Equal(t, m.Rules(), restored.Rules())
	require.Equal(t, m.CurrentPlayer().ID(), restored.CurrentPlayer().ID())
	require.Equal(t, m.PendingDice(), restored.PendingDice())
	require.False(t, restored.PlayerByID(3).IsOnline())
	for _, p := range m.Players() {
		rp := restored.PlayerByID(p.ID())
		require.Equal(t, p.Color(), rp.Color())
		for i, tok := range p.Tokens() {
			require.Equal(t, *tok, *rp.Tokens()[i])
		}
	}
}

func TestRestoreRejectsCorruptSnapshots(t *testing.T) {
	_, err := RestoreMatch(nil)
	require.Error(t, err)

	m := newStartedMatch(t, 2)
	s := m.Snapshot()
	s.Current = 7
	_, err = RestoreMatch(s)
	require.Error(t, err)

	s2 := m.Snapshot()
	s2.Players[0].Color = Color(9)
	_, err = RestoreMatch(s2)
	require.Error(t, err)
}

func TestPreStartSnapshot(t *testing.T) {
	m := NewMatch()
	_, err := m.AddPlayer(1, "p1")
	require.NoError(t, err)

	restored, err := RestoreMatch(m.Snapshot())
	require.NoError(t, err)
	require.False(t, restored.Started())
	require.Nil(t, restored.Board())
	_, err = restored.AddPlayer(2, "p2")
	require.NoError(t, err)
	require.NoError(t, restored.Start())
}
