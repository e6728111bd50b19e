package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The pick is the movable token nearest to home.
func TestAutoChoicePrefersNearestHome(t *testing.T) {
	m := newStartedMatch(t, 2)
	p1 := m.PlayerByID(1)
	toks := p1.Tokens()
	// token 0 stays in base (not movable on a 2)
	toks[1].TrackPos = 30
	toks[2].TrackPos = Red.HomeEntrance()
	toks[2].InStretch = true
	toks[2].StretchPos = 3
	toks[3].TrackPos = 49

	_, err := m.RollDice(1, 2)
	require.NoError(t, err)

	idx, ok := m.AutoChoice(p1)
	require.True(t, ok)
	require.Equal(t, int32(2), idx, "stretch token is two squares from home")
}

func TestAutoChoiceTieBreaksByIndex(t *testing.T) {
	m := newStartedMatch(t, 2)
	toks := m.PlayerByID(1).Tokens()
	toks[1].TrackPos = 30
	toks[3].TrackPos = 30

	_, err := m.RollDice(1, 2)
	require.NoError(t, err)

	idx, ok := m.AutoChoice(m.PlayerByID(1))
	require.True(t, ok)
	require.Equal(t, int32(1), idx)
}

func TestAutoChoiceWithoutRoll(t *testing.T) {
	m := newStartedMatch(t, 2)
	_, ok := m.AutoChoice(m.PlayerByID(1))
	require.False(t, ok)
}
