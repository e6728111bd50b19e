package model

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStartedMatch(t *testing.T, n int, opts ...Option) *Match {
	t.Helper()
	m := NewMatch(opts...)
	for i := 0; i < n; i++ {
		_, err := m.AddPlayer(int64(i+1), fmt.Sprintf("p%d", i+1))
		require.NoError(t, err)
	}
	require.NoError(t, m.Start())
	return m
}

func TestLobby(t *testing.T) {
	m := NewMatch()
	require.Error(t, m.Start(), "start with no players")

	for i := 0; i < 4; i++ {
		p, err := m.AddPlayer(int64(i+1), fmt.Sprintf("p%d", i+1))
		require.NoError(t, err)
		require.Equal(t, joinOrder[i], p.Color())
	}
	_, err := m.AddPlayer(5, "p5")
	require.ErrorIs(t, err, ErrMatchFull)
	_, err = m.AddRobot(3, "dup")
	require.ErrorIs(t, err, ErrDuplicatePlayer, "duplicate seat wins over capacity")
	require.Len(t, m.Players(), 4)

	// unseating recolors the rest in join order
	require.True(t, m.RemovePlayer(1))
	require.Equal(t, Red, m.Players()[0].Color())
	require.Equal(t, Yellow, m.Players()[1].Color())
	require.Equal(t, Green, m.Players()[2].Color())

	require.NoError(t, m.Start())
	require.Error(t, m.Start(), "double start")
	require.False(t, m.RemovePlayer(2), "remove after start")
	_, err = m.AddPlayer(9, "late")
	require.ErrorIs(t, err, ErrMatchStarted)
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
}

func TestTeamModeRejectsThree(t *testing.T) {
	m := NewMatch(WithTeamMode())
	for i := 0; i < 3; i++ {
		_, err := m.AddPlayer(int64(i+1), "p")
		require.NoError(t, err)
	}
	require.ErrorIs(t, m.Start(), ErrTeamSize)
}

// Release from base: a six moves the token to the color's entry square and
// the roller keeps the turn.
func TestReleaseFromBase(t *testing.T) {
	m := newStartedMatch(t, 2)

	rr, err := m.RollDice(1, 6)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 1, 2, 3}, rr.MovableTokens)

	mv, err := m.MoveToken(1, 0)
	require.NoError(t, err)
	require.Equal(t, Red.Entry(), mv.Token.TrackPos)
	require.True(t, mv.BonusTurn)
	require.Equal(t, int64(1), m.CurrentPlayer().ID())
	require.Zero(t, m.PendingDice(), "dice consumed by the move")
}

// Three squares short of the entrance plus a five lands at stretch square 2,
// and a plain move hands the turn over.
func TestHomeStretchEntry(t *testing.T) {
	m := newStartedMatch(t, 2)
	m.PlayerByID(1).Tokens()[0].TrackPos = 47

	rr, err := m.RollDice(1, 5)
	require.NoError(t, err)
	require.Equal(t, []int32{0}, rr.MovableTokens)

	mv, err := m.MoveToken(1, 0)
	require.NoError(t, err)
	require.True(t, mv.Token.InStretch)
	require.Equal(t, int32(2), mv.Token.StretchPos)
	require.False(t, mv.BonusTurn)
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
}

func TestCapture(t *testing.T) {
	m := newStartedMatch(t, 2)
	m.PlayerByID(1).Tokens()[0].TrackPos = 11
	m.PlayerByID(2).Tokens()[0].TrackPos = 14

	_, err := m.RollDice(1, 3)
	require.NoError(t, err)
	mv, err := m.MoveToken(1, 0)
	require.NoError(t, err)

	require.Equal(t, []Capture{{Color: Yellow, TokenIndex: 0, From: 14}}, mv.Captured)
	require.True(t, m.PlayerByID(2).Tokens()[0].InBase())
	require.True(t, mv.BonusTurn, "capture grants a bonus turn")
	require.Equal(t, int64(1), m.CurrentPlayer().ID())
}

func TestNoCaptureOnSafeSquare(t *testing.T) {
	m := newStartedMatch(t, 2)
	m.PlayerByID(1).Tokens()[0].TrackPos = 18
	m.PlayerByID(2).Tokens()[0].TrackPos = 21

	_, err := m.RollDice(1, 3)
	require.NoError(t, err)
	mv, err := m.MoveToken(1, 0)
	require.NoError(t, err)

	require.Empty(t, mv.Captured)
	require.Equal(t, int32(21), m.PlayerByID(2).Tokens()[0].TrackPos)
	require.False(t, mv.BonusTurn)
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
}

func TestTripleSixForfeitsTurn(t *testing.T) {
	m := newStartedMatch(t, 2)
	m.PlayerByID(1).Tokens()[0].TrackPos = 1

	for i := 0; i < 2; i++ {
		rr, err := m.RollDice(1, 6)
		require.NoError(t, err)
		require.False(t, rr.Forfeited)
		_, err = m.MoveToken(1, 0)
		require.NoError(t, err)
		require.Equal(t, int64(1), m.CurrentPlayer().ID(), "a six keeps the turn")
	}

	rr, err := m.RollDice(1, 6)
	require.NoError(t, err)
	require.True(t, rr.Forfeited)
	require.True(t, rr.TurnPassed)
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
	require.Zero(t, m.PendingDice())
}

// A six with nothing to move rolls again; the streak still builds up to the
// forfeit.
func TestSixWithNoMovableRollsAgain(t *testing.T) {
	m := newStartedMatch(t, 2)
	for _, tok := range m.PlayerByID(1).Tokens() {
		tok.TrackPos = Red.HomeEntrance()
		tok.InStretch = true
		tok.StretchPos = 4
	}

	for i := 0; i < 2; i++ {
		rr, err := m.RollDice(1, 6)
		require.NoError(t, err)
		require.True(t, rr.RollAgain)
		require.Equal(t, int64(1), m.CurrentPlayer().ID())
		require.Zero(t, m.PendingDice())
	}
	rr, err := m.RollDice(1, 6)
	require.NoError(t, err)
	require.True(t, rr.Forfeited)
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
}

func TestNoMovablePassesTurn(t *testing.T) {
	m := newStartedMatch(t, 2)
	rr, err := m.RollDice(1, 3)
	require.NoError(t, err)
	require.True(t, rr.TurnPassed)
	require.Empty(t, rr.MovableTokens)
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
}

// Every rejected call leaves the match byte-for-byte unchanged.
func TestRejectionsLeaveStateUntouched(t *testing.T) {
	m := newStartedMatch(t, 2)
	m.PlayerByID(1).Tokens()[0].TrackPos = 10

	before := m.Snapshot()
	calls := []struct {
		name string
		err  error
		call func() error
	}{
		{"wrong player rolls", ErrNotYourTurn, func() error { _, err := m.RollDice(2, 4); return err }},
		{"unknown player", ErrUnknownPlayer, func() error { _, err := m.RollDice(9, 4); return err }},
		{"bad dice value", ErrDiceValue, func() error { _, err := m.RollDice(1, 7); return err }},
		{"move before roll", ErrDiceNotRolled, func() error { _, err := m.MoveToken(1, 0); return err }},
	}
	for _, c := range calls {
		err := c.call()
		require.ErrorIs(t, err, c.err, c.name)
		require.True(t, reflect.DeepEqual(before, m.Snapshot()), "%s mutated state", c.name)
	}

	_, err := m.RollDice(1, 3)
	require.NoError(t, err)
	afterRoll := m.Snapshot()

	_, err = m.RollDice(1, 3)
	require.ErrorIs(t, err, ErrDicePending)
	_, err = m.MoveToken(1, 9)
	require.ErrorIs(t, err, ErrTokenIndex)
	_, err = m.MoveToken(1, 1)
	require.ErrorIs(t, err, ErrTokenNotMovable, "base token cannot move on a 3")
	require.True(t, reflect.DeepEqual(afterRoll, m.Snapshot()))
}

func TestSoloVictory(t *testing.T) {
	m := newStartedMatch(t, 2)
	p1 := m.PlayerByID(1)
	for _, tok := range p1.Tokens()[:3] {
		tok.InStretch = false
		tok.StretchPos = HomeStretchLength
		tok.Finished = true
	}
	p1.finishedTokens = 3
	last := p1.Tokens()[3]
	last.TrackPos = Red.HomeEntrance()
	last.InStretch = true
	last.StretchPos = 4

	_, err := m.RollDice(1, 1)
	require.NoError(t, err)
	mv, err := m.MoveToken(1, 3)
	require.NoError(t, err)

	require.True(t, mv.FinishedToken)
	require.True(t, mv.GameOver)
	require.False(t, mv.BonusTurn, "no bonus once the match is over")
	require.Equal(t, &Winner{Colors: []Color{Red}, PlayerIDs: []int64{1}}, mv.Winner)
	require.True(t, m.Over())

	_, err = m.RollDice(2, 4)
	require.ErrorIs(t, err, ErrMatchOver)
}

func TestFinishGrantsBonusWhenEnabled(t *testing.T) {
	for _, bonus := range []bool{true, false} {
		r := DefaultRules()
		r.BonusOnFinish = bonus
		m := newStartedMatch(t, 2, WithRules(r))
		tok := m.PlayerByID(1).Tokens()[0]
		tok.TrackPos = Red.HomeEntrance()
		tok.InStretch = true
		tok.StretchPos = 4

		_, err := m.RollDice(1, 1)
		require.NoError(t, err)
		mv, err := m.MoveToken(1, 0)
		require.NoError(t, err)
		require.True(t, mv.FinishedToken)
		require.Equal(t, bonus, mv.BonusTurn)
	}
}

func TestTimeoutAutoPlays(t *testing.T) {
	m := newStartedMatch(t, 2)
	m.PlayerByID(1).Tokens()[0].TrackPos = 10

	res, err := m.HandleTimeout(3)
	require.NoError(t, err)
	require.Equal(t, int64(1), res.PlayerID)
	require.NotNil(t, res.Roll)
	require.NotNil(t, res.Move)
	require.Equal(t, int32(0), res.TokenIndex)
	require.Equal(t, int32(13), m.PlayerByID(1).Tokens()[0].TrackPos)
	require.Equal(t, int32(1), res.MissedTurns)
	require.True(t, res.TurnPassed)
}

func TestManualActionResetsMissedTurns(t *testing.T) {
	m := newStartedMatch(t, 2)

	_, err := m.HandleTimeout(3) // all in base, turn passes
	require.NoError(t, err)
	require.Equal(t, int32(1), m.PlayerByID(1).MissedTurns())

	_, err = m.RollDice(2, 3) // p2 passes manually
	require.NoError(t, err)

	_, err = m.RollDice(1, 6)
	require.NoError(t, err)
	require.Zero(t, m.PlayerByID(1).MissedTurns())
}

// Five missed turns eliminate: tokens off the board and flagged finished,
// the finished count untouched, and the rotation skips the seat for good.
func TestTimeoutElimination(t *testing.T) {
	m := newStartedMatch(t, 2)
	p1 := m.PlayerByID(1)

	var last *TimeoutResult
	for i := int32(1); i <= 5; i++ {
		res, err := m.HandleTimeout(3)
		require.NoError(t, err)
		require.Equal(t, i, res.MissedTurns)
		last = res

		if i < 5 {
			_, err = m.RollDice(2, 3) // hand the turn back
			require.NoError(t, err)
		}
	}

	require.True(t, last.Eliminated)
	require.True(t, p1.IsEliminated())
	for _, tok := range p1.Tokens() {
		require.Equal(t, BasePosition, tok.TrackPos)
		require.True(t, tok.Finished)
	}
	require.Zero(t, p1.FinishedTokens(), "elimination is not finishing")

	// sole survivor keeps the turn through their own passes
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
	rr, err := m.RollDice(2, 3)
	require.NoError(t, err)
	require.True(t, rr.TurnPassed)
	require.Equal(t, int64(2), m.CurrentPlayer().ID())
}

// A turn pointer left on a dead seat is a defect the engine repairs by
// force-advancing to the survivor, counting the failure.
func TestPointerRecoveryOnEliminatedSeat(t *testing.T) {
	m := newStartedMatch(t, 3)
	m.eliminate(m.Players()[1])
	m.current = 1

	rr, err := m.RollDice(3, 6)
	require.NoError(t, err, "pointer resolves past the eliminated seat")
	require.NotEmpty(t, rr.MovableTokens)
	require.Equal(t, int64(3), m.CurrentPlayer().ID())
	require.Equal(t, int32(1), m.InvariantBreaks())
}
