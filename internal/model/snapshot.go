package model

import "fmt"

// PlayerState is the serialized form of one seat.
type PlayerState struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Color          Color   `json:"color"`
	Robot          bool    `json:"robot"`
	Online         bool    `json:"online"`
	Finished       bool    `json:"finished"`
	Eliminated     bool    `json:"eliminated"`
	MissedTurns    int32   `json:"missedTurns"`
	FinishedTokens int32   `json:"finishedTokens"`
	Tokens         []Token `json:"tokens"`
}

// Snapshot is a complete, self-contained copy of match state. Marshaling it
// and restoring the result yields a match that replays identically.
type Snapshot struct {
	TeamMode        bool          `json:"teamMode"`
	Teams           [][]Color     `json:"teams,omitempty"`
	Rules           Rules         `json:"rules"`
	Started         bool          `json:"started"`
	Over            bool          `json:"over"`
	Winner          *Winner       `json:"winner,omitempty"`
	Current         int32         `json:"current"`
	Dice            int32         `json:"dice"`
	SixStreak       int32         `json:"sixStreak"`
	InvariantBreaks int32         `json:"invariantBreaks"`
	Players         []PlayerState `json:"players"`
}

func copyTeams(teams [][]Color) [][]Color {
	if teams == nil {
		return nil
	}
	out := make([][]Color, len(teams))
	for i, side := range teams {
		out[i] = append([]Color(nil), side...)
	}
	return out
}

// Snapshot captures the full match state by value.
func (m *Match) Snapshot() *Snapshot {
	s := &Snapshot{
		TeamMode:        m.teamMode,
		Rules:           m.rules,
		Teams:           copyTeams(m.teams),
		Started:         m.started,
		Over:            m.over,
		Current:         m.current,
		Dice:            m.dice,
		SixStreak:       m.sixStreak,
		InvariantBreaks: m.invariantBreaks,
	}
	if m.winner != nil {
		w := *m.winner
		w.Colors = append([]Color(nil), m.winner.Colors...)
		w.PlayerIDs = append([]int64(nil), m.winner.PlayerIDs...)
		s.Winner = &w
	}
	for _, p := range m.players {
		ps := PlayerState{
			ID:             p.id,
			Name:           p.name,
			Color:          p.color,
			Robot:          p.robot,
			Online:         p.online,
			Finished:       p.finished,
			Eliminated:     p.eliminated,
			MissedTurns:    p.missedTurns,
			FinishedTokens: p.finishedTokens,
		}
		for _, t := range p.tokens {
			ps.Tokens = append(ps.Tokens, *t)
		}
		s.Players = append(s.Players, ps)
	}
	return s
}

// RestoreMatch rebuilds a live match from a snapshot.
func RestoreMatch(s *Snapshot) (*Match, error) {
	if s == nil {
		return nil, fmt.Errorf("ludo: nil snapshot")
	}
	m := NewMatch(WithRules(s.Rules))
	m.teamMode = s.TeamMode
	m.teams = copyTeams(s.Teams)
	m.started = s.Started
	m.over = s.Over
	m.current = s.Current
	m.dice = s.Dice
	m.sixStreak = s.SixStreak
	m.invariantBreaks = s.InvariantBreaks
	if s.Winner != nil {
		w := *s.Winner
		m.winner = &w
	}

	colors := make([]Color, 0, len(s.Players))
	for _, ps := range s.Players {
		if !ps.Color.Valid() {
			return nil, fmt.Errorf("ludo: snapshot player %d has invalid color %d", ps.ID, ps.Color)
		}
		colors = append(colors, ps.Color)
	}
	for _, ps := range s.Players {
		p := &Player{
			id:             ps.ID,
			name:           ps.Name,
			color:          ps.Color,
			robot:          ps.Robot,
			online:         ps.Online,
			finished:       ps.Finished,
			eliminated:     ps.Eliminated,
			missedTurns:    ps.MissedTurns,
			finishedTokens: ps.FinishedTokens,
		}
		m.players = append(m.players, p)
	}
	if !s.Started {
		return m, nil
	}

	if s.Current < 0 || int(s.Current) >= len(s.Players) {
		return nil, fmt.Errorf("ludo: snapshot turn pointer %d out of range", s.Current)
	}
	m.board = NewBoard(colors)
	for i, ps := range s.Players {
		tokens := m.board.Tokens(ps.Color)
		if len(ps.Tokens) != len(tokens) {
			return nil, fmt.Errorf("ludo: snapshot player %d has %d tokens", ps.ID, len(ps.Tokens))
		}
		for k, tv := range ps.Tokens {
			*tokens[k] = tv
		}
		m.players[i].tokens = tokens
	}
	return m, nil
}
