package model

// Winner names the side a finished match belongs to. Solo wins carry one
// color, team wins carry the whole team.
type Winner struct {
	Team      bool    `json:"team"`
	Colors    []Color `json:"colors"`
	PlayerIDs []int64 `json:"playerIds"`
}

// teamOf returns the color set the given color plays for. Outside team mode
// (or for a color somehow missing from the fixed sets) every color stands
// alone.
func (m *Match) teamOf(c Color) []Color {
	for _, side := range m.teams {
		for _, tc := range side {
			if tc == c {
				return side
			}
		}
	}
	return []Color{c}
}

// teammate returns the seated partner, or nil for a team of one.
func (m *Match) teammate(p *Player) *Player {
	for _, c := range m.teamOf(p.color) {
		if c != p.color {
			return m.playerByColor(c)
		}
	}
	return nil
}

// actingTokens resolves whose tokens the given player acts on this turn.
// In team mode a player whose own tokens are all home plays the partner's
// tokens; everywhere else a player plays their own.
func (m *Match) actingTokens(p *Player) (*Player, []*Token) {
	if m.teamMode && p.finished && !p.eliminated {
		if mate := m.teammate(p); mate != nil && !mate.eliminated && !mate.finished {
			return mate, mate.tokens
		}
	}
	return p, p.tokens
}

// teamExempt lists colors the mover may not capture beyond their own.
func (m *Match) teamExempt(mover Color) map[Color]struct{} {
	if !m.teamMode {
		return nil
	}
	exempt := make(map[Color]struct{})
	for _, c := range m.teamOf(mover) {
		if c != mover {
			exempt[c] = struct{}{}
		}
	}
	return exempt
}

// checkVictory ends the match if the owning side has fully come home: solo
// when the owner finishes, team when every seated color of the team has.
func (m *Match) checkVictory(owner *Player) {
	if !owner.finished {
		return
	}
	if !m.teamMode {
		m.declareWinner(false, []*Player{owner})
		return
	}
	var side []*Player
	for _, c := range m.teamOf(owner.color) {
		p := m.playerByColor(c)
		if p == nil || !p.finished {
			return
		}
		side = append(side, p)
	}
	m.declareWinner(true, side)
}

func (m *Match) declareWinner(team bool, side []*Player) {
	w := &Winner{Team: team}
	for _, p := range side {
		w.Colors = append(w.Colors, p.color)
		w.PlayerIDs = append(w.PlayerIDs, p.id)
	}
	m.over = true
	m.winner = w
}
