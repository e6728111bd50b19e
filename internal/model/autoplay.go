package model

// AutoChoice picks a token for the given player against the pending dice
// value using the fixed greedy rule: among movable tokens, the one closest to
// home, breaking ties toward the lowest index. Deterministic by design so the
// same state always replays the same way.
func (m *Match) AutoChoice(p *Player) (int32, bool) {
	if m.dice == 0 {
		return -1, false
	}
	_, tokens := m.actingTokens(p)
	best := int32(-1)
	bestDist := int32(0)
	for _, idx := range movableIndexes(tokens, m.dice) {
		d := tokens[idx].distanceHome()
		if best == -1 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	return best, best >= 0
}
