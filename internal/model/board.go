package model

// Board holds every token taking part in a match, keyed by color. It owns no
// turn state; the Match decides who may move, the Board resolves what a move
// does to the shared track.
type Board struct {
	tokens map[Color][]*Token
	order  []Color // colors in seat order, for stable iteration
}

// TokensPerColor is fixed by the rules.
const TokensPerColor = 4

func NewBoard(colors []Color) *Board {
	b := &Board{
		tokens: make(map[Color][]*Token, len(colors)),
		order:  append([]Color(nil), colors...),
	}
	for _, c := range colors {
		set := make([]*Token, 0, TokensPerColor)
		for i := int32(0); i < TokensPerColor; i++ {
			set = append(set, newToken(i, c))
		}
		b.tokens[c] = set
	}
	return b
}

// Tokens returns the token set of one color. The slice is owned by the board.
func (b *Board) Tokens(c Color) []*Token {
	return b.tokens[c]
}

// Colors returns the participating colors in seat order.
func (b *Board) Colors() []Color {
	return b.order
}

// movableIndexes returns the indexes of the given tokens that may advance
// by d, in token order.
func movableIndexes(tokens []*Token, d int32) []int32 {
	var out []int32
	for _, t := range tokens {
		if t.movable(d) {
			out = append(out, t.Index)
		}
	}
	return out
}

// Capture describes one opposing token sent back to base.
type Capture struct {
	Color      Color `json:"color"`
	TokenIndex int32 `json:"tokenIndex"`
	From       int32 `json:"from"`
}

// captureAt sends home every opposing token standing on the given track
// square and reports them. Safe squares, home stretches, bases and finished
// tokens are exempt, as are the mover's own color and any color in exempt
// (the mover's teammate in team mode). Stacked tokens are all captured.
func (b *Board) captureAt(mover Color, pos int32, exempt map[Color]struct{}) []Capture {
	if IsSafe(pos) {
		return nil
	}
	var captured []Capture
	for _, c := range b.order {
		if c == mover {
			continue
		}
		if _, ok := exempt[c]; ok {
			continue
		}
		for _, t := range b.tokens[c] {
			if t.OnTrack() && t.TrackPos == pos {
				captured = append(captured, Capture{Color: c, TokenIndex: t.Index, From: t.TrackPos})
				t.sendHome()
			}
		}
	}
	return captured
}
