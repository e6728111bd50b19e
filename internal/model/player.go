package model

import "fmt"

// Player is one seat of a match. Liveness (Online) is informational only and
// never affects turn legality; Eliminated is a separate flag and is never
// inferred from the finished-token count.
type Player struct {
	id             int64
	name           string
	color          Color
	robot          bool
	online         bool
	finished       bool // all four own tokens finished legitimately
	eliminated     bool
	missedTurns    int32
	finishedTokens int32
	tokens         []*Token
}

func (p *Player) ID() int64 { return p.id }
func (p *Player) Name() string { return p.name }
func (p *Player) Color() Color { return p.color }
func (p *Player) IsRobot() bool { return p.robot }
func (p *Player) IsOnline() bool { return p.online }
func (p *Player) IsFinished() bool { return p.finished }
func (p *Player) IsEliminated() bool { return p.eliminated }
func (p *Player) MissedTurns() int32 { return p.missedTurns }
func (p *Player) FinishedTokens() int32 { return p.finishedTokens }

// Tokens returns the player's own four tokens in index order.
func (p *Player) Tokens() []*Token { return p.tokens }

// SetOnline records the liveness flag reported by the session layer.
func (p *Player) SetOnline(v bool) { p.online = v }

func (p *Player) Desc() string {
	return fmt.Sprintf("(%d %q %v fin:%d miss:%d elim:%v)",
		p.id, p.name, p.color, p.finishedTokens, p.missedTurns, p.eliminated)
}
