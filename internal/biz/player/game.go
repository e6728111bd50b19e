package player

import (
	"fmt"

	"github.com/harshitajammula/ludo/internal/model"
)

const (
	StFree   Status = iota // not seated
	StSit                  // seated, not ready
	StReady                // ready for the next round
	StGaming               // playing the current round
)

type Status int32

func (s Status) String() string {
	switch s {
	case StFree:
		return "Free"
	case StSit:
		return "Sit"
	case StReady:
		return "Ready"
	case StGaming:
		return "Gaming"
	default:
		return fmt.Sprintf("Status(%d)", int32(s))
	}
}

// GameData is the per-table state of a seat. The engine owns all rule state;
// this only mirrors what the room needs for routing and scenes.
type GameData struct {
	TableID   int32
	ChairID   int32
	status    Status
	isOffline bool
	color     model.Color
	hasColor  bool
}

// Player is one connected account (or robot) in the room.
type Player struct {
	baseData BaseData
	gameData GameData
	isRobot  bool
}

func New(base BaseData, robot bool) *Player {
	return &Player{
		baseData: base,
		isRobot:  robot,
		gameData: GameData{TableID: -1, ChairID: -1},
	}
}

func (p *Player) IsRobot() bool { return p.isRobot }

func (p *Player) GetTableID() int32 { return p.gameData.TableID }
func (p *Player) SetTableID(id int32) { p.gameData.TableID = id }
func (p *Player) GetChairID() int32 { return p.gameData.ChairID }
func (p *Player) SetChairID(id int32) { p.gameData.ChairID = id }
func (p *Player) GetStatus() Status { return p.gameData.status }
func (p *Player) SetSit() { p.gameData.status = StSit }
func (p *Player) SetReady() { p.gameData.status = StReady }
func (p *Player) SetGaming() { p.gameData.status = StGaming }
func (p *Player) IsReady() bool { return p.gameData.status == StReady }
func (p *Player) IsGaming() bool { return p.gameData.status == StGaming }
func (p *Player) IsOffline() bool { return p.gameData.isOffline }
func (p *Player) SetOffline(v bool) { p.gameData.isOffline = v }

// SetColor records the engine-assigned seat color for scene pushes.
func (p *Player) SetColor(c model.Color) {
	p.gameData.color = c
	p.gameData.hasColor = true
}

func (p *Player) GetColor() (model.Color, bool) {
	return p.gameData.color, p.gameData.hasColor
}

// Reset clears round state but keeps the seat.
func (p *Player) Reset() {
	p.gameData.status = StSit
	p.gameData.hasColor = false
	p.gameData.color = 0
}

// ExitReset clears everything tying the player to a table.
func (p *Player) ExitReset() {
	p.Reset()
	p.gameData.status = StFree
	p.gameData.TableID = -1
	p.gameData.ChairID = -1
	p.gameData.isOffline = false
}

func (p *Player) Desc() string {
	robot := 0
	if p.isRobot {
		robot = 1
	}
	return fmt.Sprintf("(%d %q T:%d C:%d St:%s ai:%d)",
		p.GetPlayerID(), p.GetNickName(), p.GetTableID(), p.GetChairID(), p.GetStatus(), robot)
}
