package table

import (
	"github.com/samber/lo"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/model"
)

type LoginRsp struct {
	Code    int32  `json:"code"`
	Msg     string `json:"msg,omitempty"`
	TableID int32  `json:"tableId"`
	ChairID int32  `json:"chairId"`
}

type UserInfo struct {
	UID        int64  `json:"uid"`
	NickName   string `json:"nickName"`
	Avatar     string `json:"avatar"`
	ChairID    int32  `json:"chairId"`
	Status     int32  `json:"status"`
	Color      int32  `json:"color"`
	TotalBoard int32  `json:"totalBoard"`
	TotalWin   int32  `json:"totalWin"`
	Offline    bool   `json:"offline"`
	Robot      bool   `json:"robot"`
}

type UserQuitPush struct {
	UID     int64 `json:"uid"`
	ChairID int32 `json:"chairId"`
}

type UserOfflinePush struct {
	UID     int64 `json:"uid"`
	Offline bool  `json:"offline"`
}

type SeatInfo struct {
	UID     int64 `json:"uid"`
	ChairID int32 `json:"chairId"`
	Color   int32 `json:"color"`
}

type GameStartPush struct {
	RoundID  string          `json:"roundId"`
	TeamMode bool            `json:"teamMode"`
	Teams    [][]model.Color `json:"teams,omitempty"`
	Seats    []SeatInfo      `json:"seats"`
	Rules    model.Rules     `json:"rules"`
}

type TurnPush struct {
	UID         int64 `json:"uid"`
	Color       int32 `json:"color"`
	PendingDice int32 `json:"pendingDice"` // 0 = roll phase, 1..6 = move phase
	RemainSec   int64 `json:"remainSec"`
}

type RollPush struct {
	UID  int64             `json:"uid"`
	Roll *model.RollResult `json:"roll"`
}

type MovePush struct {
	UID  int64             `json:"uid"`
	Move *model.MoveResult `json:"move"`
}

type TimeoutPush struct {
	Timeout *model.TimeoutResult `json:"timeout"`
}

type ResultPlayer struct {
	UID            int64 `json:"uid"`
	Color          int32 `json:"color"`
	FinishedTokens int32 `json:"finishedTokens"`
	Eliminated     bool  `json:"eliminated"`
	Win            bool  `json:"win"`
}

type ResultPush struct {
	RoundID string         `json:"roundId"`
	Winner  *model.Winner  `json:"winner,omitempty"`
	Players []ResultPlayer `json:"players"`
}

type KickPush struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg,omitempty"`
}

type SceneRsp struct {
	TableID   int32           `json:"tableId"`
	Stage     int32           `json:"stage"`
	RemainSec int64           `json:"remainSec"`
	RoundID   string          `json:"roundId,omitempty"`
	Users     []UserInfo      `json:"users"`
	Match     *model.Snapshot `json:"match,omitempty"`
	Turn      *TurnPush       `json:"turn,omitempty"`
}

// sendToClient pushes to one seat. Robots and disconnected players have no
// transport behind them.
func (t *Table) sendToClient(p *player.Player, cmd string, payload any) {
	if p == nil || p.IsRobot() || p.IsOffline() {
		return
	}
	t.sender.Send(p.GetPlayerID(), cmd, payload)
}

func (t *Table) sendToAll(cmd string, payload any) {
	for _, p := range t.seats {
		t.sendToClient(p, cmd, payload)
	}
}

func (t *Table) sendLoginRsp(p *player.Player, code int32, msg string) {
	t.sendToClient(p, CmdLoginRsp, &LoginRsp{
		Code:    code,
		Msg:     msg,
		TableID: t.ID,
		ChairID: p.GetChairID(),
	})
}

func (t *Table) userInfo(p *player.Player) UserInfo {
	color := int32(-1)
	if c, ok := p.GetColor(); ok {
		color = int32(c)
	}
	return UserInfo{
		UID:        p.GetPlayerID(),
		NickName:   p.GetNickName(),
		Avatar:     p.GetAvatar(),
		ChairID:    p.GetChairID(),
		Status:     int32(p.GetStatus()),
		Color:      color,
		TotalBoard: p.GetTotalBoard(),
		TotalWin:   p.GetTotalWin(),
		Offline:    p.IsOffline(),
		Robot:      p.IsRobot(),
	}
}

func (t *Table) broadcastUserInfo(p *player.Player) {
	info := t.userInfo(p)
	t.sendToAll(CmdUserInfo, &info)
}

func (t *Table) broadcastUserQuit(p *player.Player) {
	t.sendToAll(CmdUserQuit, &UserQuitPush{UID: p.GetPlayerID(), ChairID: p.GetChairID()})
}

func (t *Table) broadcastUserOffline(p *player.Player) {
	t.sendToAll(CmdUserOffline, &UserOfflinePush{UID: p.GetPlayerID(), Offline: p.IsOffline()})
}

func (t *Table) broadcastGameStart() {
	m := t.match
	push := &GameStartPush{
		RoundID:  t.roundID,
		TeamMode: m.TeamMode(),
		Teams:    m.Teams(),
		Rules:    m.Rules(),
		Seats: lo.Map(m.Players(), func(mp *model.Player, _ int) SeatInfo {
			chair := int32(-1)
			if p := t.getPlayerByUID(mp.ID()); p != nil {
				chair = p.GetChairID()
			}
			return SeatInfo{UID: mp.ID(), ChairID: chair, Color: int32(mp.Color())}
		}),
	}
	t.sendToAll(CmdGameStart, push)
}

func (t *Table) turnPush() *TurnPush {
	cur := t.match.CurrentPlayer()
	if cur == nil {
		return nil
	}
	return &TurnPush{
		UID:         cur.ID(),
		Color:       int32(cur.Color()),
		PendingDice: t.match.PendingDice(),
		RemainSec:   int64(t.stage.Remaining().Seconds()),
	}
}

func (t *Table) broadcastTurn() {
	if push := t.turnPush(); push != nil {
		t.sendToAll(CmdTurn, push)
	}
}

func (t *Table) broadcastRoll(p *player.Player, res *model.RollResult) {
	t.sendToAll(CmdRoll, &RollPush{UID: p.GetPlayerID(), Roll: res})
}

func (t *Table) broadcastMove(p *player.Player, res *model.MoveResult) {
	t.sendToAll(CmdMove, &MovePush{UID: p.GetPlayerID(), Move: res})
}

func (t *Table) broadcastTimeout(res *model.TimeoutResult) {
	t.sendToAll(CmdTimeout, &TimeoutPush{Timeout: res})
}

func (t *Table) broadcastResult() {
	m := t.match
	winner := m.Winner()
	push := &ResultPush{
		RoundID: t.roundID,
		Winner:  winner,
		Players: lo.Map(m.Players(), func(mp *model.Player, _ int) ResultPlayer {
			won := winner != nil && lo.Contains(winner.PlayerIDs, mp.ID())
			if winner == nil {
				won = !mp.IsEliminated() // walkover
			}
			return ResultPlayer{
				UID:            mp.ID(),
				Color:          int32(mp.Color()),
				FinishedTokens: mp.FinishedTokens(),
				Eliminated:     mp.IsEliminated(),
				Win:            won,
			}
		}),
	}
	t.sendToAll(CmdResult, push)
}

func (t *Table) sendKick(p *player.Player, code int32, msg string) {
	t.sendToClient(p, CmdKick, &KickPush{Code: code, Msg: msg})
}

func (t *Table) sendSceneInfo(p *player.Player) {
	t.sendToClient(p, CmdScene, t.buildScene(p))
}

func (t *Table) buildScene(_ *player.Player) *SceneRsp {
	rsp := &SceneRsp{
		TableID:   t.ID,
		Stage:     int32(t.stage.GetState()),
		RemainSec: int64(t.stage.Remaining().Seconds()),
		RoundID:   t.roundID,
	}
	for _, seat := range t.seats {
		if seat != nil {
			rsp.Users = append(rsp.Users, t.userInfo(seat))
		}
	}
	if t.match != nil {
		rsp.Match = t.match.Snapshot()
		rsp.Turn = t.turnPush()
	}
	return rsp
}
