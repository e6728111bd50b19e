package table

import (
	"fmt"
	"sync"

	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/conf"
	"github.com/harshitajammula/ludo/internal/model"
	"github.com/harshitajammula/ludo/pkg/codes"
)

// Table is one room seat group plus the match running on it. All mutation
// goes through the exported entry points, which serialize on mu; the engine
// underneath is single-threaded by contract.
type Table struct {
	ID       int32
	MaxCnt   int16
	isClosed bool
	repo     Repo
	sender   Sender

	mu      sync.Mutex
	stage   *Stage
	mLog    *Log
	seats   []*player.Player
	sitCnt  int16
	match   *model.Match
	roundID string // current round, assigned at start
	aiLogic RobotLogic
}

func NewTable(id int32, c *conf.Room, repo Repo, sender Sender) *Table {
	t := &Table{
		ID:     id,
		MaxCnt: int16(c.Table.ChairNum),
		repo:   repo,
		sender: sender,
		stage:  &Stage{},
		mLog:   NewTableLog(id, c.LogCache),
		seats:  make([]*player.Player, c.Table.ChairNum),
	}
	t.aiLogic.init(t)
	t.updateStage(StWait)
	return t
}

func (t *Table) Desc() string {
	return fmt.Sprintf("(T:%d SitCnt:%d St:%v round:%s)",
		t.ID, t.sitCnt, t.stage.GetState(), t.roundID)
}

func (t *Table) Stage() StageID { return t.stage.GetState() }

func (t *Table) Empty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sitCnt <= 0
}

func (t *Table) GetSitCnt() int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return int32(t.sitCnt)
}

// ThrowInto seats a player on the first free chair.
func (t *Table) ThrowInto(p *player.Player) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.throwInto(p)
}

func (t *Table) throwInto(p *player.Player) bool {
	if t.isClosed {
		return false
	}
	for k, v := range t.seats {
		if v != nil {
			continue
		}
		t.seats[k] = p
		t.sitCnt++

		p.Reset()
		p.SetTableID(t.ID)
		p.SetChairID(int32(k))
		p.SetSit()
		t.checkAutoReady(p)

		t.sendLoginRsp(p, codes.SUCCESS, "")
		t.broadcastUserInfo(p)
		t.sendSceneInfo(p)
		t.aiLogic.markEnterNow()

		t.mLog.userEnter(p, t.sitCnt)
		log.Infof("EnterTable. p:%+v sitCnt:%d", p.Desc(), t.sitCnt)

		t.checkCanStart()
		return true
	}
	return false
}

// ThrowOff unseats a player; refused while they are in a running round.
func (t *Table) ThrowOff(p *player.Player) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.throwOff(p)
}

func (t *Table) throwOff(p *player.Player) bool {
	if p == nil {
		return false
	}
	chair := p.GetChairID()
	if chair < 0 || chair >= int32(t.MaxCnt) || t.seats[chair] != p {
		return false
	}
	if !t.canExit(p) {
		return false
	}

	t.seats[chair] = nil
	t.sitCnt--

	t.broadcastUserQuit(p)
	t.aiLogic.markExitNow()
	p.ExitReset()

	t.mLog.userExit(p, t.sitCnt, chair)
	log.Infof("ExitTable. p:%+v sitCnt:%d st:%v", p.Desc(), t.sitCnt, t.stage.GetState())
	return true
}

// ReEnter restores a reconnecting player's view of the table.
func (t *Table) ReEnter(p *player.Player) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sendLoginRsp(p, codes.SUCCESS, "ReEnter")
	t.broadcastUserInfo(p)
	t.sendSceneInfo(p)

	p.SetOffline(false)
	t.broadcastUserOffline(p)
	t.mLog.userReEnter(p, t.sitCnt)
	log.Infof("ReEnterTable. p:%+v sitCnt:%d", p.Desc(), t.sitCnt)
}

func (t *Table) CanEnter(p *player.Player) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canEnter(p)
}

func (t *Table) canEnter(p *player.Player) bool {
	return p != nil && t.sitCnt < t.MaxCnt && !t.isClosed
}

func (t *Table) canExit(p *player.Player) bool {
	s := t.stage.GetState()
	return p != nil && !p.IsGaming() && (s == StWait || s == StResult)
}

func (t *Table) canEnterRobot(p *player.Player) bool {
	return t.canEnter(p) && t.aiLogic.CanEnter(p)
}

func (t *Table) GetPlayerByChair(chair int32) *player.Player {
	t.mu.Lock()
	defer t.mu.Unlock()
	if chair < 0 || chair >= int32(t.MaxCnt) {
		return nil
	}
	return t.seats[chair]
}

func (t *Table) getPlayerByUID(uid int64) *player.Player {
	for _, p := range t.seats {
		if p != nil && p.GetPlayerID() == uid {
			return p
		}
	}
	return nil
}

func (t *Table) Counter() (userCnt, aiCnt, allCnt, gamingCnt int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counter()
}

func (t *Table) counter() (userCnt, aiCnt, allCnt, gamingCnt int32) {
	for _, seat := range t.seats {
		if seat == nil {
			continue
		}
		if seat.IsRobot() {
			aiCnt++
		} else {
			userCnt++
		}
		if seat.IsGaming() {
			gamingCnt++
		}
		allCnt++
	}
	return
}

func (t *Table) checkAutoReady(p *player.Player) {
	if !t.repo.GetRoomConfig().Game.AutoReady {
		return
	}
	if p != nil && !p.IsReady() && !p.IsGaming() {
		p.SetReady()
	}
}

func (t *Table) checkAutoReadyAll() {
	for _, p := range t.seats {
		t.checkAutoReady(p)
	}
}

// checkKick drops lingering offline players between rounds.
func (t *Table) checkKick() {
	state := t.stage.GetState()
	if state != StWait && state != StResult {
		return
	}
	for _, p := range t.seats {
		if p != nil && p.IsOffline() && !p.IsGaming() {
			t.exitGame(p, codes.KICK_BY_BROKE, "kick by broke")
		}
	}
}

// Close marks the table as draining on shutdown: no new seats, current
// round plays out.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.isClosed = true
	t.repo.GetTimer().Cancel(t.stage.GetTimerID())
	if err := t.mLog.Close(); err != nil {
		log.Warnf("close table log: %v", err)
	}
}
