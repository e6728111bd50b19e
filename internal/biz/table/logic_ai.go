package table

import (
	"time"

	"github.com/yola1107/kratos/v2/library/xgo"
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/model"
)

const (
	robotEnterGap = 2 * time.Second // min spacing between robot entries
	robotActMin   = 800             // action delay window, milliseconds
	robotActMax   = 2200
)

// RobotLogic paces robot seating and play so tables with bots still move at
// a human rhythm. It piggybacks on the owning table's lock and timer.
type RobotLogic struct {
	t         *Table
	lastEnter time.Time
	lastExit  time.Time
	actTimer  int64
}

func (r *RobotLogic) init(t *Table) { r.t = t }

func (r *RobotLogic) markEnterNow() { r.lastEnter = time.Now() }
func (r *RobotLogic) markExitNow() { r.lastExit = time.Now() }

// CanEnter throttles robot seating against the room's robot config.
func (r *RobotLogic) CanEnter(p *player.Player) bool {
	cfg := r.t.repo.GetRoomConfig().Robot
	if !cfg.Open || p == nil || !p.IsRobot() {
		return false
	}
	_, aiCnt, _, _ := r.t.counter()
	if aiCnt >= cfg.TableMaxCount {
		return false
	}
	return time.Since(r.lastEnter) >= robotEnterGap
}

// tryFill tops a waiting table up to the start threshold with robots. Tables
// without a human stay empty unless the room reserves robot-only play.
func (r *RobotLogic) tryFill() {
	t := r.t
	cfg := t.repo.GetRoomConfig()
	if !cfg.Robot.Open || t.stage.GetState() != StWait {
		return
	}
	userCnt, _, allCnt, _ := t.counter()
	if userCnt == 0 && cfg.Robot.MinPlayCount <= 0 {
		return
	}
	if allCnt >= cfg.Game.MinStartPlayers {
		return
	}
	p := t.repo.FetchRobot()
	if p == nil || !t.canEnterRobot(p) {
		return
	}
	if !t.throwInto(p) {
		t.repo.LogoutGame(p, 0, "robot seat failed")
	}
}

// onTurn schedules the robot's next action when the turn lands on one.
// Called with the table lock held.
func (r *RobotLogic) onTurn(cur *model.Player) {
	if cur == nil || !cur.IsRobot() {
		return
	}
	t := r.t
	t.repo.GetTimer().Cancel(r.actTimer)
	delay := time.Duration(xgo.RandInt[int64](robotActMin, robotActMax)) * time.Millisecond
	uid := cur.ID()
	r.actTimer = t.repo.GetTimer().Once(delay, func() { r.act(uid) })
}

// act performs one robot step: roll when the dice is pending, otherwise move
// the engine-preferred token. The next step is scheduled by the turn push
// that follows the action.
func (r *RobotLogic) act(uid int64) {
	t := r.t
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stage.GetState() != StPlaying || t.match == nil {
		return
	}
	cur := t.match.CurrentPlayer()
	if cur == nil || cur.ID() != uid || !cur.IsRobot() {
		return
	}
	p := t.getPlayerByUID(uid)
	if p == nil {
		return
	}

	if t.match.PendingDice() == 0 {
		if code := t.rollReq(p); code != 0 {
			log.Warnf("robot roll failed. uid:%d code:%d", uid, code)
		}
		return
	}
	idx, ok := t.match.AutoChoice(cur)
	if !ok {
		log.Warnf("robot has no move. uid:%d dice:%d", uid, t.match.PendingDice())
		return
	}
	if code := t.moveReq(p, idx); code != 0 {
		log.Warnf("robot move failed. uid:%d idx:%d code:%d", uid, idx, code)
	}
}
