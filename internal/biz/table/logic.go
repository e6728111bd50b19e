package table

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/yola1107/kratos/v2/library/xgo"
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/model"
)

const waitTick = time.Second

// OnTimer drives the stage machine. It is the single timer callback for the
// table; which transition fires depends on the stage the timer was armed in.
func (t *Table) OnTimer() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.isClosed {
		return
	}
	switch t.stage.GetState() {
	case StWait:
		t.onWaitTick()
	case StReady:
		t.onGameStart()
	case StPlaying:
		t.onTurnTimeout()
	case StResult:
		t.gameEnd()
	default:
		log.Errorf("unknown stage. %s", t.Desc())
		t.updateStage(StWait)
	}
}

func (t *Table) updateStage(st StageID) {
	switch st {
	case StWait:
		t.updateStageWith(st, waitTick)
	case StReady:
		t.updateStageWith(st, readyTimeout)
	case StPlaying:
		t.updateStageWith(st, t.turnTimeout())
	case StResult:
		t.updateStageWith(st, resultTimeout)
	}
}

func (t *Table) updateStageWith(st StageID, d time.Duration) {
	t.repo.GetTimer().Cancel(t.stage.GetTimerID())
	t.stage.Set(st, d, t.repo.GetTimer().Once(d, t.OnTimer))
}

func (t *Table) turnTimeout() time.Duration {
	return time.Duration(t.repo.GetRoomConfig().Game.TurnTimeoutSec) * time.Second
}

func (t *Table) onWaitTick() {
	t.checkKick()
	t.aiLogic.tryFill()
	t.checkCanStart()
	if t.stage.GetState() == StWait {
		t.updateStage(StWait) // re-arm the tick
	}
}

// checkCanStart moves to the ready countdown once enough seats are ready.
func (t *Table) checkCanStart() {
	if t.stage.GetState() != StWait {
		return
	}
	ready := int32(0)
	for _, p := range t.seats {
		if p != nil && p.IsReady() {
			ready++
		}
	}
	if ready >= t.repo.GetRoomConfig().Game.MinStartPlayers {
		t.updateStage(StReady)
	}
}

// onGameStart seats the ready players into a fresh match.
func (t *Table) onGameStart() {
	cfg := t.repo.GetRoomConfig().Game

	var gamers []*player.Player
	for _, p := range t.seats {
		if p != nil && p.IsReady() {
			gamers = append(gamers, p)
		}
	}
	if int32(len(gamers)) < cfg.MinStartPlayers {
		t.updateStage(StWait)
		return
	}

	var opts []model.Option
	// Team play needs an even player count; a third joiner degrades the
	// round to free-for-all rather than blocking the table.
	if cfg.TeamMode && len(gamers) != 3 {
		opts = append(opts, model.WithTeamMode())
	}
	opts = append(opts, model.WithRules(model.Rules{
		BonusOnFinish:   cfg.BonusOnFinish,
		MissedTurnLimit: cfg.MissedTurnLimit,
		TurnTimeout:     t.turnTimeout(),
	}))

	m := model.NewMatch(opts...)
	for _, p := range gamers {
		var err error
		if p.IsRobot() {
			_, err = m.AddRobot(p.GetPlayerID(), p.GetNickName())
		} else {
			_, err = m.AddPlayer(p.GetPlayerID(), p.GetNickName())
		}
		if err != nil {
			log.Errorf("seat into match failed. p:%+v err:%v", p.Desc(), err)
			t.updateStage(StWait)
			return
		}
	}
	if err := m.Start(); err != nil {
		log.Errorf("match start failed. %s err:%v", t.Desc(), err)
		t.updateStage(StWait)
		return
	}

	t.match = m
	t.roundID = uuid.NewString()
	for _, p := range gamers {
		p.SetGaming()
		if mp := m.PlayerByID(p.GetPlayerID()); mp != nil {
			p.SetColor(mp.Color())
		}
	}

	t.mLog.gameStart(t.roundID, gamers, m)
	log.Infof("GameStart. %s gamers:%d team:%v", t.Desc(), len(gamers), m.TeamMode())

	t.broadcastGameStart()
	t.updateStage(StPlaying)
	t.pushTurn()
}

// onTurnTimeout lets the engine act for the stalled player, then either
// settles the round or hands the turn on.
func (t *Table) onTurnTimeout() {
	if t.match == nil {
		log.Errorf("turn timeout without match. %s", t.Desc())
		t.updateStage(StWait)
		return
	}
	res, err := t.match.HandleTimeout(t.rollDice())
	if err != nil {
		log.Errorf("timeout handling failed. %s err:%v", t.Desc(), err)
		t.settle()
		return
	}

	t.mLog.turnTimeout(t.roundID, res)
	t.broadcastTimeout(res)
	t.afterAction()
}

// afterAction is the common tail of every accepted game action: settle if the
// round ended, otherwise re-arm the turn clock and prompt the next actor.
func (t *Table) afterAction() {
	if t.match != nil && (t.match.Over() || t.isWalkover()) {
		t.settle()
		return
	}
	t.updateStage(StPlaying)
	t.pushTurn()
}

// isWalkover reports a round decided by eliminations alone: at most one
// player left standing.
func (t *Table) isWalkover() bool {
	alive := 0
	for _, mp := range t.match.Players() {
		if !mp.IsEliminated() {
			alive++
		}
	}
	return alive <= 1
}

func (t *Table) pushTurn() {
	if t.match == nil {
		return
	}
	cur := t.match.CurrentPlayer()
	if cur == nil {
		return
	}
	t.broadcastTurn()
	t.aiLogic.onTurn(cur)
}

// rollDice produces the server-side dice value. The engine itself never
// generates randomness.
func (t *Table) rollDice() int32 {
	return xgo.RandInt[int32](1, 7)
}

func (t *Table) settle() {
	if t.match == nil {
		return
	}
	winner := t.match.Winner()

	var winners, losers []int64
	for _, mp := range t.match.Players() {
		p := t.getPlayerByUID(mp.ID())
		won := winner != nil && lo.Contains(winner.PlayerIDs, mp.ID())
		if winner == nil {
			// Walkover: the last players standing take the round.
			won = !mp.IsEliminated()
		}
		if p != nil {
			p.AddBoardResult(won)
		}
		if won {
			winners = append(winners, mp.ID())
		} else {
			losers = append(losers, mp.ID())
		}
	}
	t.repo.RecordResult(winners, losers)

	t.mLog.gameEnd(t.roundID, t.match)
	log.Infof("GameEnd. %s winner:%+v breaks:%d", t.Desc(), winner, t.match.InvariantBreaks())

	t.broadcastResult()
	t.updateStage(StResult)
}

// gameEnd clears the round and returns the table to the lobby stage.
func (t *Table) gameEnd() {
	t.match = nil
	t.roundID = ""
	for _, p := range t.seats {
		if p != nil {
			p.Reset()
		}
	}
	// Robots have nobody to play for once the last human leaves.
	if userCnt, _, _, _ := t.counter(); userCnt == 0 {
		for _, p := range t.seats {
			if p != nil && p.IsRobot() {
				t.exitGame(p, 0, "no humans left")
			}
		}
	}
	t.checkAutoReadyAll()
	t.checkKick()
	t.updateStage(StWait)
	t.checkCanStart()
}
