package table

import (
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/pkg/codes"
)

// OnRollReq handles one dice request. The dice value is produced here, not
// taken from the client.
func (t *Table) OnRollReq(p *player.Player) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rollReq(p)
}

func (t *Table) rollReq(p *player.Player) int32 {
	if t.stage.GetState() != StPlaying || t.match == nil {
		return codes.MATCH_NOT_STARTED
	}
	res, err := t.match.RollDice(p.GetPlayerID(), t.rollDice())
	if err != nil {
		log.Debugf("roll rejected. p:%+v err:%v", p.Desc(), err)
		return codes.FromEngine(err)
	}

	t.mLog.roll(t.roundID, p, res)
	t.broadcastRoll(p, res)
	t.afterAction()
	return codes.SUCCESS
}

// OnMoveReq handles one token move request.
func (t *Table) OnMoveReq(p *player.Player, tokenIndex int32) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.moveReq(p, tokenIndex)
}

func (t *Table) moveReq(p *player.Player, tokenIndex int32) int32 {
	if t.stage.GetState() != StPlaying || t.match == nil {
		return codes.MATCH_NOT_STARTED
	}
	res, err := t.match.MoveToken(p.GetPlayerID(), tokenIndex)
	if err != nil {
		log.Debugf("move rejected. p:%+v idx:%d err:%v", p.Desc(), tokenIndex, err)
		return codes.FromEngine(err)
	}

	t.mLog.move(t.roundID, p, tokenIndex, res)
	t.broadcastMove(p, res)
	t.afterAction()
	return codes.SUCCESS
}

// OnSceneReq replays the full table view to one player.
func (t *Table) OnSceneReq(p *player.Player) *SceneRsp {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buildScene(p)
}

// OnExitGame removes a player on their own request or by a room decision.
func (t *Table) OnExitGame(p *player.Player, code int32, msg string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exitGame(p, code, msg)
}

func (t *Table) exitGame(p *player.Player, code int32, msg string) bool {
	if p == nil {
		return false
	}
	if code != codes.SUCCESS {
		t.sendKick(p, code, msg)
	}
	if !t.throwOff(p) {
		return false
	}
	t.repo.LogoutGame(p, code, msg)
	return true
}

// OnOffline marks a disconnected player. Mid-round they stay seated and the
// turn clock plays for them; otherwise the lobby sweep kicks them.
func (t *Table) OnOffline(p *player.Player) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p.SetOffline(true)
	t.broadcastUserOffline(p)
	t.mLog.userOffline(p)
	log.Infof("Offline. p:%+v st:%v", p.Desc(), t.stage.GetState())

	if !p.IsGaming() {
		t.exitGame(p, codes.KICK_BY_BROKE, "offline in lobby")
	}
}
