package table

import (
	"fmt"

	"github.com/yola1107/kratos/v2/library/log/file"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/conf"
	"github.com/harshitajammula/ludo/internal/model"
)

// Log is the per-table round journal. With log caching disabled it is a
// no-op shell so call sites never nil-check.
type Log struct {
	inner *file.Log
}

func NewTableLog(tableID int32, lc *conf.LogCache) *Log {
	if lc == nil || !lc.Open {
		return &Log{}
	}
	return &Log{inner: file.NewFileLog(fmt.Sprintf("./logs/table/table_%d.log", tableID))}
}

func (l *Log) write(msg string, args ...interface{}) {
	if l.inner != nil {
		l.inner.WriteLog(msg, args...)
	}
}

func (l *Log) Close() error {
	if l.inner != nil {
		return l.inner.Sync()
	}
	return nil
}

func (l *Log) userEnter(p *player.Player, sitCnt int16) {
	l.write("<enter> uid[%d] chair[%d] robot[%v] sit[%d]",
		p.GetPlayerID(), p.GetChairID(), p.IsRobot(), sitCnt)
}

func (l *Log) userExit(p *player.Player, sitCnt int16, chair int32) {
	l.write("<exit> uid[%d] chair[%d] sit[%d]", p.GetPlayerID(), chair, sitCnt)
}

func (l *Log) userReEnter(p *player.Player, sitCnt int16) {
	l.write("<reenter> uid[%d] chair[%d] sit[%d]", p.GetPlayerID(), p.GetChairID(), sitCnt)
}

func (l *Log) userOffline(p *player.Player) {
	l.write("<offline> uid[%d] chair[%d] gaming[%v]",
		p.GetPlayerID(), p.GetChairID(), p.IsGaming())
}

func (l *Log) gameStart(roundID string, gamers []*player.Player, m *model.Match) {
	l.write("<start> round[%s] gamers[%d] team[%v]", roundID, len(gamers), m.TeamMode())
	for _, p := range gamers {
		color, _ := p.GetColor()
		l.write("<seat> round[%s] uid[%d] chair[%d] color[%v] robot[%v]",
			roundID, p.GetPlayerID(), p.GetChairID(), color, p.IsRobot())
	}
}

func (l *Log) roll(roundID string, p *player.Player, res *model.RollResult) {
	l.write("<roll> round[%s] uid[%d] dice[%d] movable[%v] pass[%v] forfeit[%v] again[%v]",
		roundID, p.GetPlayerID(), res.Value, res.MovableTokens,
		res.TurnPassed, res.Forfeited, res.RollAgain)
}

func (l *Log) move(roundID string, p *player.Player, idx int32, res *model.MoveResult) {
	l.write("<move> round[%s] uid[%d] idx[%d] token[%+v] captured[%d] bonus[%v] finished[%v] over[%v]",
		roundID, p.GetPlayerID(), idx, res.Token, len(res.Captured),
		res.BonusTurn, res.FinishedToken, res.GameOver)
}

func (l *Log) turnTimeout(roundID string, res *model.TimeoutResult) {
	l.write("<timeout> round[%s] uid[%d] idx[%d] missed[%d] eliminated[%v] pass[%v]",
		roundID, res.PlayerID, res.TokenIndex, res.MissedTurns, res.Eliminated, res.TurnPassed)
}

func (l *Log) gameEnd(roundID string, m *model.Match) {
	l.write("<end> round[%s] winner[%+v] breaks[%d]", roundID, m.Winner(), m.InvariantBreaks())
	for _, mp := range m.Players() {
		l.write("<final> round[%s] uid[%d] color[%v] finished[%d] eliminated[%v]",
			roundID, mp.ID(), mp.Color(), mp.FinishedTokens(), mp.IsEliminated())
	}
}
