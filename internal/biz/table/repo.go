package table

import (
	"github.com/yola1107/kratos/v2/library/work"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/conf"
)

// Repo is what a table needs from its owner.
type Repo interface {
	GetLoop() work.Loop
	GetTimer() work.Scheduler
	GetRoomConfig() *conf.Room
	// FetchRobot hands out an idle robot, or nil when none are available.
	FetchRobot() *player.Player
	LogoutGame(p *player.Player, code int32, msg string)
	RecordResult(winners []int64, losers []int64)
}
