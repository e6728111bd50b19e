package biz

import (
	"context"

	"github.com/google/wire"
	"github.com/yola1107/kratos/v2/library/work"
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/biz/table"
	"github.com/harshitajammula/ludo/internal/conf"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(NewUsecase)

var (
	_ table.Repo   = (*Usecase)(nil)
	_ table.Sender = (*Usecase)(nil)
)

const defaultPendingNum = 10000

// DataRepo is the persistence boundary for player profiles and results.
type DataRepo interface {
	LoadProfile(ctx context.Context, uid int64) (*player.BaseData, error)
	SaveProfile(ctx context.Context, base *player.BaseData) error
	RecordResult(ctx context.Context, winners, losers []int64) error
}

// Usecase owns the room runtime: the player and table managers, the worker
// pool and the timer wheel behind every table.
type Usecase struct {
	ctx    context.Context
	cancel context.CancelFunc

	repo DataRepo
	log  *log.Helper

	rc     *conf.Room
	loop   work.Loop
	timer  work.Scheduler
	pm     *player.Manager
	tm     *table.Manager
	events *eventHub
	robots *robotFactory
}

func NewUsecase(repo DataRepo, logger log.Logger, c *conf.Room) (*Usecase, func(), error) {
	uc := &Usecase{repo: repo, log: log.NewHelper(logger), rc: c}

	uc.ctx, uc.cancel = context.WithCancel(context.Background())
	uc.loop = work.NewLoop(work.WithSize(defaultPendingNum))
	uc.timer = work.NewHeapScheduler(
		work.WithHeapExecutor(uc.loop),
		work.WithHeapContext(uc.ctx),
	)
	uc.pm = player.NewManager()
	uc.events = newEventHub()
	uc.robots = newRobotFactory(uc.pm)
	uc.tm = table.NewManager(c, uc, uc)

	cleanup := func() {
		log.NewHelper(logger).Info("closing the room resources")
		uc.tm.CloseAll()
		uc.timer.CancelAll()
		uc.timer.Stop()
		uc.cancel()
		uc.loop.Stop()
	}
	return uc, cleanup, uc.loop.Start()
}

// ---- table.Repo ----

func (uc *Usecase) GetLoop() work.Loop        { return uc.loop }
func (uc *Usecase) GetTimer() work.Scheduler  { return uc.timer }
func (uc *Usecase) GetRoomConfig() *conf.Room { return uc.rc }

func (uc *Usecase) FetchRobot() *player.Player {
	return uc.robots.fetch()
}

// LogoutGame tears the player out of the room after the table released them.
func (uc *Usecase) LogoutGame(p *player.Player, code int32, msg string) {
	if p == nil {
		return
	}
	uid := p.GetPlayerID()
	if p.IsRobot() {
		uc.robots.release(p)
		return
	}
	uc.pm.Remove(uid)
	uc.events.drop(uid)
	uc.log.Infof("logout. uid:%d code:%d msg:%s", uid, code, msg)
}

// RecordResult persists round counters off the table's critical path.
func (uc *Usecase) RecordResult(winners, losers []int64) {
	uc.loop.Post(func() {
		if err := uc.repo.RecordResult(uc.ctx, winners, losers); err != nil {
			uc.log.Errorf("record result failed. winners:%v losers:%v err:%v", winners, losers, err)
		}
		for _, uid := range append(winners, losers...) {
			uc.syncProfile(uid)
		}
	})
}

// syncProfile writes the in-memory counters of a seated player back to the
// profile store.
func (uc *Usecase) syncProfile(uid int64) {
	p := uc.pm.GetByID(uid)
	if p == nil || p.IsRobot() {
		return
	}
	base := p.Base()
	if err := uc.repo.SaveProfile(uc.ctx, &base); err != nil {
		uc.log.Warnf("save profile failed. uid:%d err:%v", uid, err)
	}
}

// ---- table.Sender ----

// Send queues a push for later retrieval by the client's event poll.
func (uc *Usecase) Send(uid int64, cmd string, payload any) {
	uc.events.push(uid, cmd, payload)
}
