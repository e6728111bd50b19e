package biz

import (
	"fmt"
	"sync/atomic"

	"github.com/yola1107/kratos/v2/library/xgo"

	"github.com/harshitajammula/ludo/internal/biz/player"
)

var robotNames = []string{
	"Aarav", "Diya", "Kabir", "Meera", "Rohan", "Anaya",
	"Vihaan", "Isha", "Arjun", "Sara", "Dev", "Tara",
}

// robotFactory mints robot players with negative UIDs so they can never
// collide with a real account.
type robotFactory struct {
	seq int64
	pm  *player.Manager
}

func newRobotFactory(pm *player.Manager) *robotFactory {
	return &robotFactory{pm: pm}
}

func (f *robotFactory) fetch() *player.Player {
	uid := -atomic.AddInt64(&f.seq, 1)
	name := robotNames[xgo.RandInt[int](0, len(robotNames))]
	p := player.New(player.BaseData{
		UID:      uid,
		NickName: name,
		Avatar:   fmt.Sprintf("robot_%d", xgo.RandInt[int](1, 9)),
	}, true)
	f.pm.Add(p)
	return p
}

func (f *robotFactory) release(p *player.Player) {
	f.pm.Remove(p.GetPlayerID())
}
