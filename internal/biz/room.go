package biz

import (
	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/biz/table"
	"github.com/harshitajammula/ludo/pkg/codes"
)

// postAndWait funnels a room mutation through the worker pool so shutdown
// can drain in-flight operations.
func (uc *Usecase) postAndWait(fn func() int32) int32 {
	code := codes.SUCCESS
	if _, err := uc.loop.PostAndWait(func() ([]byte, error) {
		code = fn()
		return nil, nil
	}); err != nil {
		uc.log.Errorf("room op dropped. err:%v", err)
		return codes.ROOM_CLOSED
	}
	return code
}

// Login seats a player, loading their profile on first contact. A known UID
// reconnects to the seat it already holds.
func (uc *Usecase) Login(uid int64, nickName, avatar string) int32 {
	return uc.postAndWait(func() int32 {
		if uid <= 0 {
			return codes.PLAYER_INVALID
		}
		if p := uc.pm.GetByID(uid); p != nil {
			t := uc.tm.Get(p.GetTableID())
			if t == nil {
				return codes.TABLE_NOT_FOUND
			}
			t.ReEnter(p)
			return codes.SUCCESS
		}

		base, err := uc.repo.LoadProfile(uc.ctx, uid)
		if err != nil {
			uc.log.Warnf("load profile failed, using defaults. uid:%d err:%v", uid, err)
		}
		if base == nil {
			base = &player.BaseData{UID: uid, NickName: nickName, Avatar: avatar}
		}
		if nickName != "" {
			base.NickName = nickName
		}
		if avatar != "" {
			base.Avatar = avatar
		}

		p := player.New(*base, false)
		if !uc.pm.Add(p) {
			return codes.ALREADY_IN_TABLE
		}
		if t := uc.tm.TryFindAndEnter(p); t == nil {
			uc.pm.Remove(uid)
			return codes.NOT_ENOUGH_TABLE
		}
		return codes.SUCCESS
	})
}

// Logout removes a player on request; refused while a round holds them.
func (uc *Usecase) Logout(uid int64) int32 {
	return uc.postAndWait(func() int32 {
		p, t := uc.locate(uid)
		if p == nil {
			return codes.PLAYER_NOT_FOUND
		}
		if t == nil {
			return codes.TABLE_NOT_FOUND
		}
		if !t.OnExitGame(p, codes.SUCCESS, "user exit") {
			return codes.EXIT_TABLE_FAIL
		}
		return codes.SUCCESS
	})
}

// Offline flags a dropped connection without freeing the seat mid-round.
func (uc *Usecase) Offline(uid int64) int32 {
	return uc.postAndWait(func() int32 {
		p, t := uc.locate(uid)
		if p == nil {
			return codes.PLAYER_NOT_FOUND
		}
		if t == nil {
			return codes.TABLE_NOT_FOUND
		}
		t.OnOffline(p)
		return codes.SUCCESS
	})
}

// AddRobot force-seats a robot at the caller's table, robot gates permitting.
func (uc *Usecase) AddRobot(uid int64) int32 {
	return uc.postAndWait(func() int32 {
		p, t := uc.locate(uid)
		if p == nil {
			return codes.PLAYER_NOT_FOUND
		}
		if t == nil {
			return codes.TABLE_NOT_FOUND
		}
		if !uc.rc.Robot.Open {
			return codes.ROBOT_DENIED
		}
		robot := uc.robots.fetch()
		if !t.ThrowInto(robot) {
			uc.robots.release(robot)
			return codes.ENTER_TABLE_FAIL
		}
		return codes.SUCCESS
	})
}

func (uc *Usecase) Roll(uid int64) int32 {
	p, t := uc.locate(uid)
	if p == nil {
		return codes.PLAYER_NOT_FOUND
	}
	if t == nil {
		return codes.TABLE_NOT_FOUND
	}
	return t.OnRollReq(p)
}

func (uc *Usecase) Move(uid int64, tokenIndex int32) int32 {
	p, t := uc.locate(uid)
	if p == nil {
		return codes.PLAYER_NOT_FOUND
	}
	if t == nil {
		return codes.TABLE_NOT_FOUND
	}
	return t.OnMoveReq(p, tokenIndex)
}

// Scene returns the full table view for one player.
func (uc *Usecase) Scene(uid int64) (*table.SceneRsp, int32) {
	p, t := uc.locate(uid)
	if p == nil {
		return nil, codes.PLAYER_NOT_FOUND
	}
	if t == nil {
		return nil, codes.TABLE_NOT_FOUND
	}
	return t.OnSceneReq(p), codes.SUCCESS
}

// Events drains queued pushes newer than the client's cursor.
func (uc *Usecase) Events(uid, since int64) ([]Event, int32) {
	if uc.pm.GetByID(uid) == nil {
		return nil, codes.PLAYER_NOT_FOUND
	}
	return uc.events.fetch(uid, since), codes.SUCCESS
}

// RoomInfo summarizes room occupancy, listing the occupied tables.
type RoomInfo struct {
	Users  int32       `json:"users"`
	Robots int32       `json:"robots"`
	Seated int32       `json:"seated"`
	Gaming int32       `json:"gaming"`
	Tables []TableInfo `json:"tables,omitempty"`
}

// TableInfo is one row of the occupancy listing.
type TableInfo struct {
	ID     int32 `json:"id"`
	Seated int32 `json:"seated"`
	Gaming bool  `json:"gaming"`
}

func (uc *Usecase) Info() *RoomInfo {
	users, robots, all, gaming := uc.tm.Counter()
	info := &RoomInfo{Users: users, Robots: robots, Seated: all, Gaming: gaming}
	uc.tm.Range(func(t *table.Table) bool {
		if t.Empty() {
			return true
		}
		_, _, seated, g := t.Counter()
		info.Tables = append(info.Tables, TableInfo{ID: t.ID, Seated: seated, Gaming: g > 0})
		return true
	})
	return info
}

func (uc *Usecase) locate(uid int64) (*player.Player, *table.Table) {
	p := uc.pm.GetByID(uid)
	if p == nil {
		return nil, nil
	}
	return p, uc.tm.Get(p.GetTableID())
}
