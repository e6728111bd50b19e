package table

import (
	"github.com/yola1107/kratos/v2/log"

	"github.com/harshitajammula/ludo/internal/biz/player"
	"github.com/harshitajammula/ludo/internal/conf"
)

// Manager owns the fixed table set for one room process.
type Manager struct {
	tables []*Table
}

func NewManager(c *conf.Room, repo Repo, sender Sender) *Manager {
	m := &Manager{tables: make([]*Table, 0, c.Table.TableNum)}
	for i := int32(0); i < c.Table.TableNum; i++ {
		m.tables = append(m.tables, NewTable(i, c, repo, sender))
	}
	log.Infof("table manager ready. tables:%d chairs:%d", c.Table.TableNum, c.Table.ChairNum)
	return m
}

func (m *Manager) Get(tableID int32) *Table {
	if tableID < 0 || int(tableID) >= len(m.tables) {
		return nil
	}
	return m.tables[tableID]
}

// TryFindAndEnter seats a player, preferring partly filled tables so rounds
// form quickly.
func (m *Manager) TryFindAndEnter(p *player.Player) *Table {
	var empty *Table
	for _, t := range m.tables {
		if !t.CanEnter(p) {
			continue
		}
		if t.Empty() {
			if empty == nil {
				empty = t
			}
			continue
		}
		if t.ThrowInto(p) {
			return t
		}
	}
	if empty != nil && empty.ThrowInto(p) {
		return empty
	}
	return nil
}

func (m *Manager) Range(fn func(t *Table) bool) {
	for _, t := range m.tables {
		if !fn(t) {
			return
		}
	}
}

func (m *Manager) Counter() (userCnt, aiCnt, allCnt, gamingCnt int32) {
	for _, t := range m.tables {
		u, a, all, g := t.Counter()
		userCnt += u
		aiCnt += a
		allCnt += all
		gamingCnt += g
	}
	return
}

func (m *Manager) CloseAll() {
	for _, t := range m.tables {
		t.Close()
	}
}
