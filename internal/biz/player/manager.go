package player

import "sync"

// Manager indexes every player currently known to the room by UID.
type Manager struct {
	playerMap sync.Map // map[int64]*Player
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Exist(id int64) bool {
	_, ok := m.playerMap.Load(id)
	return ok
}

func (m *Manager) GetByID(id int64) *Player {
	if p, ok := m.playerMap.Load(id); ok {
		return p.(*Player)
	}
	return nil
}

// Add registers a player, refusing duplicates.
func (m *Manager) Add(p *Player) bool {
	_, loaded := m.playerMap.LoadOrStore(p.GetPlayerID(), p)
	return !loaded
}

func (m *Manager) Remove(id int64) {
	m.playerMap.Delete(id)
}

func (m *Manager) Counter() (users, robots int32) {
	m.playerMap.Range(func(_, value any) bool {
		if value.(*Player).IsRobot() {
			robots++
		} else {
			users++
		}
		return true
	})
	return
}
