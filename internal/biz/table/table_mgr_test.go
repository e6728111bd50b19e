package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, tables int32) (*Manager, *fakeRepo) {
	t.Helper()
	cfg := testRoomConfig()
	cfg.Table.TableNum = tables
	cfg.Game.AutoReady = false // keep lobby stable while seating
	repo := &fakeRepo{cfg: cfg, timer: newFakeScheduler()}
	return NewManager(cfg, repo, &fakeSender{}), repo
}

func TestTryFindAndEnterPrefersOccupied(t *testing.T) {
	m, _ := newTestManager(t, 3)

	t1 := m.TryFindAndEnter(newHuman(1, "alice"))
	require.NotNil(t, t1)

	// The next two joiners pile onto the occupied table instead of
	// spreading out.
	t2 := m.TryFindAndEnter(newHuman(2, "bob"))
	require.Same(t, t1, t2)
	t3 := m.TryFindAndEnter(newHuman(3, "carol"))
	require.Same(t, t1, t3)
}

func TestTryFindAndEnterOverflowsToEmptyTable(t *testing.T) {
	m, _ := newTestManager(t, 2)

	var first *Table
	for uid := int64(1); uid <= 4; uid++ {
		tb := m.TryFindAndEnter(newHuman(uid, "p"))
		require.NotNil(t, tb)
		if first == nil {
			first = tb
		} else {
			require.Same(t, first, tb)
		}
	}
	overflow := m.TryFindAndEnter(newHuman(5, "late"))
	require.NotNil(t, overflow)
	require.NotSame(t, first, overflow)

	_, _, all, _ := m.Counter()
	require.Equal(t, int32(5), all)
}

func TestManagerRefusesWhenRoomFull(t *testing.T) {
	m, _ := newTestManager(t, 1)
	for uid := int64(1); uid <= 4; uid++ {
		require.NotNil(t, m.TryFindAndEnter(newHuman(uid, "p")))
	}
	require.Nil(t, m.TryFindAndEnter(newHuman(5, "late")))
}

func TestManagerRangeVisitsTablesInOrder(t *testing.T) {
	m, _ := newTestManager(t, 3)
	require.NotNil(t, m.TryFindAndEnter(newHuman(1, "alice")))

	var seen []int32
	m.Range(func(tb *Table) bool {
		seen = append(seen, tb.ID)
		return true
	})
	require.Equal(t, []int32{0, 1, 2}, seen)

	// returning false stops the walk
	var visited int
	m.Range(func(tb *Table) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited)
}

func TestManagerGetBounds(t *testing.T) {
	m, _ := newTestManager(t, 2)
	require.NotNil(t, m.Get(0))
	require.NotNil(t, m.Get(1))
	require.Nil(t, m.Get(2))
	require.Nil(t, m.Get(-1))
}
