package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harshitajammula/ludo/internal/model"
)

func TestSeatLifecycle(t *testing.T) {
	p := New(BaseData{UID: 9, NickName: "dave"}, false)
	require.Equal(t, int32(-1), p.GetTableID())
	require.Equal(t, StFree, p.GetStatus())

	p.SetTableID(3)
	p.SetChairID(1)
	p.SetSit()
	p.SetReady()
	p.SetGaming()
	p.SetColor(model.Green)
	p.SetOffline(true)
	require.True(t, p.IsGaming())

	p.Reset()
	require.Equal(t, StSit, p.GetStatus())
	require.Equal(t, int32(3), p.GetTableID())
	_, ok := p.GetColor()
	require.False(t, ok)
	require.True(t, p.IsOffline()) // reset keeps the link state

	p.ExitReset()
	require.Equal(t, StFree, p.GetStatus())
	require.Equal(t, int32(-1), p.GetTableID())
	require.Equal(t, int32(-1), p.GetChairID())
	require.False(t, p.IsOffline())
}

func TestBoardResultCounters(t *testing.T) {
	p := New(BaseData{UID: 9}, false)
	p.AddBoardResult(true)
	p.AddBoardResult(false)
	require.Equal(t, int32(2), p.GetTotalBoard())
	require.Equal(t, int32(1), p.GetTotalWin())

	base := p.Base()
	base.TotalWin = 99
	require.Equal(t, int32(1), p.GetTotalWin()) // Base returns a copy
}

func TestManagerAddRemove(t *testing.T) {
	m := NewManager()
	p := New(BaseData{UID: 1}, false)
	robot := New(BaseData{UID: -1}, true)

	require.True(t, m.Add(p))
	require.False(t, m.Add(p))
	require.True(t, m.Add(robot))
	require.True(t, m.Exist(1))
	require.Same(t, p, m.GetByID(1))

	users, robots := m.Counter()
	require.Equal(t, int32(1), users)
	require.Equal(t, int32(1), robots)

	m.Remove(1)
	require.False(t, m.Exist(1))
	require.Nil(t, m.GetByID(1))
}
