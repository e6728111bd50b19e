package player

// BaseData is the persisted profile of one account, loaded from the data
// layer on login and written back when lifetime stats change.
type BaseData struct {
	UID        int64
	NickName   string
	Avatar     string
	TotalBoard int32 // lifetime finished matches
	TotalWin   int32 // lifetime wins
}

func (p *Player) GetPlayerID() int64 { return p.baseData.UID }
func (p *Player) GetNickName() string { return p.baseData.NickName }
func (p *Player) GetAvatar() string { return p.baseData.Avatar }
func (p *Player) GetTotalBoard() int32 { return p.baseData.TotalBoard }
func (p *Player) GetTotalWin() int32 { return p.baseData.TotalWin }

// AddBoardResult folds one finished match into the lifetime counters.
func (p *Player) AddBoardResult(win bool) {
	p.baseData.TotalBoard++
	if win {
		p.baseData.TotalWin++
	}
}

// Base returns a copy of the profile for persistence.
func (p *Player) Base() BaseData { return p.baseData }
