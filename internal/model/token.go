package model

import "fmt"

// Token is one of a player's four pieces. Exactly one of the following holds
// at any time: in base (TrackPos == BasePosition), on the shared track
// (0..51), in the home stretch (InStretch, StretchPos 1..5), or finished.
// A finished token is terminal and never mutated again.
type Token struct {
	Index      int32 `json:"index"`
	Color      Color `json:"color"`
	TrackPos   int32 `json:"trackPos"`
	InStretch  bool  `json:"inStretch"`
	StretchPos int32 `json:"stretchPos"`
	Finished   bool  `json:"finished"`
}

func newToken(index int32, color Color) *Token {
	return &Token{Index: index, Color: color, TrackPos: BasePosition}
}

func (t *Token) InBase() bool { return !t.Finished && !t.InStretch && t.TrackPos == BasePosition }
func (t *Token) OnTrack() bool { return !t.Finished && !t.InStretch && t.TrackPos >= 0 }

func (t *Token) Desc() string {
	switch {
	case t.Finished:
		return fmt.Sprintf("[%v#%d finished]", t.Color, t.Index)
	case t.InStretch:
		return fmt.Sprintf("[%v#%d stretch:%d]", t.Color, t.Index, t.StretchPos)
	case t.InBase():
		return fmt.Sprintf("[%v#%d base]", t.Color, t.Index)
	default:
		return fmt.Sprintf("[%v#%d track:%d]", t.Color, t.Index, t.TrackPos)
	}
}

// sendHome resets the token to base after a capture.
func (t *Token) sendHome() {
	t.TrackPos = BasePosition
	t.InStretch = false
	t.StretchPos = 0
	t.Finished = false
}

// landing is the logical position a move resolves to, computed without
// mutating the token.
type landing struct {
	trackPos   int32
	inStretch  bool
	stretchPos int32
	finished   bool
}

// step advances the landing by a single square. Returns false when the step
// would overshoot the end of the home stretch.
func (l *landing) step(c Color) bool {
	switch {
	case l.inStretch:
		if l.stretchPos >= HomeStretchLength {
			return false
		}
		l.stretchPos++
	case l.trackPos == c.HomeEntrance():
		// Turning off the shared track into the color-exclusive stretch.
		l.inStretch = true
		l.stretchPos = 1
	default:
		l.trackPos = (l.trackPos + 1) % TrackLength
	}
	return true
}

// destination resolves an advance of d squares. The d steps are simulated one
// square at a time: that is the only formulation that handles the wrap-around
// at the track seam and the four differing home entrances uniformly.
// ok == false means the token is not movable with this roll; the token is
// never mutated here.
func (t *Token) destination(d int32) (landing, bool) {
	if d < 1 || d > DiceSix || t.Finished {
		return landing{}, false
	}
	if t.InBase() {
		if d != DiceSix {
			return landing{}, false
		}
		return landing{trackPos: t.Color.Entry()}, true
	}
	cur := landing{trackPos: t.TrackPos, inStretch: t.InStretch, stretchPos: t.StretchPos}
	for i := int32(0); i < d; i++ {
		if !cur.step(t.Color) {
			return landing{}, false
		}
	}
	cur.finished = cur.inStretch && cur.stretchPos == HomeStretchLength
	return cur, true
}

// movable reports whether the token may advance by d: leaving base needs a
// six, a home-stretch token needs an exact or shorter fit, a track token only
// needs the stretch tail (if entered) to fit.
func (t *Token) movable(d int32) bool {
	_, ok := t.destination(d)
	return ok
}

// apply commits a previously resolved landing. A finished token keeps
// StretchPos == HomeStretchLength but leaves the in-stretch state.
func (t *Token) apply(l landing) {
	t.TrackPos = l.trackPos
	t.InStretch = l.inStretch && !l.finished
	t.StretchPos = l.stretchPos
	t.Finished = l.finished
}

// distanceHome is the auto-play metric: squares left to the center. Base
// tokens count as a large constant so anything actually racing is preferred.
func (t *Token) distanceHome() int32 {
	switch {
	case t.Finished:
		return 0
	case t.InStretch:
		return HomeStretchLength - t.StretchPos
	case t.InBase():
		return baseDistance
	default:
		return (t.Color.HomeEntrance()-t.TrackPos+TrackLength)%TrackLength + HomeStretchLength
	}
}

const baseDistance = TrackLength + HomeStretchLength + 42 // larger than any on-board distance
