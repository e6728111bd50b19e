package model

import "testing"

func TestTokenDestination(t *testing.T) {
	tests := []struct {
		name   string
		tok    Token
		dice   int32
		wantOK bool
		want   landing
	}{
		{"base needs six", Token{Color: Red, TrackPos: BasePosition}, 3, false, landing{}},
		{"base with six enters red", Token{Color: Red, TrackPos: BasePosition}, 6, true, landing{trackPos: 0}},
		{"base with six enters green", Token{Color: Green, TrackPos: BasePosition}, 6, true, landing{trackPos: 13}},
		{"base with six enters blue", Token{Color: Blue, TrackPos: BasePosition}, 6, true, landing{trackPos: 39}},

		{"track normal", Token{Color: Red, TrackPos: 10}, 3, true, landing{trackPos: 13}},
		{"track wraps seam", Token{Color: Green, TrackPos: 50}, 4, true, landing{trackPos: 2}},
		{"stops on own entrance", Token{Color: Red, TrackPos: 48}, 2, true, landing{trackPos: 50}},

		// Three squares short of the entrance plus a five: three to reach
		// the entrance, two inside the stretch.
		{"enters stretch", Token{Color: Red, TrackPos: 47}, 5, true, landing{trackPos: 50, inStretch: true, stretchPos: 2}},
		{"cannot skip entrance", Token{Color: Yellow, TrackPos: 23}, 4, true, landing{trackPos: 24, inStretch: true, stretchPos: 3}},
		{"entrance to exact finish", Token{Color: Red, TrackPos: 50}, 5, true, landing{trackPos: 50, inStretch: true, stretchPos: 5, finished: true}},
		{"entrance overshoot", Token{Color: Red, TrackPos: 50}, 6, false, landing{}},

		{"stretch advance", Token{Color: Blue, TrackPos: 37, InStretch: true, StretchPos: 2}, 2, true, landing{trackPos: 37, inStretch: true, stretchPos: 4}},
		{"stretch exact finish", Token{Color: Blue, TrackPos: 37, InStretch: true, StretchPos: 2}, 3, true, landing{trackPos: 37, inStretch: true, stretchPos: 5, finished: true}},
		{"stretch overshoot", Token{Color: Blue, TrackPos: 37, InStretch: true, StretchPos: 3}, 4, false, landing{}},

		{"finished never moves", Token{Color: Red, TrackPos: 50, StretchPos: 5, Finished: true}, 1, false, landing{}},
		{"dice out of range", Token{Color: Red, TrackPos: 10}, 7, false, landing{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.tok.destination(tt.dice)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("destination(%d) = (%+v, %v), want (%+v, %v)",
					tt.dice, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTokenEntryMatchesColor(t *testing.T) {
	for c := Color(0); c.Valid(); c++ {
		tok := newToken(0, c)
		dest, ok := tok.destination(DiceSix)
		if !ok || dest.trackPos != c.Entry() {
			t.Errorf("%v: six from base = (%+v, %v), want entry %d", c, dest, ok, c.Entry())
		}
	}
}

func TestDistanceHome(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want int32
	}{
		{"finished", Token{Color: Red, StretchPos: 5, Finished: true}, 0},
		{"stretch", Token{Color: Red, TrackPos: 50, InStretch: true, StretchPos: 3}, 2},
		{"base", Token{Color: Red, TrackPos: BasePosition}, baseDistance},
		{"just entered", Token{Color: Red, TrackPos: 0}, 55},
		{"before entrance", Token{Color: Yellow, TrackPos: 23}, 6},
		{"wraps", Token{Color: Green, TrackPos: 30}, 38},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.distanceHome(); got != tt.want {
				t.Errorf("distanceHome() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSafeSquares(t *testing.T) {
	for _, pos := range SafeSquares() {
		if !IsSafe(pos) {
			t.Errorf("IsSafe(%d) = false", pos)
		}
	}
	for _, pos := range []int32{1, 7, 14, 50} {
		if IsSafe(pos) {
			t.Errorf("IsSafe(%d) = true", pos)
		}
	}
	for c := Color(0); c.Valid(); c++ {
		if !IsSafe(c.Entry()) {
			t.Errorf("entry %d of %v is not safe", c.Entry(), c)
		}
	}
}

func TestCaptureAtStacked(t *testing.T) {
	b := NewBoard([]Color{Red, Yellow})
	b.Tokens(Yellow)[0].TrackPos = 14
	b.Tokens(Yellow)[2].TrackPos = 14
	b.Tokens(Red)[0].TrackPos = 14

	got := b.captureAt(Red, 14, nil)
	if len(got) != 2 {
		t.Fatalf("captureAt = %+v, want both stacked yellow tokens", got)
	}
	for _, c := range got {
		if c.Color != Yellow || c.From != 14 {
			t.Errorf("unexpected capture %+v", c)
		}
	}
	for _, i := range []int32{0, 2} {
		if !b.Tokens(Yellow)[i].InBase() {
			t.Errorf("yellow token %d not sent home", i)
		}
	}
	if !b.Tokens(Red)[0].OnTrack() {
		t.Error("mover's own token was captured")
	}
}

func TestCaptureAtSafeSquare(t *testing.T) {
	b := NewBoard([]Color{Red, Yellow})
	b.Tokens(Yellow)[0].TrackPos = 21
	if got := b.captureAt(Red, 21, nil); got != nil {
		t.Errorf("captureAt on safe square = %+v, want none", got)
	}
}
