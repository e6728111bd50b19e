package model

import "fmt"

// Color identifies one of the four fixed seat colors. Keeping it a closed
// enum (instead of free-form strings) makes an unknown color unrepresentable.
type Color int32

const (
	Red Color = iota
	Green
	Yellow
	Blue

	ColorCount = 4
)

const (
	TrackLength       int32 = 52 // shared circular track, positions 0..51
	HomeStretchLength int32 = 5  // color-exclusive final approach, 1..5, 5 = center
	BasePosition      int32 = -1 // off-track holding area
	DiceSix           int32 = 6
)

var (
	entryPoints   = [ColorCount]int32{0, 13, 26, 39}  // square entered when leaving base
	homeEntrances = [ColorCount]int32{50, 11, 24, 37} // last track square before turning home

	// Eight squares where captures never occur: the four entries plus the
	// four star squares between them.
	safePositions = map[int32]struct{}{
		0: {}, 8: {}, 13: {}, 21: {}, 26: {}, 34: {}, 39: {}, 47: {},
	}

	// Seat colors in join order. The second joiner gets the first joiner's
	// diagonal partner so a 2-player game is played across the board.
	joinOrder = [ColorCount]Color{Red, Yellow, Green, Blue}
)

func (c Color) Valid() bool { return c >= 0 && c < ColorCount }

// Entry returns the absolute track square a token lands on when leaving base.
func (c Color) Entry() int32 { return entryPoints[c] }

// HomeEntrance returns the last shared-track square before this color's
// home stretch.
func (c Color) HomeEntrance() int32 { return homeEntrances[c] }

// Partner returns the diagonally opposite color, the fixed 2v2 teammate.
func (c Color) Partner() Color {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	case Green:
		return Blue
	default:
		return Green
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Color(%d)", int32(c))
	}
}

// IsSafe reports whether captures are forbidden on the given track square.
func IsSafe(pos int32) bool {
	_, ok := safePositions[pos]
	return ok
}

// SafeSquares returns the capture-free track squares in ascending order.
func SafeSquares() []int32 {
	return []int32{0, 8, 13, 21, 26, 34, 39, 47}
}
