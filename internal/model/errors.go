package model

import "errors"

// Every rejection is side-effect free: the caller may retry or surface the
// reason without re-synchronizing state.
var (
	ErrMatchStarted     = errors.New("ludo: match already started")
	ErrMatchNotStarted  = errors.New("ludo: match not started")
	ErrMatchOver        = errors.New("ludo: match is over")
	ErrMatchFull        = errors.New("ludo: match already has four players")
	ErrNotEnoughPlayers = errors.New("ludo: at least two players required")
	ErrTeamSize         = errors.New("ludo: team mode requires two or four players")
	ErrUnknownPlayer    = errors.New("ludo: player not in this match")
	ErrDuplicatePlayer  = errors.New("ludo: player already joined")
	ErrNotYourTurn      = errors.New("ludo: not this player's turn")
	ErrDicePending      = errors.New("ludo: dice already rolled, move pending")
	ErrDiceNotRolled    = errors.New("ludo: dice not rolled yet")
	ErrDiceValue        = errors.New("ludo: dice value must be 1..6")
	ErrTokenIndex       = errors.New("ludo: token index out of range")
	ErrTokenNotMovable  = errors.New("ludo: token not movable with this roll")
)
