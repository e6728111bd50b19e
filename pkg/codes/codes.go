package codes

import (
	"errors"

	"github.com/harshitajammula/ludo/internal/model"
)

// Result codes carried on every response and kick notification.
const (
	SUCCESS int32 = 0

	PLAYER_INVALID   int32 = 101
	PLAYER_NOT_FOUND int32 = 102
	TABLE_NOT_FOUND  int32 = 103
	NOT_ENOUGH_TABLE int32 = 104
	ENTER_TABLE_FAIL int32 = 105
	EXIT_TABLE_FAIL  int32 = 106
	ALREADY_IN_TABLE int32 = 107
	KICK_BY_BROKE    int32 = 108
	ROOM_CLOSED      int32 = 109
	ROBOT_DENIED     int32 = 110

	MATCH_STARTED     int32 = 201
	MATCH_NOT_STARTED int32 = 202
	MATCH_OVER        int32 = 203
	MATCH_FULL        int32 = 204
	NOT_ENOUGH_PLAYER int32 = 205
	TEAM_SIZE         int32 = 206
	NOT_YOUR_TURN     int32 = 207
	DICE_PENDING      int32 = 208
	DICE_NOT_ROLLED   int32 = 209
	TOKEN_INDEX       int32 = 210
	TOKEN_NOT_MOVABLE int32 = 211
	UNKNOWN_PLAYER    int32 = 212
	ENGINE_FAIL       int32 = 299
)

var engineCodes = []struct {
	err  error
	code int32
}{
	{model.ErrMatchStarted, MATCH_STARTED},
	{model.ErrMatchNotStarted, MATCH_NOT_STARTED},
	{model.ErrMatchOver, MATCH_OVER},
	{model.ErrMatchFull, MATCH_FULL},
	{model.ErrNotEnoughPlayers, NOT_ENOUGH_PLAYER},
	{model.ErrTeamSize, TEAM_SIZE},
	{model.ErrNotYourTurn, NOT_YOUR_TURN},
	{model.ErrDicePending, DICE_PENDING},
	{model.ErrDiceNotRolled, DICE_NOT_ROLLED},
	{model.ErrDiceValue, ENGINE_FAIL},
	{model.ErrTokenIndex, TOKEN_INDEX},
	{model.ErrTokenNotMovable, TOKEN_NOT_MOVABLE},
	{model.ErrUnknownPlayer, UNKNOWN_PLAYER},
	{model.ErrDuplicatePlayer, ALREADY_IN_TABLE},
}

// FromEngine maps an engine rejection to its wire code.
func FromEngine(err error) int32 {
	if err == nil {
		return SUCCESS
	}
	for _, ec := range engineCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return ENGINE_FAIL
}
