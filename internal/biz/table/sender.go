package table

// Outbound commands. The transport layer decides how they reach clients;
// robots consume them in-process.
const (
	CmdLoginRsp    = "LoginRsp"
	CmdUserInfo    = "UserInfoPush"
	CmdUserQuit    = "UserQuitPush"
	CmdUserOffline = "UserOfflinePush"
	CmdGameStart   = "GameStartPush"
	CmdTurn        = "TurnPush"
	CmdRoll        = "RollPush"
	CmdMove        = "MovePush"
	CmdTimeout     = "TimeoutPush"
	CmdResult      = "ResultPush"
	CmdScene       = "ScenePush"
	CmdKick        = "KickPush"
)

// Sender delivers one message to one human player. Robot delivery never goes
// through here; the table short-circuits robots to their logic directly.
type Sender interface {
	Send(uid int64, cmd string, payload any)
}
