package model

import (
	"time"

	"github.com/yola1107/kratos/v2/log"
)

// Rules are the configurable parts of the rule set. The zero value is not
// useful; start from DefaultRules.
type Rules struct {
	BonusOnFinish   bool          `json:"bonusOnFinish"`   // finishing a token grants a bonus turn
	MissedTurnLimit int32         `json:"missedTurnLimit"` // missed turns before elimination
	TurnTimeout     time.Duration `json:"turnTimeout"`     // advisory, consumed by the room scheduler
}

func DefaultRules() Rules {
	return Rules{
		BonusOnFinish:   true,
		MissedTurnLimit: 5,
		TurnTimeout:     30 * time.Second,
	}
}

// Match is the aggregate root of one game: players, board, turn pointer and
// dice state. It is plain single-threaded logic; the owning room layer must
// serialize all calls against one Match. Every operation either completes the
// full state transition or rejects up front with no mutation.
type Match struct {
	rules    Rules
	teamMode bool
	teams    [][]Color // two disjoint color sets, fixed at start

	players []*Player
	board   *Board

	started   bool
	over      bool
	winner    *Winner
	current   int32
	dice      int32 // 0 = current player must roll before moving
	sixStreak int32

	invariantBreaks int32 // counted defects recovered by force-advancing
}

type Option func(*Match)

// WithTeamMode enables the 2v2 diagonal team variant (or the degenerate
// one-color-per-team form with two players).
func WithTeamMode() Option {
	return func(m *Match) { m.teamMode = true }
}

func WithRules(r Rules) Option {
	return func(m *Match) { m.rules = r }
}

func NewMatch(opts ...Option) *Match {
	m := &Match{rules: DefaultRules(), current: -1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ---- read accessors ----

func (m *Match) Started() bool { return m.started }
func (m *Match) Over() bool { return m.over }
func (m *Match) TeamMode() bool { return m.teamMode }
func (m *Match) Rules() Rules { return m.rules }
func (m *Match) Winner() *Winner { return m.winner }
func (m *Match) Teams() [][]Color { return m.teams }
func (m *Match) PendingDice() int32 { return m.dice }
func (m *Match) Players() []*Player { return m.players }
func (m *Match) Board() *Board { return m.board }
func (m *Match) InvariantBreaks() int32 { return m.invariantBreaks }

// CurrentPlayer returns the player whose turn it is, or nil before start.
func (m *Match) CurrentPlayer() *Player {
	if !m.started || m.current < 0 || int(m.current) >= len(m.players) {
		return nil
	}
	return m.players[m.current]
}

func (m *Match) PlayerByID(id int64) *Player {
	for _, p := range m.players {
		if p.id == id {
			return p
		}
	}
	return nil
}

func (m *Match) playerByColor(c Color) *Player {
	for _, p := range m.players {
		if p.color == c {
			return p
		}
	}
	return nil
}

// ---- lobby operations ----

// AddPlayer seats a human player. Colors follow the fixed fairness order so
// two players always sit diagonally.
func (m *Match) AddPlayer(id int64, name string) (*Player, error) {
	return m.addPlayer(id, name, false)
}

// AddRobot seats an automated player under the same capacity rules.
func (m *Match) AddRobot(id int64, name string) (*Player, error) {
	return m.addPlayer(id, name, true)
}

func (m *Match) addPlayer(id int64, name string, robot bool) (*Player, error) {
	if m.started {
		return nil, ErrMatchStarted
	}
	if m.PlayerByID(id) != nil {
		return nil, ErrDuplicatePlayer
	}
	if len(m.players) >= ColorCount {
		return nil, ErrMatchFull
	}
	p := &Player{
		id:     id,
		name:   name,
		color:  joinOrder[len(m.players)],
		robot:  robot,
		online: true,
	}
	m.players = append(m.players, p)
	return p, nil
}

// RemovePlayer unseats a player before the match starts. Remaining seats are
// recolored in join order to keep the fairness rule intact.
func (m *Match) RemovePlayer(id int64) bool {
	if m.started {
		return false
	}
	for i, p := range m.players {
		if p.id == id {
			m.players = append(m.players[:i], m.players[i+1:]...)
			for k, rest := range m.players {
				rest.color = joinOrder[k]
			}
			return true
		}
	}
	return false
}

// Start locks the player list, builds the board and hands the first turn to
// the first joiner. It succeeds exactly once.
func (m *Match) Start() error {
	if m.started {
		return ErrMatchStarted
	}
	if len(m.players) < 2 {
		return ErrNotEnoughPlayers
	}
	if m.teamMode && len(m.players) == 3 {
		return ErrTeamSize
	}
	colors := make([]Color, 0, len(m.players))
	for _, p := range m.players {
		colors = append(colors, p.color)
	}
	m.board = NewBoard(colors)
	for _, p := range m.players {
		p.tokens = m.board.Tokens(p.color)
	}
	if m.teamMode {
		if len(m.players) == 2 {
			// Head to head: each color is a team of one.
			m.teams = [][]Color{{m.players[0].color}, {m.players[1].color}}
		} else {
			m.teams = [][]Color{{Red, Yellow}, {Green, Blue}}
		}
	}
	m.started = true
	m.current = 0
	return nil
}

// ---- results ----

// RollResult is the immutable outcome of one dice roll.
type RollResult struct {
	Value         int32   `json:"value"`
	MovableTokens []int32 `json:"movableTokens,omitempty"`
	TurnPassed    bool    `json:"turnPassed"`
	Forfeited     bool    `json:"forfeited"` // third consecutive six
	RollAgain     bool    `json:"rollAgain"` // six with nothing to move
}

// MoveResult is the immutable outcome of one token move.
type MoveResult struct {
	Token         Token     `json:"token"` // value copy after the move
	Captured      []Capture `json:"captured,omitempty"`
	BonusTurn     bool      `json:"bonusTurn"`
	FinishedToken bool      `json:"finishedToken"`
	GameOver      bool      `json:"gameOver"`
	Winner        *Winner   `json:"winner,omitempty"`
}

// TimeoutResult reports what the engine did on behalf of a timed-out player.
type TimeoutResult struct {
	PlayerID    int64       `json:"playerId"`
	Roll        *RollResult `json:"roll,omitempty"`
	Move        *MoveResult `json:"move,omitempty"`
	TokenIndex  int32       `json:"tokenIndex"`
	MissedTurns int32       `json:"missedTurns"`
	Eliminated  bool        `json:"eliminated"`
	TurnPassed  bool        `json:"turnPassed"`
}

// ---- turn operations ----

// RollDice applies a supplied dice value (1..6) for the given player. The
// engine never generates randomness itself.
func (m *Match) RollDice(playerID int64, value int32) (*RollResult, error) {
	return m.roll(playerID, value, true)
}

func (m *Match) roll(playerID int64, value int32, manual bool) (*RollResult, error) {
	if !m.started {
		return nil, ErrMatchNotStarted
	}
	if m.over {
		return nil, ErrMatchOver
	}
	if value < 1 || value > DiceSix {
		return nil, ErrDiceValue
	}
	p := m.PlayerByID(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if p != m.resolveCurrent() {
		return nil, ErrNotYourTurn
	}
	if m.dice != 0 {
		return nil, ErrDicePending
	}

	if manual {
		p.missedTurns = 0
	}
	if value == DiceSix {
		m.sixStreak++
	} else {
		m.sixStreak = 0
	}

	// Three consecutive sixes forfeit the turn outright, movable or not.
	if m.sixStreak >= 3 {
		m.advanceTurn()
		return &RollResult{Value: value, Forfeited: true, TurnPassed: true}, nil
	}

	_, tokens := m.actingTokens(p)
	movable := movableIndexes(tokens, value)
	if len(movable) == 0 {
		if value == DiceSix {
			// Nothing to release or move, but a six always rolls again.
			return &RollResult{Value: value, RollAgain: true}, nil
		}
		m.advanceTurn()
		return &RollResult{Value: value, TurnPassed: true}, nil
	}

	m.dice = value
	return &RollResult{Value: value, MovableTokens: movable}, nil
}

// MoveToken advances the chosen token by the pending dice value, resolves
// captures and win conditions, and settles the bonus-turn rule.
func (m *Match) MoveToken(playerID int64, tokenIndex int32) (*MoveResult, error) {
	return m.move(playerID, tokenIndex, true)
}

func (m *Match) move(playerID int64, tokenIndex int32, manual bool) (*MoveResult, error) {
	if !m.started {
		return nil, ErrMatchNotStarted
	}
	if m.over {
		return nil, ErrMatchOver
	}
	p := m.PlayerByID(playerID)
	if p == nil {
		return nil, ErrUnknownPlayer
	}
	if p != m.resolveCurrent() {
		return nil, ErrNotYourTurn
	}
	if m.dice == 0 {
		return nil, ErrDiceNotRolled
	}
	owner, tokens := m.actingTokens(p)
	if tokenIndex < 0 || int(tokenIndex) >= len(tokens) {
		return nil, ErrTokenIndex
	}
	t := tokens[tokenIndex]
	dest, ok := t.destination(m.dice)
	if !ok {
		return nil, ErrTokenNotMovable
	}

	// Past this point the full transition commits.
	if manual {
		p.missedTurns = 0
	}
	d := m.dice
	m.dice = 0 // dice are always consumed by a move
	t.apply(dest)

	var captured []Capture
	if t.OnTrack() {
		captured = m.board.captureAt(t.Color, t.TrackPos, m.teamExempt(t.Color))
	}
	if dest.finished {
		owner.finishedTokens++
		if owner.finishedTokens == TokensPerColor {
			owner.finished = true
		}
		m.checkVictory(owner)
	}

	res := &MoveResult{
		Token:         *t,
		Captured:      captured,
		FinishedToken: dest.finished,
		GameOver:      m.over,
		Winner:        m.winner,
	}
	if m.over {
		return res, nil
	}
	res.BonusTurn = d == DiceSix || len(captured) > 0 || (dest.finished && m.rules.BonusOnFinish)
	if !res.BonusTurn {
		m.advanceTurn()
	}
	return res, nil
}

// HandleTimeout completes the current turn without the player: an automatic
// roll with the supplied dice value, then the heuristic move if one is legal.
// Each handled timeout records a missed turn; the fifth eliminates.
func (m *Match) HandleTimeout(value int32) (*TimeoutResult, error) {
	if !m.started {
		return nil, ErrMatchNotStarted
	}
	if m.over {
		return nil, ErrMatchOver
	}
	p := m.resolveCurrent()
	if p == nil {
		return nil, ErrMatchNotStarted
	}
	if p.eliminated {
		// Defensive: the scheduler fired for a dead seat.
		m.invariantBreak("timeout for eliminated player %d", p.id)
		m.advanceTurn()
		return &TimeoutResult{PlayerID: p.id, TurnPassed: true}, nil
	}

	res := &TimeoutResult{PlayerID: p.id, TokenIndex: -1}
	before := m.current

	if m.dice == 0 {
		rr, err := m.roll(p.id, value, false)
		if err != nil {
			return nil, err
		}
		res.Roll = rr
	}
	if m.dice != 0 && !m.over {
		if idx, ok := m.AutoChoice(p); ok {
			mv, err := m.move(p.id, idx, false)
			if err != nil {
				return nil, err
			}
			res.TokenIndex = idx
			res.Move = mv
		}
	}

	p.missedTurns++
	res.MissedTurns = p.missedTurns
	if p.missedTurns >= m.rules.MissedTurnLimit {
		m.eliminate(p)
		res.Eliminated = true
		if m.current == before && !m.over {
			m.advanceTurn()
		}
	}
	res.TurnPassed = m.current != before
	return res, nil
}

// ---- turn bookkeeping ----

// advanceTurn hands the turn to the next non-eliminated player, clearing the
// dice and six streak. With a single survivor the pointer stays put.
func (m *Match) advanceTurn() {
	m.dice = 0
	m.sixStreak = 0
	n := int32(len(m.players))
	if n == 0 {
		return
	}
	for i := int32(1); i <= n; i++ {
		idx := (m.current + i) % n
		if !m.players[idx].eliminated {
			m.current = idx
			return
		}
	}
	// every seat eliminated; leave the pointer unchanged
}

// resolveCurrent returns the current player, repairing the pointer if it was
// left on an eliminated or missing seat. That state is a defect, not an
// expected condition; it is counted and logged, then recovered best-effort so
// the match can continue.
func (m *Match) resolveCurrent() *Player {
	if !m.started || len(m.players) == 0 {
		return nil
	}
	if m.current < 0 || int(m.current) >= len(m.players) {
		m.invariantBreak("turn pointer %d out of range", m.current)
		m.current = 0
	}
	p := m.players[m.current]
	if p.eliminated && m.aliveCount() > 0 {
		m.invariantBreak("turn pointer on eliminated player %d", p.id)
		m.advanceTurn()
		p = m.players[m.current]
	}
	return p
}

func (m *Match) aliveCount() int {
	n := 0
	for _, p := range m.players {
		if !p.eliminated {
			n++
		}
	}
	return n
}

func (m *Match) invariantBreak(format string, args ...any) {
	m.invariantBreaks++
	log.Errorf("ludo: invariant failure: "+format, args...)
}

// eliminate removes a player from the rotation. Their tokens are force-reset
// off the board and marked finished so they neither occupy squares nor block
// anyone; the finished-token count is deliberately left alone, elimination is
// its own flag and never win semantics.
func (m *Match) eliminate(p *Player) {
	p.eliminated = true
	for _, t := range p.tokens {
		t.TrackPos = BasePosition
		t.InStretch = false
		t.StretchPos = HomeStretchLength
		t.Finished = true
	}
}
