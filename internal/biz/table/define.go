package table

import (
	"fmt"
	"sync"
	"time"
)

type StageID int32

const (
	StWait    StageID = iota // waiting for players
	StReady                  // countdown to start
	StPlaying                // a round is running, timer is the turn deadline
	StResult                 // result shown before cleanup
)

var stageNames = map[StageID]string{
	StWait:    "StWait",
	StReady:   "StReady",
	StPlaying: "StPlaying",
	StResult:  "StResult",
}

func (s StageID) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StageID(%d)", s)
}

const (
	readyTimeout  = 3 * time.Second
	resultTimeout = 5 * time.Second
)

// Stage is the table's current phase plus the timer driving it. Reads come
// from any goroutine (scenes, robots), writes only from the table loop.
type Stage struct {
	mu       sync.RWMutex
	State    StageID
	TimerID  int64
	StartAt  time.Time
	Duration time.Duration
}

func (s *Stage) GetState() StageID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.State
}

func (s *Stage) GetTimerID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.TimerID
}

func (s *Stage) Remaining() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	elapsed := time.Since(s.StartAt)
	if elapsed > s.Duration {
		return 0
	}
	return s.Duration - elapsed
}

func (s *Stage) Set(state StageID, duration time.Duration, timerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.State = state
	s.StartAt = time.Now()
	s.Duration = duration
	s.TimerID = timerID
}

func (s *Stage) Desc() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("[%v dur=%v]", s.State, s.Duration)
}
