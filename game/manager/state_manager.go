package manager

import "time"

// Round is the outcome of one finished game.
type Round struct {
	SessionID string
	Score     int
	Ticks     int
	Cause     CollisionType
	EndedAt   time.Time
}

// StateManager keeps the rounds played during this process run. Nothing is
// written to disk. It is owned by the game loop and is not safe for
// concurrent use.
type StateManager struct {
	rounds    []Round
	highScore int
}

func NewStateManager() *StateManager {
	return &StateManager{
		rounds: make([]Round, 0),
	}
}

// AddRound records a finished round and reports whether it set a new best.
func (sm *StateManager) AddRound(r Round) bool {
	sm.rounds = append(sm.rounds, r)
	if r.Score > sm.highScore {
		sm.highScore = r.Score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) RoundsPlayed() int {
	return len(sm.rounds)
}

// GetScoreHistory returns scores oldest first.
func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.rounds))
	for i, r := range sm.rounds {
		scores[i] = r.Score
	}
	return scores
}
