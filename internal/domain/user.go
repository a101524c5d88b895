package domain

import (
	"maps"
	"time"
)

// InitialTokens is the balance every new player starts with
const InitialTokens = 5.0

// Phase represents player's position in the game
type Phase string

const (
	PhaseGreeting     Phase = "greeting"
	PhaseFirstPuzzle  Phase = "first_puzzle"
	PhaseSecondPuzzle Phase = "second_puzzle"
	PhasePersuasion   Phase = "persuasion"
	PhaseReward       Phase = "reward"
	PhasePostGame     Phase = "post_game"
)

// phaseOrder is the only order in which phases may advance
var phaseOrder = []Phase{
	PhaseGreeting,
	PhaseFirstPuzzle,
	PhaseSecondPuzzle,
	PhasePersuasion,
	PhaseReward,
	PhasePostGame,
}

// Valid reports whether p is one of the known phases
func (p Phase) Valid() bool {
	return p.Rank() >= 0
}

// Rank returns position of the phase in the game order, -1 if unknown
func (p Phase) Rank() int {
	for i, known := range phaseOrder {
		if known == p {
			return i
		}
	}
	return -1
}

// DisplayName returns the phase name shown to players
func (p Phase) DisplayName() string {
	switch p {
	case PhaseGreeting:
		return "GREETING"
	case PhaseFirstPuzzle:
		return "FIRST_PUZZLE"
	case PhaseSecondPuzzle:
		return "SECOND_PUZZLE"
	case PhasePersuasion:
		return "PERSUASION"
	case PhaseReward:
		return "REWARD"
	case PhasePostGame:
		return "POST_GAME"
	}
	return string(p)
}

// UserState holds a player's progress
type UserState struct {
	UserID        string
	Phase         Phase
	TokenBalance  float64
	PuzzleHistory map[string]bool
	LastSeen      time.Time
}

// NewUserState returns the state of a player who has not played yet
func NewUserState(userID string, now time.Time) *UserState {
	return &UserState{
		UserID:        userID,
		Phase:         PhaseGreeting,
		TokenBalance:  InitialTokens,
		PuzzleHistory: make(map[string]bool),
		LastSeen:      now,
	}
}

// Clone returns a deep copy so callers cannot mutate stored state
func (u *UserState) Clone() *UserState {
	c := *u
	c.PuzzleHistory = maps.Clone(u.PuzzleHistory)
	if c.PuzzleHistory == nil {
		c.PuzzleHistory = make(map[string]bool)
	}
	return &c
}
