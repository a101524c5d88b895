package repository

import (
	"errors"
	"time"

	"vaultofechoes/internal/domain"
)

// ErrNegativeAmount is returned when a token amount below zero is used
var ErrNegativeAmount = errors.New("token amount must not be negative")

// UserRepository defines player state operations
type UserRepository interface {
	GetOrCreate(userID string) (*domain.UserState, error)
	SetPhase(userID string, phase domain.Phase) error
	AddTokens(userID string, amount float64) error
	SpendTokens(userID string, amount float64) (bool, error)
	SetFlag(userID, flag string, value bool) error
	EvictIdle(before time.Time) (int, error)
}

// PuzzleRepository defines puzzle lookup.
// GetPuzzle returns nil, nil when the puzzle does not exist.
type PuzzleRepository interface {
	GetPuzzle(puzzleID string) (*domain.Puzzle, error)
}
