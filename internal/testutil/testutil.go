package testutil

import (
	"time"

	"vaultofechoes/internal/domain"
	"vaultofechoes/internal/repository/memory"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user in the given phase
func NewTestUser(userID string, phase domain.Phase, balance float64) *domain.UserState {
	u := domain.NewUserState(userID, time.Now())
	u.Phase = phase
	u.TokenBalance = balance
	return u
}

// NewTestPuzzle creates a test puzzle
func NewTestPuzzle(id string, solutions []string, hints ...string) domain.Puzzle {
	return domain.Puzzle{
		ID:        id,
		Prompt:    "Prompt of " + id,
		Solutions: solutions,
		Hints:     hints,
	}
}

// NewTestCatalog returns the two game puzzles: "fire" and "egg"
func NewTestCatalog() *memory.PuzzleRepo {
	return memory.NewPuzzleRepo([]domain.Puzzle{
		NewTestPuzzle("puzzle_1", []string{"fire"}, "It needs air.", "Water kills it."),
		NewTestPuzzle("puzzle_2", []string{"egg", "an egg"}, "Breakfast."),
	})
}
