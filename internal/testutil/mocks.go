package testutil

import (
	"context"
	"time"

	"vaultofechoes/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(userID string) (*domain.UserState, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserState), args.Error(1)
}

func (m *MockUserRepository) SetPhase(userID string, phase domain.Phase) error {
	args := m.Called(userID, phase)
	return args.Error(0)
}

func (m *MockUserRepository) AddTokens(userID string, amount float64) error {
	args := m.Called(userID, amount)
	return args.Error(0)
}

func (m *MockUserRepository) SpendTokens(userID string, amount float64) (bool, error) {
	args := m.Called(userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetFlag(userID, flag string, value bool) error {
	args := m.Called(userID, flag, value)
	return args.Error(0)
}

func (m *MockUserRepository) EvictIdle(before time.Time) (int, error) {
	args := m.Called(before)
	return args.Int(0), args.Error(1)
}

// MockPuzzleRepository is a mock for PuzzleRepository
type MockPuzzleRepository struct {
	mock.Mock
}

func (m *MockPuzzleRepository) GetPuzzle(puzzleID string) (*domain.Puzzle, error) {
	args := m.Called(puzzleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Puzzle), args.Error(1)
}

// MockTextGenerator is a mock for TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Respond(ctx context.Context, persona, message string) (string, error) {
	args := m.Called(ctx, persona, message)
	return args.String(0), args.Error(1)
}
