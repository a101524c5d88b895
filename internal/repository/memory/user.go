package memory

import (
	"sync"
	"time"

	"vaultofechoes/internal/domain"
	"vaultofechoes/internal/repository"
)

// UserRepo implements repository.UserRepository in process memory
type UserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.UserState
	now   func() time.Time
}

// NewUserRepo creates a new in-memory user repository
func NewUserRepo() *UserRepo {
	return &UserRepo{
		users: make(map[string]*domain.UserState),
		now:   time.Now,
	}
}

// user returns stored state, creating it if absent. Caller must hold r.mu.
func (r *UserRepo) user(userID string) *domain.UserState {
	now := r.now()
	u, exists := r.users[userID]
	if !exists {
		u = domain.NewUserState(userID, now)
		r.users[userID] = u
	}
	u.LastSeen = now
	return u
}

// GetOrCreate returns a copy of the user's state, creating the default one if needed
func (r *UserRepo) GetOrCreate(userID string) (*domain.UserState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.user(userID).Clone(), nil
}

// SetPhase overwrites the user's phase
func (r *UserRepo) SetPhase(userID string, phase domain.Phase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user(userID).Phase = phase
	return nil
}

// AddTokens increases the user's balance
func (r *UserRepo) AddTokens(userID string, amount float64) error {
	if amount < 0 {
		return repository.ErrNegativeAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.user(userID).TokenBalance += amount
	return nil
}

// SpendTokens decreases the balance only if it covers amount.
// Returns false and leaves the balance untouched otherwise.
func (r *UserRepo) SpendTokens(userID string, amount float64) (bool, error) {
	if amount < 0 {
		return false, repository.ErrNegativeAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.user(userID)
	if u.TokenBalance < amount {
		return false, nil
	}
	u.TokenBalance -= amount
	return true, nil
}

// SetFlag records a puzzle history flag
func (r *UserRepo) SetFlag(userID, flag string, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user(userID).PuzzleHistory[flag] = value
	return nil
}

// EvictIdle removes users last seen before the given time
func (r *UserRepo) EvictIdle(before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, u := range r.users {
		if u.LastSeen.Before(before) {
			delete(r.users, id)
			evicted++
		}
	}
	return evicted, nil
}

// Count returns number of tracked users
func (r *UserRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
