package service

import "sync"

// lockEntry is a per-user mutex with a count of goroutines holding or waiting on it
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// userLocks serializes work per user id. Entries are dropped once nobody
// holds or waits for them, so the map only grows with concurrent users.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*lockEntry)}
}

// lock blocks until the user's lock is held and returns the function releasing it
func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	entry, exists := l.locks[userID]
	if !exists {
		entry = &lockEntry{}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		entry.refs--
		if entry.refs <= 0 {
			delete(l.locks, userID)
		}
	}
}

// size returns number of live entries
func (l *userLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
