package service

import (
	"time"

	"vaultofechoes/internal/repository"

	"go.uber.org/zap"
)

// CleanupService evicts players who stopped playing
type CleanupService struct {
	users   repository.UserRepository
	idleTTL time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(users repository.UserRepository, idleTTL time.Duration, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		users:   users,
		idleTTL: idleTTL,
		logger:  logger,
		now:     time.Now,
	}
}

// EvictIdleUsers removes users not seen within the idle TTL.
// A zero TTL disables eviction.
func (s *CleanupService) EvictIdleUsers() error {
	if s.idleTTL <= 0 {
		return nil
	}

	s.logger.Info("Starting eviction of idle users", zap.Duration("idle_ttl", s.idleTTL))

	evicted, err := s.users.EvictIdle(s.now().Add(-s.idleTTL))
	if err != nil {
		s.logger.Error("Failed to evict idle users", zap.Error(err))
		return err
	}

	s.logger.Info("Eviction completed successfully", zap.Int("evicted", evicted))
	return nil
}
