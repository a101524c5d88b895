// Package app assembles the game from configuration. It is shared by the
// Telegram bot and the terminal client.
package app

import (
	"database/sql"
	"fmt"
	"sort"

	"vaultofechoes/internal/config"
	"vaultofechoes/internal/domain"
	"vaultofechoes/internal/repository"
	"vaultofechoes/internal/repository/memory"
	"vaultofechoes/internal/repository/postgres"

	"go.uber.org/zap"
)

const migrationsDir = "migrations"

// Catalog is a puzzle source together with whatever must be released on shutdown
type Catalog struct {
	repository.PuzzleRepository
	db *sql.DB
}

// Close releases the database connection, if any
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// NewPuzzleCatalog opens the puzzle source selected by cfg
func NewPuzzleCatalog(cfg *config.Config, logger *zap.Logger) (*Catalog, error) {
	switch cfg.Puzzles.Source {
	case config.PuzzleSourceFile:
		repo, err := memory.LoadPuzzleFile(cfg.Puzzles.File)
		if err != nil {
			return nil, err
		}
		logger.Info("Puzzles loaded from file",
			zap.String("file", cfg.Puzzles.File),
			zap.Int("count", len(repo.IDs())),
		)
		return &Catalog{PuzzleRepository: repo}, nil

	case config.PuzzleSourcePostgres:
		db, err := ConnectDatabase(cfg.DSN(), logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		if err := RunMigrations(db, migrationsDir, logger); err != nil {
			db.Close()
			return nil, err
		}

		repo := postgres.NewPuzzleRepo(db)
		if err := seedPuzzles(repo, cfg.Puzzles.File, logger); err != nil {
			db.Close()
			return nil, err
		}
		return &Catalog{PuzzleRepository: repo, db: db}, nil
	}

	return nil, fmt.Errorf("unknown puzzle source %q", cfg.Puzzles.Source)
}

type puzzleStore interface {
	CountPuzzles() (int, error)
	SavePuzzle(p domain.Puzzle) error
}

// seedPuzzles fills an empty puzzle table from the puzzle file
func seedPuzzles(store puzzleStore, path string, logger *zap.Logger) error {
	count, err := store.CountPuzzles()
	if err != nil {
		return fmt.Errorf("failed to count puzzles: %w", err)
	}
	if count > 0 {
		logger.Info("Puzzle table already populated", zap.Int("count", count))
		return nil
	}

	source, err := memory.LoadPuzzleFile(path)
	if err != nil {
		return fmt.Errorf("failed to seed puzzles: %w", err)
	}

	ids := source.IDs()
	sort.Strings(ids)
	for _, id := range ids {
		p, _ := source.GetPuzzle(id)
		if err := store.SavePuzzle(*p); err != nil {
			return fmt.Errorf("failed to save puzzle %s: %w", id, err)
		}
	}

	logger.Info("Puzzle table seeded", zap.String("file", path), zap.Int("count", len(ids)))
	return nil
}
