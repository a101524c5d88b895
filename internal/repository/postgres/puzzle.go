package postgres

import (
	"database/sql"

	"vaultofechoes/internal/domain"

	"github.com/lib/pq"
)

// PuzzleRepo implements repository.PuzzleRepository
type PuzzleRepo struct {
	db *sql.DB
}

// NewPuzzleRepo creates a new puzzle repository
func NewPuzzleRepo(db *sql.DB) *PuzzleRepo {
	return &PuzzleRepo{db: db}
}

// GetPuzzle returns the puzzle with given id, nil if it doesn't exist
func (r *PuzzleRepo) GetPuzzle(puzzleID string) (*domain.Puzzle, error) {
	var p domain.Puzzle
	var solutions, hints []string
	query := `
		SELECT puzzle_id, prompt, solutions, hints
		FROM puzzles
		WHERE puzzle_id = $1
	`
	err := r.db.QueryRow(query, puzzleID).Scan(
		&p.ID, &p.Prompt, pq.Array(&solutions), pq.Array(&hints),
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Solutions = solutions
	p.Hints = hints

	return &p, nil
}

// SavePuzzle inserts a puzzle or replaces an existing one with the same id
func (r *PuzzleRepo) SavePuzzle(p domain.Puzzle) error {
	query := `
		INSERT INTO puzzles (puzzle_id, prompt, solutions, hints)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (puzzle_id)
		DO UPDATE SET prompt = EXCLUDED.prompt, solutions = EXCLUDED.solutions, hints = EXCLUDED.hints
	`
	hints := p.Hints
	if hints == nil {
		hints = []string{}
	}
	_, err := r.db.Exec(query, p.ID, p.Prompt, pq.Array([]string(p.Solutions)), pq.Array(hints))
	return err
}

// CountPuzzles returns number of stored puzzles
func (r *PuzzleRepo) CountPuzzles() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM puzzles`).Scan(&count)
	return count, err
}
