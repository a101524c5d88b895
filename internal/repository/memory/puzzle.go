package memory

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"vaultofechoes/internal/domain"
)

// PuzzleRepo implements repository.PuzzleRepository over a fixed set of puzzles
type PuzzleRepo struct {
	puzzles map[string]*domain.Puzzle
}

// NewPuzzleRepo creates a repository holding the given puzzles
func NewPuzzleRepo(puzzles []domain.Puzzle) *PuzzleRepo {
	r := &PuzzleRepo{puzzles: make(map[string]*domain.Puzzle, len(puzzles))}
	for i := range puzzles {
		p := puzzles[i]
		r.puzzles[p.ID] = &p
	}
	return r
}

// LoadPuzzleFile reads puzzles from a JSON file
func LoadPuzzleFile(path string) (*PuzzleRepo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open puzzle file: %w", err)
	}
	defer f.Close()

	repo, err := LoadPuzzles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return repo, nil
}

type puzzleFile struct {
	Puzzles []domain.Puzzle `json:"puzzles"`
}

// LoadPuzzles decodes puzzle JSON. Lines starting with // are comments.
func LoadPuzzles(r io.Reader) (*PuzzleRepo, error) {
	var content strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		content.WriteString(line)
		content.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read puzzles: %w", err)
	}

	var data puzzleFile
	if err := json.Unmarshal([]byte(content.String()), &data); err != nil {
		return nil, fmt.Errorf("invalid puzzle JSON: %w", err)
	}

	for i, p := range data.Puzzles {
		if p.ID == "" {
			return nil, fmt.Errorf("puzzle #%d has no puzzle_id", i+1)
		}
		if len(p.Solutions) == 0 {
			return nil, fmt.Errorf("puzzle %s has no solution", p.ID)
		}
	}

	if len(data.Puzzles) == 0 {
		return nil, fmt.Errorf("no puzzles found")
	}

	return NewPuzzleRepo(data.Puzzles), nil
}

// GetPuzzle returns the puzzle with given id, nil if it doesn't exist
func (r *PuzzleRepo) GetPuzzle(puzzleID string) (*domain.Puzzle, error) {
	p, exists := r.puzzles[puzzleID]
	if !exists {
		return nil, nil
	}
	return p, nil
}

// IDs returns ids of all loaded puzzles
func (r *PuzzleRepo) IDs() []string {
	ids := make([]string, 0, len(r.puzzles))
	for id := range r.puzzles {
		ids = append(ids, id)
	}
	return ids
}
