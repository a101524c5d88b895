package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"vaultofechoes/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPuzzleRepo_GetPuzzle(t *testing.T) {
	tests := []struct {
		name              string
		puzzleID          string
		mockRows          *sqlmock.Rows
		mockError         error
		expectedNil       bool
		expectedSolutions domain.Solutions
		expectedHints     []string
		expectedError     bool
	}{
		{
			name:     "puzzle found",
			puzzleID: "puzzle_1",
			mockRows: sqlmock.NewRows([]string{"puzzle_id", "prompt", "solutions", "hints"}).
				AddRow("puzzle_1", "What am I?", []byte(`{fire,"a fire"}`), []byte(`{"It needs air."}`)),
			expectedSolutions: domain.Solutions{"fire", "a fire"},
			expectedHints:     []string{"It needs air."},
		},
		{
			name:     "puzzle without hints",
			puzzleID: "puzzle_2",
			mockRows: sqlmock.NewRows([]string{"puzzle_id", "prompt", "solutions", "hints"}).
				AddRow("puzzle_2", "Break me", []byte(`{egg}`), []byte(`{}`)),
			expectedSolutions: domain.Solutions{"egg"},
			expectedHints:     []string{},
		},
		{
			name:        "puzzle not exists",
			puzzleID:    "puzzle_9",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
		{
			name:          "database error",
			puzzleID:      "puzzle_1",
			mockError:     fmt.Errorf("connection reset"),
			expectedNil:   true,
			expectedError: true,
		},
		{
			name:     "scan error",
			puzzleID: "puzzle_1",
			mockRows: sqlmock.NewRows([]string{"puzzle_id", "prompt", "solutions", "hints"}).
				AddRow("puzzle_1", "What am I?", "not an array", []byte(`{}`)),
			expectedNil:   true,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewPuzzleRepo(db)

			query := "SELECT puzzle_id, prompt, solutions, hints FROM puzzles WHERE puzzle_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.puzzleID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.puzzleID).WillReturnRows(tt.mockRows)
			}

			puzzle, err := repo.GetPuzzle(tt.puzzleID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.expectedNil {
				assert.Nil(t, puzzle)
			} else {
				assert.NotNil(t, puzzle)
				assert.Equal(t, tt.puzzleID, puzzle.ID)
				assert.Equal(t, tt.expectedSolutions, puzzle.Solutions)
				assert.Equal(t, tt.expectedHints, puzzle.Hints)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPuzzleRepo_SavePuzzle(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPuzzleRepo(db)

	mock.ExpectExec("INSERT INTO puzzles").
		WithArgs("puzzle_1", "What am I?", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SavePuzzle(domain.Puzzle{
		ID:        "puzzle_1",
		Prompt:    "What am I?",
		Solutions: domain.Solutions{"fire"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPuzzleRepo_SavePuzzle_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPuzzleRepo(db)

	mock.ExpectExec("INSERT INTO puzzles").
		WillReturnError(fmt.Errorf("insert failed"))

	err = repo.SavePuzzle(domain.Puzzle{ID: "puzzle_1", Solutions: domain.Solutions{"fire"}})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPuzzleRepo_CountPuzzles(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPuzzleRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM puzzles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountPuzzles()

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
