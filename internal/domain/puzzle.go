package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Puzzle represents a riddle guarded by the Guardian
type Puzzle struct {
	ID        string    `json:"puzzle_id"`
	Prompt    string    `json:"prompt"`
	Solutions Solutions `json:"solution"`
	Hints     []string  `json:"hints"`
}

// Matches reports whether input equals any accepted solution, ignoring case.
// No trimming or fuzzy matching is applied.
func (p *Puzzle) Matches(input string) bool {
	for _, s := range p.Solutions {
		if strings.EqualFold(input, s) {
			return true
		}
	}
	return false
}

// FirstHint returns the first hint and whether one exists
func (p *Puzzle) FirstHint() (string, bool) {
	if len(p.Hints) == 0 {
		return "", false
	}
	return p.Hints[0], true
}

// Solutions is a list of accepted answers.
// In JSON it may be written as a single string or an array of strings.
type Solutions []string

// UnmarshalJSON accepts both "answer" and ["answer", "other"]
func (s *Solutions) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = Solutions{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("solution must be a string or an array of strings: %w", err)
	}
	*s = many
	return nil
}
