package service

import (
	"context"
	"fmt"
	"strings"

	"vaultofechoes/internal/domain"
)

// Status is a read-only view of a player's progress
type Status struct {
	UserID       string
	Phase        domain.Phase
	TokenBalance float64
	VaultOpened  bool
	Prompt       string
}

// String formats the status for players
func (s Status) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Phase: %s\n", s.Phase.DisplayName())
	fmt.Fprintf(&b, "Tokens: %.1f ANQ", s.TokenBalance)
	if s.VaultOpened {
		b.WriteString("\nVault: opened")
	}
	if s.Prompt != "" {
		b.WriteString("\n\n" + s.Prompt)
	}
	return b.String()
}

// Status returns the player's current progress without advancing the game
func (o *Orchestrator) Status(_ context.Context, userID string) (Status, error) {
	unlock := o.locks.lock(userID)
	defer unlock()

	user, err := o.users.GetOrCreate(userID)
	if err != nil {
		return Status{}, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	return Status{
		UserID:       user.UserID,
		Phase:        user.Phase,
		TokenBalance: user.TokenBalance,
		VaultOpened:  user.PuzzleHistory[flagVaultOpened],
		Prompt:       o.phasePrompt(user.Phase),
	}, nil
}
