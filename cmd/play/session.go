package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"vaultofechoes/internal/domain"
	"vaultofechoes/internal/service"
)

// Game is the part of the orchestrator the terminal talks to
type Game interface {
	ProcessInput(ctx context.Context, userID, input string) string
	Status(ctx context.Context, userID string) (service.Status, error)
}

// runSession plays one game over in and out until the player quits,
// the input ends or ctx is cancelled
func runSession(ctx context.Context, game Game, userID string, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the Vault of Echoes CLI!")
	fmt.Fprintln(out, "Type 'exit' or 'quit' to stop, '/status' to see your progress.")

	status, err := game.Status(ctx, userID)
	if err != nil {
		return err
	}
	if status.Phase == domain.PhaseGreeting {
		fmt.Fprintf(out, "\n%s\n", game.ProcessInput(ctx, userID, "start"))
	} else {
		fmt.Fprintf(out, "\n%s\n", status)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Thanks for playing!")
			return nil
		case "/status":
			status, err := game.Status(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, status)
		default:
			fmt.Fprintln(out, game.ProcessInput(ctx, userID, input))
		}
	}
}
