package handler

import (
	"context"
	"strings"

	"vaultofechoes/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgError = "Something went wrong. Please try again later."

// handleStart greets new players and reminds returning ones where they are
func (h *Handler) handleStart(c tele.Context) error {
	userID := userKey(c)

	h.logger.Info("User started bot",
		zap.String("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	status, err := h.game.Status(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get status", zap.Error(err))
		return c.Send(msgError)
	}

	if status.Phase == domain.PhaseGreeting {
		return c.Send(h.game.ProcessInput(context.Background(), userID, "start"))
	}
	return c.Send("Welcome back!\n\n" + status.String())
}

// handleStatus shows the player's phase and balance
func (h *Handler) handleStatus(c tele.Context) error {
	userID := userKey(c)

	status, err := h.game.Status(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get status", zap.Error(err), zap.String("user_id", userID))
		return c.Send(msgError)
	}
	return c.Send(status.String())
}

// handleHint buys a hint for the current puzzle
func (h *Handler) handleHint(c tele.Context) error {
	return c.Send(h.game.ProcessInput(context.Background(), userKey(c), "hint"))
}

// handleText passes every plain message to the game
func (h *Handler) handleText(c tele.Context) error {
	text := cleanInput(c.Text())

	// Ignore unknown commands (starting with /)
	if strings.HasPrefix(text, "/") {
		h.logger.Debug("Ignoring unknown command", zap.String("command", text))
		return nil
	}

	return c.Send(h.game.ProcessInput(context.Background(), userKey(c), text))
}
