package handler

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"vaultofechoes/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Game is the part of the orchestrator the bot talks to
type Game interface {
	ProcessInput(ctx context.Context, userID, input string) string
	Status(ctx context.Context, userID string) (service.Status, error)
}

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	game   Game
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, game Game, logger *zap.Logger) *Handler {
	return &Handler{
		bot:    bot,
		game:   game,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/status", h.handleStatus)
	h.bot.Handle("/hint", h.handleHint)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)
}

// userKey maps a Telegram sender to a game user id
func userKey(c tele.Context) string {
	return strconv.FormatInt(c.Sender().ID, 10)
}

// cleanInput turns line breaks and tabs into spaces and drops every other
// non-printable character
func cleanInput(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsPrint(r):
			return r
		}
		return -1
	}, strings.TrimSpace(text))
}
