package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"vaultofechoes/internal/domain"
	"vaultofechoes/internal/metrics"
	"vaultofechoes/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	hintCost            = 1.0
	puzzleReward        = 2.0
	vaultReward         = 10.0
	persuasionThreshold = 20

	cmdHint       = "hint"
	cmdEnterVault = "enter vault"

	flagVaultOpened = "vault_opened"

	defaultGenerationTimeout = 10 * time.Second
)

// puzzleForPhase maps puzzle phases to catalog ids
var puzzleForPhase = map[domain.Phase]string{
	domain.PhaseFirstPuzzle:  "puzzle_1",
	domain.PhaseSecondPuzzle: "puzzle_2",
}

// TextGenerator produces Guardian replies
type TextGenerator interface {
	Respond(ctx context.Context, persona, message string) (string, error)
}

// Option configures the Orchestrator
type Option func(*Orchestrator)

// WithGenerationTimeout bounds each Guardian generation call
func WithGenerationTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.generationTimeout = d
		}
	}
}

// WithMetrics records game metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// Orchestrator runs the game state machine for every player
type Orchestrator struct {
	users     repository.UserRepository
	puzzles   repository.PuzzleRepository
	generator TextGenerator
	logger    *zap.Logger
	metrics   *metrics.Metrics

	generationTimeout time.Duration
	locks             *userLocks
}

// NewOrchestrator creates a new game orchestrator
func NewOrchestrator(
	users repository.UserRepository,
	puzzles repository.PuzzleRepository,
	generator TextGenerator,
	logger *zap.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		users:             users,
		puzzles:           puzzles,
		generator:         generator,
		logger:            logger,
		generationTimeout: defaultGenerationTimeout,
		locks:             newUserLocks(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.metrics == nil {
		o.metrics = metrics.New(prometheus.NewRegistry())
	}
	return o
}

// ProcessInput advances the player's game by one turn and returns the reply.
// Turns of the same player never overlap.
func (o *Orchestrator) ProcessInput(ctx context.Context, userID, input string) string {
	unlock := o.locks.lock(userID)
	defer unlock()

	user, err := o.users.GetOrCreate(userID)
	if err != nil {
		o.logger.Error("Failed to load user", zap.String("user_id", userID), zap.Error(err))
		return msgInternalError
	}

	o.metrics.Turns.WithLabelValues(string(user.Phase)).Inc()
	o.logger.Debug("Processing input",
		zap.String("user_id", userID),
		zap.String("phase", string(user.Phase)),
		zap.String("input", input),
	)

	text := strings.TrimSpace(input)
	command := strings.ToLower(text)

	switch user.Phase {
	case domain.PhaseGreeting:
		return o.handleGreeting(userID)
	case domain.PhaseFirstPuzzle:
		return o.handlePuzzle(userID, puzzleForPhase[user.Phase], domain.PhaseSecondPuzzle, text, command)
	case domain.PhaseSecondPuzzle:
		return o.handlePuzzle(userID, puzzleForPhase[user.Phase], domain.PhasePersuasion, text, command)
	case domain.PhasePersuasion:
		return o.handlePersuasion(ctx, userID, text)
	case domain.PhaseReward:
		return o.handleReward(userID, command)
	case domain.PhasePostGame:
		return msgPostGame
	default:
		o.logger.Error("User is in unknown phase",
			zap.String("user_id", userID),
			zap.String("phase", string(user.Phase)),
		)
		return msgUnknownPhase
	}
}

func (o *Orchestrator) handleGreeting(userID string) string {
	if err := o.users.SetPhase(userID, domain.PhaseFirstPuzzle); err != nil {
		return o.storeFailure(userID, err)
	}

	o.logger.Info("User started the game", zap.String("user_id", userID))

	if prompt := o.phasePrompt(domain.PhaseFirstPuzzle); prompt != "" {
		return msgWelcome + "\n\n" + fmt.Sprintf(msgFirstPuzzle, prompt)
	}
	return msgWelcome
}

func (o *Orchestrator) handlePuzzle(userID, puzzleID string, next domain.Phase, text, command string) string {
	puzzle, err := o.puzzles.GetPuzzle(puzzleID)
	if err != nil {
		o.logger.Error("Failed to load puzzle", zap.String("puzzle_id", puzzleID), zap.Error(err))
		return msgPuzzleNotFound
	}
	if puzzle == nil {
		o.logger.Error("Puzzle not found", zap.String("puzzle_id", puzzleID))
		return msgPuzzleNotFound
	}

	if command == cmdHint {
		return o.buyHint(userID, puzzle)
	}

	if !puzzle.Matches(text) {
		return msgTryAgain
	}

	if err := o.users.AddTokens(userID, puzzleReward); err != nil {
		return o.storeFailure(userID, err)
	}
	if err := o.users.SetPhase(userID, next); err != nil {
		return o.storeFailure(userID, err)
	}
	o.metrics.TokensAwarded.Add(puzzleReward)

	o.logger.Info("User solved puzzle",
		zap.String("user_id", userID),
		zap.String("puzzle_id", puzzle.ID),
	)

	response := fmt.Sprintf(msgPuzzleSolved, puzzle.ID, next.DisplayName())
	if prompt := o.phasePrompt(next); prompt != "" {
		if _, isPuzzle := puzzleForPhase[next]; isPuzzle {
			prompt = fmt.Sprintf(msgNextPuzzle, prompt)
		}
		response += "\n\n" + prompt
	}
	return response
}

func (o *Orchestrator) buyHint(userID string, puzzle *domain.Puzzle) string {
	o.logger.Info("User requested a hint",
		zap.String("user_id", userID),
		zap.String("puzzle_id", puzzle.ID),
	)

	paid, err := o.users.SpendTokens(userID, hintCost)
	if err != nil {
		return o.storeFailure(userID, err)
	}
	if !paid {
		o.metrics.Hints.WithLabelValues(metrics.HintDenied).Inc()
		return msgNotEnoughTokens
	}

	hint, ok := puzzle.FirstHint()
	if !ok {
		o.metrics.Hints.WithLabelValues(metrics.HintEmpty).Inc()
		return msgNoHints
	}

	o.metrics.Hints.WithLabelValues(metrics.HintGranted).Inc()
	return hint
}

func (o *Orchestrator) handlePersuasion(ctx context.Context, userID, text string) string {
	// The threshold is a plain character count, independent of the Guardian's reply
	convinced := utf8.RuneCountInString(text) > persuasionThreshold
	if convinced {
		if err := o.users.SetPhase(userID, domain.PhaseReward); err != nil {
			return o.storeFailure(userID, err)
		}
		o.logger.Info("User convinced the Guardian", zap.String("user_id", userID))
	}

	reply := o.generate(ctx, userID, text)

	if convinced {
		return fmt.Sprintf(msgConvinced, reply)
	}
	return fmt.Sprintf(msgNotConvinced, reply)
}

func (o *Orchestrator) handleReward(userID, command string) string {
	if command != cmdEnterVault {
		return msgClaimReward
	}

	if err := o.users.AddTokens(userID, vaultReward); err != nil {
		return o.storeFailure(userID, err)
	}
	if err := o.users.SetFlag(userID, flagVaultOpened, true); err != nil {
		return o.storeFailure(userID, err)
	}
	if err := o.users.SetPhase(userID, domain.PhasePostGame); err != nil {
		return o.storeFailure(userID, err)
	}
	o.metrics.TokensAwarded.Add(vaultReward)

	o.logger.Info("User entered the vault", zap.String("user_id", userID))
	return msgVaultOpened
}

type generation struct {
	text string
	err  error
}

// generate asks the Guardian for a reply within the configured timeout.
// Any failure yields the fixed fallback text.
func (o *Orchestrator) generate(ctx context.Context, userID, message string) string {
	ctx, cancel := context.WithTimeout(ctx, o.generationTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan generation, 1)
	go func() {
		text, err := o.generator.Respond(ctx, guardianPersona, message)
		done <- generation{text: text, err: err}
	}()

	var result generation
	select {
	case result = <-done:
	case <-ctx.Done():
		result.err = ctx.Err()
	}
	o.metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if result.err == nil && strings.TrimSpace(result.text) == "" {
		result.err = errors.New("empty reply")
	}
	if result.err != nil {
		reason := failureReason(result.err)
		o.metrics.GenerationFailures.WithLabelValues(reason).Inc()
		o.logger.Warn("Guardian generation failed, using fallback",
			zap.String("user_id", userID),
			zap.String("reason", reason),
			zap.Error(result.err),
		)
		return msgGuardianFallback
	}

	return result.text
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return metrics.ReasonTimeout
	case errors.Is(err, context.Canceled):
		return metrics.ReasonCanceled
	default:
		return metrics.ReasonError
	}
}

// phasePrompt returns what the player should respond to in the given phase
func (o *Orchestrator) phasePrompt(phase domain.Phase) string {
	switch phase {
	case domain.PhaseFirstPuzzle, domain.PhaseSecondPuzzle:
		puzzle, err := o.puzzles.GetPuzzle(puzzleForPhase[phase])
		if err != nil || puzzle == nil {
			return ""
		}
		return puzzle.Prompt
	case domain.PhasePersuasion:
		return msgPersuasionIntro
	case domain.PhaseReward:
		return msgClaimReward
	}
	return ""
}

func (o *Orchestrator) storeFailure(userID string, err error) string {
	o.logger.Error("Failed to update user", zap.String("user_id", userID), zap.Error(err))
	return msgInternalError
}
