package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vaultofechoes/internal/app"
	"vaultofechoes/internal/config"
	"vaultofechoes/internal/repository/memory"
	"vaultofechoes/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the Vault of Echoes in the terminal",
	Long:  `Starts an interactive game session against the AI Guardian. Type 'exit' or 'quit' to stop.`,
	RunE:  runPlay,
}

func init() {
	rootCmd.Flags().String("user", "", "Player id (random if empty)")
	rootCmd.Flags().String("puzzles", "", "Puzzle file, overrides PUZZLE_SOURCE and PUZZLE_FILE")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log debug output to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	userID, _ := cmd.Flags().GetString("user")
	puzzleFile, _ := cmd.Flags().GetString("puzzles")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if userID == "" {
		userID = uuid.NewString()
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("puzzles") {
		cfg.Puzzles.Source = config.PuzzleSourceFile
		cfg.Puzzles.File = puzzleFile
	}

	catalog, err := app.NewPuzzleCatalog(cfg, logger)
	if err != nil {
		return err
	}
	defer catalog.Close()

	generator, err := app.NewGenerator(cfg.Guardian, logger)
	if err != nil {
		return err
	}

	game := service.NewOrchestrator(memory.NewUserRepo(), catalog, generator, logger,
		service.WithGenerationTimeout(cfg.Guardian.Timeout),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("Session started", zap.String("user_id", userID))
	return runSession(ctx, game, userID, cmd.InOrStdin(), cmd.OutOrStdout())
}

// newLogger writes to stderr so log lines never mix with the game text
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
