package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Puzzle sources
const (
	PuzzleSourceFile     = "file"
	PuzzleSourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	MetricsAddr string
	IdleTTL     time.Duration
	Puzzles     PuzzleConfig
	Guardian    GuardianConfig
	Database    DatabaseConfig
}

// PuzzleConfig selects where puzzles are loaded from
type PuzzleConfig struct {
	Source string
	File   string
}

// GuardianConfig holds language model settings
type GuardianConfig struct {
	APIKey        string
	Model         string
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeout, err := getDuration("GENERATION_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	idleTTL, err := getDuration("SESSION_IDLE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	rps, err := getFloat("GENERATION_RATE", 2)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		IdleTTL:     idleTTL,
		Puzzles: PuzzleConfig{
			Source: getEnv("PUZZLE_SOURCE", PuzzleSourceFile),
			File:   getEnv("PUZZLE_FILE", "data/puzzles.json"),
		},
		Guardian: GuardianConfig{
			APIKey:        os.Getenv("OPENAI_API_KEY"),
			Model:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL:       os.Getenv("OPENAI_BASE_URL"),
			Timeout:       timeout,
			RatePerSecond: rps,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vault"),
			User:     getEnv("DB_USER", "vault"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	switch cfg.Puzzles.Source {
	case PuzzleSourceFile:
	case PuzzleSourcePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required when PUZZLE_SOURCE=postgres")
		}
	default:
		return nil, fmt.Errorf("PUZZLE_SOURCE must be %q or %q, got %q",
			PuzzleSourceFile, PuzzleSourcePostgres, cfg.Puzzles.Source)
	}

	return cfg, nil
}

// RequireBot checks settings needed by the Telegram bot
func (c *Config) RequireBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}

func getFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if f < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return f, nil
}
