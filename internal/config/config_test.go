package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "METRICS_ADDR", "SESSION_IDLE_TTL",
		"PUZZLE_SOURCE", "PUZZLE_FILE",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "GENERATION_TIMEOUT", "GENERATION_RATE",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expected      time.Duration
		expectedError bool
	}{
		{name: "unset uses default", value: "", expected: time.Minute},
		{name: "valid duration", value: "250ms", expected: 250 * time.Millisecond},
		{name: "zero", value: "0", expected: 0},
		{name: "invalid", value: "soon", expectedError: true},
		{name: "negative", value: "-1s", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)

			d, err := getDuration("TEST_DURATION", time.Minute)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_DURATION")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, d)
			}
		})
	}
}

func TestGetFloat(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expected      float64
		expectedError bool
	}{
		{name: "unset uses default", value: "", expected: 2},
		{name: "valid", value: "0.5", expected: 0.5},
		{name: "invalid", value: "fast", expectedError: true},
		{name: "negative", value: "-3", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FLOAT", tt.value)

			f, err := getFloat("TEST_FLOAT", 2)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, f)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.BotToken)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, 24*time.Hour, cfg.IdleTTL)
	assert.Equal(t, PuzzleSourceFile, cfg.Puzzles.Source)
	assert.Equal(t, "data/puzzles.json", cfg.Puzzles.File)
	assert.Empty(t, cfg.Guardian.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Guardian.Model)
	assert.Equal(t, 10*time.Second, cfg.Guardian.Timeout)
	assert.Equal(t, 2.0, cfg.Guardian.RatePerSecond)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "vault", cfg.Database.Name)
	assert.Equal(t, "vault", cfg.Database.User)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("METRICS_ADDR", ":2112")
	t.Setenv("SESSION_IDLE_TTL", "0")
	t.Setenv("PUZZLE_SOURCE", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("GENERATION_TIMEOUT", "3s")
	t.Setenv("GENERATION_RATE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.NoError(t, cfg.RequireBot())
	assert.Equal(t, ":2112", cfg.MetricsAddr)
	assert.Equal(t, time.Duration(0), cfg.IdleTTL)
	assert.Equal(t, PuzzleSourcePostgres, cfg.Puzzles.Source)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "sk-test", cfg.Guardian.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Guardian.Model)
	assert.Equal(t, 3*time.Second, cfg.Guardian.Timeout)
	assert.Equal(t, 0.0, cfg.Guardian.RatePerSecond)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		errorMsg string
	}{
		{
			name:     "postgres without password",
			env:      map[string]string{"PUZZLE_SOURCE": "postgres"},
			errorMsg: "DB_PASSWORD",
		},
		{
			name:     "unknown puzzle source",
			env:      map[string]string{"PUZZLE_SOURCE": "redis"},
			errorMsg: "PUZZLE_SOURCE",
		},
		{
			name:     "invalid timeout",
			env:      map[string]string{"GENERATION_TIMEOUT": "ten"},
			errorMsg: "GENERATION_TIMEOUT",
		},
		{
			name:     "invalid idle ttl",
			env:      map[string]string{"SESSION_IDLE_TTL": "-5m"},
			errorMsg: "SESSION_IDLE_TTL",
		},
		{
			name:     "invalid rate",
			env:      map[string]string{"GENERATION_RATE": "many"},
			errorMsg: "GENERATION_RATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestConfig_RequireBot(t *testing.T) {
	cfg := &Config{}
	err := cfg.RequireBot()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}
