package app

import (
	"errors"

	"vaultofechoes/internal/config"
	"vaultofechoes/internal/guardian"
	"vaultofechoes/internal/service"

	"go.uber.org/zap"
)

// NewGenerator returns the Guardian's text generator. Without an API key the
// Guardian runs offline and always answers with its fallback line.
func NewGenerator(cfg config.GuardianConfig, logger *zap.Logger) (service.TextGenerator, error) {
	client, err := guardian.NewOpenAIClient(guardian.Config{
		APIKey:        cfg.APIKey,
		Model:         cfg.Model,
		BaseURL:       cfg.BaseURL,
		RatePerSecond: cfg.RatePerSecond,
	})
	if errors.Is(err, guardian.ErrUnavailable) {
		logger.Warn("OPENAI_API_KEY is not set, Guardian runs offline")
		return guardian.Offline{}, nil
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Guardian model configured", zap.String("model", cfg.Model))
	return client, nil
}
