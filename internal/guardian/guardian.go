// Package guardian talks to the language model that voices the AI Guardian.
package guardian

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"golang.org/x/time/rate"
)

var (
	// ErrUnavailable is returned when no model is configured
	ErrUnavailable = errors.New("guardian model is not configured")

	// ErrEmptyResponse is returned when the model produced no text
	ErrEmptyResponse = errors.New("guardian model returned an empty response")
)

const (
	defaultMaxTokens   = 120
	defaultTemperature = 0.7
)

// Config holds model client settings
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// RatePerSecond limits model calls across all players, 0 disables limiting
	RatePerSecond float64
}

// Client generates Guardian replies with a langchaingo model
type Client struct {
	model   llms.Model
	limiter *rate.Limiter
}

// NewClient wraps an existing model
func NewClient(model llms.Model, ratePerSecond float64) *Client {
	limit := rate.Inf
	burst := 1
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
		burst = max(1, int(ratePerSecond))
	}
	return &Client{
		model:   model,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// NewOpenAIClient creates a client backed by the OpenAI chat API
func NewOpenAIClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrUnavailable
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}

	return NewClient(llm, cfg.RatePerSecond), nil
}

// Respond asks the model to answer message in the given persona
func (c *Client) Respond(ctx context.Context, persona, message string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.model.GenerateContent(ctx,
		[]llms.MessageContent{
			{Role: schema.ChatMessageTypeSystem, Parts: []llms.ContentPart{llms.TextContent{Text: persona}}},
			{Role: schema.ChatMessageTypeHuman, Parts: []llms.ContentPart{llms.TextContent{Text: message}}},
		},
		llms.WithMaxTokens(defaultMaxTokens),
		llms.WithTemperature(defaultTemperature),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Offline is used when no model is configured. Every call fails so the
// caller falls back to its fixed reply.
type Offline struct{}

// Respond always returns ErrUnavailable
func (Offline) Respond(context.Context, string, string) (string, error) {
	return "", ErrUnavailable
}
