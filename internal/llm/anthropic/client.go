// Package anthropic provides an alternate llm.Completer backed by the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Config for the Anthropic client.
type Config struct {
	APIKey    string // if empty, falls back to env ANTHROPIC_API_KEY
	Model     string // e.g., "claude-sonnet-4-5-20250929"
	MaxTokens int64
}

type Client struct {
	cfg    Config
	sdk    sdk.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5-20250929"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 8192
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		sdk:    sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
		logger: logger,
	}
}

// Complete implements llm.Completer.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	start := time.Now()

	message, err := c.sdk.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.cfg.Model),
		MaxTokens: c.cfg.MaxTokens,
		System: []sdk.TextBlockParam{
			{Text: system, CacheControl: sdk.NewCacheControlEphemeralParam()},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(user)),
		},
	})
	if err != nil {
		c.logger.Error("anthropic.error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			c.logger.Info("anthropic.ok",
				"model", c.cfg.Model,
				"content_len", len(block.Text),
				"tokens_in", message.Usage.InputTokens,
				"tokens_out", message.Usage.OutputTokens,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in anthropic response")
}
