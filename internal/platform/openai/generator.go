// Package openai implements the generation.Generator interface using
// OpenAI's chat completion API.
package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"github.com/phrazzld/portico-api/internal/config"
	"github.com/phrazzld/portico-api/internal/generation"
)

// Generator calls OpenAI's chat completion endpoint with a one-message
// user conversation.
type Generator struct {
	logger *slog.Logger
	cfg    config.LLMConfig
	client *openai.Client
}

// NewGenerator creates a Generator from the LLM configuration. The API
// key is required; the base URL is overridable for testing against a
// local fake.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}

	return &Generator{
		logger: logger,
		cfg:    cfg,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

var _ generation.Generator = (*Generator)(nil)

// Generate makes a single chat-completion call and returns the generated
// text. Model and token budget fall back to the configured defaults.
func (g *Generator) Generate(ctx context.Context, prompt, model string, maxTokens int) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}
	if model == "" {
		model = g.cfg.DefaultModel
	}
	if maxTokens <= 0 {
		maxTokens = g.cfg.DefaultMaxTokens
	}

	g.logger.DebugContext(ctx, "making OpenAI completion call",
		"model", model,
		"max_tokens", maxTokens,
		"prompt_length", len(prompt))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "OpenAI completion call failed", "error", err, "model", model)
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", generation.ErrInvalidResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
