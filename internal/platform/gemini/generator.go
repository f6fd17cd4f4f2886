// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/phrazzld/portico-api/internal/config"
	"github.com/phrazzld/portico-api/internal/generation"
)

// defaultModel is used when the caller does not name a Gemini model.
const defaultModel = "gemini-2.0-flash"

// Generator calls the Gemini API with a single-part text prompt.
type Generator struct {
	logger *slog.Logger
	cfg    config.LLMConfig
	client *genai.Client
}

// NewGenerator creates a Generator from the LLM configuration. The Gemini
// API key is required.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: Gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{logger: logger, cfg: cfg, client: client}, nil
}

var _ generation.Generator = (*Generator)(nil)

// Generate makes a single content-generation call and returns the text.
// When maxTokens is not positive the configured default budget applies.
func (g *Generator) Generate(ctx context.Context, prompt, model string, maxTokens int) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}
	if model == "" {
		model = defaultModel
	}
	if maxTokens <= 0 {
		maxTokens = g.cfg.DefaultMaxTokens
	}

	g.logger.DebugContext(ctx, "making Gemini completion call",
		"model", model,
		"prompt_length", len(prompt),
		"max_tokens", maxTokens)

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini completion call failed", "error", err, "model", model)
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	return text, nil
}
