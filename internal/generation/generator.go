// Package generation defines the completion-generator abstraction the
// orchestrator dispatches to. Provider-specific implementations live under
// internal/platform.
package generation

import "context"

// Generator produces a text completion for a prompt. Implementations make
// a single synchronous round-trip: no streaming, no retries, no multi-turn
// context. An empty model or non-positive maxTokens selects the
// implementation's defaults.
type Generator interface {
	Generate(ctx context.Context, prompt, model string, maxTokens int) (string, error)
}
