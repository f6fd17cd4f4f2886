package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/portico-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// Custom behavior function
	GenerateFn func(ctx context.Context, prompt, model string, maxTokens int) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateCalls struct {
		mu        sync.Mutex
		Count     int
		Prompts   []string
		Models    []string
		MaxTokens []int
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, prompt, model string, maxTokens int) (string, error) {
	m.GenerateCalls.mu.Lock()
	m.GenerateCalls.Count++
	m.GenerateCalls.Prompts = append(m.GenerateCalls.Prompts, prompt)
	m.GenerateCalls.Models = append(m.GenerateCalls.Models, model)
	m.GenerateCalls.MaxTokens = append(m.GenerateCalls.MaxTokens, maxTokens)
	m.GenerateCalls.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, model, maxTokens)
	}
	return m.Text, m.Err
}
