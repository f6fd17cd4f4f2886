package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/portico-api/internal/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessDispatchesToNamedService(t *testing.T) {
	gen := &mocks.MockGenerator{Text: "generated text"}
	o := NewOrchestrator(testLogger())
	o.Register(ServiceOpenAI, gen)

	result := o.Process(context.Background(), "a prompt", ServiceOpenAI, Options{Model: "gpt-4o", MaxTokens: 50})

	assert.True(t, result.Success)
	assert.Equal(t, "generated text", result.Result)
	assert.Empty(t, result.Error)

	require.Equal(t, 1, gen.GenerateCalls.Count)
	assert.Equal(t, "a prompt", gen.GenerateCalls.Prompts[0])
	assert.Equal(t, "gpt-4o", gen.GenerateCalls.Models[0])
	assert.Equal(t, 50, gen.GenerateCalls.MaxTokens[0])
}

func TestProcessEmptyServiceSelectsDefault(t *testing.T) {
	openaiGen := &mocks.MockGenerator{Text: "from openai"}
	geminiGen := &mocks.MockGenerator{Text: "from gemini"}
	o := NewOrchestrator(testLogger())
	o.Register(ServiceOpenAI, openaiGen)
	o.Register(ServiceGemini, geminiGen)

	result := o.Process(context.Background(), "a prompt", "", Options{})

	assert.True(t, result.Success)
	assert.Equal(t, "from openai", result.Result)
	assert.Equal(t, 1, openaiGen.GenerateCalls.Count)
	assert.Equal(t, 0, geminiGen.GenerateCalls.Count)
}

func TestProcessUnknownServiceFailsGracefully(t *testing.T) {
	o := NewOrchestrator(testLogger())
	o.Register(ServiceOpenAI, &mocks.MockGenerator{Text: "x"})

	result := o.Process(context.Background(), "a prompt", "anthropic", Options{})

	assert.False(t, result.Success)
	assert.Equal(t, "Unknown service: anthropic", result.Error)
	assert.Empty(t, result.Result)
}

func TestProcessGeneratorErrorBecomesFailedResult(t *testing.T) {
	o := NewOrchestrator(testLogger())
	o.Register(ServiceGemini, &mocks.MockGenerator{Err: errors.New("content blocked by safety filters")})

	result := o.Process(context.Background(), "a prompt", ServiceGemini, Options{})

	assert.False(t, result.Success)
	assert.Equal(t, "content blocked by safety filters", result.Error)
}

func TestRegisterReplacesPreviousGenerator(t *testing.T) {
	first := &mocks.MockGenerator{Text: "first"}
	second := &mocks.MockGenerator{Text: "second"}
	o := NewOrchestrator(testLogger())
	o.Register(ServiceOpenAI, first)
	o.Register(ServiceOpenAI, second)

	result := o.Process(context.Background(), "a prompt", ServiceOpenAI, Options{})

	assert.Equal(t, "second", result.Result)
	assert.Equal(t, 0, first.GenerateCalls.Count)
}
