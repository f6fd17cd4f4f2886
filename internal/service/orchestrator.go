// Package service contains the orchestration layer between the HTTP
// handlers and the completion generators.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/portico-api/internal/generation"
)

// ServiceName identifies a registered completion service.
type ServiceName string

// Known completion services.
const (
	ServiceOpenAI ServiceName = "openai"
	ServiceGemini ServiceName = "gemini"
)

// DefaultService is used when a process request names no service.
const DefaultService = ServiceOpenAI

// Options carries service-specific parameters of a process request.
type Options struct {
	Model     string
	MaxTokens int
}

// Result is the orchestrator's uniform outcome. Success is false exactly
// when Error is non-empty; the orchestrator itself never returns a Go
// error, so a misnamed service degrades to a failed Result instead of a
// handler branch.
type Result struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Orchestrator dispatches process requests to registered completion
// services by name. It exists as an extension seam: adding a service is a
// registration, not a code change in the dispatch path.
type Orchestrator struct {
	logger     *slog.Logger
	generators map[ServiceName]generation.Generator
}

// NewOrchestrator creates an empty Orchestrator.
func NewOrchestrator(logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		logger:     logger,
		generators: make(map[ServiceName]generation.Generator),
	}
}

// Register adds a completion service under the given name, replacing any
// previous registration.
func (o *Orchestrator) Register(name ServiceName, g generation.Generator) {
	o.generators[name] = g
}

// Process routes query to the named service. An empty service name selects
// the default. Unknown services produce a failed Result, never a panic.
func (o *Orchestrator) Process(ctx context.Context, query string, service ServiceName, opts Options) Result {
	if service == "" {
		service = DefaultService
	}

	g, ok := o.generators[service]
	if !ok {
		o.logger.WarnContext(ctx, "unknown completion service requested", "service", string(service))
		return Result{Success: false, Error: fmt.Sprintf("Unknown service: %s", service)}
	}

	text, err := g.Generate(ctx, query, opts.Model, opts.MaxTokens)
	if err != nil {
		o.logger.ErrorContext(ctx, "completion failed", "service", string(service), "error", err)
		return Result{Success: false, Error: err.Error()}
	}

	return Result{Success: true, Result: text}
}
