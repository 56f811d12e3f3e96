// Package edaapp provides a top-level convenience entry point for building
// the question-answering orchestrator with minimal boilerplate.
//
// Usage:
//
//	import "github.com/monjearse/eda-app"
//
//	app, err := edaapp.New(edaapp.WithGemini("gemini-2.0-flash-exp"))
//	app, err := edaapp.New(edaapp.WithProvider(myProvider), edaapp.WithModel("custom"))
//
//	answer, err := app.Answer(ctx, "Quantos outliers existem em idade?", "ana@local")
package edaapp

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/monjearse/eda-app/agents"
	"github.com/monjearse/eda-app/dataset"
	"github.com/monjearse/eda-app/llm"
	"github.com/monjearse/eda-app/providers"
	"github.com/monjearse/eda-app/providers/gemini"
)

// Option configures the orchestrator created by [New].
type Option func(*settings)

type settings struct {
	provider llm.Provider
	model    string
	apiKey   string
	store    *dataset.Store
	history  agents.HistoryReader
	logger   *zap.Logger
}

// WithProvider sets a pre-built narrative collaborator.
func WithProvider(p llm.Provider) Option {
	return func(s *settings) { s.provider = p }
}

// WithGemini creates a Gemini provider for the given model. The API key is
// read from GOOGLE_API_KEY unless overridden with [WithAPIKey].
func WithGemini(model string) Option {
	return func(s *settings) { s.model = model }
}

// WithAPIKey overrides the API key used by [WithGemini].
func WithAPIKey(key string) Option {
	return func(s *settings) { s.apiKey = key }
}

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(s *settings) { s.model = model }
}

// WithStore supplies an existing dataset store. A fresh empty store is
// created otherwise.
func WithStore(store *dataset.Store) Option {
	return func(s *settings) { s.store = store }
}

// WithHistory supplies the Q/A history source feeding the conclusions flow.
func WithHistory(h agents.HistoryReader) Option {
	return func(s *settings) { s.history = h }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// New builds an [agents.Orchestrator] ready to answer questions. A provider
// must come from [WithProvider] or [WithGemini].
func New(opts ...Option) (*agents.Orchestrator, error) {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.store == nil {
		s.store = dataset.NewStore()
	}

	if s.provider == nil {
		if s.model == "" {
			return nil, errors.New("edaapp: a provider is required, use WithProvider or WithGemini")
		}
		key := s.apiKey
		if key == "" {
			key = os.Getenv("GOOGLE_API_KEY")
		}
		if key == "" {
			return nil, errors.New("edaapp: GOOGLE_API_KEY is not set")
		}
		s.provider = gemini.New(providers.GeminiConfig{APIKey: key, Model: s.model}, s.logger)
	}

	return agents.NewOrchestrator(agents.Config{
		Provider: s.provider,
		Model:    s.model,
		Store:    s.store,
		History:  s.history,
	}, s.logger), nil
}
