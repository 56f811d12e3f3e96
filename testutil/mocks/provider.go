// Package mocks provides test doubles for external collaborators.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/monjearse/eda-app/llm"
)

// ProviderCall records a single Completion invocation.
type ProviderCall struct {
	Request  *llm.ChatRequest
	Response *llm.ChatResponse
	Error    error
}

// MockProvider is a scripted llm.Provider. By default every call returns
// the fixed response; WithResponses sets a queue consumed one call at a
// time (the last entry repeats once the queue drains).
type MockProvider struct {
	mu sync.RWMutex

	response  string
	responses []string
	err       error

	completionFunc func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)

	calls     []ProviderCall
	callCount int
}

// NewMockProvider creates a provider that answers "Mock response".
func NewMockProvider() *MockProvider {
	return &MockProvider{response: "Mock response"}
}

// WithResponse sets the fixed response content.
func (m *MockProvider) WithResponse(response string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.response = response
	return m
}

// WithResponses sets a queue of responses consumed in order.
func (m *MockProvider) WithResponses(responses ...string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append([]string{}, responses...)
	return m
}

// WithError makes every call fail with err.
func (m *MockProvider) WithError(err error) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// WithCompletionFunc installs a custom Completion implementation.
func (m *MockProvider) WithCompletionFunc(fn func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completionFunc = fn
	return m
}

// Name implements llm.Provider.
func (m *MockProvider) Name() string { return "mock" }

// HealthCheck implements llm.Provider.
func (m *MockProvider) HealthCheck(ctx context.Context) (*llm.HealthStatus, error) {
	return &llm.HealthStatus{Healthy: true, Latency: 10 * time.Millisecond}, nil
}

// Completion implements llm.Provider.
func (m *MockProvider) Completion(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++

	if m.err != nil {
		m.calls = append(m.calls, ProviderCall{Request: req, Error: m.err})
		return nil, m.err
	}

	if m.completionFunc != nil {
		resp, err := m.completionFunc(ctx, req)
		m.calls = append(m.calls, ProviderCall{Request: req, Response: resp, Error: err})
		return resp, err
	}

	content := m.response
	if len(m.responses) > 0 {
		idx := m.callCount - 1
		if idx >= len(m.responses) {
			idx = len(m.responses) - 1
		}
		content = m.responses[idx]
	}

	resp := &llm.ChatResponse{
		ID:    "mock-response-id",
		Model: req.Model,
		Choices: []llm.ChatChoice{
			{Index: 0, FinishReason: "stop", Message: llm.Message{Role: llm.RoleAssistant, Content: content}},
		},
		CreatedAt: time.Now(),
	}
	m.calls = append(m.calls, ProviderCall{Request: req, Response: resp})
	return resp, nil
}

// Calls returns a copy of all recorded calls.
func (m *MockProvider) Calls() []ProviderCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]ProviderCall{}, m.calls...)
}

// CallCount returns how many Completion calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.callCount
}

// LastCall returns the most recent call, or nil.
func (m *MockProvider) LastCall() *ProviderCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.calls) == 0 {
		return nil
	}
	call := m.calls[len(m.calls)-1]
	return &call
}

// SystemPrompts returns the system message of every recorded call, in
// order; calls without a system message contribute an empty string.
func (m *MockProvider) SystemPrompts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.calls))
	for _, c := range m.calls {
		var system string
		if c.Request != nil {
			for _, msg := range c.Request.Messages {
				if msg.Role == llm.RoleSystem {
					system = msg.Content
					break
				}
			}
		}
		out = append(out, system)
	}
	return out
}

// Reset clears recorded state.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.callCount = 0
	m.err = nil
}
