package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/generation"
)

// MockChatProvider implements generation.ChatProvider for testing.
type MockChatProvider struct {
	ChatFn func(ctx context.Context, userPrompt, systemPrompt, modelID string) (string, error)

	// Default response values
	Response string
	Err      error

	mu    sync.Mutex
	calls []ChatCall
}

// ChatCall records the arguments of one Chat call.
type ChatCall struct {
	UserPrompt   string
	SystemPrompt string
	ModelID      string
}

var _ generation.ChatProvider = (*MockChatProvider)(nil)

// Chat implements generation.ChatProvider.
func (m *MockChatProvider) Chat(ctx context.Context, userPrompt, systemPrompt, modelID string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ChatCall{UserPrompt: userPrompt, SystemPrompt: systemPrompt, ModelID: modelID})
	m.mu.Unlock()

	if m.ChatFn != nil {
		return m.ChatFn(ctx, userPrompt, systemPrompt, modelID)
	}
	return m.Response, m.Err
}

// Calls returns a copy of the recorded calls.
func (m *MockChatProvider) Calls() []ChatCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ChatCall(nil), m.calls...)
}

// MockProviderResolver implements generation.ProviderResolver for testing.
// Providers maps provider ids to chat providers; Resolve parses the option
// with domain.ParseProviderOption.
type MockProviderResolver struct {
	Providers map[string]generation.ChatProvider

	mu       sync.Mutex
	resolved []string
}

var _ generation.ProviderResolver = (*MockProviderResolver)(nil)

// NewMockProviderResolver returns a resolver serving a single provider.
func NewMockProviderResolver(providerID string, p generation.ChatProvider) *MockProviderResolver {
	return &MockProviderResolver{Providers: map[string]generation.ChatProvider{providerID: p}}
}

// HasChatProvider implements generation.ProviderResolver.
func (m *MockProviderResolver) HasChatProvider() bool {
	return len(m.Providers) > 0
}

// Resolve implements generation.ProviderResolver.
func (m *MockProviderResolver) Resolve(option string) (generation.ChatProvider, domain.ProviderConfig, bool) {
	m.mu.Lock()
	m.resolved = append(m.resolved, option)
	m.mu.Unlock()

	cfg, err := domain.ParseProviderOption(option)
	if err != nil || !cfg.HasProvider() {
		return nil, domain.ProviderConfig{}, false
	}
	p, ok := m.Providers[cfg.ProviderID]
	if !ok {
		return nil, domain.ProviderConfig{}, false
	}
	return p, cfg, true
}

// ResolvedOptions returns the options passed to Resolve so far.
func (m *MockProviderResolver) ResolvedOptions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.resolved...)
}

// MockContentExtractor implements generation.ContentExtractor for testing.
type MockContentExtractor struct {
	ExtractTextFn func(ctx context.Context, item *domain.ContentItem) (string, error)

	Text string
	Err  error
}

var _ generation.ContentExtractor = (*MockContentExtractor)(nil)

// ExtractText implements generation.ContentExtractor.
func (m *MockContentExtractor) ExtractText(ctx context.Context, item *domain.ContentItem) (string, error) {
	if m.ExtractTextFn != nil {
		return m.ExtractTextFn(ctx, item)
	}
	return m.Text, m.Err
}

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	GenerateFn func(ctx context.Context, settings domain.GenerationSettings, item *domain.ContentItem) generation.Result

	// Result is returned when GenerateFn is nil.
	Result generation.Result

	mu    sync.Mutex
	Count int
	Items []*domain.ContentItem
}

var _ generation.Generator = (*MockGenerator)(nil)

// NewMockGeneratorWithDescription returns a generator that always succeeds.
func NewMockGeneratorWithDescription(description string) *MockGenerator {
	return &MockGenerator{Result: generation.Success{Description: description}}
}

// NewMockGeneratorWithFailure returns a generator that always fails.
func NewMockGeneratorWithFailure(kind generation.FailureKind, message string) *MockGenerator {
	return &MockGenerator{Result: generation.Failure{Kind: kind, Message: message}}
}

// Generate implements generation.Generator.
func (m *MockGenerator) Generate(
	ctx context.Context,
	settings domain.GenerationSettings,
	item *domain.ContentItem,
) generation.Result {
	m.mu.Lock()
	m.Count++
	m.Items = append(m.Items, item)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, settings, item)
	}
	return m.Result
}
