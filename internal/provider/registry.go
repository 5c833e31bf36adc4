// Package provider keeps track of the chat providers available for
// generation and resolves the "<provider>__<model>" options stored in the
// generation settings.
package provider

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/generation"
)

var (
	// ErrDuplicateProvider is returned when a provider id is registered twice.
	ErrDuplicateProvider = errors.New("provider already registered")

	// ErrInvalidDefinition is returned for definitions missing an id, a chat
	// implementation or models.
	ErrInvalidDefinition = errors.New("invalid provider definition")
)

// Model is a model offered by a provider.
type Model struct {
	ID    string
	Label string
}

// Definition describes a chat provider to register.
type Definition struct {
	ID     string
	Label  string
	Models []Model
	Chat   generation.ChatProvider
}

// Option is one selectable "<provider>__<model>" entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Registry holds the registered chat providers. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Definition
}

var _ generation.ProviderResolver = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Definition)}
}

// Register adds a provider. Providers without credentials should simply not
// be registered.
func (r *Registry) Register(def Definition) error {
	if def.ID == "" || def.Chat == nil || len(def.Models) == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidDefinition, def.ID)
	}
	if def.Label == "" {
		def.Label = def.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[def.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateProvider, def.ID)
	}
	r.providers[def.ID] = def
	return nil
}

// HasChatProvider implements generation.ProviderResolver.
func (r *Registry) HasChatProvider() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers) > 0
}

// Resolve implements generation.ProviderResolver. The model id is not
// checked against the provider's model list so that settings may name
// models released after this build.
func (r *Registry) Resolve(option string) (generation.ChatProvider, domain.ProviderConfig, bool) {
	cfg, err := domain.ParseProviderOption(option)
	if err != nil || !cfg.HasProvider() {
		return nil, domain.ProviderConfig{}, false
	}

	r.mu.RLock()
	def, ok := r.providers[cfg.ProviderID]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ProviderConfig{}, false
	}

	return def.Chat, cfg, true
}

// IDs returns the registered provider ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Options lists every provider/model pair, sorted by provider id and then
// in the order the provider declared its models.
func (r *Registry) Options() []Option {
	ids := r.IDs()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var opts []Option
	for _, id := range ids {
		def := r.providers[id]
		for _, m := range def.Models {
			label := m.Label
			if label == "" {
				label = m.ID
			}
			opts = append(opts, Option{
				Value: domain.ProviderConfig{ProviderID: id, ModelID: m.ID}.Option(),
				Label: fmt.Sprintf("%s - %s", def.Label, label),
			})
		}
	}
	return opts
}

// ModelsFromIDs builds a model list whose labels are the ids themselves.
func ModelsFromIDs(ids []string) []Model {
	models := make([]Model, 0, len(ids))
	for _, id := range ids {
		models = append(models, Model{ID: id, Label: id})
	}
	return models
}
