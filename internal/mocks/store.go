package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/store"
)

// MockContentStore implements store.ContentStore for testing.
// Items backs GetByID when GetByIDFn is nil; missing ids return
// store.ErrContentNotFound.
type MockContentStore struct {
	GetByIDFn     func(ctx context.Context, id int64) (*domain.ContentItem, error)
	ListBundlesFn func(ctx context.Context) ([]domain.Bundle, error)
	CreateFn      func(ctx context.Context, item *domain.ContentItem) error

	Items   map[int64]*domain.ContentItem
	Bundles []domain.Bundle

	mu      sync.Mutex
	Created []*domain.ContentItem
}

var _ store.ContentStore = (*MockContentStore)(nil)

// NewMockContentStore returns a store holding the given items.
func NewMockContentStore(items ...*domain.ContentItem) *MockContentStore {
	m := &MockContentStore{Items: make(map[int64]*domain.ContentItem, len(items))}
	for _, item := range items {
		m.Items[item.ID] = item
	}
	return m
}

// GetByID implements store.ContentStore.
func (m *MockContentStore) GetByID(ctx context.Context, id int64) (*domain.ContentItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.Items[id]
	if !ok {
		return nil, store.ErrContentNotFound
	}
	return item, nil
}

// ListBundles implements store.ContentStore.
func (m *MockContentStore) ListBundles(ctx context.Context) ([]domain.Bundle, error) {
	if m.ListBundlesFn != nil {
		return m.ListBundlesFn(ctx)
	}
	return m.Bundles, nil
}

// Create implements store.ContentStore.
func (m *MockContentStore) Create(ctx context.Context, item *domain.ContentItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Items == nil {
		m.Items = make(map[int64]*domain.ContentItem)
	}
	if _, exists := m.Items[item.ID]; exists {
		return store.ErrContentExists
	}
	m.Items[item.ID] = item
	m.Created = append(m.Created, item)
	return nil
}

// MockSettingsLoader implements settings.Loader for testing.
type MockSettingsLoader struct {
	LoadFn func(ctx context.Context) (domain.GenerationSettings, error)

	Settings domain.GenerationSettings
	Err      error
}

// Load returns the configured settings.
func (m *MockSettingsLoader) Load(ctx context.Context) (domain.GenerationSettings, error) {
	if m.LoadFn != nil {
		return m.LoadFn(ctx)
	}
	return m.Settings, m.Err
}
