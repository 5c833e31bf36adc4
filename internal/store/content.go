package store

import (
	"context"

	"github.com/phrazzld/metadesc-api/internal/domain"
)

// ContentStore defines the interface for content item persistence.
type ContentStore interface {
	// GetByID retrieves a content item by its id.
	// Returns ErrContentNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.ContentItem, error)

	// ListBundles returns the content types that carry a meta description
	// field, ordered by id.
	ListBundles(ctx context.Context) ([]domain.Bundle, error)

	// Create saves a new content item, registering its bundle if needed.
	// Returns ErrContentExists if an item with the same id exists and
	// ErrInvalidEntity wrapping the validation error if the item is invalid.
	Create(ctx context.Context, item *domain.ContentItem) error
}
