package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/metadesc-api/internal/domain"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
	"github.com/phrazzld/metadesc-api/internal/store"
)

// PostgresContentStore implements the store.ContentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresContentStore struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// Ensure PostgresContentStore implements store.ContentStore interface
var _ store.ContentStore = (*PostgresContentStore)(nil)

// NewPostgresContentStore creates a new PostgreSQL implementation of the ContentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresContentStore(db *sql.DB, logger *slog.Logger) *PostgresContentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContentStore{
		db:     db,
		logger: logger.With(slog.String("component", "content_store")),
		now:    time.Now,
	}
}

const getContentItemQuery = `
	SELECT id, bundle, title, summary, body, author, published, created_at, updated_at
	FROM content_items
	WHERE id = $1
`

// GetByID implements store.ContentStore.GetByID.
// Returns store.ErrContentNotFound if the item does not exist.
func (s *PostgresContentStore) GetByID(ctx context.Context, id int64) (*domain.ContentItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var item domain.ContentItem
	err := s.db.QueryRowContext(ctx, getContentItemQuery, id).Scan(
		&item.ID,
		&item.Bundle,
		&item.Title,
		&item.Summary,
		&item.Body,
		&item.Author,
		&item.Published,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("content item not found", slog.Int64("item_id", id))
			return nil, store.ErrContentNotFound
		}
		log.Error("failed to get content item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, store.NewStoreError("content_item", "get", "query failed", MapError(err))
	}

	return &item, nil
}

const listBundlesQuery = `
	SELECT id, label
	FROM bundles
	WHERE has_meta_description
	ORDER BY id
`

// ListBundles implements store.ContentStore.ListBundles.
func (s *PostgresContentStore) ListBundles(ctx context.Context) ([]domain.Bundle, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listBundlesQuery)
	if err != nil {
		log.Error("failed to list bundles", slog.String("error", err.Error()))
		return nil, store.NewStoreError("bundle", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close bundle rows", slog.String("error", cerr.Error()))
		}
	}()

	bundles := []domain.Bundle{}
	for rows.Next() {
		var b domain.Bundle
		if err := rows.Scan(&b.ID, &b.Label); err != nil {
			return nil, store.NewStoreError("bundle", "list", "scan failed", err)
		}
		bundles = append(bundles, b)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("bundle", "list", "iteration failed", err)
	}

	return bundles, nil
}

const (
	ensureBundleQuery = `
		INSERT INTO bundles (id, label)
		VALUES ($1, $1)
		ON CONFLICT (id) DO NOTHING
	`
	insertContentItemQuery = `
		INSERT INTO content_items
			(id, bundle, title, summary, body, author, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
)

// Create implements store.ContentStore.Create.
func (s *PostgresContentStore) Create(ctx context.Context, item *domain.ContentItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if item == nil {
		return fmt.Errorf("%w: nil content item", store.ErrInvalidEntity)
	}
	if err := item.Validate(); err != nil {
		log.Warn("content item validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("item_id", item.ID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := s.now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, ensureBundleQuery, item.Bundle); err != nil {
			return MapError(err)
		}
		_, err := tx.ExecContext(ctx, insertContentItemQuery,
			item.ID,
			item.Bundle,
			item.Title,
			item.Summary,
			item.Body,
			item.Author,
			item.Published,
			item.CreatedAt,
			item.UpdatedAt,
		)
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: id %d", store.ErrContentExists, item.ID)
		}
		return MapError(err)
	})
	if err != nil {
		log.Error("failed to create content item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", item.ID))
		return err
	}

	log.Info("content item created",
		slog.Int64("item_id", item.ID),
		slog.String("bundle", item.Bundle))
	return nil
}
