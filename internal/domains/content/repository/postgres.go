package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"manual-backend/internal/domains/content"
	"manual-backend/pkg/cache"
	"manual-backend/pkg/logger"
)

const (
	cacheTTL          = 5 * time.Minute
	cacheKeyPrefix    = "content:"
	cacheKeyPublished = "content:list:published"
)

// pgUniqueViolation is the SQLSTATE for a unique-constraint violation.
const pgUniqueViolation = "23505"

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a repository backed by pgx with a
// read-through cache for the hot public paths (published list, slug
// lookups). Every write invalidates the whole content keyspace.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) content.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const contentColumns = `id, title, slug, body, category, sort_order, is_published, created_at, updated_at`

func scanContent(row pgx.Row) (*content.Content, error) {
	entity := &content.Content{}
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.Slug,
		&entity.Body,
		&entity.Category,
		&entity.Order,
		&entity.IsPublished,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// mapWriteError translates storage faults into domain errors.
// The unique index on slug is the real uniqueness enforcement point;
// any check-then-write done above us is advisory.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		logger.Error(op+": duplicate slug", err)
		return content.ErrDuplicateSlug
	}
	logger.Error(op+": database error", err)
	return fmt.Errorf("failed to %s content: %w", op, err)
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cacheKeyPrefix+"*"); err != nil {
		logger.Error("cache invalidation failed", err)
	}
}

func (r *postgresRepository) Create(ctx context.Context, entity *content.Content) (*content.Content, error) {
	const query = `
		INSERT INTO content (title, slug, body, category, sort_order, is_published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + contentColumns

	row := r.pool.QueryRow(ctx, query,
		entity.Title,
		entity.Slug,
		entity.Body,
		entity.Category,
		entity.Order,
		entity.IsPublished,
	)

	created, err := scanContent(row)
	if err != nil {
		return nil, mapWriteError("create", err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*content.Content, error) {
	const query = `SELECT ` + contentColumns + ` FROM content WHERE id = $1`

	entity, err := scanContent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrContentNotFound
		}
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*content.Content, error) {
	cacheKey := cacheKeyPrefix + "slug:" + slug

	cached := &content.Content{}
	if found, err := r.cache.Get(ctx, cacheKey, cached); err == nil && found {
		return cached, nil
	}

	const query = `SELECT ` + contentColumns + ` FROM content WHERE slug = $1`

	entity, err := scanContent(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrContentNotFound
		}
		logger.Error("GetBySlug: database error", err)
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, entity, cacheTTL); err != nil {
		logger.Error("GetBySlug: cache set failed", err)
	}
	return entity, nil
}

// List returns articles sorted for display: category ASC, sort_order
// ASC, then newest first as the final tie-break. The published-only
// list is the public manual's hot path, so it is cached.
func (r *postgresRepository) List(ctx context.Context, filter content.Filter) ([]content.Content, error) {
	cacheable := filter.IsPublished != nil && *filter.IsPublished

	if cacheable {
		var cached []content.Content
		if found, err := r.cache.Get(ctx, cacheKeyPublished, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := `SELECT ` + contentColumns + ` FROM content`
	args := []interface{}{}
	if filter.IsPublished != nil {
		query += ` WHERE is_published = $1`
		args = append(args, *filter.IsPublished)
	}
	query += ` ORDER BY category ASC, sort_order ASC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("List: database error", err)
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	items := []content.Content{}
	for rows.Next() {
		entity, err := scanContent(rows)
		if err != nil {
			logger.Error("List: scan error", err)
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}
		items = append(items, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read content rows: %w", err)
	}

	if cacheable {
		if err := r.cache.Set(ctx, cacheKeyPublished, items, cacheTTL); err != nil {
			logger.Error("List: cache set failed", err)
		}
	}

	return items, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *content.Content) (*content.Content, error) {
	const query = `
		UPDATE content
		SET title = $2, slug = $3, body = $4, category = $5,
		    sort_order = $6, is_published = $7, updated_at = now()
		WHERE id = $1
		RETURNING ` + contentColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.Slug,
		entity.Body,
		entity.Category,
		entity.Order,
		entity.IsPublished,
	)

	updated, err := scanContent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrContentNotFound
		}
		return nil, mapWriteError("update", err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM content WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("Delete: database error", err)
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return content.ErrContentNotFound
	}

	r.invalidate(ctx)
	return nil
}

// TogglePublish flips the flag in one statement so two concurrent
// toggles always net to two flips. No read-modify-write.
func (r *postgresRepository) TogglePublish(ctx context.Context, id uuid.UUID) (*content.Content, error) {
	const query = `
		UPDATE content
		SET is_published = NOT is_published, updated_at = now()
		WHERE id = $1
		RETURNING ` + contentColumns

	entity, err := scanContent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrContentNotFound
		}
		logger.Error("TogglePublish: database error", err)
		return nil, fmt.Errorf("failed to toggle publish: %w", err)
	}

	r.invalidate(ctx)
	return entity, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM content WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		logger.Error("ExistsBySlug: database error", err)
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}
