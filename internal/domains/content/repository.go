package content

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the storage contract for manual articles.
//
// Slug uniqueness is enforced by the database's unique index; the
// implementation must translate a unique-constraint violation into
// ErrDuplicateSlug. Any service-level existence check is advisory only.
type Repository interface {
	Create(ctx context.Context, entity *Content) (*Content, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Content, error)
	GetBySlug(ctx context.Context, slug string) (*Content, error)

	// List returns articles sorted by category ASC, order ASC,
	// created_at DESC.
	List(ctx context.Context, filter Filter) ([]Content, error)

	Update(ctx context.Context, entity *Content) (*Content, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// TogglePublish flips is_published in a single atomic update and
	// returns the resulting row.
	TogglePublish(ctx context.Context, id uuid.UUID) (*Content, error)

	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
