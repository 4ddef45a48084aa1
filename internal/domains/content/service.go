package content

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business-logic contract for manual articles.
type Service interface {
	Create(ctx context.Context, req *CreateContentRequest) (*Content, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Content, error)
	GetBySlug(ctx context.Context, slug string) (*Content, error)
	List(ctx context.Context, filter Filter) ([]Content, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateContentRequest) (*Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
	TogglePublish(ctx context.Context, id uuid.UUID) (*Content, error)
}
