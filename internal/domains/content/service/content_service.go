package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"manual-backend/internal/domains/content"
	"manual-backend/internal/shared/utils"
)

type contentService struct {
	repo content.Repository
}

// NewContentService creates the content service. The service owns the
// lifecycle rules (validation, slug derivation, defaults); the
// repository owns persistence and the uniqueness constraint.
func NewContentService(repo content.Repository) content.Service {
	return &contentService{
		repo: repo,
	}
}

// validateAndSlug applies the title rules and derives the slug.
// The slug is a pure function of the title; an all-symbol title
// collapses to an empty slug and is rejected rather than stored.
func validateAndSlug(title string) (string, string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", content.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > content.MaxTitleLength {
		return "", "", content.ErrTitleTooLong
	}

	slug := utils.GenerateSlug(title)
	if slug == "" {
		return "", "", content.ErrInvalidTitle
	}

	return title, slug, nil
}

func (s *contentService) Create(ctx context.Context, req *content.CreateContentRequest) (*content.Content, error) {
	title, slug, err := validateAndSlug(req.Title)
	if err != nil {
		return nil, err
	}

	body := strings.TrimSpace(req.Content)
	if body == "" {
		return nil, content.ErrBodyRequired
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = content.DefaultCategory
	}

	// Advisory check for a friendly early error. The unique index
	// catches whatever races past it.
	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if exists {
		return nil, content.ErrDuplicateSlug
	}

	entity := &content.Content{
		Title:       title,
		Slug:        slug,
		Body:        body,
		Category:    category,
		Order:       req.Order,
		IsPublished: req.IsPublished,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *contentService) GetByID(ctx context.Context, id uuid.UUID) (*content.Content, error) {
	if id == uuid.Nil {
		return nil, content.ErrContentNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *contentService) GetBySlug(ctx context.Context, slug string) (*content.Content, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, content.ErrContentNotFound
	}
	return s.repo.GetBySlug(ctx, slug)
}

func (s *contentService) List(ctx context.Context, filter content.Filter) ([]content.Content, error) {
	return s.repo.List(ctx, filter)
}

// Update applies only the supplied fields. A new title recomputes the
// slug before the uniqueness check; omitted fields keep their values.
// Concurrent updates to the same article are last-write-wins.
func (s *contentService) Update(ctx context.Context, id uuid.UUID, req *content.UpdateContentRequest) (*content.Content, error) {
	entity, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, slug, err := validateAndSlug(*req.Title)
		if err != nil {
			return nil, err
		}

		if slug != entity.Slug {
			exists, err := s.repo.ExistsBySlug(ctx, slug)
			if err != nil {
				return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
			}
			if exists {
				return nil, content.ErrDuplicateSlug
			}
		}

		entity.Title = title
		entity.Slug = slug
	}

	if req.Content != nil {
		body := strings.TrimSpace(*req.Content)
		if body == "" {
			return nil, content.ErrBodyRequired
		}
		entity.Body = body
	}

	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			category = content.DefaultCategory
		}
		entity.Category = category
	}

	if req.Order != nil {
		entity.Order = *req.Order
	}

	if req.IsPublished != nil {
		entity.IsPublished = *req.IsPublished
	}

	return s.repo.Update(ctx, entity)
}

func (s *contentService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return content.ErrContentNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *contentService) TogglePublish(ctx context.Context, id uuid.UUID) (*content.Content, error) {
	if id == uuid.Nil {
		return nil, content.ErrContentNotFound
	}
	return s.repo.TogglePublish(ctx, id)
}
