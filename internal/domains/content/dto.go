package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation constants
const (
	MaxTitleLength = 200
)

// CreateContentRequest - POST /api/content
// Field names mirror the editor payload: the HTML body arrives as
// "content".
type CreateContentRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	IsPublished bool   `json:"isPublished"`
}

func (r CreateContentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&r.Content, validation.Required),
	)
}

// UpdateContentRequest - PUT /api/content/:id
// All fields optional: only supplied keys change, omitted keys are
// left untouched.
type UpdateContentRequest struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Category    *string `json:"category,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsPublished *bool   `json:"isPublished,omitempty"`
}

func (r UpdateContentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
	)
}

// Filter narrows List results. Nil IsPublished returns every article
// regardless of publish state.
type Filter struct {
	IsPublished *bool
}
