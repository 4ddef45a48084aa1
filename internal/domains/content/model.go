package content

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned when an article is created without one.
const DefaultCategory = "General"

// Content is a single manual article. The sole persisted entity of the
// system: a rich-text body plus the metadata needed to place it in the
// published manual.
//
// DATABASE MAPPING:
// ┌─────────────────────────┐
// │      content table      │
// ├─────────────────────────┤
// │ id (UUID) - PRIMARY KEY │
// │ title (TEXT)            │
// │ slug (TEXT) - UNIQUE    │
// │ body (TEXT)             │
// │ category (TEXT)         │
// │ sort_order (INT)        │
// │ is_published (BOOLEAN)  │
// │ created_at              │
// │ updated_at              │
// └─────────────────────────┘
type Content struct {
	// Identity, assigned by the database on insert
	ID uuid.UUID `json:"id"`

	// Title: required, trimmed, max 200 code points
	Title string `json:"title"`

	// Slug: URL-friendly identifier, unique across all articles.
	// Always recomputed from Title when Title changes, never set by
	// callers directly.
	Slug string `json:"slug"`

	// Body: opaque HTML produced by the rich-text editor.
	// Wire name is "content" to match the editor payload.
	Body string `json:"content"`

	// Category: free-text grouping label, display only
	Category string `json:"category"`

	// Order: sort tie-breaker inside a category; not unique
	Order int `json:"order"`

	// IsPublished gates visibility in the public manual view
	IsPublished bool `json:"isPublished"`

	// Timestamps, set by the storage layer
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
