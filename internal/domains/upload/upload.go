package upload

import (
	"context"
	"errors"
)

// Request - POST /api/upload
// The editor sends the image as a base64 data URI:
// "data:image/png;base64,iVBOR..."
type Request struct {
	Image string `json:"image"`
}

// Result is what the editor embeds back into the article body.
type Result struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Service accepts raw editor payloads and returns stable image URLs.
// It has no awareness of which article, if any, ends up referencing
// the image; orphaned images are never cleaned up.
type Service interface {
	Upload(ctx context.Context, dataURI string) (*Result, error)
}

var (
	ErrNoImage      = errors.New("No image provided")
	ErrInvalidImage = errors.New("Invalid image payload")
)

// ToHTTPStatus converts an error to an HTTP status code.
// Bad payloads are the caller's fault; anything else is an upstream
// object-storage failure.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoImage), errors.Is(err, ErrInvalidImage):
		return 400
	default:
		return 500
	}
}
