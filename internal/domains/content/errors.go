package content

import "errors"

var (
	// Validation errors
	ErrTitleRequired = errors.New("Title is required")
	ErrTitleTooLong  = errors.New("Title cannot exceed 200 characters")
	ErrBodyRequired  = errors.New("Content is required")
	// ErrInvalidTitle covers titles that collapse to an empty slug
	// (only punctuation/symbols). Storing an empty slug would break
	// uniqueness on the second such title, so the write is rejected.
	ErrInvalidTitle = errors.New("Title must contain at least one letter or digit")

	// Business rule errors
	ErrContentNotFound = errors.New("Content not found")
	ErrDuplicateSlug   = errors.New("A content with this title already exists")
)

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrContentNotFound):
		return "CONTENT_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrBodyRequired),
		errors.Is(err, ErrInvalidTitle):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrContentNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug),
		errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrBodyRequired),
		errors.Is(err, ErrInvalidTitle):
		return 400
	default:
		return 500
	}
}
