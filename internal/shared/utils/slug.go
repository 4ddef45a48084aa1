package utils

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateSlug derives a URL-safe identifier from a title:
//
//	"Getting Started"  -> "getting-started"
//	"FAQ & Tips!"      -> "faq-tips"
//
// Lowercase, every run of characters outside [a-z0-9] collapses to a
// single hyphen, leading/trailing hyphens are stripped. A title made of
// only symbols produces "" - callers must reject that before writing.
func GenerateSlug(title string) string {
	lower := strings.ToLower(title)
	hyphenated := nonAlphanumeric.ReplaceAllString(lower, "-")
	return strings.Trim(hyphenated, "-")
}
