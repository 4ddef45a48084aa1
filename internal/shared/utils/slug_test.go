package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Getting Started", "getting-started"},
		{"already lowercase", "faq", "faq"},
		{"uppercase", "FAQ", "faq"},
		{"punctuation collapses", "FAQ & Tips!", "faq-tips"},
		{"digits kept", "Release 2.0 Notes", "release-2-0-notes"},
		{"leading symbols stripped", "...Hello", "hello"},
		{"trailing symbols stripped", "Hello???", "hello"},
		{"consecutive separators collapse", "a  -  b", "a-b"},
		{"unicode treated as separator", "Café Menu", "caf-menu"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

// Every output is lowercase, contains only [a-z0-9-] and never starts
// or ends with a hyphen.
func TestGenerateSlugShape(t *testing.T) {
	valid := regexp.MustCompile(`^$|^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

	inputs := []string{
		"Getting Started",
		"What is HRMS?",
		"  spaces  everywhere  ",
		"MiXeD CaSe 123",
		"--dashes--",
		"日本語タイトル",
		"a",
		"!leading and trailing!",
	}

	for _, in := range inputs {
		slug := GenerateSlug(in)
		assert.Regexp(t, valid, slug, "input %q produced %q", in, slug)
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	assert.Equal(t, GenerateSlug("Getting Started"), GenerateSlug("Getting Started"))

	// Distinct titles can collide; uniqueness is the storage layer's
	// job, not the slug function's.
	assert.Equal(t, GenerateSlug("Getting Started"), GenerateSlug("getting started!"))
}
