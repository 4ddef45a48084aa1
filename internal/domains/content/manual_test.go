package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func article(title, category string, order int) Content {
	return Content{
		Title:     title,
		Category:  category,
		Order:     order,
		CreatedAt: time.Now(),
	}
}

func TestGroupByCategory(t *testing.T) {
	// Input already sorted per the repository's List contract.
	items := []Content{
		article("Config Settings", "Configuration", 5),
		article("Creating a New Account", "Getting Started", 3),
		article("Roles", "Getting Started", 4),
		article("What is ERPICA?", "Introduction", 1),
		article("What is HRMS?", "Introduction", 2),
	}

	groups := GroupByCategory(items)

	require.Len(t, groups, 3)

	// First-seen category order preserved
	assert.Equal(t, "Configuration", groups[0].Category)
	assert.Equal(t, "Getting Started", groups[1].Category)
	assert.Equal(t, "Introduction", groups[2].Category)

	// Relative order inside each group preserved
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, "Creating a New Account", groups[1].Items[0].Title)
	assert.Equal(t, "Roles", groups[1].Items[1].Title)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
	assert.Empty(t, GroupByCategory([]Content{}))
}

func TestSortForManual(t *testing.T) {
	items := []Content{
		article("B", "Beta", 7),
		article("A", "Alpha", 2),
		article("C", "Gamma", 5),
	}

	sorted := SortForManual(items)

	require.Len(t, sorted, 3)
	assert.Equal(t, "A", sorted[0].Title)
	assert.Equal(t, "C", sorted[1].Title)
	assert.Equal(t, "B", sorted[2].Title)

	// Input untouched
	assert.Equal(t, "B", items[0].Title)
}

func TestSortForManualStable(t *testing.T) {
	// Equal order values keep their incoming relative order.
	items := []Content{
		article("first", "A", 1),
		article("second", "B", 1),
		article("third", "C", 1),
	}

	sorted := SortForManual(items)
	assert.Equal(t, "first", sorted[0].Title)
	assert.Equal(t, "second", sorted[1].Title)
	assert.Equal(t, "third", sorted[2].Title)
}
