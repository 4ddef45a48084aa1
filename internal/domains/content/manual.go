package content

import "sort"

// CategoryGroup is one section of the manual: a category name and its
// articles in display order.
type CategoryGroup struct {
	Category string    `json:"category"`
	Items    []Content `json:"items"`
}

// GroupByCategory groups an already-sorted article list (category ASC,
// order ASC, created_at DESC per Repository.List) into sections.
// Category order and the relative order inside each section follow the
// input; a slice of groups rather than a map keeps iteration stable.
//
// Used by both the admin listing (all articles) and the public manual
// (published only).
func GroupByCategory(items []Content) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)

	for _, item := range items {
		i, seen := index[item.Category]
		if !seen {
			index[item.Category] = len(groups)
			groups = append(groups, CategoryGroup{Category: item.Category})
			i = len(groups) - 1
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// SortForManual re-sorts published articles for the public manual's
// single continuous scroll: order ASC as the primary key, then the
// incoming (category, created_at) order as tie-break. The input slice
// is not modified.
func SortForManual(items []Content) []Content {
	sorted := make([]Content, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	return sorted
}
