// Package ranking holds the pure projections over a fetched result set:
// filtering, free-text search, leaderboard ordering and podium extraction.
// Nothing in here touches the store, so every rule is testable on plain
// slices.
package ranking

import (
	"sort"
	"strings"

	"sargalayam/repository"
	"sargalayam/utils"
)

// All is the sentinel filter value that matches every row.
const All = "all"

type Filters struct {
	Year     string
	Category string
	Search   string
}

// View returns the filtered, ordered projection of results. Year and
// category are equality filters ("all" or empty disables them); the search
// term matches case-insensitively against participant, school or event.
// Ordering is by points descending, stable with respect to input order, so
// store-side narrowing followed by View gives the same rows as View alone.
func View(results []*repository.Result, filters Filters) []*repository.Result {
	term := strings.ToLower(strings.TrimSpace(filters.Search))
	view := utils.Filter(results, func(r *repository.Result) bool {
		if filters.Year != "" && filters.Year != All && r.Year != filters.Year {
			return false
		}
		if filters.Category != "" && filters.Category != All && r.Category != filters.Category {
			return false
		}
		return matchesSearch(r, term)
	})
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].Points > view[j].Points
	})
	return view
}

func matchesSearch(r *repository.Result, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Participant), term) ||
		strings.Contains(strings.ToLower(r.School), term) ||
		strings.Contains(strings.ToLower(r.Event), term)
}
