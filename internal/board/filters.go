package board

import (
	"fmt"
	"net/url"
	"strings"
)

// Filters is the client's current read query: one category or all, one
// author or all, a sort order, and a search term. The server does all
// interpretation; the client never filters or sorts locally.
type Filters struct {
	Category Category
	User     string
	Sort     SortOrder
	Search   string
}

// DefaultFilters returns the unconstrained view: everything, newest first.
func DefaultFilters() Filters {
	return Filters{Category: All, User: All, Sort: SortNewest}
}

// IsDefault reports whether no filter deviates from the defaults.
func (f Filters) IsDefault() bool {
	return f == DefaultFilters()
}

// Values serializes the filter set for the read endpoint. The result
// carries exactly the four keys the server expects, always all of them;
// empty and "all" values mean "no constraint" server-side.
func (f Filters) Values() url.Values {
	return url.Values{
		"category": {string(f.Category)},
		"user":     {f.User},
		"sortBy":   {string(f.Sort)},
		"search":   {f.Search},
	}
}

// Summary describes the active filters in words. The sort phrase is
// always appended, so the summary is never empty.
func (f Filters) Summary() string {
	var parts []string
	if f.Category != All {
		parts = append(parts, string(f.Category))
	}
	if f.User != All {
		parts = append(parts, "by "+f.User)
	}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("matching %q", f.Search))
	}
	parts = append(parts, f.Sort.Phrase())
	return strings.Join(parts, " · ")
}

// Phrase returns the sort order as a short human-readable description.
func (o SortOrder) Phrase() string {
	switch o {
	case SortOldest:
		return "oldest first"
	case SortAuthor:
		return "by author name"
	default:
		return "newest first"
	}
}
