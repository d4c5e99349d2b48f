package board

import (
	"fmt"
	"strings"
	"time"
)

// Sentence is a single post on the board. Sentences are created by the
// server on submission and are immutable afterwards; the only way one
// disappears is an explicit delete by its author.
type Sentence struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category tags a sentence with the kind of thing it is.
type Category string

const (
	Thoughts  Category = "thoughts"
	Quotes    Category = "quotes"
	Stories   Category = "stories"
	Jokes     Category = "jokes"
	Questions Category = "questions"
	Facts     Category = "facts"
	Other     Category = "other"
)

// DefaultCategory is what the compose form starts with and resets to
// after a successful post.
const DefaultCategory = Thoughts

// All is the wildcard filter value accepted for both category and user.
const All = "all"

// Categories returns the postable categories in canonical order.
func Categories() []Category {
	return []Category{Thoughts, Quotes, Stories, Jokes, Questions, Facts, Other}
}

// ParseCategory resolves user input to a postable category.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: %s)", s, joinValues(Categories()))
}

// SortOrder selects how the server orders the feed.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortAuthor SortOrder = "author"
)

// SortOrders returns the supported sort orders in canonical order.
func SortOrders() []SortOrder {
	return []SortOrder{SortNewest, SortOldest, SortAuthor}
}

// ParseSort resolves user input to a sort order.
func ParseSort(s string) (SortOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, o := range SortOrders() {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown sort order %q (valid: %s)", s, joinValues(SortOrders()))
}

func joinValues[T ~string](vals []T) string {
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
