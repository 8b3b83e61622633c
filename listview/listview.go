// Package listview is the one shared implementation of the screen pattern
// every admin page repeats: hold the full collection, filter it in memory,
// slice out a fixed-size page. Screens differ only in their match function.
package listview

import (
	"strconv"
	"strings"
)

// DefaultPageSize is what every screen uses.
const DefaultPageSize = 5

// Query is the live filter state of one screen.
type Query struct {
	Search  string
	Filters map[string]string
	Page    int
}

// WithSearch returns the query with a new search term. Changing the term
// always puts the screen back on page 1.
func (q Query) WithSearch(s string) Query {
	q.Search = s
	q.Page = 1
	return q
}

// WithFilter returns the query with one discrete filter changed, back on
// page 1.
func (q Query) WithFilter(key, value string) Query {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[key] = value
	q.Filters = filters
	q.Page = 1
	return q
}

// Filter returns the named discrete filter value, "" meaning "all".
func (q Query) Filter(key string) string { return q.Filters[key] }

// ParsePage turns a page query parameter into a usable page number.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// MatchFold reports whether haystack contains needle case-insensitively.
// An empty needle matches everything.
func MatchFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Filter keeps the items the predicate accepts, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// View is one rendered page of a filtered collection plus the counters the
// screens display ("Menampilkan X dari Y", prev/next button state).
type View[T any] struct {
	Items       []T  `json:"data"`
	Total       int  `json:"total"`
	Filtered    int  `json:"filtered"`
	Page        int  `json:"page"`
	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
	ShowingFrom int  `json:"showing_from"`
	ShowingTo   int  `json:"showing_to"`
}

// Paginate slices one page out of the filtered collection. An out-of-range
// page clamps to an empty slice rather than erroring, matching the screens'
// behavior of relying on slice bounds plus a disabled next button. total is
// the size of the unfiltered collection.
func Paginate[T any](filtered []T, total, page, size int) View[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	totalPages := (len(filtered) + size - 1) / size

	start := (page - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	v := View[T]{
		Items:      filtered[start:end],
		Total:      total,
		Filtered:   len(filtered),
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		ShowingTo:  end,
	}
	if end > start {
		v.ShowingFrom = start + 1
	}
	return v
}
