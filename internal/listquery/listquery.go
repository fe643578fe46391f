// Package listquery evaluates list-view queries (search, field filters,
// sort, pagination) over an in-memory collection. The same engine backs the
// customers, services and orders list endpoints; each entity contributes a
// Spec naming its searchable, sortable and filterable fields.
package listquery

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrInvalidArgument is returned for queries the engine cannot evaluate:
// non-positive page size, unknown sort key, unknown filter key.
var ErrInvalidArgument = errors.New("invalid argument")

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Query describes one list-view request.
type Query struct {
	// Search is a case-insensitive substring matched against the spec's
	// search fields. Empty means no search constraint.
	Search string
	// Filters are exact-match constraints keyed by filter field name.
	// An empty value means no constraint on that field.
	Filters map[string]string
	// SortKey selects a comparator from the spec. Empty preserves input order.
	SortKey string
	SortDir Direction
	// Page is 1-indexed and clamped to the valid range after filtering.
	Page     int
	PageSize int
}

// Spec declares how one record type is searched, filtered and sorted.
type Spec[T any] struct {
	// SearchFields yield the text fields the search term is matched against.
	SearchFields []func(T) string
	// SortFields map sort keys to comparators (negative, zero, positive).
	SortFields map[string]func(a, b T) int
	// FilterFields map filter keys to the record value compared exactly.
	FilterFields map[string]func(T) string
}

// Page is one evaluated page plus pagination metadata.
type Page[T any] struct {
	Items        []T `json:"items"`
	TotalMatched int `json:"total_matched"`
	TotalPages   int `json:"total_pages"`
	Page         int `json:"page"`
	PageSize     int `json:"page_size"`
}

// Evaluate filters, stable-sorts and paginates records. It is pure: records
// is not mutated and the same inputs always produce the same page.
func Evaluate[T any](records []T, q Query, spec Spec[T]) (Page[T], error) {
	if q.PageSize <= 0 {
		return Page[T]{}, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, q.PageSize)
	}
	if q.SortKey != "" {
		if _, ok := spec.SortFields[q.SortKey]; !ok {
			return Page[T]{}, fmt.Errorf("%w: unknown sort key %q", ErrInvalidArgument, q.SortKey)
		}
	}
	for key := range q.Filters {
		if _, ok := spec.FilterFields[key]; !ok {
			return Page[T]{}, fmt.Errorf("%w: unknown filter %q", ErrInvalidArgument, key)
		}
	}

	matched := make([]T, 0, len(records))
	for _, rec := range records {
		if matches(rec, q, spec) {
			matched = append(matched, rec)
		}
	}

	if q.SortKey != "" {
		cmp := spec.SortFields[q.SortKey]
		desc := q.SortDir == Desc
		sort.SliceStable(matched, func(i, j int) bool {
			c := cmp(matched[i], matched[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	total := len(matched)
	pages := int(math.Ceil(float64(total) / float64(q.PageSize)))

	page := q.Page
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}
	if pages == 0 {
		page = 1
	}

	start := (page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:        matched[start:end],
		TotalMatched: total,
		TotalPages:   pages,
		Page:         page,
		PageSize:     q.PageSize,
	}, nil
}

func matches[T any](rec T, q Query, spec Spec[T]) bool {
	for key, want := range q.Filters {
		if want == "" {
			continue
		}
		if spec.FilterFields[key](rec) != want {
			return false
		}
	}
	if q.Search == "" {
		return true
	}
	for _, field := range spec.SearchFields {
		if ContainsFold(field(rec), q.Search) {
			return true
		}
	}
	return false
}

// ContainsFold reports whether sub is a case-insensitive substring of s.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// CompareFold orders two strings case-insensitively.
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// ParseDirection maps the query-string value to a Direction, defaulting to
// ascending for anything that is not "desc".
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Desc)) {
		return Desc
	}
	return Asc
}
