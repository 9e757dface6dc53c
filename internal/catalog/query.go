// internal/catalog/query.go
package catalog

import (
	"sort"
	"strings"

	"github.com/vedabooks/shop-backend/internal/models"
)

// DefaultPageSize matches the shop grid size.
const DefaultPageSize = 12

// QueryResult is one page of a filtered catalog plus the pagination
// envelope the storefront renders from.
type QueryResult struct {
	Data       []models.Book `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

// Query runs the filter -> sort -> paginate pipeline over the given
// books. It is a pure function: the input slice is not modified and the
// same inputs always produce the same result. Pages are 1-indexed; a
// page past the end yields an empty Data slice, not an error.
func Query(items []models.Book, filters models.FilterState, page, limit int) QueryResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	filtered := make([]models.Book, 0, len(items))
	for _, b := range items {
		if matches(b, filters) {
			filtered = append(filtered, b)
		}
	}

	sortBooks(filtered, filters.SortBy)

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return QueryResult{
		Data:       filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func matches(b models.Book, f models.FilterState) bool {
	if f.Search != "" && !matchesSearch(b, f.Search) {
		return false
	}

	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if b.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.MinPrice != nil && b.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && b.Price > *f.MaxPrice {
		return false
	}

	if f.Author != "" && !strings.Contains(strings.ToLower(b.Author), strings.ToLower(f.Author)) {
		return false
	}

	if f.Language != "" && f.Language != models.LanguageAll && string(b.Language) != f.Language {
		return false
	}

	if b.Rating < f.MinRating {
		return false
	}

	if f.InStockOnly && !b.InStock {
		return false
	}

	return true
}

func matchesSearch(b models.Book, search string) bool {
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Description), q) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortBooks orders the slice in place. The sort is stable so that books
// comparing equal keep their catalog order. An empty sort key leaves the
// catalog order untouched.
func sortBooks(items []models.Book, by models.SortOption) {
	switch by {
	case models.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case models.SortRating:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case models.SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Year > items[j].Year })
	case models.SortPopular:
		sort.SliceStable(items, func(i, j int) bool { return items[i].ReviewCount > items[j].ReviewCount })
	}
}
