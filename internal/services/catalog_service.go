// internal/services/catalog_service.go
package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/vedabooks/shop-backend/internal/catalog"
	"github.com/vedabooks/shop-backend/internal/config"
	"github.com/vedabooks/shop-backend/internal/models"
)

// CatalogService serves reads over the static catalog table. It can
// simulate upstream latency on every call so the storefront's loading
// states stay exercised in development; the delay is zero in tests.
type CatalogService struct {
	cfg config.CatalogConfig
}

func NewCatalogService(cfg config.CatalogConfig) *CatalogService {
	return &CatalogService{cfg: cfg}
}

// GetBooks runs the query pipeline with the configured default page
// size when the caller passes limit <= 0.
func (s *CatalogService) GetBooks(ctx context.Context, filters models.FilterState, page, limit int) (catalog.QueryResult, error) {
	if err := s.delay(ctx); err != nil {
		return catalog.QueryResult{}, err
	}

	if limit < 1 {
		limit = s.cfg.DefaultPageSize
	}
	return catalog.Query(catalog.Books(), filters, page, limit), nil
}

func (s *CatalogService) GetBookByID(ctx context.Context, id string) (models.Book, error) {
	if err := s.delay(ctx); err != nil {
		return models.Book{}, err
	}

	book, ok := catalog.BookByID(id)
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return book, nil
}

// GetSimilarBooks returns the highest-rated books sharing the given
// book's category or one of its tags.
func (s *CatalogService) GetSimilarBooks(ctx context.Context, bookID string, limit int) ([]models.Book, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	book, ok := catalog.BookByID(bookID)
	if !ok {
		return nil, ErrBookNotFound
	}

	similar := make([]models.Book, 0)
	for _, b := range catalog.Books() {
		if b.ID == bookID {
			continue
		}
		if b.Category == book.Category || sharesTag(b.Tags, book.Tags) {
			similar = append(similar, b)
		}
	}

	sort.SliceStable(similar, func(i, j int) bool { return similar[i].Rating > similar[j].Rating })
	return limitBooks(similar, limit), nil
}

// GetPopularBooks returns the most-reviewed books.
func (s *CatalogService) GetPopularBooks(ctx context.Context, limit int) ([]models.Book, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	books := catalog.Books()
	sort.SliceStable(books, func(i, j int) bool { return books[i].ReviewCount > books[j].ReviewCount })
	return limitBooks(books, limit), nil
}

// GetNewBooks returns the most recent editions.
func (s *CatalogService) GetNewBooks(ctx context.Context, limit int) ([]models.Book, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	books := catalog.Books()
	sort.SliceStable(books, func(i, j int) bool { return books[i].Year > books[j].Year })
	return limitBooks(books, limit), nil
}

func (s *CatalogService) GetBooksByCategory(ctx context.Context, category models.Category, limit int) ([]models.Book, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	books := make([]models.Book, 0)
	for _, b := range catalog.Books() {
		if b.Category == category {
			books = append(books, b)
		}
	}
	return limitBooks(books, limit), nil
}

// SearchBooks is the bare text search used by the search-as-you-type
// box; the full filter set goes through GetBooks.
func (s *CatalogService) SearchBooks(ctx context.Context, query string, limit int) ([]models.Book, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Book{}, nil
	}

	result := catalog.Query(catalog.Books(), models.FilterState{Search: query}, 1, max(limit, 1))
	return result.Data, nil
}

func (s *CatalogService) Categories() []models.BookCategory {
	return catalog.Categories()
}

func (s *CatalogService) delay(ctx context.Context) error {
	if s.cfg.DelayMS <= 0 {
		return nil
	}

	select {
	case <-time.After(time.Duration(s.cfg.DelayMS) * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sharesTag(a, b []string) bool {
	for _, ta := range a {
		for _, tb := range b {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

func limitBooks(books []models.Book, limit int) []models.Book {
	if limit > 0 && len(books) > limit {
		return books[:limit]
	}
	return books
}
