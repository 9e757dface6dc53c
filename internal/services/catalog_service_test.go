// internal/services/catalog_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedabooks/shop-backend/internal/config"
	"github.com/vedabooks/shop-backend/internal/models"
)

func newTestCatalog() *CatalogService {
	return NewCatalogService(config.CatalogConfig{DelayMS: 0, DefaultPageSize: 12})
}

func TestCatalogGetBookByID(t *testing.T) {
	s := newTestCatalog()

	book, err := s.GetBookByID(context.Background(), "bhagavad-gita")
	require.NoError(t, err)
	assert.Equal(t, "bhagavad-gita", book.ID)

	_, err = s.GetBookByID(context.Background(), "no-such-book")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCatalogGetBooksDefaults(t *testing.T) {
	s := newTestCatalog()

	result, err := s.GetBooks(context.Background(), models.FilterState{}, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Limit)
	assert.Equal(t, 8, result.Total)
}

func TestCatalogSimilarBooks(t *testing.T) {
	s := newTestCatalog()

	similar, err := s.GetSimilarBooks(context.Background(), "isopanisad", 4)
	require.NoError(t, err)
	require.NotEmpty(t, similar)

	for i, b := range similar {
		assert.NotEqual(t, "isopanisad", b.ID)
		if i > 0 {
			assert.GreaterOrEqual(t, similar[i-1].Rating, b.Rating)
		}
	}

	_, err = s.GetSimilarBooks(context.Background(), "ghost", 4)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestCatalogPopularAndNew(t *testing.T) {
	s := newTestCatalog()

	popular, err := s.GetPopularBooks(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, "bhagavad-gita", popular[0].ID) // 127 reviews

	newest, err := s.GetNewBooks(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, newest, 1)
	assert.Equal(t, 2023, newest[0].Year)
}

func TestCatalogSearch(t *testing.T) {
	s := newTestCatalog()

	books, err := s.SearchBooks(context.Background(), "кришна", 20)
	require.NoError(t, err)
	assert.NotEmpty(t, books)

	empty, err := s.SearchBooks(context.Background(), "   ", 20)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCatalogDelayHonorsContext(t *testing.T) {
	s := NewCatalogService(config.CatalogConfig{DelayMS: 5000, DefaultPageSize: 12})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetBooks(ctx, models.FilterState{}, 1, 12)
	assert.ErrorIs(t, err, context.Canceled)
}
