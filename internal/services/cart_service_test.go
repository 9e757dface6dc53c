// internal/services/cart_service_test.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedabooks/shop-backend/internal/catalog"
	"github.com/vedabooks/shop-backend/internal/models"
	"github.com/vedabooks/shop-backend/internal/storage"
	"github.com/vedabooks/shop-backend/internal/storage/memory"
)

const testSession = "session-1"

func testBook(id string, price int) models.Book {
	return models.Book{ID: id, Title: "Book " + id, Price: price, InStock: true}
}

// failingSnapshots simulates a storage backend where every write fails.
type failingSnapshots struct{}

func (failingSnapshots) Load(context.Context, string) ([]byte, error) {
	return nil, storage.ErrNoSnapshot
}
func (failingSnapshots) Save(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}
func (failingSnapshots) Delete(context.Context, string) error {
	return errors.New("quota exceeded")
}

func TestCartAddItemIncrementsQuantity(t *testing.T) {
	ctx := context.Background()
	s := NewCartService(memory.New())
	book := testBook("bhagavad-gita", 1200)

	for i := 1; i <= 3; i++ {
		s.AddItem(ctx, testSession, book)
		assert.Equal(t, i, s.Quantity(ctx, testSession, book.ID))
	}

	assert.Equal(t, 3*1200, s.Total(ctx, testSession))
	assert.Equal(t, 3, s.ItemCount(ctx, testSession))

	summary := s.Summary(ctx, testSession)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)
}

func TestCartUpdateQuantityAbsoluteSet(t *testing.T) {
	ctx := context.Background()
	s := NewCartService(memory.New())
	book := testBook("a", 1200)

	s.AddItem(ctx, testSession, book)
	s.AddItem(ctx, testSession, book)
	s.AddItem(ctx, testSession, book)

	s.UpdateQuantity(ctx, testSession, book.ID, 1)

	assert.Equal(t, 1200, s.Total(ctx, testSession))
	assert.Equal(t, 1, s.ItemCount(ctx, testSession))
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	s := NewCartService(memory.New())
	book := testBook("a", 500)

	s.AddItem(ctx, testSession, book)
	s.UpdateQuantity(ctx, testSession, book.ID, 0)

	assert.False(t, s.IsInCart(ctx, testSession, book.ID))
	assert.Equal(t, 0, s.Quantity(ctx, testSession, book.ID))
	assert.Empty(t, s.Summary(ctx, testSession).Items)
}

func TestCartUpdateQuantityUpsertsFromCatalog(t *testing.T) {
	ctx := context.Background()
	s := NewCartService(memory.New())

	// A real catalog book not yet in the cart gets created.
	book, ok := catalog.BookByID("isopanisad")
	require.True(t, ok)

	s.UpdateQuantity(ctx, testSession, book.ID, 2)
	assert.Equal(t, 2, s.Quantity(ctx, testSession, book.ID))
	assert.Equal(t, 2*book.Price, s.Total(ctx, testSession))

	// An unknown book id is silently ignored.
	s.UpdateQuantity(ctx, testSession, "no-such-book", 4)
	assert.False(t, s.IsInCart(ctx, testSession, "no-such-book"))
}

func TestCartRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewCartService(memory.New())

	assert.NotPanics(t, func() {
		s.RemoveItem(ctx, testSession, "ghost")
	})
	assert.Equal(t, 0, s.ItemCount(ctx, testSession))
}

func TestCartClearPersistsEmptySnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()
	s := NewCartService(snapshots)

	s.AddItem(ctx, testSession, testBook("a", 100))
	s.AddItem(ctx, testSession, testBook("b", 200))
	s.Clear(ctx, testSession)

	assert.Equal(t, 0, s.ItemCount(ctx, testSession))

	data, err := snapshots.Load(ctx, "cart:"+testSession)
	require.NoError(t, err)

	var persisted []models.CartItem
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Empty(t, persisted)
}

func TestCartRehydratesFromSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()

	first := NewCartService(snapshots)
	first.AddItem(ctx, testSession, testBook("a", 300))
	first.AddItem(ctx, testSession, testBook("a", 300))

	// A fresh service over the same storage sees the same cart.
	second := NewCartService(snapshots)
	assert.Equal(t, 2, second.Quantity(ctx, testSession, "a"))
	assert.Equal(t, 600, second.Total(ctx, testSession))
}

func TestCartDiscardsCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := memory.New()
	require.NoError(t, snapshots.Save(ctx, "cart:"+testSession, []byte("{not json")))

	s := NewCartService(snapshots)
	assert.Equal(t, 0, s.ItemCount(ctx, testSession))
	assert.Empty(t, s.Summary(ctx, testSession).Items)

	// The corrupt key was cleared.
	_, err := snapshots.Load(ctx, "cart:"+testSession)
	assert.ErrorIs(t, err, storage.ErrNoSnapshot)
}

func TestCartSurvivesPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	s := NewCartService(failingSnapshots{})
	book := testBook("a", 750)

	// Writes fail, but in-memory state stays authoritative and no
	// error reaches the caller.
	assert.NotPanics(t, func() {
		s.AddItem(ctx, testSession, book)
		s.AddItem(ctx, testSession, book)
	})
	assert.Equal(t, 2, s.Quantity(ctx, testSession, book.ID))
	assert.Equal(t, 1500, s.Total(ctx, testSession))
}

func TestCartSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewCartService(memory.New())

	s.AddItem(ctx, "session-a", testBook("a", 100))
	s.AddItem(ctx, "session-b", testBook("b", 200))

	assert.True(t, s.IsInCart(ctx, "session-a", "a"))
	assert.False(t, s.IsInCart(ctx, "session-a", "b"))
	assert.Equal(t, 200, s.Total(ctx, "session-b"))
}
