// internal/services/cart_service.go
package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vedabooks/shop-backend/internal/catalog"
	"github.com/vedabooks/shop-backend/internal/models"
	"github.com/vedabooks/shop-backend/internal/storage"
)

const cartKeyPrefix = "cart:"

// CartService owns the per-session shopping carts. In-memory state is
// authoritative for the running session; every mutation writes a
// best-effort snapshot through the Snapshots adapter. A failed write is
// logged and swallowed, never surfaced to the caller.
type CartService struct {
	snapshots storage.Snapshots

	mu     sync.Mutex
	carts  map[string][]models.CartItem
	loaded map[string]bool
}

func NewCartService(snapshots storage.Snapshots) *CartService {
	return &CartService{
		snapshots: snapshots,
		carts:     make(map[string][]models.CartItem),
		loaded:    make(map[string]bool),
	}
}

// AddItem puts a book in the cart, incrementing the quantity when an
// entry already exists.
func (s *CartService) AddItem(ctx context.Context, sessionID string, book models.Book) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	items := s.carts[sessionID]
	found := false
	for i := range items {
		if items[i].Book.ID == book.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{Book: book, Quantity: 1})
	}
	s.carts[sessionID] = items

	s.persistLocked(ctx, sessionID)
	return s.summaryLocked(sessionID)
}

// RemoveItem deletes the entry for the given book. Removing a book that
// is not in the cart is a no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, bookID string) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	items := s.carts[sessionID]
	for i := range items {
		if items[i].Book.ID == bookID {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			break
		}
	}

	s.persistLocked(ctx, sessionID)
	return s.summaryLocked(sessionID)
}

// UpdateQuantity sets the entry's quantity to an absolute value.
// Quantity <= 0 removes the entry. Setting a quantity for a book not yet
// in the cart is an upsert: the entry is created from the catalog, and
// an unknown book id is silently ignored.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, bookID string, quantity int) models.CartSummary {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, bookID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	items := s.carts[sessionID]
	found := false
	for i := range items {
		if items[i].Book.ID == bookID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		book, ok := catalog.BookByID(bookID)
		if !ok {
			return s.summaryLocked(sessionID)
		}
		s.carts[sessionID] = append(items, models.CartItem{Book: book, Quantity: quantity})
	}

	s.persistLocked(ctx, sessionID)
	return s.summaryLocked(sessionID)
}

// Clear empties the cart and persists the empty snapshot.
func (s *CartService) Clear(ctx context.Context, sessionID string) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = []models.CartItem{}
	s.loaded[sessionID] = true

	s.persistLocked(ctx, sessionID)
	return s.summaryLocked(sessionID)
}

// Summary returns the items plus the derived totals.
func (s *CartService) Summary(ctx context.Context, sessionID string) models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)
	return s.summaryLocked(sessionID)
}

// Total is the sum of price x quantity over all entries, 0 for an empty
// cart.
func (s *CartService) Total(ctx context.Context, sessionID string) int {
	return s.Summary(ctx, sessionID).Total
}

// ItemCount is the total unit count, not the number of distinct books.
func (s *CartService) ItemCount(ctx context.Context, sessionID string) int {
	return s.Summary(ctx, sessionID).ItemCount
}

func (s *CartService) IsInCart(ctx context.Context, sessionID, bookID string) bool {
	return s.Quantity(ctx, sessionID, bookID) > 0
}

// Quantity returns the entry's quantity, 0 when the book is not in the
// cart.
func (s *CartService) Quantity(ctx context.Context, sessionID, bookID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	for _, item := range s.carts[sessionID] {
		if item.Book.ID == bookID {
			return item.Quantity
		}
	}
	return 0
}

func (s *CartService) summaryLocked(sessionID string) models.CartSummary {
	items := s.carts[sessionID]

	summary := models.CartSummary{Items: make([]models.CartItem, len(items))}
	copy(summary.Items, items)
	for _, item := range items {
		summary.Total += item.Book.Price * item.Quantity
		summary.ItemCount += item.Quantity
	}
	return summary
}

// loadLocked rehydrates a session's cart from its snapshot on first
// access. A corrupt snapshot is discarded, the key cleared and the cart
// falls back to empty.
func (s *CartService) loadLocked(ctx context.Context, sessionID string) {
	if s.loaded[sessionID] {
		return
	}
	s.loaded[sessionID] = true

	data, err := s.snapshots.Load(ctx, cartKeyPrefix+sessionID)
	if err != nil {
		if err != storage.ErrNoSnapshot {
			logrus.WithError(err).WithField("session_id", sessionID).Warn("Failed to load cart snapshot")
		}
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("Discarding corrupt cart snapshot")
		if err := s.snapshots.Delete(ctx, cartKeyPrefix+sessionID); err != nil {
			logrus.WithError(err).Warn("Failed to clear corrupt cart snapshot")
		}
		return
	}

	// Drop entries a broken writer may have left behind.
	valid := items[:0]
	for _, item := range items {
		if item.Quantity >= 1 && item.Book.ID != "" {
			valid = append(valid, item)
		}
	}
	s.carts[sessionID] = valid
}

func (s *CartService) persistLocked(ctx context.Context, sessionID string) {
	items := s.carts[sessionID]
	if items == nil {
		items = []models.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Failed to marshal cart snapshot")
		return
	}

	if err := s.snapshots.Save(ctx, cartKeyPrefix+sessionID, data); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Failed to save cart snapshot")
	}
}
