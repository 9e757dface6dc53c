// internal/services/wishlist_service.go
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

const wishlistKeyPrefix = "wishlist:"

// WishlistService owns the per-session wishlists. A wishlist is a set of
// books unique by id; snapshots store the full book records as they were
// at the time of adding.
type WishlistService struct {
	snapshots storage.Snapshots

	mu     sync.Mutex
	lists  map[string][]models.Book
	loaded map[string]bool
}

func NewWishlistService(snapshots storage.Snapshots) *WishlistService {
	return &WishlistService{
		snapshots: snapshots,
		lists:     make(map[string][]models.Book),
		loaded:    make(map[string]bool),
	}
}

// Add puts a book on the wishlist. Adding a book that is already there
// is a no-op.
func (s *WishlistService) Add(ctx context.Context, sessionID string, book models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	for _, b := range s.lists[sessionID] {
		if b.ID == book.ID {
			return
		}
	}
	s.lists[sessionID] = append(s.lists[sessionID], book)

	s.persistLocked(ctx, sessionID)
}

func (s *WishlistService) Remove(ctx context.Context, sessionID, bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	list := s.lists[sessionID]
	for i := range list {
		if list[i].ID == bookID {
			s.lists[sessionID] = append(list[:i], list[i+1:]...)
			break
		}
	}

	s.persistLocked(ctx, sessionID)
}

// Toggle removes the book when present, otherwise adds it from the
// catalog. Two toggles always return the wishlist to its starting state.
// The returned bool reports whether the book is on the list afterwards.
func (s *WishlistService) Toggle(ctx context.Context, sessionID, bookID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	list := s.lists[sessionID]
	for i := range list {
		if list[i].ID == bookID {
			s.lists[sessionID] = append(list[:i], list[i+1:]...)
			s.persistLocked(ctx, sessionID)
			return false, nil
		}
	}

	book, ok := catalog.BookByID(bookID)
	if !ok {
		return false, ErrBookNotFound
	}
	s.lists[sessionID] = append(list, book)
	s.persistLocked(ctx, sessionID)
	return true, nil
}

func (s *WishlistService) IsInWishlist(ctx context.Context, sessionID, bookID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	for _, b := range s.lists[sessionID] {
		if b.ID == bookID {
			return true
		}
	}
	return false
}

func (s *WishlistService) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[sessionID] = []models.Book{}
	s.loaded[sessionID] = true

	s.persistLocked(ctx, sessionID)
}

func (s *WishlistService) Count(ctx context.Context, sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)
	return len(s.lists[sessionID])
}

func (s *WishlistService) Items(ctx context.Context, sessionID string) []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(ctx, sessionID)

	out := make([]models.Book, len(s.lists[sessionID]))
	copy(out, s.lists[sessionID])
	return out
}

func (s *WishlistService) loadLocked(ctx context.Context, sessionID string) {
	if s.loaded[sessionID] {
		return
	}
	s.loaded[sessionID] = true

	data, err := s.snapshots.Load(ctx, wishlistKeyPrefix+sessionID)
	if err != nil {
		if err != storage.ErrNoSnapshot {
			logrus.WithError(err).WithField("session_id", sessionID).Warn("Failed to load wishlist snapshot")
		}
		return
	}

	var list []models.Book
	if err := json.Unmarshal(data, &list); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("Discarding corrupt wishlist snapshot")
		if err := s.snapshots.Delete(ctx, wishlistKeyPrefix+sessionID); err != nil {
			logrus.WithError(err).Warn("Failed to clear corrupt wishlist snapshot")
		}
		return
	}
	s.lists[sessionID] = list
}

func (s *WishlistService) persistLocked(ctx context.Context, sessionID string) {
	list := s.lists[sessionID]
	if list == nil {
		list = []models.Book{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Failed to marshal wishlist snapshot")
		return
	}

	if err := s.snapshots.Save(ctx, wishlistKeyPrefix+sessionID, data); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Error("Failed to save wishlist snapshot")
	}
}
