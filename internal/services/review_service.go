// internal/services/review_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vedabooks/shop-backend/internal/models"
	"github.com/vedabooks/shop-backend/internal/storage"
	"github.com/vedabooks/shop-backend/internal/utils"
)

const reviewsKey = "reviews"

// ReviewService owns all customer reviews, keyed by book id. The whole
// mapping is one snapshot: reviews are shared content, not per-session
// state. Records are append-only except the helpful counter.
type ReviewService struct {
	snapshots storage.Snapshots

	mu      sync.Mutex
	reviews map[string][]models.Review
}

type AddReviewRequest struct {
	BookID   string `json:"book_id" validate:"required"`
	UserName string `json:"user_name" validate:"required,notblank,max=100"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"required,notblank,max=2000"`
}

// NewReviewService rehydrates the review map from its snapshot. A
// corrupt snapshot is discarded and the key cleared.
func NewReviewService(ctx context.Context, snapshots storage.Snapshots) *ReviewService {
	s := &ReviewService{
		snapshots: snapshots,
		reviews:   make(map[string][]models.Review),
	}

	data, err := snapshots.Load(ctx, reviewsKey)
	if err != nil {
		if err != storage.ErrNoSnapshot {
			logrus.WithError(err).Warn("Failed to load reviews snapshot")
		}
		return s
	}

	if err := json.Unmarshal(data, &s.reviews); err != nil {
		logrus.WithError(err).Warn("Discarding corrupt reviews snapshot")
		if err := snapshots.Delete(ctx, reviewsKey); err != nil {
			logrus.WithError(err).Warn("Failed to clear corrupt reviews snapshot")
		}
		s.reviews = make(map[string][]models.Review)
	}
	return s
}

// AddReview validates and appends a review. Name and comment must be
// non-empty after trimming; rating is 1 to 5.
func (s *ReviewService) AddReview(ctx context.Context, req *AddReviewRequest) (models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Review{}, fmt.Errorf("validation failed: %w", err)
	}

	review := models.Review{
		ID:       "review_" + uuid.NewString(),
		BookID:   req.BookID,
		UserName: strings.TrimSpace(req.UserName),
		Rating:   req.Rating,
		Comment:  strings.TrimSpace(req.Comment),
		Date:     timeNow(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews[req.BookID] = append(s.reviews[req.BookID], review)
	s.persistLocked(ctx)

	return review, nil
}

// MarkHelpful increments a review's helpful counter by one. An unknown
// review id under the book is a benign no-op. There is no duplicate-vote
// protection; repeated calls keep counting, matching the storefront's
// observable behavior.
func (s *ReviewService) MarkHelpful(ctx context.Context, bookID, reviewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := s.reviews[bookID]
	for i := range reviews {
		if reviews[i].ID == reviewID {
			reviews[i].Helpful++
			s.persistLocked(ctx)
			return
		}
	}

	logrus.WithFields(logrus.Fields{
		"book_id":   bookID,
		"review_id": reviewID,
	}).Debug("MarkHelpful on unknown review, ignoring")
}

// GetReviewsForBook returns a sorted copy of the book's reviews plus the
// derived aggregate. The average of zero reviews is 0.
func (s *ReviewService) GetReviewsForBook(bookID string, sortBy models.ReviewSort) models.ReviewsData {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.reviews[bookID]
	reviews := make([]models.Review, len(src))
	copy(reviews, src)

	switch sortBy {
	case models.ReviewSortOldest:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Date.Before(reviews[j].Date) })
	case models.ReviewSortRating:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating > reviews[j].Rating })
	default: // newest
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Date.After(reviews[j].Date) })
	}

	var average float64
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return models.ReviewsData{
		Reviews:       reviews,
		AverageRating: average,
		TotalReviews:  len(reviews),
	}
}

// SeedIfEmpty inserts the given records only when the book has no
// reviews yet, seeded or submitted. Safe to call on every startup.
func (s *ReviewService) SeedIfEmpty(ctx context.Context, bookID string, seed []models.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.reviews[bookID]) > 0 {
		return
	}
	if len(seed) == 0 {
		return
	}

	s.reviews[bookID] = append([]models.Review(nil), seed...)
	s.persistLocked(ctx)
}

// SeedAll applies the built-in seed set to every book that is still
// unreviewed.
func (s *ReviewService) SeedAll(ctx context.Context) {
	for bookID, seed := range seedReviews() {
		s.SeedIfEmpty(ctx, bookID, seed)
	}
}

func (s *ReviewService) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.reviews)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal reviews snapshot")
		return
	}

	if err := s.snapshots.Save(ctx, reviewsKey, data); err != nil {
		logrus.WithError(err).Error("Failed to save reviews snapshot")
	}
}
