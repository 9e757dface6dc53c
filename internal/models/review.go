// internal/models/review.go
package models

import "time"

// Review is a single customer review. Records are append-only; the one
// field that changes after creation is Helpful, which only increments.
type Review struct {
	ID       string    `json:"id"`
	BookID   string    `json:"book_id"`
	UserName string    `json:"user_name"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
	Helpful  int       `json:"helpful"`
	Verified bool      `json:"verified,omitempty"`
}

// ReviewsData aggregates a book's reviews for display.
type ReviewsData struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`
}
