package model

import (
	"math"
	"strconv"
	"time"
)

// Rating bounds accepted for a review.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Review is a user-authored rating and comment attached to a Book.
type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BookID     int64     `json:"book_id" gorm:"not null;index"`
	UserID     int64     `json:"user_id" gorm:"not null;index"`
	ReviewText string    `json:"review_text" gorm:"type:text;not null"`
	Rating     float64   `json:"rating" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`

	Book *Book `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// AverageRating returns the arithmetic mean of the ratings, or 0 for no reviews.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

// FormatRating renders a rating with at least one decimal place, e.g. 4 as "4.0" and 3.75 as "3.75".
func FormatRating(r float64) string {
	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
