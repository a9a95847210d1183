package service

import (
	"context"
	"log/slog"

	"bookapi/internal/model"
	"bookapi/internal/repository"
	"bookapi/internal/validation"
)

// ReviewInput is the payload for reviewing a book. The author is always the caller.
type ReviewInput struct {
	ReviewText string   `json:"review_text" validate:"required,max=10000"`
	Rating     *float64 `json:"rating" validate:"required,rating"`
}

type ReviewService interface {
	// Create stores a review by userID for an existing book.
	Create(ctx context.Context, bookID, userID int64, in ReviewInput) (*model.Review, error)

	// List returns the reviews of an existing book, oldest first.
	List(ctx context.Context, bookID int64) ([]model.Review, error)
}

type reviewService struct {
	books    BookService
	reviews  repository.ReviewRepository
	validate *validation.Validator
	logger   *slog.Logger
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(books BookService, reviews repository.ReviewRepository, v *validation.Validator, logger *slog.Logger) ReviewService {
	return &reviewService{books: books, reviews: reviews, validate: v, logger: logger}
}

func (s *reviewService) Create(ctx context.Context, bookID, userID int64, in ReviewInput) (*model.Review, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}
	if _, err := s.books.Get(ctx, bookID); err != nil {
		return nil, err
	}

	r := &model.Review{
		BookID:     bookID,
		UserID:     userID,
		ReviewText: in.ReviewText,
		Rating:     *in.Rating,
	}
	if err := s.reviews.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("review created", "review_id", r.ID, "book_id", bookID, "user_id", userID)
	return r, nil
}

func (s *reviewService) List(ctx context.Context, bookID int64) ([]model.Review, error) {
	if _, err := s.books.Get(ctx, bookID); err != nil {
		return nil, err
	}
	return s.reviews.ListByBook(ctx, bookID)
}
