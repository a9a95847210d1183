package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"bookapi/internal/llm"
	"bookapi/internal/model"
	"bookapi/internal/repository"
	"bookapi/internal/validation"
)

// Summarizer produces text from the hosted completion endpoint.
type Summarizer interface {
	SummarizeBook(ctx context.Context, in llm.BookContent) (string, error)
	SummarizeReviews(ctx context.Context, reviews []model.Review) (string, error)
}

// BookSummary aggregates a book with its review statistics and digest.
type BookSummary struct {
	BookID        int64   `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Summary       *string `json:"summary"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
	ReviewSummary *string `json:"review_summary"`
}

// GenerateInput is the payload of an ad-hoc summary request.
type GenerateInput struct {
	Content   string  `json:"content" validate:"required"`
	BookTitle *string `json:"book_title"`
	Author    *string `json:"author"`
}

type GenerateResult struct {
	Summary string `json:"summary"`
}

type SummaryService interface {
	// BookSummary returns the book, its mean rating rounded to two decimals and a review digest.
	BookSummary(ctx context.Context, bookID int64) (*BookSummary, error)

	// Generate summarizes arbitrary content.
	Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error)
}

type summaryService struct {
	books      BookService
	reviews    repository.ReviewRepository
	summarizer Summarizer
	validate   *validation.Validator
	logger     *slog.Logger
}

// NewSummaryService constructs a new SummaryService.
func NewSummaryService(books BookService, reviews repository.ReviewRepository, summarizer Summarizer, v *validation.Validator, logger *slog.Logger) SummaryService {
	return &summaryService{books: books, reviews: reviews, summarizer: summarizer, validate: v, logger: logger}
}

func (s *summaryService) BookSummary(ctx context.Context, bookID int64) (*BookSummary, error) {
	b, err := s.books.Get(ctx, bookID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	digest, err := s.summarizer.SummarizeReviews(ctx, reviews)
	if err != nil {
		s.logger.Error("review summary failed", "book_id", bookID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	return &BookSummary{
		BookID:        b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Summary:       b.Summary,
		AverageRating: roundRating(model.AverageRating(reviews)),
		TotalReviews:  len(reviews),
		ReviewSummary: &digest,
	}, nil
}

func (s *summaryService) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	text, err := s.summarizer.SummarizeBook(ctx, llm.BookContent{
		Content: in.Content,
		Title:   deref(in.BookTitle),
		Author:  deref(in.Author),
	})
	if err != nil {
		s.logger.Error("summary generation failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}
	return &GenerateResult{Summary: text}, nil
}

func roundRating(v float64) float64 {
	return math.Round(v*100) / 100
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
