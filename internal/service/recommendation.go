package service

import (
	"context"
	"strings"

	"bookapi/internal/model"
	"bookapi/internal/repository"
	"bookapi/internal/validation"
)

const (
	recommendationLimit = 10
	fallbackReason      = "Showing popular books as no specific recommendations found."
)

// RecommendationInput holds the optional preferences of a recommendation request.
type RecommendationInput struct {
	UserID    *int64
	Genres    []string
	MinRating *float64 `json:"min_rating" validate:"omitempty,rating"`
}

type Recommendations struct {
	Recommendations []model.RatedBook `json:"recommendations"`
	Reason          string            `json:"reason"`
}

type RecommendationService interface {
	// Recommend returns up to ten books matching the preferences, or the top rated books
	// when nothing matches.
	Recommend(ctx context.Context, in RecommendationInput) (*Recommendations, error)
}

type recommendationService struct {
	books    repository.BookRepository
	validate *validation.Validator
}

// NewRecommendationService constructs a new RecommendationService.
func NewRecommendationService(books repository.BookRepository, v *validation.Validator) RecommendationService {
	return &recommendationService{books: books, validate: v}
}

func (s *recommendationService) Recommend(ctx context.Context, in RecommendationInput) (*Recommendations, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	books, err := s.books.Recommend(ctx, repository.RecommendationQuery{
		Genres:        in.Genres,
		MinRating:     in.MinRating,
		ExcludeUserID: in.UserID,
		Limit:         recommendationLimit,
	})
	if err != nil {
		return nil, err
	}
	if len(books) > 0 {
		return &Recommendations{Recommendations: books, Reason: reason(in)}, nil
	}

	books, err = s.books.Recommend(ctx, repository.RecommendationQuery{Limit: recommendationLimit})
	if err != nil {
		return nil, err
	}
	return &Recommendations{Recommendations: books, Reason: fallbackReason}, nil
}

func reason(in RecommendationInput) string {
	genres := "all genres"
	if len(in.Genres) > 0 {
		genres = strings.Join(in.Genres, ", ")
	}
	out := "Recommended based on your preferences: " + genres
	if in.MinRating != nil && *in.MinRating > 0 {
		out += " with rating >= " + model.FormatRating(*in.MinRating)
	}
	return out
}

// ParseGenres splits a comma separated genre list, dropping blank entries.
func ParseGenres(raw string) []string {
	var out []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
