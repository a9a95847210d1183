package repository

import (
	"context"
	"errors"

	"bookapi/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (gormrepo) inside this directory.

var (
	// ErrNotFound is returned when a lookup by key matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// BookRepository defines data access for books. No business logic here.
type BookRepository interface {
	// Create inserts a new book and fills in its generated ID.
	Create(ctx context.Context, b *model.Book) error

	// FindByID returns a book by its ID or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Book, error)

	// List returns books matching the filter ordered by id.
	List(ctx context.Context, f BookFilter) ([]model.Book, error)

	// Update saves every column of an existing book.
	Update(ctx context.Context, b *model.Book) error

	// Delete removes a book together with its reviews. Returns ErrNotFound if no row matched.
	Delete(ctx context.Context, id int64) error

	// Recommend returns books ranked by average rating that satisfy the query.
	Recommend(ctx context.Context, q RecommendationQuery) ([]model.RatedBook, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *model.Review) error
	// ListByBook returns the reviews of a book, oldest first.
	ListByBook(ctx context.Context, bookID int64) ([]model.Review, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// BookFilter holds optional case-insensitive substring filters and offset pagination.
type BookFilter struct {
	Genre  string
	Author string
	Skip   int
	Limit  int
}

// RecommendationQuery narrows the recommendation ranking. Zero values disable a criterion.
type RecommendationQuery struct {
	Genres        []string
	MinRating     *float64
	ExcludeUserID *int64
	Limit         int
}
