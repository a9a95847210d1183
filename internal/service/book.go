package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"bookapi/internal/model"
	"bookapi/internal/repository"
	"bookapi/internal/validation"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// BookInput is the payload for creating a book.
type BookInput struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Author        string  `json:"author" validate:"required,max=255"`
	Genre         string  `json:"genre" validate:"required,max=100"`
	YearPublished int     `json:"year_published" validate:"required,gte=1000,lte=9999"`
	Summary       *string `json:"summary"`
}

// BookPatch carries a partial update. Nil fields are left unchanged; an explicit
// null summary clears it.
type BookPatch struct {
	Title         *string        `json:"title" validate:"omitempty,min=1,max=255"`
	Author        *string        `json:"author" validate:"omitempty,min=1,max=255"`
	Genre         *string        `json:"genre" validate:"omitempty,min=1,max=100"`
	YearPublished *int           `json:"year_published" validate:"omitempty,gte=1000,lte=9999"`
	Summary       NullableString `json:"summary" swaggertype:"string"`
}

// NullableString tells an absent JSON field apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

// SetString returns a NullableString holding s.
func SetString(s string) NullableString {
	return NullableString{Set: true, Value: &s}
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// BookQuery filters and paginates the book listing.
type BookQuery struct {
	Skip   int    `query:"skip" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0,lte=1000"`
	Genre  string `query:"genre"`
	Author string `query:"author"`
}

// BookService defines the use cases for managing the catalog.
type BookService interface {
	Create(ctx context.Context, in BookInput) (*model.Book, error)

	// List returns books ordered by id. A zero limit selects the default page size.
	List(ctx context.Context, q BookQuery) ([]model.Book, error)

	Get(ctx context.Context, id int64) (*model.Book, error)

	// Update applies only the provided fields.
	Update(ctx context.Context, id int64, patch BookPatch) (*model.Book, error)

	// Delete removes the book and its reviews.
	Delete(ctx context.Context, id int64) error
}

type bookService struct {
	books    repository.BookRepository
	validate *validation.Validator
	logger   *slog.Logger
}

// NewBookService constructs a new BookService.
func NewBookService(books repository.BookRepository, v *validation.Validator, logger *slog.Logger) BookService {
	return &bookService{books: books, validate: v, logger: logger}
}

func (s *bookService) Create(ctx context.Context, in BookInput) (*model.Book, error) {
	if err := s.validate.Validate(in); err != nil {
		return nil, err
	}

	b := &model.Book{
		Title:         in.Title,
		Author:        in.Author,
		Genre:         in.Genre,
		YearPublished: in.YearPublished,
		Summary:       in.Summary,
	}
	if err := s.books.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("book created", "book_id", b.ID, "title", b.Title)
	return b, nil
}

func (s *bookService) List(ctx context.Context, q BookQuery) ([]model.Book, error) {
	if err := s.validate.Validate(q); err != nil {
		return nil, err
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return s.books.List(ctx, repository.BookFilter{
		Genre:  q.Genre,
		Author: q.Author,
		Skip:   q.Skip,
		Limit:  limit,
	})
}

func (s *bookService) Get(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *bookService) Update(ctx context.Context, id int64, patch BookPatch) (*model.Book, error) {
	if err := s.validate.Validate(patch); err != nil {
		return nil, err
	}

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Author != nil {
		b.Author = *patch.Author
	}
	if patch.Genre != nil {
		b.Genre = *patch.Genre
	}
	if patch.YearPublished != nil {
		b.YearPublished = *patch.YearPublished
	}
	if patch.Summary.Set {
		b.Summary = patch.Summary.Value
	}

	if err := s.books.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	s.logger.Info("book deleted", "book_id", id)
	return nil
}
