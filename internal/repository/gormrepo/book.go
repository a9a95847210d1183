package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// BookRepo is a GORM implementation of repository.BookRepository.
type BookRepo struct {
	db *gorm.DB
}

// NewBookRepo creates a new BookRepo.
func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{db: db}
}

var _ repository.BookRepository = (*BookRepo)(nil)

func (r *BookRepo) Create(ctx context.Context, b *model.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *BookRepo) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var b model.Book
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, translate(err, "find book")
	}
	return &b, nil
}

// List applies the optional genre and author filters as case-insensitive substring matches.
func (r *BookRepo) List(ctx context.Context, f repository.BookFilter) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})
	if f.Genre != "" {
		q = q.Where("LOWER(genre) LIKE ?", likePattern(f.Genre))
	}
	if f.Author != "" {
		q = q.Where("LOWER(author) LIKE ?", likePattern(f.Author))
	}
	if f.Skip > 0 {
		q = q.Offset(f.Skip)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	books := make([]model.Book, 0)
	if err := q.Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *BookRepo) Update(ctx context.Context, b *model.Book) error {
	res := r.db.WithContext(ctx).Model(&model.Book{}).Where("id = ?", b.ID).Updates(map[string]any{
		"title":          b.Title,
		"author":         b.Author,
		"genre":          b.Genre,
		"year_published": b.YearPublished,
		"summary":        b.Summary,
		"cover_key":      b.CoverKey,
	})
	if res.Error != nil {
		return fmt.Errorf("update book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the book's reviews and the book in one transaction.
func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		res := tx.Where("id = ?", id).Delete(&model.Book{})
		if res.Error != nil {
			return fmt.Errorf("delete book: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	return err
}

// Recommend ranks books by mean review rating, unreviewed books last, newest id first on ties.
func (r *BookRepo) Recommend(ctx context.Context, rq repository.RecommendationQuery) ([]model.RatedBook, error) {
	ratings := r.db.Model(&model.Review{}).
		Select("book_id, AVG(rating) AS avg_rating").
		Group("book_id")

	q := r.db.WithContext(ctx).Model(&model.Book{}).
		Select("books.*, COALESCE(ratings.avg_rating, 0) AS average_rating").
		Joins("LEFT JOIN (?) AS ratings ON ratings.book_id = books.id", ratings)

	if genres := nonEmpty(rq.Genres); len(genres) > 0 {
		cond := r.db.Where("LOWER(books.genre) LIKE ?", likePattern(genres[0]))
		for _, g := range genres[1:] {
			cond = cond.Or("LOWER(books.genre) LIKE ?", likePattern(g))
		}
		q = q.Where(cond)
	}

	if rq.MinRating != nil {
		rated := r.db.Model(&model.Review{}).
			Select("book_id").
			Group("book_id").
			Having("AVG(rating) >= ?", *rq.MinRating)
		q = q.Where("books.id IN (?)", rated)
	}

	if rq.ExcludeUserID != nil {
		reviewed := r.db.Model(&model.Review{}).
			Select("book_id").
			Where("user_id = ?", *rq.ExcludeUserID)
		q = q.Where("books.id NOT IN (?)", reviewed)
	}

	if rq.Limit > 0 {
		q = q.Limit(rq.Limit)
	}

	out := make([]model.RatedBook, 0)
	if err := q.Order("average_rating DESC, books.id DESC").Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("recommend books: %w", err)
	}
	return out, nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func translate(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
