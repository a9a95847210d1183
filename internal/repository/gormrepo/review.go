package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bookapi/internal/model"
	"bookapi/internal/repository"
)

// ReviewRepo is a GORM implementation of repository.ReviewRepository.
type ReviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) ListByBook(ctx context.Context, bookID int64) ([]model.Review, error) {
	reviews := make([]model.Review, 0)
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("created_at ASC, id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
