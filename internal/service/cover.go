package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"bookapi/internal/model"
	"bookapi/internal/repository"
	"bookapi/internal/storage"
)

// CoverUpload is an uploaded cover image.
type CoverUpload struct {
	Body        io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// CoverService stores book cover images in object storage.
type CoverService interface {
	// Upload stores the image, attaches it to the book and removes the previous cover.
	Upload(ctx context.Context, bookID int64, in CoverUpload) (*model.Book, error)

	// URL returns a time-limited download link for the book's cover.
	URL(ctx context.Context, bookID int64) (string, error)
}

type coverService struct {
	store  storage.Storage
	books  repository.BookRepository
	ttl    time.Duration
	logger *slog.Logger
}

// NewCoverService constructs a new CoverService. A nil store disables covers.
func NewCoverService(store storage.Storage, books repository.BookRepository, ttl time.Duration, logger *slog.Logger) CoverService {
	return &coverService{store: store, books: books, ttl: ttl, logger: logger}
}

func (s *coverService) Upload(ctx context.Context, bookID int64, in CoverUpload) (*model.Book, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if !storage.IsImage(in.ContentType) {
		return nil, ErrUnsupportedCover
	}

	b, err := s.findBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	key := storage.CoverKey(in.Filename, in.ContentType)
	if _, err := s.store.Put(ctx, key, in.Body, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
			"book-id":           fmt.Sprint(bookID),
		},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	var previous string
	if b.HasCover() {
		previous = *b.CoverKey
	}
	b.CoverKey = &key

	if err := s.books.Update(ctx, b); err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if previous != "" {
		if err := s.store.Delete(ctx, previous); err != nil {
			s.logger.Warn("previous cover not removed", "book_id", bookID, "key", previous, "error", err)
		}
	}

	s.logger.Info("cover uploaded", "book_id", bookID, "key", key)
	return b, nil
}

func (s *coverService) URL(ctx context.Context, bookID int64) (string, error) {
	if s.store == nil {
		return "", ErrStorageUnavailable
	}

	b, err := s.findBook(ctx, bookID)
	if err != nil {
		return "", err
	}
	if !b.HasCover() {
		return "", ErrCoverNotFound
	}

	u, err := s.store.PresignGet(ctx, *b.CoverKey, s.ttl)
	if err != nil {
		return "", fmt.Errorf("presign cover: %w", err)
	}
	return u, nil
}

func (s *coverService) findBook(ctx context.Context, id int64) (*model.Book, error) {
	b, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}
