package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookapi/internal/model"
	"bookapi/internal/repository"
	repoMocks "bookapi/internal/repository/mocks"
	"bookapi/internal/validation"
)

func TestBookService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockBookRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(b *model.Book) bool {
			return b.Title == "Dune" && b.YearPublished == 1965
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Book).ID = 7
		}).Return(nil)
		svc := NewBookService(mRepo, testValidator, testLogger)

		b, err := svc.Create(ctx, BookInput{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", YearPublished: 1965})
		require.NoError(t, err)
		assert.Equal(t, int64(7), b.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("year out of range", func(t *testing.T) {
		mRepo := new(repoMocks.MockBookRepository)
		svc := NewBookService(mRepo, testValidator, testLogger)

		_, err := svc.Create(ctx, BookInput{Title: "Dune", Author: "Frank Herbert", Genre: "SF", YearPublished: 999})
		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "year_published")
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		query   BookQuery
		filter  repository.BookFilter
		invalid bool
	}{
		{name: "defaults", query: BookQuery{}, filter: repository.BookFilter{Limit: 100}},
		{name: "filters pass through", query: BookQuery{Skip: 5, Limit: 20, Genre: "sf", Author: "le guin"}, filter: repository.BookFilter{Skip: 5, Limit: 20, Genre: "sf", Author: "le guin"}},
		{name: "negative skip", query: BookQuery{Skip: -1}, invalid: true},
		{name: "limit too large", query: BookQuery{Limit: 5000}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBookRepository)
			if !tt.invalid {
				mRepo.On("List", ctx, tt.filter).Return([]model.Book{{ID: 1}}, nil)
			}
			svc := NewBookService(mRepo, testValidator, testLogger)

			books, err := svc.List(ctx, tt.query)
			if tt.invalid {
				var verr *validation.Error
				assert.True(t, errors.As(err, &verr))
				return
			}
			require.NoError(t, err)
			assert.Len(t, books, 1)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBookService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockBookRepository)
	mRepo.On("FindByID", ctx, int64(1)).Return(&model.Book{ID: 1, Title: "Dune"}, nil)
	mRepo.On("FindByID", ctx, int64(2)).Return(nil, repository.ErrNotFound)
	mRepo.On("FindByID", ctx, int64(3)).Return(nil, errors.New("db down"))
	svc := NewBookService(mRepo, testValidator, testLogger)

	b, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", b.Title)

	_, err = svc.Get(ctx, 2)
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.Get(ctx, 3)
	assert.EqualError(t, err, "db down")
}

func TestBookService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("only provided fields change", func(t *testing.T) {
		mRepo := new(repoMocks.MockBookRepository)
		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Book{
			ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "SF", YearPublished: 1965,
		}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(b *model.Book) bool {
			return b.Title == "Dune" && b.Genre == "Science Fiction" && b.YearPublished == 1966 &&
				b.Summary != nil && *b.Summary == "Spice."
		})).Return(nil)
		svc := NewBookService(mRepo, testValidator, testLogger)

		b, err := svc.Update(ctx, 1, BookPatch{Genre: strPtr("Science Fiction"), YearPublished: intPtr(1966), Summary: SetString("Spice.")})
		require.NoError(t, err)
		assert.Equal(t, "Frank Herbert", b.Author)
		mRepo.AssertExpectations(t)
	})

	t.Run("absent summary is kept and null clears it", func(t *testing.T) {
		var keep, wipe BookPatch
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Dune Messiah"}`), &keep))
		require.NoError(t, json.Unmarshal([]byte(`{"summary":null}`), &wipe))

		mRepo := new(repoMocks.MockBookRepository)
		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Book{ID: 1, Title: "Dune", Summary: strPtr("Spice.")}, nil).Once()
		mRepo.On("FindByID", ctx, int64(1)).Return(&model.Book{ID: 1, Title: "Dune", Summary: strPtr("Spice.")}, nil).Once()
		mRepo.On("Update", ctx, mock.Anything).Return(nil)
		svc := NewBookService(mRepo, testValidator, testLogger)

		b, err := svc.Update(ctx, 1, keep)
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", b.Title)
		require.NotNil(t, b.Summary)
		assert.Equal(t, "Spice.", *b.Summary)

		b, err = svc.Update(ctx, 1, wipe)
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
		assert.Nil(t, b.Summary)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing book", func(t *testing.T) {
		mRepo := new(repoMocks.MockBookRepository)
		mRepo.On("FindByID", ctx, int64(9)).Return(nil, repository.ErrNotFound)
		svc := NewBookService(mRepo, testValidator, testLogger)

		_, err := svc.Update(ctx, 9, BookPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockBookRepository)
		svc := NewBookService(mRepo, testValidator, testLogger)

		_, err := svc.Update(ctx, 1, BookPatch{Title: strPtr("")})
		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "title")
	})
}

func TestBookService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockBookRepository)
	mRepo.On("Delete", ctx, int64(1)).Return(nil)
	mRepo.On("Delete", ctx, int64(2)).Return(repository.ErrNotFound)
	svc := NewBookService(mRepo, testValidator, testLogger)

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrBookNotFound)
}
