package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookapi/internal/llm"
	llmMocks "bookapi/internal/llm/mocks"
	"bookapi/internal/model"
	"bookapi/internal/repository"
	repoMocks "bookapi/internal/repository/mocks"
	"bookapi/internal/validation"
)

func newSummaryService(books *repoMocks.MockBookRepository, reviews *repoMocks.MockReviewRepository, sum *llmMocks.MockSummarizer) SummaryService {
	return NewSummaryService(NewBookService(books, testValidator, testLogger), reviews, sum, testValidator, testLogger)
}

func TestSummaryService_BookSummary(t *testing.T) {
	ctx := context.Background()
	book := &model.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Summary: strPtr("Spice.")}

	t.Run("average of five and three is four", func(t *testing.T) {
		reviews := []model.Review{{Rating: 5.0, ReviewText: "a"}, {Rating: 3.0, ReviewText: "b"}}
		mBooks := new(repoMocks.MockBookRepository)
		mReviews := new(repoMocks.MockReviewRepository)
		mSum := new(llmMocks.MockSummarizer)
		mBooks.On("FindByID", ctx, int64(1)).Return(book, nil)
		mReviews.On("ListByBook", ctx, int64(1)).Return(reviews, nil)
		mSum.On("SummarizeReviews", ctx, reviews).Return("Mostly positive.", nil)

		out, err := newSummaryService(mBooks, mReviews, mSum).BookSummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4.0, out.AverageRating)
		assert.Equal(t, 2, out.TotalReviews)
		assert.Equal(t, "Dune", out.Title)
		assert.Equal(t, "Spice.", *out.Summary)
		require.NotNil(t, out.ReviewSummary)
		assert.Equal(t, "Mostly positive.", *out.ReviewSummary)
	})

	t.Run("average is rounded to two decimals", func(t *testing.T) {
		reviews := []model.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
		mBooks := new(repoMocks.MockBookRepository)
		mReviews := new(repoMocks.MockReviewRepository)
		mSum := new(llmMocks.MockSummarizer)
		mBooks.On("FindByID", ctx, int64(1)).Return(book, nil)
		mReviews.On("ListByBook", ctx, int64(1)).Return(reviews, nil)
		mSum.On("SummarizeReviews", ctx, reviews).Return("ok", nil)

		out, err := newSummaryService(mBooks, mReviews, mSum).BookSummary(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 4.33, out.AverageRating)
	})

	t.Run("no reviews", func(t *testing.T) {
		mBooks := new(repoMocks.MockBookRepository)
		mReviews := new(repoMocks.MockReviewRepository)
		mSum := new(llmMocks.MockSummarizer)
		mBooks.On("FindByID", ctx, int64(1)).Return(book, nil)
		mReviews.On("ListByBook", ctx, int64(1)).Return([]model.Review{}, nil)
		mSum.On("SummarizeReviews", ctx, []model.Review{}).Return(llm.NoReviews, nil)

		out, err := newSummaryService(mBooks, mReviews, mSum).BookSummary(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, out.AverageRating)
		assert.Zero(t, out.TotalReviews)
		assert.Equal(t, llm.NoReviews, *out.ReviewSummary)
	})

	t.Run("completion failure", func(t *testing.T) {
		mBooks := new(repoMocks.MockBookRepository)
		mReviews := new(repoMocks.MockReviewRepository)
		mSum := new(llmMocks.MockSummarizer)
		mBooks.On("FindByID", ctx, int64(1)).Return(book, nil)
		mReviews.On("ListByBook", ctx, int64(1)).Return([]model.Review{{Rating: 1}}, nil)
		mSum.On("SummarizeReviews", ctx, []model.Review{{Rating: 1}}).Return("", &llm.Error{Op: "summarize_reviews", StatusCode: 500, Err: errors.New("boom")})

		_, err := newSummaryService(mBooks, mReviews, mSum).BookSummary(ctx, 1)
		assert.ErrorIs(t, err, ErrCompletionFailed)
		assert.ErrorIs(t, err, llm.ErrUpstream)
	})

	t.Run("unknown book", func(t *testing.T) {
		mBooks := new(repoMocks.MockBookRepository)
		mBooks.On("FindByID", ctx, int64(5)).Return(nil, repository.ErrNotFound)

		_, err := newSummaryService(mBooks, new(repoMocks.MockReviewRepository), new(llmMocks.MockSummarizer)).BookSummary(ctx, 5)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestSummaryService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("passes title and author through", func(t *testing.T) {
		mSum := new(llmMocks.MockSummarizer)
		mSum.On("SummarizeBook", ctx, llm.BookContent{Content: "text", Title: "Dune"}).Return("A summary.", nil)
		svc := newSummaryService(new(repoMocks.MockBookRepository), new(repoMocks.MockReviewRepository), mSum)

		out, err := svc.Generate(ctx, GenerateInput{Content: "text", BookTitle: strPtr("Dune")})
		require.NoError(t, err)
		assert.Equal(t, "A summary.", out.Summary)
		mSum.AssertExpectations(t)
	})

	t.Run("content is required", func(t *testing.T) {
		svc := newSummaryService(new(repoMocks.MockBookRepository), new(repoMocks.MockReviewRepository), new(llmMocks.MockSummarizer))

		_, err := svc.Generate(ctx, GenerateInput{})
		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "content")
	})

	t.Run("upstream failure", func(t *testing.T) {
		mSum := new(llmMocks.MockSummarizer)
		mSum.On("SummarizeBook", ctx, llm.BookContent{Content: "text"}).Return("", llm.ErrUpstream)
		svc := newSummaryService(new(repoMocks.MockBookRepository), new(repoMocks.MockReviewRepository), mSum)

		_, err := svc.Generate(ctx, GenerateInput{Content: "text"})
		assert.ErrorIs(t, err, ErrCompletionFailed)
	})
}
