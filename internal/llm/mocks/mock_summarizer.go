package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bookapi/internal/llm"
	"bookapi/internal/model"
)

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) SummarizeBook(ctx context.Context, in llm.BookContent) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockSummarizer) SummarizeReviews(ctx context.Context, reviews []model.Review) (string, error) {
	args := m.Called(ctx, reviews)
	return args.String(0), args.Error(1)
}
