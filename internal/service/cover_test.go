package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookapi/internal/model"
	"bookapi/internal/repository"
	repoMocks "bookapi/internal/repository/mocks"
	"bookapi/internal/storage"
	storeMocks "bookapi/internal/storage/mocks"
)

const coverTTL = 15 * time.Minute

func isCoverKey(key string) bool {
	return strings.HasPrefix(key, storage.CoverPrefix) && strings.HasSuffix(key, ".png")
}

func TestCoverService_Upload(t *testing.T) {
	ctx := context.Background()
	body := strings.NewReader("png-bytes")
	upload := CoverUpload{Body: body, Filename: "front.png", ContentType: "image/png", Size: 9}

	tests := []struct {
		name       string
		upload     CoverUpload
		setupMocks func(s *storeMocks.MockStorage, r *repoMocks.MockBookRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:   "happy path replaces the previous cover",
			upload: upload,
			setupMocks: func(s *storeMocks.MockStorage, r *repoMocks.MockBookRepository) {
				old := "covers/old.jpg"
				r.On("FindByID", ctx, int64(1)).Return(&model.Book{ID: 1, CoverKey: &old}, nil)
				s.On("Put", ctx, mock.MatchedBy(isCoverKey), body, mock.MatchedBy(func(o storage.PutObjectOptions) bool {
					return o.ContentType == "image/png" && o.Size == 9 && o.Metadata["original-filename"] == "front.png"
				})).Return(storage.ObjectInfo{Key: "covers/new.png"}, nil)
				r.On("Update", ctx, mock.MatchedBy(func(b *model.Book) bool {
					return b.CoverKey != nil && isCoverKey(*b.CoverKey)
				})).Return(nil)
				s.On("Delete", ctx, "covers/old.jpg").Return(nil)
			},
		},
		{
			name:       "not an image",
			upload:     CoverUpload{Body: body, Filename: "doc.pdf", ContentType: "application/pdf"},
			setupMocks: func(s *storeMocks.MockStorage, r *repoMocks.MockBookRepository) {},
			wantErr:    ErrUnsupportedCover,
		},
		{
			name:   "unknown book",
			upload: upload,
			setupMocks: func(s *storeMocks.MockStorage, r *repoMocks.MockBookRepository) {
				r.On("FindByID", ctx, int64(1)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrBookNotFound,
		},
		{
			name:   "storage error",
			upload: upload,
			setupMocks: func(s *storeMocks.MockStorage, r *repoMocks.MockBookRepository) {
				r.On("FindByID", ctx, int64(1)).Return(&model.Book{ID: 1}, nil)
				s.On("Put", ctx, mock.Anything, body, mock.Anything).Return(storage.ObjectInfo{}, errors.New("storage fail"))
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:   "db error rolls back the upload",
			upload: upload,
			setupMocks: func(s *storeMocks.MockStorage, r *repoMocks.MockBookRepository) {
				r.On("FindByID", ctx, int64(1)).Return(&model.Book{ID: 1}, nil)
				s.On("Put", ctx, mock.Anything, body, mock.Anything).Return(storage.ObjectInfo{}, nil)
				r.On("Update", ctx, mock.Anything).Return(errors.New("db fail"))
				s.On("Delete", ctx, mock.MatchedBy(isCoverKey)).Return(nil)
			},
			wantErrMsg: "db save failed: db fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockBookRepository)
			tt.setupMocks(mStore, mRepo)
			svc := NewCoverService(mStore, mRepo, coverTTL, testLogger)

			b, err := svc.Upload(ctx, 1, tt.upload)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.True(t, b.HasCover())
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestCoverService_URL(t *testing.T) {
	ctx := context.Background()
	key := "covers/abc.png"

	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockBookRepository)
	mRepo.On("FindByID", ctx, int64(1)).Return(&model.Book{ID: 1, CoverKey: &key}, nil)
	mRepo.On("FindByID", ctx, int64(2)).Return(&model.Book{ID: 2}, nil)
	mStore.On("PresignGet", ctx, key, coverTTL).Return("https://minio.local/covers/abc.png?sig=1", nil)
	svc := NewCoverService(mStore, mRepo, coverTTL, testLogger)

	u, err := svc.URL(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/covers/abc.png?sig=1", u)

	_, err = svc.URL(ctx, 2)
	assert.ErrorIs(t, err, ErrCoverNotFound)
}

func TestCoverService_StorageDisabled(t *testing.T) {
	ctx := context.Background()
	svc := NewCoverService(nil, new(repoMocks.MockBookRepository), coverTTL, testLogger)

	_, err := svc.Upload(ctx, 1, CoverUpload{ContentType: "image/png"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = svc.URL(ctx, 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
