package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubhq/bookclub-server/internal/models"
)

func TestRecommendationService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		rec       *models.BookRecommendation
		setupMock func(writer *MockRecommendationWriter)
		wantErr   error
	}{
		{
			name: "success",
			rec:  &models.BookRecommendation{UserID: "user-1", BookID: "book-1", Score: 87.5},
			setupMock: func(writer *MockRecommendationWriter) {
				writer.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *models.BookRecommendation) (*models.BookRecommendation, error) {
						return rec, nil
					})
			},
		},
		{
			name:      "score above range",
			rec:       &models.BookRecommendation{UserID: "user-1", BookID: "book-1", Score: 100.5},
			setupMock: func(writer *MockRecommendationWriter) {},
			wantErr:   ErrInvalidScore,
		},
		{
			name:      "negative score",
			rec:       &models.BookRecommendation{UserID: "user-1", BookID: "book-1", Score: -1},
			setupMock: func(writer *MockRecommendationWriter) {},
			wantErr:   ErrInvalidScore,
		},
		{
			name: "store error",
			rec:  &models.BookRecommendation{UserID: "user-1", BookID: "book-1", Score: 50},
			setupMock: func(writer *MockRecommendationWriter) {
				writer.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("write failed"))
			},
			wantErr: errors.New("write failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewMockRecommendationWriter(ctrl)
			tt.setupMock(writer)

			svc := NewRecommendationService(writer, NewMockRecommendationReader(ctrl))
			stored, err := svc.Upsert(context.Background(), tt.rec)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, stored)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rec.BookID, stored.BookID)
		})
	}
}

func TestRecommendationService_ListByUser_LimitClamping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		limit     int
		wantLimit int64
	}{
		{name: "zero uses default", limit: 0, wantLimit: 10},
		{name: "negative uses default", limit: -3, wantLimit: 10},
		{name: "within range", limit: 25, wantLimit: 25},
		{name: "above max is clamped", limit: 500, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockRecommendationReader(ctrl)
			reader.EXPECT().
				ListByUser(gomock.Any(), "user-1", tt.wantLimit).
				Return([]models.BookRecommendation{}, nil)

			svc := NewRecommendationService(NewMockRecommendationWriter(ctrl), reader)
			_, err := svc.ListByUser(context.Background(), "user-1", tt.limit)
			assert.NoError(t, err)
		})
	}
}

func TestRecommendationService_ListByGenre(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRecommendationReader(ctrl)
	reader.EXPECT().
		ListByGenre(gomock.Any(), "user-1", "mystery", int64(10)).
		Return([]models.BookRecommendation{{BookID: "book-1", Genre: "mystery"}}, nil)

	svc := NewRecommendationService(NewMockRecommendationWriter(ctrl), reader)
	recs, err := svc.ListByGenre(context.Background(), "user-1", "mystery", 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "mystery", recs[0].Genre)
}

func TestRecommendationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockRecommendationWriter(ctrl)
	svc := NewRecommendationService(writer, NewMockRecommendationReader(ctrl))

	writer.EXPECT().Delete(gomock.Any(), "user-1", "book-1").Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), "user-1", "book-1"))

	writer.EXPECT().Delete(gomock.Any(), "user-1", "book-2").Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), "user-1", "book-2"), ErrRecommendationNotFound)
}
