package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubhq/bookclub-server/internal/models"
)

func TestAnalyticsService_RecordSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validMetrics := models.SessionMetrics{
		ReadingSpeed:       24.5,
		AvgSessionDuration: 45,
		TotalReadingTime:   360,
		CompletionRate:     62.5,
	}

	tests := []struct {
		name      string
		metrics   models.SessionMetrics
		setupMock func(writer *MockAnalyticsWriter, kw *MockKafkaWriter)
		wantErr   error
	}{
		{
			name:    "success publishes event",
			metrics: validMetrics,
			setupMock: func(writer *MockAnalyticsWriter, kw *MockKafkaWriter) {
				writer.EXPECT().
					Upsert(gomock.Any(), "user-1", "club-1", "book-1", validMetrics).
					Return(&models.ReadingAnalytics{
						UserID:           "user-1",
						ClubID:           "club-1",
						BookID:           "book-1",
						ReadingSpeed:     24.5,
						CompletionRate:   62.5,
						TotalReadingTime: 360,
						SessionsCount:    3,
					}, nil)
				kw.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						require.Len(t, msgs, 1)
						assert.Equal(t, []byte("user-1"), msgs[0].Key)

						var event models.ReadingSessionEvent
						require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
						assert.Equal(t, "user-1", event.UserID)
						assert.Equal(t, "book-1", event.BookID)
						assert.Equal(t, int64(3), event.SessionsCount)
						assert.NotEmpty(t, event.EventID)
						return nil
					})
			},
		},
		{
			name:    "kafka failure is not surfaced",
			metrics: validMetrics,
			setupMock: func(writer *MockAnalyticsWriter, kw *MockKafkaWriter) {
				writer.EXPECT().
					Upsert(gomock.Any(), "user-1", "club-1", "book-1", validMetrics).
					Return(&models.ReadingAnalytics{UserID: "user-1"}, nil)
				kw.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					Return(errors.New("broker unreachable"))
			},
		},
		{
			name:    "completion rate above 100",
			metrics: models.SessionMetrics{CompletionRate: 101},
			setupMock: func(writer *MockAnalyticsWriter, kw *MockKafkaWriter) {
			},
			wantErr: ErrInvalidMetrics,
		},
		{
			name:    "negative reading speed",
			metrics: models.SessionMetrics{ReadingSpeed: -1, CompletionRate: 50},
			setupMock: func(writer *MockAnalyticsWriter, kw *MockKafkaWriter) {
			},
			wantErr: ErrInvalidMetrics,
		},
		{
			name:    "upsert fails",
			metrics: validMetrics,
			setupMock: func(writer *MockAnalyticsWriter, kw *MockKafkaWriter) {
				writer.EXPECT().
					Upsert(gomock.Any(), "user-1", "club-1", "book-1", validMetrics).
					Return(nil, errors.New("write conflict"))
			},
			wantErr: errors.New("write conflict"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewMockAnalyticsWriter(ctrl)
			kw := NewMockKafkaWriter(ctrl)
			tt.setupMock(writer, kw)

			svc := NewAnalyticsService(writer, NewMockAnalyticsReader(ctrl), kw)
			doc, err := svc.RecordSession(context.Background(), "user-1", "club-1", "book-1", tt.metrics)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, doc)
		})
	}
}

func TestAnalyticsService_RecordSession_NoKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockAnalyticsWriter(ctrl)
	writer.EXPECT().
		Upsert(gomock.Any(), "user-1", "club-1", "book-1", gomock.Any()).
		Return(&models.ReadingAnalytics{UserID: "user-1"}, nil)

	svc := NewAnalyticsService(writer, NewMockAnalyticsReader(ctrl), nil)
	doc, err := svc.RecordSession(context.Background(), "user-1", "club-1", "book-1", models.SessionMetrics{CompletionRate: 50})
	require.NoError(t, err)
	assert.Equal(t, "user-1", doc.UserID)
}

func TestAnalyticsService_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAnalyticsReader(ctrl)
	reader.EXPECT().
		ListByUser(gomock.Any(), "user-1", "club-1").
		Return([]models.ReadingAnalytics{{UserID: "user-1", BookID: "book-1"}}, nil)

	svc := NewAnalyticsService(NewMockAnalyticsWriter(ctrl), reader, nil)
	docs, err := svc.ListByUser(context.Background(), "user-1", "club-1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "book-1", docs[0].BookID)
}

func TestAnalyticsService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockAnalyticsReader(ctrl)
	reader.EXPECT().
		UserSummary(gomock.Any(), "user-1").
		Return(&models.AnalyticsSummary{TotalBooks: 4, TotalSessions: 17}, nil)

	svc := NewAnalyticsService(NewMockAnalyticsWriter(ctrl), reader, nil)
	summary, err := svc.Summary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.TotalBooks)
	assert.Equal(t, int64(17), summary.TotalSessions)
}
