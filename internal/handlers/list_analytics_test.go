package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubhq/bookclub-server/internal/models"
)

func TestListAnalyticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAnalyticsLister(ctrl)
	mockSvc.EXPECT().
		ListByUser(gomock.Any(), "user-1", "club-9").
		Return([]models.ReadingAnalytics{
			{UserID: "user-1", ClubID: "club-9", BookID: "book-1"},
			{UserID: "user-1", ClubID: "club-9", BookID: "book-2"},
		}, nil)

	r := chi.NewRouter()
	r.Get("/api/v1/analytics/{userID}", NewListAnalyticsHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/user-1?clubId=club-9", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)
}

func TestAnalyticsSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSummaryGetter(ctrl)
	mockSvc.EXPECT().
		Summary(gomock.Any(), "user-1").
		Return(&models.AnalyticsSummary{TotalBooks: 3, TotalSessions: 12}, nil)

	r := chi.NewRouter()
	r.Get("/api/v1/analytics/{userID}/summary", NewAnalyticsSummaryHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/user-1/summary", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    models.AnalyticsSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.Data.TotalBooks)
}
