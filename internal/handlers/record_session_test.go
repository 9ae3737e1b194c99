package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bookclubhq/bookclub-server/internal/jwt"
	"github.com/bookclubhq/bookclub-server/internal/middlewares"
	"github.com/bookclubhq/bookclub-server/internal/models"
	"github.com/bookclubhq/bookclub-server/internal/services"
)

func authenticatedRequest(method, target string, body []byte, userID, role string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	claims := &jwt.Claims{UserID: userID, Email: userID + "@example.com", Role: role}
	return req.WithContext(middlewares.ContextWithClaims(req.Context(), claims))
}

func TestRecordSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         RecordSessionRequest
		mockSetup    func(m *MockSessionRecorder)
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: RecordSessionRequest{
				ClubID:           "club-1",
				BookID:           "book-1",
				ReadingSpeed:     20,
				TotalReadingTime: 120,
				CompletionRate:   40,
			},
			mockSetup: func(m *MockSessionRecorder) {
				m.EXPECT().
					RecordSession(gomock.Any(), "user-1", "club-1", "book-1", models.SessionMetrics{
						ReadingSpeed:     20,
						TotalReadingTime: 120,
						CompletionRate:   40,
					}).
					Return(&models.ReadingAnalytics{UserID: "user-1", SessionsCount: 2}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "Session recorded successfully",
		},
		{
			name:         "missing club id",
			body:         RecordSessionRequest{BookID: "book-1"},
			mockSetup:    func(m *MockSessionRecorder) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "club_id and book_id are required",
		},
		{
			name: "metrics out of range",
			body: RecordSessionRequest{ClubID: "club-1", BookID: "book-1", CompletionRate: 150},
			mockSetup: func(m *MockSessionRecorder) {
				m.EXPECT().
					RecordSession(gomock.Any(), "user-1", "club-1", "book-1", gomock.Any()).
					Return(nil, services.ErrInvalidMetrics)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Session metrics out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSessionRecorder(ctrl)
			tt.mockSetup(mockSvc)

			body, _ := json.Marshal(tt.body)
			req := authenticatedRequest(http.MethodPost, "/api/v1/analytics", body, "user-1", "member")
			rec := httptest.NewRecorder()

			NewRecordSessionHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var resp Response
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}
