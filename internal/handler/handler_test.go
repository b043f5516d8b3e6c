package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/handler"
	"github.com/sellaya/trucktrack/internal/models"
	"github.com/sellaya/trucktrack/internal/service"
	servicemocks "github.com/sellaya/trucktrack/internal/service/mocks"
)

func newTestHandler(t *testing.T) (*handler.Handler, *servicemocks.MockIngestService, *servicemocks.MockHealthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockIngest := servicemocks.NewMockIngestService(ctrl)
	mockHealth := servicemocks.NewMockHealthService(ctrl)

	svc := &service.Service{
		Ingest: mockIngest,
		Health: mockHealth,
	}

	return handler.NewHandler(svc, zap.NewNop()), mockIngest, mockHealth
}

func TestHandler_ReceiveWebhook_Success(t *testing.T) {
	h, mockIngest, _ := newTestHandler(t)

	messageID := uuid.New()
	mockIngest.EXPECT().Process(gomock.Any()).Return(&service.IngestResult{
		MessageID: messageID,
		Status:    models.MessageStatusAutoLinked,
		Reply:     "Expense logged: $42.50 for Fuel.",
	}, nil)

	r := httptest.NewRequest("POST", "/webhook/whatsapp", strings.NewReader("From=whatsapp%3A%2B15551234567"))
	w := httptest.NewRecorder()

	h.ReceiveWebhook(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var result service.IngestResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, messageID, result.MessageID)
	assert.Equal(t, models.MessageStatusAutoLinked, result.Status)
	assert.Equal(t, "Expense logged: $42.50 for Fuel.", result.Reply)
}

func TestHandler_ReceiveWebhook_ErrorMapping(t *testing.T) {
	tests := []struct {
		name          string
		processErr    error
		expectedCode  int
		expectedError string
	}{
		{
			name:          "signature failure maps to 403",
			processErr:    fmt.Errorf("verify: %w", service.ErrSignature),
			expectedCode:  http.StatusForbidden,
			expectedError: "SIGNATURE_INVALID",
		},
		{
			name:          "bad payload maps to 400",
			processErr:    fmt.Errorf("%w: no message", service.ErrBadPayload),
			expectedCode:  http.StatusBadRequest,
			expectedError: "BAD_PAYLOAD",
		},
		{
			name:          "pipeline failure maps to 500",
			processErr:    errors.New("failed to archive receipt image: bucket unavailable"),
			expectedCode:  http.StatusInternalServerError,
			expectedError: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockIngest, _ := newTestHandler(t)

			mockIngest.EXPECT().Process(gomock.Any()).Return(nil, tt.processErr)

			r := httptest.NewRequest("POST", "/webhook/whatsapp", strings.NewReader("{}"))
			w := httptest.NewRecorder()

			h.ReceiveWebhook(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)

			var errResp handler.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, tt.expectedError, errResp.Error)
			assert.NotNil(t, errResp.Timestamp)
		})
	}
}

func TestHandler_VerifyWebhook(t *testing.T) {
	t.Run("valid handshake echoes challenge", func(t *testing.T) {
		h, mockIngest, _ := newTestHandler(t)

		mockIngest.EXPECT().
			HandshakeChallenge("subscribe", "verify-token", "1158201444").
			Return("1158201444", true)

		r := httptest.NewRequest("GET", "/webhook/whatsapp?hub.mode=subscribe&hub.verify_token=verify-token&hub.challenge=1158201444", nil)
		w := httptest.NewRecorder()

		h.VerifyWebhook(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1158201444", w.Body.String())
	})

	t.Run("rejected handshake returns 403", func(t *testing.T) {
		h, mockIngest, _ := newTestHandler(t)

		mockIngest.EXPECT().
			HandshakeChallenge("subscribe", "wrong-token", "123").
			Return("", false)

		r := httptest.NewRequest("GET", "/webhook/whatsapp?hub.mode=subscribe&hub.verify_token=wrong-token&hub.challenge=123", nil)
		w := httptest.NewRecorder()

		h.VerifyWebhook(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_ListMessages(t *testing.T) {
	t.Run("success with explicit paging", func(t *testing.T) {
		h, mockIngest, _ := newTestHandler(t)

		mockIngest.EXPECT().ListMessages(2, 50).Return(&service.MessageListResponse{
			Messages: []*models.InboundMessage{
				{ID: uuid.New(), PhoneNumber: "15551234567", Status: models.MessageStatusAutoLinked},
			},
			Pagination: service.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 120, ItemsPerPage: 50},
		}, nil)

		r := httptest.NewRequest("GET", "/api/v1/messages?page=2&limit=50", nil)
		w := httptest.NewRecorder()

		h.ListMessages(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp service.MessageListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Messages, 1)
		assert.Equal(t, 2, resp.Pagination.CurrentPage)
	})

	t.Run("invalid paging params fall back to defaults", func(t *testing.T) {
		h, mockIngest, _ := newTestHandler(t)

		mockIngest.EXPECT().ListMessages(1, 20).Return(&service.MessageListResponse{}, nil)

		r := httptest.NewRequest("GET", "/api/v1/messages?page=-1&limit=9999", nil)
		w := httptest.NewRecorder()

		h.ListMessages(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("repository failure returns 500", func(t *testing.T) {
		h, mockIngest, _ := newTestHandler(t)

		mockIngest.EXPECT().ListMessages(1, 20).Return(nil, errors.New("database error"))

		r := httptest.NewRequest("GET", "/api/v1/messages", nil)
		w := httptest.NewRecorder()

		h.ListMessages(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_ListExpenses(t *testing.T) {
	h, mockIngest, _ := newTestHandler(t)

	mockIngest.EXPECT().ListExpenses(1, 20).Return(&service.ExpenseListResponse{
		Expenses: []*models.Expense{
			{ID: uuid.New(), Amount: 42.50, Currency: models.CurrencyUSD, Category: "Fuel"},
		},
		Pagination: service.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 20},
	}, nil)

	r := httptest.NewRequest("GET", "/api/v1/expenses", nil)
	w := httptest.NewRecorder()

	h.ListExpenses(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.ExpenseListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Expenses, 1)
	assert.Equal(t, 42.50, resp.Expenses[0].Amount)
}

func TestHandler_ExpenseSummary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, mockIngest, _ := newTestHandler(t)

		mockIngest.EXPECT().ExpenseSummary(gomock.Any()).Return(&service.ExpenseSummaryResponse{
			Rows: []*models.ExpenseSummaryRow{
				{Currency: models.CurrencyUSD, Category: "Fuel", Total: 150, Count: 3},
			},
			TotalUSD:  350,
			TotalCAD:  472.5,
			CADPerUSD: 1.35,
		}, nil)

		r := httptest.NewRequest("GET", "/api/v1/expenses/summary", nil)
		w := httptest.NewRecorder()

		h.ExpenseSummary(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp service.ExpenseSummaryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1.35, resp.CADPerUSD)
		assert.Len(t, resp.Rows, 1)
	})

	t.Run("failure returns 500", func(t *testing.T) {
		h, mockIngest, _ := newTestHandler(t)

		mockIngest.EXPECT().ExpenseSummary(gomock.Any()).Return(nil, errors.New("database error"))

		r := httptest.NewRequest("GET", "/api/v1/expenses/summary", nil)
		w := httptest.NewRecorder()

		h.ExpenseSummary(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name         string
		health       *service.HealthStatus
		expectedCode int
	}{
		{
			name: "healthy returns 200",
			health: &service.HealthStatus{
				Status:         service.HealthHealthy,
				DatabaseStatus: service.ComponentConnected,
				RedisStatus:    service.ComponentConnected,
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "degraded still returns 200",
			health: &service.HealthStatus{
				Status:              service.HealthDegraded,
				DatabaseStatus:      service.ComponentConnected,
				RedisStatus:         service.ComponentConnected,
				CircuitBreakerState: service.CircuitOpen,
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unhealthy returns 503",
			health: &service.HealthStatus{
				Status:         service.HealthUnhealthy,
				DatabaseStatus: service.ComponentDisconnected,
				RedisStatus:    service.ComponentConnected,
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, mockHealth := newTestHandler(t)

			mockHealth.EXPECT().GetHealth().Return(tt.health)

			r := httptest.NewRequest("GET", "/health", nil)
			w := httptest.NewRecorder()

			h.HealthCheck(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)

			var status service.HealthStatus
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			assert.Equal(t, tt.health.Status, status.Status)
		})
	}
}
