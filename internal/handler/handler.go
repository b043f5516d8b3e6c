// Package handler provides HTTP request handlers for the application.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/middleware"
	"github.com/sellaya/trucktrack/internal/service"
)

const (
	errorCodeBadPayload       = "BAD_PAYLOAD"
	errorCodeSignatureInvalid = "SIGNATURE_INVALID"
)

const (
	errorMessageBadPayload       = "Unsupported or malformed webhook payload"
	errorMessageSignatureInvalid = "Webhook signature verification failed"
	errorMessageProcessingFailed = "Failed to process inbound message"
	errorMessageListMessages     = "Failed to retrieve messages"
	errorMessageListExpenses     = "Failed to retrieve expenses"
	errorMessageExpenseSummary   = "Failed to build expense summary"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// VerifyWebhook answers the WhatsApp Cloud API subscription handshake.
func (h *Handler) VerifyWebhook(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	challenge, ok := h.service.Ingest.HandshakeChallenge(
		query.Get("hub.mode"),
		query.Get("hub.verify_token"),
		query.Get("hub.challenge"),
	)
	if !ok {
		h.logger.Warn("Webhook verification handshake rejected",
			zap.String("mode", query.Get("hub.mode")))
		h.sendError(w, r, http.StatusForbidden, errorCodeSignatureInvalid, errorMessageSignatureInvalid)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, challenge)
}

// ReceiveWebhook handles one inbound message POST from either provider.
func (h *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	result, err := h.service.Ingest.Process(r)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSignature):
			h.logger.Warn("Webhook rejected: signature failure",
				zap.String("request_id", requestID))
			h.sendError(w, r, http.StatusForbidden, errorCodeSignatureInvalid, errorMessageSignatureInvalid)
		case errors.Is(err, service.ErrBadPayload):
			h.logger.Warn("Webhook rejected: bad payload",
				zap.String("request_id", requestID),
				zap.Error(err))
			h.sendError(w, r, http.StatusBadRequest, errorCodeBadPayload, errorMessageBadPayload)
		default:
			h.logger.Error("Webhook processing failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageProcessingFailed)
		}
		return
	}

	render.JSON(w, r, result)
}

// ListMessages returns inbound messages, newest first.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	result, err := h.service.Ingest.ListMessages(page, limit)
	if err != nil {
		h.logger.Error("Failed to list messages",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageListMessages)
		return
	}

	render.JSON(w, r, result)
}

// ListExpenses returns expenses, newest first.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	result, err := h.service.Ingest.ListExpenses(page, limit)
	if err != nil {
		h.logger.Error("Failed to list expenses",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageListExpenses)
		return
	}

	render.JSON(w, r, result)
}

// ExpenseSummary returns per-currency totals, converted both ways.
func (h *Handler) ExpenseSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Ingest.ExpenseSummary(r.Context())
	if err != nil {
		h.logger.Error("Failed to build expense summary",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageExpenseSummary)
		return
	}

	render.JSON(w, r, result)
}

// HealthCheck reports component health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	if health.Status == service.HealthUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, health)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error:     errorCode,
		Message:   message,
		Timestamp: &now,
	})
}

func pageParams(r *http.Request) (page, limit int) {
	page = 1
	limit = 20

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p >= 1 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l >= 1 && l <= 100 {
		limit = l
	}

	return page, limit
}
