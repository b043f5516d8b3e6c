package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/config"
	"github.com/sellaya/trucktrack/internal/models"
	"github.com/sellaya/trucktrack/internal/ocr"
	"github.com/sellaya/trucktrack/internal/repository"
	"github.com/sellaya/trucktrack/internal/storage"
	"github.com/sellaya/trucktrack/internal/webhook"
)

// Reply texts sent back over WhatsApp.
const (
	promptReply  = "Hi! Send a photo of a receipt and TruckTrack will log the expense for you."
	partialReply = "Thanks! We saved your receipt but couldn't extract all details. Please complete the expense in the app."
	apologyReply = "Sorry, something went wrong processing your message. Please try again later."
)

// MediaResolver exchanges opaque media IDs for URLs and downloads media that
// requires provider authentication.
type MediaResolver interface {
	MediaURL(ctx context.Context, mediaID string) (string, error)
	Download(ctx context.Context, mediaURL string) (io.ReadCloser, string, error)
}

// ReplySender delivers a text reply to a phone number.
type ReplySender interface {
	Reply(ctx context.Context, phoneNumber, text string) error
}

type ingestService struct {
	cfg        *config.Config
	repo       repository.Repository
	verifier   *webhook.Verifier
	store      storage.ReceiptStore
	resolver   MediaResolver
	ocrClient  ocr.Client
	replies    ReplySender
	rates      RatesService
	httpClient *http.Client
	breaker    *CircuitBreaker
	logger     *zap.Logger
}

func NewIngestService(
	cfg *config.Config,
	repo repository.Repository,
	store storage.ReceiptStore,
	resolver MediaResolver,
	ocrClient ocr.Client,
	replies ReplySender,
	rates RatesService,
	logger *zap.Logger,
) IngestService {
	return &ingestService{
		cfg:       cfg,
		repo:      repo,
		verifier:  webhook.NewVerifier(cfg, logger),
		store:     store,
		resolver:  resolver,
		ocrClient: ocrClient,
		replies:   replies,
		rates:     rates,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		breaker: NewCircuitBreaker("ocr", &cfg.OCR.CircuitBreaker, logger),
		logger:  logger,
	}
}

// Process runs one webhook invocation through verify → normalize → persist →
// image pipeline → reply. Every external call is awaited in order; a failure
// at any stage is terminal for this invocation and is recorded on the
// message without rollback of earlier stages.
func (s *ingestService) Process(r *http.Request) (*IngestResult, error) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable body", ErrBadPayload)
	}

	payload, err := webhook.Parse(r.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	if err := s.verifier.Verify(r, body, payload); err != nil {
		return nil, err
	}

	normalized, err := payload.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	msg := &models.InboundMessage{
		PhoneNumber: normalized.PhoneNumber,
		Kind:        normalized.Kind,
		Provider:    normalized.Provider,
		Status:      models.MessageStatusReceived,
	}
	if normalized.ImageRef != "" {
		msg.ImageRef = sql.NullString{String: normalized.ImageRef, Valid: true}
	}
	if normalized.TextBody != "" {
		msg.TextBody = sql.NullString{String: normalized.TextBody, Valid: true}
	}

	if err := s.repo.InboundMessage().Create(msg); err != nil {
		s.sendReply(ctx, normalized.PhoneNumber, apologyReply)
		return nil, fmt.Errorf("failed to create inbound message: %w", err)
	}

	s.logger.Info("Inbound message received",
		zap.String("message_id", msg.ID.String()),
		zap.String("provider", string(msg.Provider)),
		zap.String("kind", string(msg.Kind)))

	if normalized.Kind == models.MessageKindText {
		s.sendReply(ctx, normalized.PhoneNumber, promptReply)
		if err := s.repo.InboundMessage().UpdateStatus(msg.ID, models.MessageStatusRepliedPrompt); err != nil {
			s.logger.Error("Failed to update message status",
				zap.String("message_id", msg.ID.String()),
				zap.Error(err))
		}
		return &IngestResult{
			MessageID: msg.ID,
			Status:    models.MessageStatusRepliedPrompt,
			Reply:     promptReply,
		}, nil
	}

	result, err := s.processImage(ctx, msg, normalized)
	if err != nil {
		if setErr := s.repo.InboundMessage().SetError(msg.ID, err.Error()); setErr != nil {
			s.logger.Error("Failed to record message error",
				zap.String("message_id", msg.ID.String()),
				zap.Error(setErr))
		}
		s.sendReply(ctx, normalized.PhoneNumber, apologyReply)
		return nil, err
	}

	return result, nil
}

// processImage resolves the image reference, archives the bytes, runs OCR
// and, when extraction is complete, auto-creates the expense.
func (s *ingestService) processImage(ctx context.Context, msg *models.InboundMessage, n *webhook.Normalized) (*IngestResult, error) {
	resolvedURL := n.ImageRef
	var (
		media       io.ReadCloser
		contentType string
		err         error
	)

	if strings.HasPrefix(n.ImageRef, "http") {
		media, contentType, err = s.download(ctx, resolvedURL)
	} else {
		// Opaque media IDs are always exchanged for a URL first; the
		// download then needs the same provider credentials.
		resolvedURL, err = s.resolver.MediaURL(ctx, n.ImageRef)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve media reference: %w", err)
		}
		media, contentType, err = s.resolver.Download(ctx, resolvedURL)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to download receipt image: %w", err)
	}
	defer media.Close()

	key := storage.ReceiptKey(s.cfg.Storage.Prefix, msg.ID, time.Now().Unix(), resolvedURL)
	storageURL, err := s.store.Put(ctx, key, media, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to archive receipt image: %w", err)
	}

	if err := s.repo.InboundMessage().SetStorageURL(msg.ID, storageURL, models.MessageStatusImageResolved); err != nil {
		return nil, fmt.Errorf("failed to record storage URL: %w", err)
	}

	var data *models.ExtractedReceiptData
	err = s.breaker.Execute(ctx, func() error {
		extracted, extractErr := s.ocrClient.Extract(ctx, storageURL)
		if extractErr != nil {
			return extractErr
		}
		data = extracted
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("receipt extraction failed: %w", err)
	}

	if err := s.repo.InboundMessage().SetExtracted(msg.ID, data, models.MessageStatusOCRDone); err != nil {
		return nil, fmt.Errorf("failed to record extracted data: %w", err)
	}

	if !data.Complete() {
		s.sendReply(ctx, n.PhoneNumber, partialReply)
		if err := s.repo.InboundMessage().UpdateStatus(msg.ID, models.MessageStatusPartial); err != nil {
			s.logger.Error("Failed to update message status",
				zap.String("message_id", msg.ID.String()),
				zap.Error(err))
		}
		return &IngestResult{
			MessageID: msg.ID,
			Status:    models.MessageStatusPartial,
			Reply:     partialReply,
		}, nil
	}

	expense := &models.Expense{
		Amount:          data.Amount,
		Currency:        data.Currency,
		Category:        data.Category,
		SourceMessageID: uuid.NullUUID{UUID: msg.ID, Valid: true},
	}
	if data.Vendor != "" {
		expense.Vendor = sql.NullString{String: data.Vendor, Valid: true}
	}

	if err := s.repo.Expense().Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := s.repo.InboundMessage().LinkExpense(msg.ID, expense.ID, models.MessageStatusAutoLinked); err != nil {
		return nil, fmt.Errorf("failed to link expense: %w", err)
	}

	reply := fmt.Sprintf("Expense logged: %s for %s.", data.FormatAmount(), data.Category)
	s.sendReply(ctx, n.PhoneNumber, reply)

	s.logger.Info("Expense auto-created from receipt",
		zap.String("message_id", msg.ID.String()),
		zap.String("expense_id", expense.ID.String()),
		zap.Float64("amount", data.Amount),
		zap.String("currency", string(data.Currency)))

	return &IngestResult{
		MessageID: msg.ID,
		Status:    models.MessageStatusAutoLinked,
		Reply:     reply,
	}, nil
}

// download fetches a direct media URL with no provider credentials.
func (s *ingestService) download(ctx context.Context, mediaURL string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download media: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, "", fmt.Errorf("media download returned %d", resp.StatusCode)
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// sendReply delivers a reply on a best-effort basis. Reply failures are
// logged and never fail the webhook response.
func (s *ingestService) sendReply(ctx context.Context, phoneNumber, text string) {
	if err := s.replies.Reply(ctx, phoneNumber, text); err != nil {
		s.logger.Warn("Failed to send reply",
			zap.String("phone_number", phoneNumber),
			zap.Error(err))
	}
}

// HandshakeChallenge answers the Cloud API subscription handshake: the
// challenge is echoed back when the mode is "subscribe" and the token
// matches the configured verify token.
func (s *ingestService) HandshakeChallenge(mode, token, challenge string) (string, bool) {
	if mode == "subscribe" && token != "" && token == s.cfg.Meta.VerifyToken {
		return challenge, true
	}
	return "", false
}

// ListMessages retrieves inbound messages with pagination.
func (s *ingestService) ListMessages(page, limit int) (*MessageListResponse, error) {
	offset := (page - 1) * limit

	messages, err := s.repo.InboundMessage().List(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	totalCount, err := s.repo.InboundMessage().Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	return &MessageListResponse{
		Messages:   messages,
		Pagination: paginate(page, limit, totalCount),
	}, nil
}

// ListExpenses retrieves expenses with pagination.
func (s *ingestService) ListExpenses(page, limit int) (*ExpenseListResponse, error) {
	offset := (page - 1) * limit

	expenses, err := s.repo.Expense().List(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	totalCount, err := s.repo.Expense().Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}

	return &ExpenseListResponse{
		Expenses:   expenses,
		Pagination: paginate(page, limit, totalCount),
	}, nil
}

// ExpenseSummary aggregates spend and converts the grand totals into both
// operating currencies. When no rate is available the native sums are still
// returned with the conversion fields zeroed.
func (s *ingestService) ExpenseSummary(ctx context.Context) (*ExpenseSummaryResponse, error) {
	rows, err := s.repo.Expense().SummaryByCurrency()
	if err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}

	var sumUSD, sumCAD float64
	for _, row := range rows {
		switch row.Currency {
		case models.CurrencyCAD:
			sumCAD += row.Total
		default:
			sumUSD += row.Total
		}
	}

	resp := &ExpenseSummaryResponse{Rows: rows}

	rate, err := s.rates.CADPerUSD(ctx)
	if err != nil || rate <= 0 {
		s.logger.Warn("Exchange rate unavailable, returning native sums only", zap.Error(err))
		resp.TotalUSD = sumUSD
		resp.TotalCAD = sumCAD
		return resp, nil
	}

	resp.CADPerUSD = rate
	resp.TotalUSD = sumUSD + sumCAD/rate
	resp.TotalCAD = sumCAD + sumUSD*rate
	return resp, nil
}

func (s *ingestService) GetCircuitBreakerStatus() (CircuitState, uint32, uint32) {
	state := s.breaker.GetState()
	requests, failures := s.breaker.GetCounts()
	return state, requests, failures
}

func paginate(page, limit int, totalCount int64) Pagination {
	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   int(totalCount),
		ItemsPerPage: limit,
	}
}
