package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sellaya/trucktrack/internal/models"
)

type inboundMessageRepository struct {
	db *sqlx.DB
}

func NewInboundMessageRepository(db *sqlx.DB) InboundMessageRepository {
	return &inboundMessageRepository{
		db: db,
	}
}

// Create inserts the record. It is called before any pipeline processing so
// a row exists even when a later stage fails.
func (r *inboundMessageRepository) Create(msg *models.InboundMessage) error {
	query := `
		INSERT INTO inbound_messages (id, phone_number, kind, provider, status, image_ref, text_body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if msg.Status == "" {
		msg.Status = models.MessageStatusReceived
	}

	_, err := r.db.Exec(query, msg.ID, msg.PhoneNumber, msg.Kind, msg.Provider, msg.Status,
		msg.ImageRef, msg.TextBody, msg.CreatedAt, msg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inbound message: %w", err)
	}

	return nil
}

// GetByID retrieves one message.
func (r *inboundMessageRepository) GetByID(id uuid.UUID) (*models.InboundMessage, error) {
	query := `
		SELECT id, phone_number, kind, provider, status, image_ref, storage_url, text_body,
		       amount, category, currency, vendor, error, expense_id, created_at, updated_at
		FROM inbound_messages
		WHERE id = $1
	`

	var msg models.InboundMessage
	if err := r.db.Get(&msg, query, id); err != nil {
		return nil, fmt.Errorf("failed to get inbound message: %w", err)
	}

	return &msg, nil
}

// UpdateStatus advances the pipeline status.
func (r *inboundMessageRepository) UpdateStatus(id uuid.UUID, status models.MessageStatus) error {
	query := `UPDATE inbound_messages SET status = $2, updated_at = $3 WHERE id = $1`

	if _, err := r.db.Exec(query, id, status, time.Now()); err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	return nil
}

// SetStorageURL replaces the image reference with the archived object URL.
func (r *inboundMessageRepository) SetStorageURL(id uuid.UUID, storageURL string, status models.MessageStatus) error {
	query := `
		UPDATE inbound_messages
		SET storage_url = $2, status = $3, updated_at = $4
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, storageURL, status, time.Now()); err != nil {
		return fmt.Errorf("failed to set storage URL: %w", err)
	}

	return nil
}

// SetExtracted records the OCR output on the message.
func (r *inboundMessageRepository) SetExtracted(id uuid.UUID, data *models.ExtractedReceiptData, status models.MessageStatus) error {
	query := `
		UPDATE inbound_messages
		SET amount = $2, category = $3, currency = $4, vendor = $5, status = $6, updated_at = $7
		WHERE id = $1
	`

	var amount sql.NullFloat64
	if data.Amount > 0 {
		amount = sql.NullFloat64{Float64: data.Amount, Valid: true}
	}

	var category, vendor sql.NullString
	if data.Category != "" {
		category = sql.NullString{String: data.Category, Valid: true}
	}
	if data.Vendor != "" {
		vendor = sql.NullString{String: data.Vendor, Valid: true}
	}

	_, err := r.db.Exec(query, id, amount, category, data.Currency, vendor, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set extracted data: %w", err)
	}

	return nil
}

// SetError records a processing failure. Earlier persisted stages are left
// intact; there is no rollback.
func (r *inboundMessageRepository) SetError(id uuid.UUID, errMsg string) error {
	query := `
		UPDATE inbound_messages
		SET error = $2, status = $3, updated_at = $4
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, errMsg, models.MessageStatusError, time.Now()); err != nil {
		return fmt.Errorf("failed to set message error: %w", err)
	}

	return nil
}

// LinkExpense attaches the auto-created expense.
func (r *inboundMessageRepository) LinkExpense(id uuid.UUID, expenseID uuid.UUID, status models.MessageStatus) error {
	query := `
		UPDATE inbound_messages
		SET expense_id = $2, status = $3, updated_at = $4
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, expenseID, status, time.Now()); err != nil {
		return fmt.Errorf("failed to link expense: %w", err)
	}

	return nil
}

// List retrieves messages with pagination, newest first.
func (r *inboundMessageRepository) List(offset, limit int) ([]*models.InboundMessage, error) {
	query := `
		SELECT id, phone_number, kind, provider, status, image_ref, storage_url, text_body,
		       amount, category, currency, vendor, error, expense_id, created_at, updated_at
		FROM inbound_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var messages []*models.InboundMessage
	if err := r.db.Select(&messages, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list inbound messages: %w", err)
	}

	return messages, nil
}

// Count returns the total number of inbound messages.
func (r *inboundMessageRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM inbound_messages`); err != nil {
		return 0, fmt.Errorf("failed to count inbound messages: %w", err)
	}

	return count, nil
}
