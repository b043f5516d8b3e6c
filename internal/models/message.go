// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// MessageKind distinguishes plain-text messages from receipt images.
type MessageKind string

const (
	MessageKindText  MessageKind = "text"
	MessageKindImage MessageKind = "image"
)

// Provider identifies which messaging integration delivered a message.
type Provider string

const (
	ProviderTwilio Provider = "twilio"
	ProviderMeta   Provider = "meta"
)

// MessageStatus tracks how far an inbound message got through the pipeline.
// Transitions are monotonic; a failure at any stage moves the record to
// MessageStatusError without claiming later stages succeeded.
type MessageStatus string

const (
	MessageStatusReceived      MessageStatus = "received"
	MessageStatusRepliedPrompt MessageStatus = "replied_prompt"
	MessageStatusImageResolved MessageStatus = "image_resolved"
	MessageStatusOCRDone       MessageStatus = "ocr_done"
	MessageStatusAutoLinked    MessageStatus = "auto_linked"
	MessageStatusPartial       MessageStatus = "partial"
	MessageStatusError         MessageStatus = "error"
)

// InboundMessage is the persisted record of one received webhook event.
// It is created before any processing and mutated in place as the image
// upload, OCR and expense-linkage steps complete.
type InboundMessage struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	PhoneNumber string          `db:"phone_number" json:"phone_number"`
	Kind        MessageKind     `db:"kind" json:"kind"`
	Provider    Provider        `db:"provider" json:"provider"`
	Status      MessageStatus   `db:"status" json:"status"`
	ImageRef    sql.NullString  `db:"image_ref" json:"image_ref,omitempty"`
	StorageURL  sql.NullString  `db:"storage_url" json:"storage_url,omitempty"`
	TextBody    sql.NullString  `db:"text_body" json:"text_body,omitempty"`
	Amount      sql.NullFloat64 `db:"amount" json:"amount,omitempty"`
	Category    sql.NullString  `db:"category" json:"category,omitempty"`
	Currency    sql.NullString  `db:"currency" json:"currency,omitempty"`
	Vendor      sql.NullString  `db:"vendor" json:"vendor,omitempty"`
	Error       sql.NullString  `db:"error" json:"error,omitempty"`
	ExpenseID   uuid.NullUUID   `db:"expense_id" json:"expense_id,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
