package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Currency is one of the two currencies TruckTrack operates in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCAD Currency = "CAD"
)

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	if c == CurrencyCAD {
		return "C$"
	}
	return "$"
}

// Expense is a financial record, typically auto-created from a receipt image.
type Expense struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Amount          float64        `db:"amount" json:"amount"`
	Currency        Currency       `db:"currency" json:"currency"`
	Category        string         `db:"category" json:"category"`
	Vendor          sql.NullString `db:"vendor" json:"vendor,omitempty"`
	SourceMessageID uuid.NullUUID  `db:"source_message_id" json:"source_message_id,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
}

// ExtractedReceiptData is the value object produced by the OCR service.
// It is immutable once produced.
type ExtractedReceiptData struct {
	Amount   float64  `json:"amount"`
	Category string   `json:"category"`
	Currency Currency `json:"currency"`
	Vendor   string   `json:"vendor,omitempty"`
}

// Complete reports whether the extraction carries enough detail for
// auto-expense creation. Anything less is a partial success, not an error.
func (e ExtractedReceiptData) Complete() bool {
	return e.Amount > 0 && e.Category != ""
}

// FormatAmount renders the amount with its currency symbol, e.g. "$42.50".
func (e ExtractedReceiptData) FormatAmount() string {
	return fmt.Sprintf("%s%.2f", e.Currency.Symbol(), e.Amount)
}
