package repository

import (
	"github.com/google/uuid"

	"github.com/sellaya/trucktrack/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// InboundMessage returns the inbound message repository
	InboundMessage() InboundMessageRepository

	// Expense returns the expense repository
	Expense() ExpenseRepository
}

// InboundMessageRepository persists webhook messages and their progression
// through the ingestion pipeline.
type InboundMessageRepository interface {
	Create(msg *models.InboundMessage) error
	GetByID(id uuid.UUID) (*models.InboundMessage, error)
	UpdateStatus(id uuid.UUID, status models.MessageStatus) error
	SetStorageURL(id uuid.UUID, storageURL string, status models.MessageStatus) error
	SetExtracted(id uuid.UUID, data *models.ExtractedReceiptData, status models.MessageStatus) error
	SetError(id uuid.UUID, errMsg string) error
	LinkExpense(id uuid.UUID, expenseID uuid.UUID, status models.MessageStatus) error
	List(offset, limit int) ([]*models.InboundMessage, error)
	Count() (int64, error)
}

// ExpenseRepository persists financial records.
type ExpenseRepository interface {
	Create(expense *models.Expense) error
	List(offset, limit int) ([]*models.Expense, error)
	Count() (int64, error)
	SummaryByCurrency() ([]*models.ExpenseSummaryRow, error)
}
