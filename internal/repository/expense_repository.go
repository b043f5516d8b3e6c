package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sellaya/trucktrack/internal/models"
)

type expenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create inserts a new expense.
func (r *expenseRepository) Create(expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, amount, currency, category, vendor, source_message_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	expense.CreatedAt = time.Now()

	_, err := r.db.Exec(query, expense.ID, expense.Amount, expense.Currency, expense.Category,
		expense.Vendor, expense.SourceMessageID, expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// List retrieves expenses with pagination, newest first.
func (r *expenseRepository) List(offset, limit int) ([]*models.Expense, error) {
	query := `
		SELECT id, amount, currency, category, vendor, source_message_id, created_at
		FROM expenses
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var expenses []*models.Expense
	if err := r.db.Select(&expenses, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// Count returns the total number of expenses.
func (r *expenseRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM expenses`); err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	return count, nil
}

// SummaryByCurrency aggregates spend per currency and category.
func (r *expenseRepository) SummaryByCurrency() ([]*models.ExpenseSummaryRow, error) {
	query := `
		SELECT currency, category, SUM(amount) AS total, COUNT(*) AS count
		FROM expenses
		GROUP BY currency, category
		ORDER BY currency, category
	`

	var rows []*models.ExpenseSummaryRow
	if err := r.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}

	return rows, nil
}
