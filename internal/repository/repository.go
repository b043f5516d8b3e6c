// Package repository implements PostgreSQL persistence for the application.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db      *sqlx.DB
	message InboundMessageRepository
	expense ExpenseRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:      db,
		message: NewInboundMessageRepository(db),
		expense: NewExpenseRepository(db),
	}
}

// InboundMessage returns the inbound message repository.
func (r *repositoryImpl) InboundMessage() InboundMessageRepository {
	return r.message
}

// Expense returns the expense repository.
func (r *repositoryImpl) Expense() ExpenseRepository {
	return r.expense
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
