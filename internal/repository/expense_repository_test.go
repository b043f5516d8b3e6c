package repository_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellaya/trucktrack/internal/models"
	"github.com/sellaya/trucktrack/internal/repository"
)

func seedExpense(t *testing.T, repo repository.ExpenseRepository, amount float64, currency models.Currency, category string) *models.Expense {
	t.Helper()
	expense := &models.Expense{
		Amount:   amount,
		Currency: currency,
		Category: category,
	}
	require.NoError(t, repo.Create(expense))
	return expense
}

func TestExpenseRepository_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	msgRepo := repository.NewInboundMessageRepository(db)
	repo := repository.NewExpenseRepository(db)

	t.Run("expense with source message", func(t *testing.T) {
		cleanupTestData(db)

		msg := newImageMessage("15551234567", "media-789")
		require.NoError(t, msgRepo.Create(msg))

		expense := &models.Expense{
			Amount:          42.50,
			Currency:        models.CurrencyUSD,
			Category:        "Fuel",
			Vendor:          sql.NullString{String: "Pilot Flying J", Valid: true},
			SourceMessageID: uuid.NullUUID{UUID: msg.ID, Valid: true},
		}

		require.NoError(t, repo.Create(expense))
		assert.NotEqual(t, uuid.Nil, expense.ID)

		expenses, err := repo.List(0, 10)
		require.NoError(t, err)
		require.Len(t, expenses, 1)

		stored := expenses[0]
		assert.Equal(t, 42.50, stored.Amount)
		assert.Equal(t, models.CurrencyUSD, stored.Currency)
		assert.Equal(t, "Fuel", stored.Category)
		assert.Equal(t, "Pilot Flying J", stored.Vendor.String)
		assert.Equal(t, msg.ID, stored.SourceMessageID.UUID)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("expense without source message", func(t *testing.T) {
		cleanupTestData(db)

		expense := seedExpense(t, repo, 12.00, models.CurrencyCAD, "Parking")

		expenses, err := repo.List(0, 10)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, expense.ID, expenses[0].ID)
		assert.False(t, expenses[0].SourceMessageID.Valid)
		assert.False(t, expenses[0].Vendor.Valid)
	})

	t.Run("unknown source message violates foreign key", func(t *testing.T) {
		cleanupTestData(db)

		expense := &models.Expense{
			Amount:          10,
			Currency:        models.CurrencyUSD,
			Category:        "Tolls",
			SourceMessageID: uuid.NullUUID{UUID: uuid.New(), Valid: true},
		}

		err := repo.Create(expense)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "violates foreign key constraint")
	})
}

func TestExpenseRepository_ListAndCount(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewExpenseRepository(db)

	cleanupTestData(db)

	for i := 0; i < 5; i++ {
		seedExpense(t, repo, float64(10+i), models.CurrencyUSD, "Fuel")
		time.Sleep(time.Millisecond)
	}

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	expenses, err := repo.List(0, 3)
	require.NoError(t, err)
	assert.Len(t, expenses, 3)

	for i := 1; i < len(expenses); i++ {
		assert.True(t, !expenses[i-1].CreatedAt.Before(expenses[i].CreatedAt),
			"expenses should be ordered newest first")
	}

	rest, err := repo.List(3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestExpenseRepository_SummaryByCurrency(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewExpenseRepository(db)

	t.Run("groups by currency and category", func(t *testing.T) {
		cleanupTestData(db)

		seedExpense(t, repo, 100.00, models.CurrencyUSD, "Fuel")
		seedExpense(t, repo, 50.00, models.CurrencyUSD, "Fuel")
		seedExpense(t, repo, 25.00, models.CurrencyUSD, "Parking")
		seedExpense(t, repo, 270.00, models.CurrencyCAD, "Fuel")

		rows, err := repo.SummaryByCurrency()
		require.NoError(t, err)
		require.Len(t, rows, 3)

		byKey := make(map[string]*models.ExpenseSummaryRow)
		for _, row := range rows {
			byKey[string(row.Currency)+"/"+row.Category] = row
		}

		require.Contains(t, byKey, "USD/Fuel")
		assert.Equal(t, 150.00, byKey["USD/Fuel"].Total)
		assert.Equal(t, int64(2), byKey["USD/Fuel"].Count)

		require.Contains(t, byKey, "USD/Parking")
		assert.Equal(t, 25.00, byKey["USD/Parking"].Total)
		assert.Equal(t, int64(1), byKey["USD/Parking"].Count)

		require.Contains(t, byKey, "CAD/Fuel")
		assert.Equal(t, 270.00, byKey["CAD/Fuel"].Total)
		assert.Equal(t, int64(1), byKey["CAD/Fuel"].Count)
	})

	t.Run("empty table yields no rows", func(t *testing.T) {
		cleanupTestData(db)

		rows, err := repo.SummaryByCurrency()
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
