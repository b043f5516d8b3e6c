package repository_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sellaya/trucktrack/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryImpl_Accessors(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	tests := []struct {
		name     string
		validate func(t *testing.T, repo repository.Repository)
	}{
		{
			name: "InboundMessage repository is not nil",
			validate: func(t *testing.T, repo repository.Repository) {
				assert.NotNil(t, repo.InboundMessage())
			},
		},
		{
			name: "Expense repository is not nil",
			validate: func(t *testing.T, repo repository.Repository) {
				assert.NotNil(t, repo.Expense())
			},
		},
		{
			name: "Accessors return same instance",
			validate: func(t *testing.T, repo repository.Repository) {
				assert.Equal(t, repo.InboundMessage(), repo.InboundMessage())
				assert.Equal(t, repo.Expense(), repo.Expense())
			},
		},
		{
			name: "Repositories are callable",
			validate: func(t *testing.T, repo repository.Repository) {
				count, err := repo.InboundMessage().Count()
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, count, int64(0))

				_, err = repo.Expense().List(0, 10)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewRepository(db)
			tt.validate(t, repo)
			cleanupTestData(db)
		})
	}
}

func TestRepositoryImpl_Ping_Success(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name:  "Ping successful with healthy connection",
			setup: func() {},
		},
		{
			name: "Ping after database operations",
			setup: func() {
				_, err := db.Exec("SELECT 1")
				require.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewRepository(db)

			tt.setup()

			assert.NoError(t, repo.Ping())
		})
	}
}

func TestRepositoryImpl_Ping_Failure(t *testing.T) {
	tests := []struct {
		name          string
		setupRepo     func() repository.Repository
		expectedError string
		timeout       time.Duration
	}{
		{
			name: "Ping with closed database connection",
			setupRepo: func() repository.Repository {
				db, cleanup := setupTestDB(t)
				repo := repository.NewRepository(db)
				cleanup()
				return repo
			},
			expectedError: "database is closed",
			timeout:       3 * time.Second,
		},
		{
			name: "Ping with unreachable database",
			setupRepo: func() repository.Repository {
				db, err := sqlx.Open("postgres", "host=127.0.0.1 port=9999 user=test dbname=test sslmode=disable connect_timeout=1")
				require.NoError(t, err)
				return repository.NewRepository(db)
			},
			expectedError: "connection refused",
			timeout:       5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.setupRepo()

			done := make(chan bool)
			go func() {
				err := repo.Ping()
				assert.Error(t, err)
				if tt.expectedError != "" {
					assert.Contains(t, err.Error(), tt.expectedError)
				}
				done <- true
			}()

			select {
			case <-done:
			case <-time.After(tt.timeout):
				t.Fatal("Ping timeout exceeded")
			}
		})
	}
}
