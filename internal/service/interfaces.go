package service

import (
	"context"
	"net/http"
)

// IngestService runs one inbound webhook message through the full pipeline
// and serves the read side of the persisted records.
type IngestService interface {
	// Process handles one POST webhook invocation end to end. The returned
	// error, when non-nil, is classified by errors.Is against ErrSignature
	// and ErrBadPayload for HTTP status mapping.
	Process(r *http.Request) (*IngestResult, error)

	// HandshakeChallenge answers the Cloud API subscription handshake.
	HandshakeChallenge(mode, token, challenge string) (string, bool)

	ListMessages(page, limit int) (*MessageListResponse, error)
	ListExpenses(page, limit int) (*ExpenseListResponse, error)
	ExpenseSummary(ctx context.Context) (*ExpenseSummaryResponse, error)

	GetCircuitBreakerStatus() (state CircuitState, requests uint32, failures uint32)
}

// RatesService provides the USD/CAD exchange rate with Redis caching.
type RatesService interface {
	// CADPerUSD returns how many CAD one USD buys.
	CADPerUSD(ctx context.Context) (float64, error)

	// Refresh fetches a fresh rate from the provider and re-primes the cache.
	Refresh(ctx context.Context) error
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
