package service

import (
	"github.com/google/uuid"

	"github.com/sellaya/trucktrack/internal/models"
)

// IngestResult describes a successfully handled webhook message, including
// partial extractions, which are not errors.
type IngestResult struct {
	MessageID uuid.UUID            `json:"message_id"`
	Status    models.MessageStatus `json:"status"`
	Reply     string               `json:"reply,omitempty"`
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

type MessageListResponse struct {
	Messages   []*models.InboundMessage `json:"messages"`
	Pagination Pagination               `json:"pagination"`
}

type ExpenseListResponse struct {
	Expenses   []*models.Expense `json:"expenses"`
	Pagination Pagination        `json:"pagination"`
}

// ExpenseSummaryResponse reports spend per currency/category plus grand
// totals converted into each of the two operating currencies.
type ExpenseSummaryResponse struct {
	Rows      []*models.ExpenseSummaryRow `json:"rows"`
	TotalUSD  float64                     `json:"total_usd"`
	TotalCAD  float64                     `json:"total_cad"`
	CADPerUSD float64                     `json:"cad_per_usd"`
}

// Health reporting values.
type HealthState string

const (
	HealthHealthy   HealthState = "healthy"
	HealthDegraded  HealthState = "degraded"
	HealthUnhealthy HealthState = "unhealthy"
)

type ComponentState string

const (
	ComponentConnected    ComponentState = "connected"
	ComponentDisconnected ComponentState = "disconnected"
)

type HealthStatus struct {
	Status               HealthState    `json:"status"`
	SchedulerRunning     bool           `json:"scheduler_running"`
	DatabaseStatus       ComponentState `json:"database_status"`
	RedisStatus          ComponentState `json:"redis_status"`
	CircuitBreakerStatus string         `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  CircuitState   `json:"circuit_breaker_state,omitempty"`
}
