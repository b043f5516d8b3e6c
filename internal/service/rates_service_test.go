package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/config"
	"github.com/sellaya/trucktrack/internal/service"
)

// The Redis client points at a non-existent server in these tests, so every
// cache lookup misses and the service falls through to the provider.
func disconnectedRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "localhost:9999"})
}

func TestRatesService_CADPerUSD_FetchesOnCacheMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"CAD":1.3542,"EUR":0.92}}`))
	}))
	defer server.Close()

	cfg := &config.RatesConfig{ProviderURL: server.URL, CacheTTLMinutes: 120}
	ratesService := service.NewRatesService(cfg, disconnectedRedis(), zap.NewNop())

	rate, err := ratesService.CADPerUSD(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1.3542, rate)
}

func TestRatesService_Refresh(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"rates":{"CAD":1.36}}`))
	}))
	defer server.Close()

	cfg := &config.RatesConfig{ProviderURL: server.URL, CacheTTLMinutes: 120}
	ratesService := service.NewRatesService(cfg, disconnectedRedis(), zap.NewNop())

	err := ratesService.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRatesService_Failures(t *testing.T) {
	tests := []struct {
		name          string
		response      func(w http.ResponseWriter, r *http.Request)
		expectedError string
	}{
		{
			name: "provider error status",
			response: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expectedError: "exchange rate provider returned 502",
		},
		{
			name: "response missing CAD rate",
			response: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"rates":{"EUR":0.92}}`))
			},
			expectedError: "missing CAD rate",
		},
		{
			name: "zero rate rejected",
			response: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"rates":{"CAD":0}}`))
			},
			expectedError: "missing CAD rate",
		},
		{
			name: "malformed response",
			response: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`not json`))
			},
			expectedError: "failed to decode exchange rate response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.response))
			defer server.Close()

			cfg := &config.RatesConfig{ProviderURL: server.URL, CacheTTLMinutes: 120}
			ratesService := service.NewRatesService(cfg, disconnectedRedis(), zap.NewNop())

			_, err := ratesService.CADPerUSD(context.Background())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestRatesService_NoProviderConfigured(t *testing.T) {
	cfg := &config.RatesConfig{}
	ratesService := service.NewRatesService(cfg, disconnectedRedis(), zap.NewNop())

	_, err := ratesService.CADPerUSD(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no exchange rate provider configured")
}
