package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/config"
)

const ratesCacheKey = "rates:cad_per_usd"

type ratesService struct {
	cfg         *config.RatesConfig
	redisClient *redis.Client
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewRatesService(cfg *config.RatesConfig, redisClient *redis.Client, logger *zap.Logger) RatesService {
	return &ratesService{
		cfg:         cfg,
		redisClient: redisClient,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		logger:      logger,
	}
}

// CADPerUSD serves the cached rate, falling back to a provider fetch on a
// cache miss.
func (s *ratesService) CADPerUSD(ctx context.Context) (float64, error) {
	cached, err := s.redisClient.Get(ctx, ratesCacheKey).Result()
	if err == nil {
		rate, parseErr := strconv.ParseFloat(cached, 64)
		if parseErr == nil && rate > 0 {
			return rate, nil
		}
	}

	return s.fetchAndCache(ctx)
}

// Refresh re-primes the cache regardless of its current state. Driven by the
// background scheduler.
func (s *ratesService) Refresh(ctx context.Context) error {
	_, err := s.fetchAndCache(ctx)
	return err
}

func (s *ratesService) fetchAndCache(ctx context.Context) (float64, error) {
	rate, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}

	ttl := time.Duration(s.cfg.CacheTTLMinutes) * time.Minute
	value := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := s.redisClient.Set(ctx, ratesCacheKey, value, ttl).Err(); err != nil {
		s.logger.Warn("Failed to cache exchange rate", zap.Error(err))
	}

	s.logger.Info("Exchange rate refreshed", zap.Float64("cad_per_usd", rate))
	return rate, nil
}

func (s *ratesService) fetch(ctx context.Context) (float64, error) {
	if s.cfg.ProviderURL == "" {
		return 0, fmt.Errorf("no exchange rate provider configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.ProviderURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate provider returned %d", resp.StatusCode)
	}

	var result struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode exchange rate response: %w", err)
	}

	rate, ok := result.Rates["CAD"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("exchange rate response missing CAD rate")
	}

	return rate, nil
}
