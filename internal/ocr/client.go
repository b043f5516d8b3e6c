// Package ocr wraps the external receipt-extraction service.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sellaya/trucktrack/internal/config"
	"github.com/sellaya/trucktrack/internal/models"
)

// Client extracts structured expense fields from a stored receipt image.
// The extraction algorithm itself is the remote service's concern; callers
// only rely on the returned record, which may be incomplete.
type Client interface {
	Extract(ctx context.Context, imageURL string) (*models.ExtractedReceiptData, error)
}

type extractRequest struct {
	ImageURL string `json:"image_url"`
}

type httpClient struct {
	cfg    *config.OCRConfig
	client *http.Client
}

func NewClient(cfg *config.OCRConfig) Client {
	return &httpClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

func (c *httpClient) Extract(ctx context.Context, imageURL string) (*models.ExtractedReceiptData, error) {
	body, err := json.Marshal(extractRequest{ImageURL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.AuthKey != "" {
		req.Header.Set("x-ocr-auth-key", c.cfg.AuthKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("ocr service returned %d: %s", resp.StatusCode, string(respBody))
	}

	var data models.ExtractedReceiptData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode ocr response: %w", err)
	}

	if data.Currency == "" {
		data.Currency = models.CurrencyUSD
	}

	return &data, nil
}
