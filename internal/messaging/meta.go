package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sellaya/trucktrack/internal/config"
	"github.com/sellaya/trucktrack/internal/models"
)

const metaAPIBase = "https://graph.facebook.com/v21.0"

// MetaClient talks to the WhatsApp Cloud API: outbound text messages plus
// the media ID lookup and download needed for inbound images.
type MetaClient struct {
	cfg     config.MetaConfig
	baseURL string
	client  *http.Client
}

func NewMetaClient(cfg config.MetaConfig) *MetaClient {
	return &MetaClient{
		cfg:     cfg,
		baseURL: metaAPIBase,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL overrides the Graph API base, used in tests.
func (c *MetaClient) WithBaseURL(base string) *MetaClient {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

func (c *MetaClient) Name() models.Provider { return models.ProviderMeta }

func (c *MetaClient) Configured() bool { return c.cfg.Configured() }

// SendText sends a text message via the phone number's messages endpoint.
func (c *MetaClient) SendText(ctx context.Context, to, text string) error {
	endpoint := fmt.Sprintf("%s/%s/messages", c.baseURL, c.cfg.PhoneNumberID)

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": text},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("whatsapp API returned %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// MediaURL exchanges an opaque media ID for a downloadable URL. A non-2xx
// response is a hard failure for the message being processed.
func (c *MetaClient) MediaURL(ctx context.Context, mediaID string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, mediaID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to look up media %s: %w", mediaID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("media lookup for %s returned %d", mediaID, resp.StatusCode)
	}

	var result struct {
		URL      string `json:"url"`
		MimeType string `json:"mime_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode media lookup response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("media lookup for %s returned no URL", mediaID)
	}

	return result.URL, nil
}

// Download fetches media bytes. Cloud API media URLs require the same bearer
// token that resolved them.
func (c *MetaClient) Download(ctx context.Context, mediaURL string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download media: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, "", fmt.Errorf("media download returned %d", resp.StatusCode)
	}

	return resp.Body, resp.Header.Get("Content-Type"), nil
}

var _ Sender = (*MetaClient)(nil)
