package messaging

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sellaya/trucktrack/internal/config"
	"github.com/sellaya/trucktrack/internal/models"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioClient sends WhatsApp messages through the Twilio REST API.
type TwilioClient struct {
	cfg     config.TwilioConfig
	baseURL string
	client  *http.Client
}

func NewTwilioClient(cfg config.TwilioConfig) *TwilioClient {
	return &TwilioClient{
		cfg:     cfg,
		baseURL: twilioAPIBase,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// WithBaseURL overrides the API base, used in tests.
func (c *TwilioClient) WithBaseURL(base string) *TwilioClient {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

func (c *TwilioClient) Name() models.Provider { return models.ProviderTwilio }

func (c *TwilioClient) Configured() bool { return c.cfg.Configured() }

// SendText posts a message through the account's Messages endpoint using
// basic auth. Numbers are re-prefixed with "whatsapp:+" on the way out.
func (c *TwilioClient) SendText(ctx context.Context, to, text string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.cfg.AccountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:+"+strings.TrimPrefix(c.cfg.FromNumber, "+"))
	form.Set("To", "whatsapp:+"+strings.TrimPrefix(to, "+"))
	form.Set("Body", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.AccountSID, c.cfg.AuthToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("twilio API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

var _ Sender = (*TwilioClient)(nil)
