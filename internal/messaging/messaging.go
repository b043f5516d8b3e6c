// Package messaging implements the outbound side of the two WhatsApp
// integrations and the dispatcher that picks between them.
package messaging

import (
	"context"
	"errors"

	"github.com/sellaya/trucktrack/internal/models"
)

// Sender sends a plain-text message through one provider.
type Sender interface {
	Name() models.Provider
	Configured() bool
	SendText(ctx context.Context, to, text string) error
}

// ErrNoProviderConfigured is returned when a reply is requested but no
// messaging provider has credentials.
var ErrNoProviderConfigured = errors.New("no messaging provider is configured")
