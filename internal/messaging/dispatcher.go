package messaging

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Dispatcher sends replies through whichever providers are configured.
// Providers are tried in order; the first success wins. An error is returned
// only when every configured provider fails, or none is configured. The
// policy is deliberately symmetric across providers.
type Dispatcher struct {
	senders []Sender
	logger  *zap.Logger
}

func NewDispatcher(logger *zap.Logger, senders ...Sender) *Dispatcher {
	return &Dispatcher{senders: senders, logger: logger}
}

// Reply sends text to the given phone number.
func (d *Dispatcher) Reply(ctx context.Context, phoneNumber, text string) error {
	var errs []error
	attempted := 0

	for _, s := range d.senders {
		if !s.Configured() {
			continue
		}
		attempted++

		if err := s.SendText(ctx, phoneNumber, text); err != nil {
			d.logger.Warn("Reply attempt failed",
				zap.String("provider", string(s.Name())),
				zap.String("phone_number", phoneNumber),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}

		d.logger.Info("Reply sent",
			zap.String("provider", string(s.Name())),
			zap.String("phone_number", phoneNumber))
		return nil
	}

	if attempted == 0 {
		return ErrNoProviderConfigured
	}
	return fmt.Errorf("all configured providers failed: %w", errors.Join(errs...))
}
