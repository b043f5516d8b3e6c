package messaging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sellaya/trucktrack/internal/messaging"
	"github.com/sellaya/trucktrack/internal/models"
)

type fakeSender struct {
	name       models.Provider
	configured bool
	err        error
	calls      int
}

func (f *fakeSender) Name() models.Provider { return f.name }
func (f *fakeSender) Configured() bool      { return f.configured }
func (f *fakeSender) SendText(ctx context.Context, to, text string) error {
	f.calls++
	return f.err
}

func TestDispatcher_Reply_FirstConfiguredProviderWins(t *testing.T) {
	first := &fakeSender{name: models.ProviderTwilio, configured: true}
	second := &fakeSender{name: models.ProviderMeta, configured: true}

	d := messaging.NewDispatcher(zap.NewNop(), first, second)

	err := d.Reply(context.Background(), "15551234567", "hello")

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestDispatcher_Reply_FallsBackOnFailure(t *testing.T) {
	first := &fakeSender{name: models.ProviderTwilio, configured: true, err: errors.New("twilio down")}
	second := &fakeSender{name: models.ProviderMeta, configured: true}

	d := messaging.NewDispatcher(zap.NewNop(), first, second)

	err := d.Reply(context.Background(), "15551234567", "hello")

	require.NoError(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestDispatcher_Reply_SkipsUnconfiguredProviders(t *testing.T) {
	first := &fakeSender{name: models.ProviderTwilio, configured: false}
	second := &fakeSender{name: models.ProviderMeta, configured: true}

	d := messaging.NewDispatcher(zap.NewNop(), first, second)

	err := d.Reply(context.Background(), "15551234567", "hello")

	require.NoError(t, err)
	assert.Equal(t, 0, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestDispatcher_Reply_AllProvidersFail(t *testing.T) {
	first := &fakeSender{name: models.ProviderTwilio, configured: true, err: errors.New("twilio down")}
	second := &fakeSender{name: models.ProviderMeta, configured: true, err: errors.New("meta down")}

	d := messaging.NewDispatcher(zap.NewNop(), first, second)

	err := d.Reply(context.Background(), "15551234567", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "twilio down")
	assert.Contains(t, err.Error(), "meta down")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestDispatcher_Reply_NoProviderConfigured(t *testing.T) {
	tests := []struct {
		name    string
		senders []messaging.Sender
	}{
		{
			name:    "no senders at all",
			senders: nil,
		},
		{
			name: "all senders unconfigured",
			senders: []messaging.Sender{
				&fakeSender{name: models.ProviderTwilio},
				&fakeSender{name: models.ProviderMeta},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := messaging.NewDispatcher(zap.NewNop(), tt.senders...)

			err := d.Reply(context.Background(), "15551234567", "hello")

			assert.ErrorIs(t, err, messaging.ErrNoProviderConfigured)
		})
	}
}
