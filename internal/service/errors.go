package service

import (
	"errors"

	"github.com/sellaya/trucktrack/internal/webhook"
)

// ErrBadPayload marks requests that matched neither provider format or
// carried no resolvable sender. Handlers map it to HTTP 400.
var ErrBadPayload = errors.New("bad webhook payload")

// ErrSignature marks authentication failures. Handlers map it to HTTP 403.
// No record is created for such requests.
var ErrSignature = webhook.ErrSignature
