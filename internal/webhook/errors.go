// Package webhook parses and authenticates inbound messaging webhooks.
//
// Two wire formats are supported: Twilio's form-encoded callbacks and the
// WhatsApp Cloud API's nested JSON notifications. Both are mapped into a
// single normalized shape before any further processing.
package webhook

import "errors"

var (
	// ErrUnsupportedPayload means the request matched neither provider format.
	ErrUnsupportedPayload = errors.New("unsupported webhook payload")

	// ErrNoMessage means the payload parsed but carried no message to process.
	ErrNoMessage = errors.New("webhook payload contains no message")

	// ErrNoPhoneNumber means no sender phone number could be extracted.
	ErrNoPhoneNumber = errors.New("webhook payload contains no sender phone number")

	// ErrSignature means the request signature was missing or did not validate.
	ErrSignature = errors.New("webhook signature verification failed")
)
