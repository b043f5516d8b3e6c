package webhook

import (
	"encoding/json"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"github.com/sellaya/trucktrack/internal/models"
)

// Normalized is the provider-independent shape of one inbound message.
type Normalized struct {
	PhoneNumber string
	Kind        models.MessageKind
	Provider    models.Provider
	// ImageRef is either a direct media URL (Twilio) or an opaque media ID
	// (Meta) that must be exchanged for a URL before download.
	ImageRef string
	TextBody string
}

// Payload is the sum type over the two supported provider formats.
type Payload interface {
	Provider() models.Provider
	Normalize() (*Normalized, error)
}

// Parse branches on the request content type and produces exactly one of the
// two provider payloads. Unrecognized content types fail closed.
func Parse(contentType string, body []byte) (Payload, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, ErrUnsupportedPayload
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, ErrUnsupportedPayload
		}
		return &TwilioPayload{Values: values}, nil
	case "application/json":
		var envelope metaEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, ErrUnsupportedPayload
		}
		return &MetaPayload{envelope: envelope}, nil
	default:
		return nil, ErrUnsupportedPayload
	}
}

// TwilioPayload is a form-encoded Twilio WhatsApp callback.
type TwilioPayload struct {
	Values url.Values
}

func (p *TwilioPayload) Provider() models.Provider { return models.ProviderTwilio }

// Normalize extracts the sender and message content. The sender arrives as
// "whatsapp:+15551234567"; both prefixes are stripped. Only the first media
// item is honored regardless of NumMedia.
func (p *TwilioPayload) Normalize() (*Normalized, error) {
	from := p.Values.Get("From")
	from = strings.TrimPrefix(from, "whatsapp:")
	from = strings.TrimPrefix(from, "+")
	if from == "" {
		return nil, ErrNoPhoneNumber
	}

	n := &Normalized{
		PhoneNumber: from,
		Provider:    models.ProviderTwilio,
		Kind:        models.MessageKindText,
		TextBody:    p.Values.Get("Body"),
	}

	numMedia, _ := strconv.Atoi(p.Values.Get("NumMedia"))
	if numMedia > 0 {
		mediaURL := p.Values.Get("MediaUrl0")
		if mediaURL != "" {
			n.Kind = models.MessageKindImage
			n.ImageRef = mediaURL
		}
	}

	return n, nil
}

// MetaPayload is a WhatsApp Cloud API JSON notification.
type MetaPayload struct {
	envelope metaEnvelope
}

func (p *MetaPayload) Provider() models.Provider { return models.ProviderMeta }

// Normalize digs out entry[0].changes[0].value.messages[0] plus the parallel
// contacts[0] for the sender ID. Image messages carry an opaque media ID,
// not a URL; the caption, when present, becomes the text body.
func (p *MetaPayload) Normalize() (*Normalized, error) {
	msg, value, err := p.envelope.firstMessage()
	if err != nil {
		return nil, err
	}

	phone := msg.From
	if len(value.Contacts) > 0 && value.Contacts[0].WaID != "" {
		phone = value.Contacts[0].WaID
	}
	phone = strings.TrimPrefix(phone, "+")
	if phone == "" {
		return nil, ErrNoPhoneNumber
	}

	n := &Normalized{
		PhoneNumber: phone,
		Provider:    models.ProviderMeta,
	}

	switch msg.Type {
	case "text":
		if msg.Text == nil {
			return nil, ErrNoMessage
		}
		n.Kind = models.MessageKindText
		n.TextBody = msg.Text.Body
	case "image":
		if msg.Image == nil || msg.Image.ID == "" {
			return nil, ErrNoMessage
		}
		n.Kind = models.MessageKindImage
		n.ImageRef = msg.Image.ID
		n.TextBody = msg.Image.Caption
	default:
		return nil, ErrNoMessage
	}

	return n, nil
}

// --- Cloud API envelope types ---

type metaEnvelope struct {
	Object string      `json:"object"`
	Entry  []metaEntry `json:"entry"`
}

type metaEntry struct {
	ID      string       `json:"id"`
	Changes []metaChange `json:"changes"`
}

type metaChange struct {
	Value metaValue `json:"value"`
	Field string    `json:"field"`
}

type metaValue struct {
	MessagingProduct string        `json:"messaging_product"`
	Contacts         []metaContact `json:"contacts"`
	Messages         []metaMessage `json:"messages"`
}

type metaContact struct {
	WaID string `json:"wa_id"`
}

type metaMessage struct {
	From  string     `json:"from"`
	ID    string     `json:"id"`
	Type  string     `json:"type"`
	Text  *metaText  `json:"text,omitempty"`
	Image *metaImage `json:"image,omitempty"`
}

type metaText struct {
	Body string `json:"body"`
}

type metaImage struct {
	ID       string `json:"id"`
	Caption  string `json:"caption"`
	MimeType string `json:"mime_type"`
}

func (e *metaEnvelope) firstMessage() (*metaMessage, *metaValue, error) {
	if len(e.Entry) == 0 || len(e.Entry[0].Changes) == 0 {
		return nil, nil, ErrNoMessage
	}
	value := &e.Entry[0].Changes[0].Value
	if len(value.Messages) == 0 {
		return nil, nil, ErrNoMessage
	}
	return &value.Messages[0], value, nil
}
