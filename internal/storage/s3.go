// Package storage archives receipt images to S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/sellaya/trucktrack/internal/config"
)

// ReceiptStore uploads receipt images and produces shareable URLs for them.
type ReceiptStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type s3Store struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	forceSeekable bool
}

// NewS3Store builds a ReceiptStore backed by S3. A non-empty endpoint
// switches to path-style addressing for non-AWS object storage.
func NewS3Store(ctx context.Context, cfg *config.StorageConfig) (ReceiptStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	forceSeekable := false
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
			if strings.HasPrefix(cfg.Endpoint, "http://") {
				forceSeekable = true
			}
		}
	})

	return &s3Store{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		forceSeekable: forceSeekable,
	}, nil
}

// Put stores the object and returns its public URL.
func (s *s3Store) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if s.forceSeekable {
		// Plain-HTTP endpoints need a seekable reader for checksum calculation.
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, body); err != nil {
			return "", fmt.Errorf("failed to read object data: %w", err)
		}
		body = bytes.NewReader(buf.Bytes())
	}

	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to store object in S3: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *s3Store) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

var _ ReceiptStore = (*s3Store)(nil)

// ReceiptKey builds the object key for one stored receipt image, namespaced
// by message ID and timestamp. The extension is inferred from the resolved
// media URL; "jpg" when the URL carries none.
func ReceiptKey(prefix string, messageID uuid.UUID, unixSeconds int64, mediaURL string) string {
	ext := extensionFromURL(mediaURL)
	return fmt.Sprintf("%s/receipts/%s/%d.%s", prefix, messageID, unixSeconds, ext)
}

// ParseReceiptKey recovers the message ID and extension from a key produced
// by ReceiptKey.
func ParseReceiptKey(key string) (uuid.UUID, string, error) {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || parts[len(parts)-3] != "receipts" {
		return uuid.Nil, "", fmt.Errorf("not a receipt key: %q", key)
	}

	id, err := uuid.Parse(parts[len(parts)-2])
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid message ID in receipt key %q: %w", key, err)
	}

	file := parts[len(parts)-1]
	dot := strings.LastIndex(file, ".")
	if dot < 0 || dot == len(file)-1 {
		return uuid.Nil, "", fmt.Errorf("receipt key %q has no extension", key)
	}

	return id, file[dot+1:], nil
}

func extensionFromURL(mediaURL string) string {
	path := mediaURL
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndex(path, "."); i >= 0 && i < len(path)-1 {
		return path[i+1:]
	}
	return "jpg"
}
