// Package gcs keeps oversized tool results out of the model context. Results
// above a token threshold are gzip-uploaded to a Cloud Storage bucket and
// replaced with a signed URL. A local temp file is only used when that is
// explicitly enabled, since the path is meaningless to a remote caller.
package gcs

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	"cloud.google.com/go/iam/credentials/apiv1/credentialspb"
	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const (
	DefaultTokenThreshold = 1000
	DefaultURLExpiryHours = 24

	// rough average for JSON text
	bytesPerToken = 4
)

// Config holds GCS configuration
type Config struct {
	BucketName        string
	TokenThreshold    int
	URLExpiryHours    int
	SignerServiceAcct string // signs URLs through the IAM Credentials API; empty = storage client default
	Enabled           bool
	TempFileFallback  bool // write to a local temp file when no bucket is usable
}

// Offloads reports whether large results have anywhere to go
func (c *Config) Offloads() bool {
	return c.Enabled || c.TempFileFallback
}

// ErrNoStore is returned when a result is too large but neither the bucket
// nor a temp file may hold it
var ErrNoStore = errors.New("no bucket available and temp file fallback disabled")

// Manager decides which results are too large and stores them
type Manager struct {
	config *Config
	client *storage.Client
	logger *slog.Logger
}

// NewManager creates a manager. Zero thresholds fall back to the defaults.
// The storage client is only created when a bucket is configured.
func NewManager(ctx context.Context, config *Config, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if config.TokenThreshold <= 0 {
		config.TokenThreshold = DefaultTokenThreshold
	}
	if config.URLExpiryHours <= 0 {
		config.URLExpiryHours = DefaultURLExpiryHours
	}

	m := &Manager{config: config, logger: logger}
	if !config.Enabled {
		return m, nil
	}

	client, err := storage.NewClient(ctx, option.WithScopes(storage.ScopeReadWrite))
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	m.client = client
	return m, nil
}

// Close closes the storage client
func (m *Manager) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

func estimateTokens(payload []byte) int {
	return len(payload) / bytesPerToken
}

// UploadResult says where a stored result can be fetched from
type UploadResult struct {
	URL      string
	FileSize int64
	IsTemp   bool // local path rather than a signed URL
}

// objectName builds a unique, tool-scoped object or file name
func objectName(toolName, ext string) string {
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s%s", toolName, timestamp, uuid.NewString()[:8], ext)
}

// writeTempFile saves payload under the OS temp directory
func (m *Manager) writeTempFile(payload []byte, toolName string) (*UploadResult, error) {
	f, err := os.CreateTemp("", "soar-mcp-"+objectName(toolName, "")+"-*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	m.logger.Info("Saved large result to temp file", "path", f.Name(), "size", len(payload))

	return &UploadResult{URL: f.Name(), FileSize: int64(len(payload)), IsTemp: true}, nil
}

func gzipBytes(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress result: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress result: %w", err)
	}
	return buf.Bytes(), nil
}

// uploadObject gzips payload into the bucket and returns a signed GET URL
func (m *Manager) uploadObject(ctx context.Context, payload []byte, toolName string) (*UploadResult, error) {
	compressed, err := gzipBytes(payload)
	if err != nil {
		return nil, err
	}

	object := objectName(toolName, ".json.gz")
	w := m.client.Bucket(m.config.BucketName).Object(object).NewWriter(ctx)
	w.ContentType = "application/json"
	w.ContentEncoding = "gzip"

	if _, err := w.Write(compressed); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to write object %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize object %s: %w", object, err)
	}

	url, err := m.signURL(ctx, object)
	if err != nil {
		return nil, err
	}

	m.logger.Info("Uploaded large result to GCS",
		"object", object,
		"original_size", len(payload),
		"compressed_size", len(compressed))

	return &UploadResult{URL: url, FileSize: int64(len(compressed))}, nil
}

// signURL returns a V4 signed GET URL for object. With a signer service
// account configured, signing goes through IAM Credentials SignBlob so no
// private key has to be present locally.
func (m *Manager) signURL(ctx context.Context, object string) (string, error) {
	opts := &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(time.Duration(m.config.URLExpiryHours) * time.Hour),
		Scheme:  storage.SigningSchemeV4,
	}

	if acct := m.config.SignerServiceAcct; acct != "" {
		iamClient, err := credentials.NewIamCredentialsClient(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to create IAM credentials client: %w", err)
		}
		defer iamClient.Close()

		opts.GoogleAccessID = acct
		opts.SignBytes = func(b []byte) ([]byte, error) {
			resp, err := iamClient.SignBlob(ctx, &credentialspb.SignBlobRequest{
				Name:    "projects/-/serviceAccounts/" + acct,
				Payload: b,
			})
			if err != nil {
				return nil, fmt.Errorf("signBlob failed: %w", err)
			}
			return resp.SignedBlob, nil
		}
	}

	url, err := m.client.Bucket(m.config.BucketName).SignedURL(object, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign URL for %s: %w", object, err)
	}
	return url, nil
}

// store puts payload in the bucket when one is configured, then in a temp
// file when that fallback is enabled
func (m *Manager) store(ctx context.Context, payload []byte, toolName string) (*UploadResult, error) {
	if m.config.Enabled && m.client != nil {
		result, err := m.uploadObject(ctx, payload, toolName)
		if err == nil {
			return result, nil
		}
		m.logger.Warn("Failed to upload to GCS", "tool", toolName, "error", err)
	}
	if !m.config.TempFileFallback {
		return nil, ErrNoStore
	}
	return m.writeTempFile(payload, toolName)
}

// offload stores payload and returns the reference handed to the caller instead
func (m *Manager) offload(ctx context.Context, payload []byte, toolName string, tokens int) (map[string]interface{}, error) {
	m.logger.Info("Tool result exceeds threshold, offloading",
		"tool", toolName,
		"tokens", tokens,
		"threshold", m.config.TokenThreshold)

	result, err := m.store(ctx, payload, toolName)
	if err != nil {
		return nil, fmt.Errorf("failed to save large result: %w", err)
	}

	return map[string]interface{}{
		"resource_link": result.URL,
		"resource_size": result.FileSize,
		"success":       true,
		"reason":        "results too large, see resource_link for content",
		"is_temp_file":  result.IsTemp,
	}, nil
}
