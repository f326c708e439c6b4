package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicHost = "https://storage.googleapis.com"

// GCSStore writes evidence to a Cloud Storage bucket.
type GCSStore struct {
	client  *gcs.Client
	bucket  string
	baseURL string
	log     *slog.Logger
}

// NewGCS connects to Cloud Storage using application default credentials
// unless opts override them. An empty baseURL serves objects from the public
// storage host.
func NewGCS(ctx context.Context, bucket, baseURL string, logger *slog.Logger, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage: gcs bucket is required")
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}

	return newGCSStore(client, bucket, baseURL, logger), nil
}

func newGCSStore(client *gcs.Client, bucket, baseURL string, logger *slog.Logger) *GCSStore {
	if baseURL == "" {
		baseURL = gcsPublicHost + "/" + bucket
	}
	return &GCSStore{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		log:     logger.With("adapter", "storage.gcs"),
	}
}

// Put uploads body as bucket/key.
func (s *GCSStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	w := s.client.Bucket(s.bucket).Object(k).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "private, max-age=0"

	n, err := io.Copy(w, body)
	if err != nil {
		w.Close()
		return "", fmt.Errorf("upload gcs object %s: %w", k, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize gcs object %s: %w", k, err)
	}

	s.log.DebugContext(ctx, "object stored",
		slog.String("bucket", s.bucket),
		slog.String("key", k),
		slog.Int64("bytes", n),
	)
	return joinURL(s.baseURL, k), nil
}

// Ping reads the bucket attributes.
func (s *GCSStore) Ping(ctx context.Context) error {
	if _, err := s.client.Bucket(s.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("gcs bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
