// Package storage keeps uploaded evidence files on local disk or in Google
// Cloud Storage and hands back the URL they are served from.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/cpdtrack/cpd-backend/internal/config"
	"github.com/cpdtrack/cpd-backend/internal/domain"
)

// EvidenceStore persists an object under key and returns its public URL.
// Ping reports whether the backing store is reachable.
type EvidenceStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Ping(ctx context.Context) error
}

// Open builds the store selected by cfg.Driver. The returned close function
// releases driver resources and is never nil.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (EvidenceStore, func() error, error) {
	switch cfg.Driver {
	case config.StorageLocal, "":
		s, err := NewLocal(cfg.LocalDir, cfg.PublicBaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	case config.StorageGCS:
		s, err := NewGCS(ctx, cfg.GCSBucket, cfg.PublicBaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// cleanKey rejects keys that would escape the storage root.
func cleanKey(key string) (string, error) {
	k := path.Clean(strings.TrimSpace(key))
	if k == "." || k == "" || strings.HasPrefix(k, "/") || k == ".." || strings.HasPrefix(k, "../") {
		return "", domain.NewValidationError("key", "invalid object key")
	}
	return k, nil
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
