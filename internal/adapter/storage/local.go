package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// LocalStore writes evidence below a directory. Intended for development.
type LocalStore struct {
	dir     string
	baseURL string
	log     *slog.Logger
}

// NewLocal creates dir if needed and returns a store serving from baseURL.
func NewLocal(dir, baseURL string, logger *slog.Logger) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: local dir is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: baseURL,
		log:     logger.With("adapter", "storage.local"),
	}, nil
}

// Put writes body atomically to dir/key.
func (s *LocalStore) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	k, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(k))
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	n, err := io.Copy(tmp, body)
	if err != nil {
		tmp.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close object: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("store object: %w", err)
	}

	s.log.DebugContext(ctx, "object stored",
		slog.String("key", k),
		slog.String("content_type", contentType),
		slog.Int64("bytes", n),
	)
	return joinURL(s.baseURL, k), nil
}

// Ping checks that the storage directory still exists.
func (s *LocalStore) Ping(context.Context) error {
	fi, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat storage dir: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("storage dir %s is not a directory", s.dir)
	}
	return nil
}

// Handler serves stored files. Mount it with the path prefix of baseURL
// stripped.
func (s *LocalStore) Handler() http.Handler {
	return http.FileServer(http.Dir(s.dir))
}
