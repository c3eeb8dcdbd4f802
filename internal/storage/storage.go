// Package storage persists uploaded profile pictures behind a backend-neutral
// interface. Local disk is the default; MinIO covers deployments where the
// container filesystem is ephemeral.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aquamate-app/aquamate-backend/internal/config"
)

// ErrNotFound reports that no object exists under the requested name.
var ErrNotFound = errors.New("object not found")

// ObjectStorage defines the operations the upload flow needs from a backend.
type ObjectStorage interface {
	// Init prepares the backing store (creates the directory or bucket).
	Init(ctx context.Context) error
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}

// New selects a backend from config.
func New(cfg *config.Config) (ObjectStorage, error) {
	switch cfg.StorageBackend {
	case "minio":
		return NewMinioStorage(cfg)
	case "local":
		return NewLocalStorage(cfg.UploadDir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
