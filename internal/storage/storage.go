package storage

import (
	"context"
	"io"
	"time"
)

// Storage abstracts where uploaded photos live. The local implementation
// stands in for a cloud bucket by issuing URLs that point back at this
// server's upload/download handlers.
type Storage interface {
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error)
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)
	FileExists(ctx context.Context, key string) (bool, int64, error)
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the local HTTP handlers.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}
