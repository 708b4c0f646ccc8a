package service

import (
	"context"
	"io"
)

// MediaStore defines the interface for persisting uploaded media files in
// a blob bucket. Keys are opaque to callers; the returned URL is what gets
// stored on the media asset row.
type MediaStore interface {
	// Save writes the file contents under key and returns the public URL.
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Delete removes a previously saved file. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket.
	Close() error
}
