// Package storage persists uploaded media files in a blob bucket.
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket drivers. The bucket URL scheme selects one at runtime.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"vault/config"
	"vault/internal/domain/service"
)

// blobStore implements service.MediaStore on top of a gocloud blob bucket.
type blobStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBlobStore opens the configured bucket. The returned store must be
// closed on shutdown.
func NewBlobStore(ctx context.Context, cfg *config.Config) (service.MediaStore, error) {
	if cfg.Media == nil || cfg.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open media bucket")
	}

	baseURL := ""
	if cfg.Public != nil {
		baseURL = strings.TrimSuffix(cfg.Public.BaseURL, "/")
	}

	return &blobStore{
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Save writes the file contents under key and returns the public URL.
func (s *blobStore) Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		// Close discards the partial write on error paths.
		_ = w.Close()

		return "", errors.Wrap(err, "write blob")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "commit blob")
	}

	return s.baseURL + "/media/" + key, nil
}

// Delete removes a previously saved file. Missing keys are not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "delete blob")
	}

	return nil
}

// Close releases the underlying bucket.
func (s *blobStore) Close() error {
	return s.bucket.Close()
}
