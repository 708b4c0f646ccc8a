package storage

import (
	"context"
	"strings"
	"testing"

	"vault/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) *blobStore {
	t.Helper()

	cfg := &config.Config{
		Media:  &config.MediaConfig{BucketURL: "mem://"},
		Public: &config.PublicConfig{BaseURL: "https://aivault.com/"},
	}

	store, err := NewBlobStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store.(*blobStore)
}

func TestBlobStore_SaveReturnsPublicURL(t *testing.T) {
	store := newMemStore(t)

	url, err := store.Save(context.Background(), "biz-1/front.jpg", "image/jpeg", strings.NewReader("fake-jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://aivault.com/media/biz-1/front.jpg", url)

	data, err := store.bucket.ReadAll(context.Background(), "biz-1/front.jpg")
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg-bytes", string(data))
}

func TestBlobStore_DeleteIsIdempotent(t *testing.T) {
	store := newMemStore(t)

	_, err := store.Save(context.Background(), "biz-1/menu.pdf", "application/pdf", strings.NewReader("pdf"))
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "biz-1/menu.pdf"))
	// A second delete of the same key still succeeds.
	assert.NoError(t, store.Delete(context.Background(), "biz-1/menu.pdf"))
}

func TestNewBlobStore_RequiresBucketURL(t *testing.T) {
	_, err := NewBlobStore(context.Background(), &config.Config{})
	assert.Error(t, err)
}
