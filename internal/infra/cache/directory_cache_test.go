package cache

import (
	"testing"
	"time"

	"vault/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(ttl time.Duration) (*directoryCache, *time.Time) {
	current := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	cache := &directoryCache{
		ttl: ttl,
		now: func() time.Time { return current },
	}

	return cache, &current
}

func snapshot(names ...string) []*entity.DirectoryEntry {
	entries := make([]*entity.DirectoryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, &entity.DirectoryEntry{
			Business: &entity.BusinessProfile{Name: name},
		})
	}

	return entries
}

func TestDirectoryCache_EmptyRead(t *testing.T) {
	cache, _ := newTestCache(time.Minute)

	entries, gen, ok := cache.Read()
	assert.Nil(t, entries)
	assert.Equal(t, uint64(0), gen)
	assert.False(t, ok)
}

func TestDirectoryCache_WriteThenRead(t *testing.T) {
	cache, _ := newTestCache(time.Minute)

	_, gen, ok := cache.Read()
	require.False(t, ok)

	assert.True(t, cache.Write(snapshot("Joe's Cafe"), gen))

	entries, _, ok := cache.Read()
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Joe's Cafe", entries[0].Business.Name)
}

func TestDirectoryCache_Expiry(t *testing.T) {
	cache, current := newTestCache(5 * time.Minute)

	_, gen, _ := cache.Read()
	require.True(t, cache.Write(snapshot("Joe's Cafe"), gen))

	// Just before the deadline the entry is still served.
	*current = current.Add(5*time.Minute - time.Second)
	_, _, ok := cache.Read()
	assert.True(t, ok)

	// At the deadline the entry is gone.
	*current = current.Add(time.Second)
	entries, _, ok := cache.Read()
	assert.False(t, ok)
	assert.Nil(t, entries)
}

func TestDirectoryCache_InvalidateDropsSnapshot(t *testing.T) {
	cache, _ := newTestCache(time.Minute)

	_, gen, _ := cache.Read()
	require.True(t, cache.Write(snapshot("Joe's Cafe"), gen))

	cache.Invalidate()

	_, _, ok := cache.Read()
	assert.False(t, ok)
}

func TestDirectoryCache_StaleWriteLosesRace(t *testing.T) {
	cache, _ := newTestCache(time.Minute)

	// A rebuild starts from an empty slot.
	_, gen, ok := cache.Read()
	require.False(t, ok)

	// While the rebuild is in flight a business changes and invalidates.
	cache.Invalidate()

	// The stale snapshot must not be installed.
	assert.False(t, cache.Write(snapshot("stale"), gen))

	_, _, ok = cache.Read()
	assert.False(t, ok)
}

func TestDirectoryCache_WriteAfterExpiryStillLands(t *testing.T) {
	cache, current := newTestCache(time.Minute)

	_, gen, _ := cache.Read()
	require.True(t, cache.Write(snapshot("old"), gen))

	// TTL passes without any invalidation.
	*current = current.Add(2 * time.Minute)
	_, gen2, ok := cache.Read()
	require.False(t, ok)

	// A fresh rebuild under the unchanged generation succeeds.
	assert.True(t, cache.Write(snapshot("fresh"), gen2))

	entries, _, ok := cache.Read()
	require.True(t, ok)
	assert.Equal(t, "fresh", entries[0].Business.Name)
}
