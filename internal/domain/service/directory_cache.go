package service

import (
	"vault/internal/domain/entity"
)

// DirectoryCache defines the interface for the public directory snapshot
// cache. Implementations hold at most one snapshot and hand out a
// generation token on reads so that a writer can detect an invalidation
// that raced with its rebuild.
type DirectoryCache interface {
	// Read returns the cached snapshot and the current generation token.
	// ok is false when the slot is empty or the entry has expired; the
	// returned token is still valid for a subsequent Write.
	Read() (entries []*entity.DirectoryEntry, gen uint64, ok bool)

	// Write installs a freshly built snapshot. The write is discarded and
	// false is returned when the generation has moved since the matching
	// Read, meaning an invalidation happened while the snapshot was being
	// assembled.
	Write(entries []*entity.DirectoryEntry, gen uint64) bool

	// Invalidate drops the cached snapshot and advances the generation.
	Invalidate()
}
