package port

import (
	"context"

	"github.com/bnema/favbuddy/internal/domain/entity"
)

// IconFetcher retrieves an icon for a host from the configured provider.
// It returns an embeddable payload (a data URI) or an error; callers treat
// every error as a permanent negative result for the host.
type IconFetcher interface {
	Fetch(ctx context.Context, host string) (string, error)
}

// IconCacheStore persists icon caches.
type IconCacheStore interface {
	// Load reads the cache at path. A missing or unreadable file yields an
	// empty cache, never an error. Both the native and the exported schema
	// are accepted.
	Load(ctx context.Context, path string) *entity.IconCache

	// Flush atomically writes the cache at path in the native schema.
	Flush(ctx context.Context, path string, cache *entity.IconCache) error

	// ReadImport parses a candidate cache file with the tolerant schema
	// cascade, dropping negative entries.
	ReadImport(ctx context.Context, path string) (*entity.ImportedIconCache, error)

	// WriteExport writes the portable document, creating the destination directory.
	WriteExport(ctx context.Context, path string, doc entity.ExportedIconCache) error
}
