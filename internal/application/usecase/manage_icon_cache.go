package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/favbuddy/internal/application/port"
	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/logging"
)

// ErrFileNotFound is returned when an import or validate candidate does not exist.
var ErrFileNotFound = errors.New("file not found")

const exportTimestampLayout = "2006-01-02-150405"

// ExportFileName returns the default name of a cache export made at now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("favbuddy-favicon_cache-%s.json", now.Format(exportTimestampLayout))
}

// ManageIconCacheUseCase handles cache export, import, validation and inspection.
type ManageIconCacheUseCase struct {
	store     port.IconCacheStore
	files     port.FileSystem
	cachePath string
}

// NewManageIconCacheUseCase creates a cache management use case for the cache at cachePath.
func NewManageIconCacheUseCase(store port.IconCacheStore, files port.FileSystem, cachePath string) *ManageIconCacheUseCase {
	return &ManageIconCacheUseCase{
		store:     store,
		files:     files,
		cachePath: cachePath,
	}
}

// CachePath returns the live cache location.
func (uc *ManageIconCacheUseCase) CachePath() string {
	return uc.cachePath
}

// ExportResult describes a written export.
type ExportResult struct {
	Path  string
	Count int
}

// Export writes the resolved entries of the live cache to path.
// An empty or missing cache produces an empty document.
func (uc *ManageIconCacheUseCase) Export(ctx context.Context, path string) (*ExportResult, error) {
	log := logging.FromContext(ctx)

	cache := uc.store.Load(ctx, uc.cachePath)
	doc := entity.ExportedIconCache{FaviconURLs: cache.Resolved()}

	if err := uc.store.WriteExport(ctx, path, doc); err != nil {
		return nil, fmt.Errorf("failed to export icon cache: %w", err)
	}

	log.Info().Str("path", path).Int("count", len(doc.FaviconURLs)).Msg("icon cache exported")
	return &ExportResult{Path: path, Count: len(doc.FaviconURLs)}, nil
}

// Validate parses the candidate file without touching the live cache.
func (uc *ManageIconCacheUseCase) Validate(ctx context.Context, path string) (*entity.ImportedIconCache, error) {
	exists, err := uc.files.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	imported, err := uc.store.ReadImport(ctx, path)
	if err != nil {
		return nil, err
	}
	return imported, nil
}

// ImportResult describes a merged import.
type ImportResult struct {
	Path   string
	Schema string
	Count  int
}

// Import merges the resolved entries of path into the live cache and persists it.
// Imported hosts overwrite existing entries; other entries are kept.
func (uc *ManageIconCacheUseCase) Import(ctx context.Context, path string) (*ImportResult, error) {
	log := logging.FromContext(ctx)

	imported, err := uc.Validate(ctx, path)
	if err != nil {
		return nil, err
	}

	cache := uc.store.Load(ctx, uc.cachePath)
	for host, payload := range imported.Entries {
		cache.Put(host, entity.ResolvedIcon(payload))
	}

	if err := uc.store.Flush(ctx, uc.cachePath, cache); err != nil {
		return nil, fmt.Errorf("failed to save merged icon cache: %w", err)
	}

	log.Info().
		Str("path", path).
		Str("schema", imported.Schema).
		Int("count", len(imported.Entries)).
		Msg("icon cache imported")
	return &ImportResult{Path: path, Schema: imported.Schema, Count: len(imported.Entries)}, nil
}

// CacheStats summarizes the live cache.
type CacheStats struct {
	Path     string
	Resolved int
	Failed   int
}

// Total returns the number of cached hosts.
func (s CacheStats) Total() int {
	return s.Resolved + s.Failed
}

// Stats counts the entries of the live cache.
func (uc *ManageIconCacheUseCase) Stats(ctx context.Context) CacheStats {
	resolved, failed := uc.store.Load(ctx, uc.cachePath).Counts()
	return CacheStats{Path: uc.cachePath, Resolved: resolved, Failed: failed}
}

// Forget removes hosts from the live cache so the next run fetches them again.
// It returns the number of hosts that were present.
func (uc *ManageIconCacheUseCase) Forget(ctx context.Context, hosts []string) (int, error) {
	cache := uc.store.Load(ctx, uc.cachePath)

	removed := 0
	for _, host := range hosts {
		if cache.Remove(strings.ToLower(strings.TrimSpace(host))) {
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	if err := uc.store.Flush(ctx, uc.cachePath, cache); err != nil {
		return 0, fmt.Errorf("failed to save icon cache: %w", err)
	}

	logging.FromContext(ctx).Info().Int("count", removed).Msg("hosts removed from icon cache")
	return removed, nil
}
