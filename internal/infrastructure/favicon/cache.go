package favicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bnema/favbuddy/internal/application/port"
	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/logging"
)

const (
	// CacheFileName is the well-known cache file name under the data directory.
	CacheFileName = "favicon_cache.json"
	// File permissions for the favicon cache.
	diskCacheDirPerm  = 0o750
	diskCacheFilePerm = 0o600
)

// FileStore persists icon caches as JSON files.
type FileStore struct {
	fs afero.Fs
}

var _ port.IconCacheStore = (*FileStore)(nil)

// NewFileStore creates a store on the given filesystem.
// A nil fs uses the OS filesystem.
func NewFileStore(fsys afero.Fs) *FileStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileStore{fs: fsys}
}

// Load reads the cache at path. Missing or corrupt files yield an empty cache.
func (s *FileStore) Load(ctx context.Context, path string) *entity.IconCache {
	log := logging.FromContext(ctx)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("failed to read favicon cache, starting empty")
		}
		return entity.NewIconCache()
	}

	schema, entries, err := DecodeCacheDocument(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("favicon cache is corrupt, starting empty")
		return entity.NewIconCache()
	}

	cache := entity.NewIconCacheFrom(entries)
	log.Debug().Str("path", path).Str("schema", string(schema)).Int("entries", cache.Len()).Msg("favicon cache loaded")
	return cache
}

// Flush writes the cache as {host: payload | null} via a temp file and rename.
func (s *FileStore) Flush(ctx context.Context, path string, cache *entity.IconCache) error {
	native := make(map[string]*string, cache.Len())
	for host, e := range cache.Entries() {
		if e.Status == entity.IconResolved {
			payload := e.Payload
			native[host] = &payload
			continue
		}
		native[host] = nil
	}

	data, err := json.MarshalIndent(native, "", "  ")
	if err != nil {
		return fmt.Errorf("encode favicon cache: %w", err)
	}

	if err := s.writeAtomic(path, data); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Str("path", path).Int("entries", len(native)).Msg("favicon cache flushed")
	return nil
}

// ReadImport parses a candidate file and keeps only positive entries.
func (s *FileStore) ReadImport(ctx context.Context, path string) (*entity.ImportedIconCache, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	schema, entries, err := DecodeCacheDocument(data)
	if err != nil {
		return nil, err
	}

	imported := &entity.ImportedIconCache{
		Schema:  string(schema),
		Entries: make(map[string]string, len(entries)),
	}
	for host, e := range entries {
		if e.Status == entity.IconResolved {
			imported.Entries[host] = e.Payload
		}
	}

	logging.FromContext(ctx).Debug().
		Str("path", path).
		Str("schema", imported.Schema).
		Int("entries", len(imported.Entries)).
		Msg("cache file accepted")
	return imported, nil
}

// WriteExport writes the portable document, creating the destination directory.
func (s *FileStore) WriteExport(_ context.Context, path string, doc entity.ExportedIconCache) error {
	if doc.FaviconURLs == nil {
		doc.FaviconURLs = map[string]string{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), diskCacheDirPerm); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, data, diskCacheFilePerm); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// writeAtomic writes data next to path and renames it into place.
func (s *FileStore) writeAtomic(path string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), diskCacheDirPerm); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tempPath := path + ".tmp"
	if err := afero.WriteFile(s.fs, tempPath, data, diskCacheFilePerm); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}

	if err := s.fs.Rename(tempPath, path); err != nil {
		_ = s.fs.Remove(tempPath)
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}
