package favicon_test

import (
	"context"
	"encoding/json"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/infrastructure/favicon"
)

const cachePath = "/data/favbuddy/favicon_cache.json"

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := favicon.NewFileStore(afero.NewMemMapFs())

	cache := store.Load(context.Background(), cachePath)
	require.NotNil(t, cache)
	assert.Zero(t, cache.Len())
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, cachePath, []byte("{broken"), 0o600))

	cache := favicon.NewFileStore(mfs).Load(context.Background(), cachePath)
	assert.Zero(t, cache.Len())
}

func TestFileStore_FlushAndLoad(t *testing.T) {
	mfs := afero.NewMemMapFs()
	store := favicon.NewFileStore(mfs)
	ctx := context.Background()

	cache := entity.NewIconCache()
	cache.Put("a.example", entity.ResolvedIcon("x"))
	cache.Put("b.example", entity.FailedIcon())

	require.NoError(t, store.Flush(ctx, cachePath, cache))

	data, err := afero.ReadFile(mfs, cachePath)
	require.NoError(t, err)
	var native map[string]*string
	require.NoError(t, json.Unmarshal(data, &native))
	require.Contains(t, native, "b.example")
	assert.Nil(t, native["b.example"])
	require.NotNil(t, native["a.example"])
	assert.Equal(t, "x", *native["a.example"])

	exists, err := afero.Exists(mfs, cachePath+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)

	loaded := store.Load(ctx, cachePath)
	assert.Equal(t, cache.Entries(), loaded.Entries())
}

func TestFileStore_LoadAcceptsExportedDocument(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, cachePath, []byte(`{"favicon_urls":{"a.example":"x"}}`), 0o600))

	cache := favicon.NewFileStore(mfs).Load(context.Background(), cachePath)
	assert.Equal(t, entity.ResolvedIcon("x"), cache.Lookup("a.example"))
}

func TestFileStore_ExportImportRoundTrip(t *testing.T) {
	mfs := afero.NewMemMapFs()
	store := favicon.NewFileStore(mfs)
	ctx := context.Background()
	exportPath := "/exports/nested/cache.json"

	doc := entity.ExportedIconCache{FaviconURLs: map[string]string{"A": "x", "B": "y"}}
	require.NoError(t, store.WriteExport(ctx, exportPath, doc))

	imported, err := store.ReadImport(ctx, exportPath)
	require.NoError(t, err)
	assert.Equal(t, string(favicon.SchemaExported), imported.Schema)
	assert.Equal(t, map[string]string{"A": "x", "B": "y"}, imported.Entries)
}

func TestFileStore_WriteExportEmpty(t *testing.T) {
	mfs := afero.NewMemMapFs()
	store := favicon.NewFileStore(mfs)

	require.NoError(t, store.WriteExport(context.Background(), "/out/empty.json", entity.ExportedIconCache{}))

	data, err := afero.ReadFile(mfs, "/out/empty.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"favicon_urls":{}}`, string(data))
}

func TestFileStore_ReadImportMissing(t *testing.T) {
	store := favicon.NewFileStore(afero.NewMemMapFs())

	_, err := store.ReadImport(context.Background(), "/nope.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileStore_ReadImportInvalid(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, "/bad.json", []byte(`[1]`), 0o600))

	_, err := favicon.NewFileStore(mfs).ReadImport(context.Background(), "/bad.json")
	assert.ErrorIs(t, err, favicon.ErrInvalidCacheFile)
}

func TestFileStore_ReadImportDropsNegatives(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, "/in.json", []byte(`{"example.com":null}`), 0o600))

	imported, err := favicon.NewFileStore(mfs).ReadImport(context.Background(), "/in.json")
	require.NoError(t, err)
	assert.Empty(t, imported.Entries)
}
