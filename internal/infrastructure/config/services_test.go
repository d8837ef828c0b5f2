package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_AddAndUseService(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.AddService("Local", "http://localhost/{domain}"))
	assert.ErrorIs(t, cfg.AddService("local", "http://x/{domain}"), ErrServiceExists)
	assert.Error(t, cfg.AddService("NoPlaceholder", "http://x/icon.png"))

	require.NoError(t, cfg.UseService("2"))
	assert.Equal(t, 2, cfg.Favicon.CurrentService)

	assert.ErrorIs(t, cfg.UseService("missing"), ErrServiceNotFound)
	assert.ErrorIs(t, cfg.UseService("9"), ErrServiceNotFound)
}

func TestConfig_RemoveService(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.AddService("Local", "http://localhost/{domain}"))
	require.NoError(t, cfg.UseService("Local"))

	assert.ErrorIs(t, cfg.RemoveService("Google"), ErrDefaultService)

	require.NoError(t, cfg.RemoveService("DuckDuckGo"))
	assert.Equal(t, 1, cfg.Favicon.CurrentService, "selection follows the shifted service")

	require.NoError(t, cfg.RemoveService("Local"))
	assert.Equal(t, 0, cfg.Favicon.CurrentService, "selection falls back to the default service")
	require.NoError(t, validateConfig(cfg))
}

func TestConfig_ExportImportServices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "services.json")

	src := DefaultConfig()
	require.NoError(t, src.AddService("Local", "http://localhost/{domain}"))
	require.NoError(t, src.UseService("Local"))
	require.NoError(t, src.ExportServices(path))

	dst := DefaultConfig()
	require.NoError(t, dst.ImportServices(path))
	assert.Equal(t, src.Favicon.Services, dst.Favicon.Services)
	assert.Equal(t, 2, dst.Favicon.CurrentService)
}

func TestConfig_ImportServicesRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"services":[{"name":"x","url_template":"nope"}],"current_service_index":0}`), 0o600))

	cfg := DefaultConfig()
	require.Error(t, cfg.ImportServices(path))
	assert.Len(t, cfg.Favicon.Services, 2)
}
