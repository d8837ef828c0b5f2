package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 50, mgr.viper.GetInt("cache.checkpoint_interval"))
	assert.Equal(t, "0s", mgr.viper.GetString("favicon.fetch_timeout"))
}

func TestManager_LoadCreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", "favbuddy", "config.toml")
	assert.Equal(t, configFile, mgr.GetConfigFile())
	_, err = os.Stat(configFile)
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, filepath.Join(root, "data", "favbuddy", "favicon_cache.json"), cfg.Cache.Path)
	assert.Equal(t, filepath.Join(root, "data", "favbuddy", "favbuddy.db"), cfg.Database.Path)
	require.Len(t, cfg.Favicon.Services, 2)
	assert.Equal(t, "DuckDuckGo", cfg.Favicon.Services[1].Name)
}

func TestManager_LoadReadsFile(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	content := `language = 'zh-CN'

[cache]
path = '/tmp/icons.json'
checkpoint_interval = 10

[favicon]
current_service = 1
fetch_timeout = '5s'

[[favicon.services]]
name = 'Google'
url_template = 'https://www.google.com/s2/favicons?sz=64&domain={domain}'
is_default = true

[[favicon.services]]
name = 'Local'
url_template = 'http://localhost:8080/{domain}.png'
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o600))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "zh-CN", cfg.Language)
	assert.Equal(t, "/tmp/icons.json", cfg.Cache.Path)
	assert.Equal(t, 10, cfg.Cache.CheckpointInterval)

	svc, err := cfg.ActiveService()
	require.NoError(t, err)
	assert.Equal(t, "Local", svc.Name)
}

func TestManager_LoadEnvOverride(t *testing.T) {
	isolateXDG(t)
	t.Setenv("FAVBUDDY_CACHE_CHECKPOINT_INTERVAL", "7")
	t.Setenv("FAVBUDDY_LOG_LEVEL", "debug")

	mgr, err := NewManagerForFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, 7, mgr.Get().Cache.CheckpointInterval)
	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestManager_LoadInvalidFile(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[cache]\ncheckpoint_interval = 0\n"), 0o600))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.checkpoint_interval")
}

func TestManager_SaveRoundTrip(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "nested", "config.toml")

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	require.NoError(t, cfg.AddService("Local", "http://localhost/{domain}"))
	require.NoError(t, cfg.UseService("local"))
	require.NoError(t, mgr.Save(cfg))

	reloaded, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	svc, err := reloaded.Get().ActiveService()
	require.NoError(t, err)
	assert.Equal(t, "Local", svc.Name)
	assert.Len(t, reloaded.Get().Favicon.Services, 3)
}
