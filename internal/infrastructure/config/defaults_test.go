package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.Cache.CheckpointInterval)
	require.Len(t, cfg.Favicon.Services, 2)

	svc, err := cfg.ActiveService()
	require.NoError(t, err)
	assert.Equal(t, "Google", svc.Name)
	assert.True(t, svc.IsDefault)

	timeout, err := cfg.FetchTimeoutDuration()
	require.NoError(t, err)
	assert.Zero(t, timeout)

	require.NoError(t, validateConfig(cfg))
}
