package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradervijeth/Wiki-Forge/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "en", cfg.WikiLanguage)
	assert.Equal(t, "WikiForge/1.0", cfg.WikiUserAgent)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 30, cfg.FetchTimeout)
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigin)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OUTPUT_DIR", "/tmp/datasets")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/tmp/datasets", cfg.OutputDir)
}

func TestAPIBaseURL(t *testing.T) {
	cfg := &config.Config{WikiLanguage: "de"}
	assert.Equal(t, "https://de.wikipedia.org/w/api.php", cfg.APIBaseURL())

	cfg.WikiAPIURL = "http://localhost:8888/w/api.php"
	assert.Equal(t, "http://localhost:8888/w/api.php", cfg.APIBaseURL())
}
