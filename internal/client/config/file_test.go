package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json overlays only present keys", func(t *testing.T) {
		path := writeFile(t, dir, "cfg.json", `{"base_url":"https://json/api","request_timeout":"45s","retry_backoff":1000000,"log_backend":"zerolog"}`)
		setArgs(t, "-config", path)

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "https://json/api", cfg.BaseURL)
		assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
		assert.Equal(t, time.Millisecond, cfg.RetryBackoff)
		assert.Equal(t, "zerolog", cfg.LogBackend)
		assert.Equal(t, 3, cfg.MaxRetries)
		assert.Equal(t, ".iis", cfg.DataDir)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, dir, "cfg.yml", "max_retries: 7\nretry_backoff: 2s\nlog_format: json\n")
		setArgs(t, "-c", path)

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, 7, cfg.MaxRetries)
		assert.Equal(t, 2*time.Second, cfg.RetryBackoff)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "https://iis.bsuir.by/api/v1", cfg.BaseURL)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		setArgs(t)

		cfg := &Config{BaseURL: "keep", MaxRetries: 42}
		parseFile(cfg)

		assert.Equal(t, &Config{BaseURL: "keep", MaxRetries: 42}, cfg)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `{ this is not valid json`)
		setArgs(t, "-c", path)

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("invalid yaml panics", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "max_retries: [1, 2")
		setArgs(t, "-c", path)

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		setArgs(t, "-c", filepath.Join(dir, "absent.json"))

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
