package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("process environment", func(t *testing.T) {
		clearEnv(t)
		t.Chdir(t.TempDir())
		setArgs(t)
		t.Setenv(EnvBaseURL, "https://env/api")
		t.Setenv(EnvRequestTimeout, "12")
		t.Setenv(EnvMaxRetries, "0")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "https://env/api", cfg.BaseURL)
		assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 0, cfg.MaxRetries)
	})

	t.Run("duration syntax", func(t *testing.T) {
		clearEnv(t)
		t.Chdir(t.TempDir())
		setArgs(t)
		t.Setenv(EnvRequestTimeout, "1m30s")

		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
	})

	t.Run("dotenv file selected with -e", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		t.Chdir(dir)
		path := writeFile(t, dir, "custom.env", "IIS_LOG_LEVEL=debug\n")
		setArgs(t, "-e", path)

		cfg := &Config{LogLevel: "info"}
		parseEnv(cfg)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("dotenv does not override set variables", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, dir, ".env", "IIS_DATA_DIR=/from/dotenv\n")
		t.Setenv(EnvDataDir, "/from/process")
		setArgs(t)

		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, "/from/process", cfg.DataDir)
	})

	t.Run("malformed retries panic", func(t *testing.T) {
		clearEnv(t)
		t.Chdir(t.TempDir())
		setArgs(t)
		t.Setenv(EnvMaxRetries, "many")

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
