package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/iisclient/internal/flagx"
)

// Environment variables read by parseEnv.
const (
	EnvBaseURL        = "IIS_BASE_URL"
	EnvRequestTimeout = "IIS_REQUEST_TIMEOUT"
	EnvMaxRetries     = "IIS_MAX_RETRIES"
	EnvLogLevel       = "IIS_LOG_LEVEL"
	EnvDataDir        = "IIS_DATA_DIR"
)

// parseEnv loads the dotenv file named by -e (".env" by default, a missing
// file is fine) into the process environment without overriding variables
// that are already set, then overlays cfg with the IIS_* variables.
//
// IIS_REQUEST_TIMEOUT accepts a Go duration ("45s") or whole seconds.
// Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFileFlag()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		d, err := parseSecondsOrDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvRequestTimeout, err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvMaxRetries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", EnvMaxRetries, err))
		}
		cfg.MaxRetries = n
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
}

func parseSecondsOrDuration(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}
