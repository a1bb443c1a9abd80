package config

import (
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/iisclient/internal/buildinfo"
)

// Config holds runtime settings for the IIS CLI.
//
// Fields:
//   - BaseURL: IIS API root, endpoints are appended to it.
//   - RequestTimeout: per-attempt HTTP timeout.
//   - MaxRetries, RetryBackoff: transport retry policy for network failures.
//   - DataDir, DatabaseFile: where the local SQLite database lives.
//   - LogLevel, LogFormat, LogBackend: see logging.New.
//   - UserAgent: sent on every request.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	DataDir        string
	DatabaseFile   string
	LogLevel       string
	LogFormat      string
	LogBackend     string
	UserAgent      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://iis.bsuir.by/api/v1"
	c.RequestTimeout = 30 * time.Second
	c.MaxRetries = 3
	c.RetryBackoff = 500 * time.Millisecond
	c.DataDir = ".iis"
	c.DatabaseFile = "iis.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogBackend = "slog"
	c.UserAgent = "iisclient/" + buildinfo.Version()
}

// DatabasePath joins DataDir and DatabaseFile.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
