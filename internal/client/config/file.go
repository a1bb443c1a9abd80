package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/iisclient/internal/flagx"
	"github.com/dmitrijs2005/iisclient/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations go
// through timex.Duration so they may be "30s" or integer nanoseconds.
type jsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	MaxRetries     int            `json:"max_retries"`
	RetryBackoff   timex.Duration `json:"retry_backoff"`
	DataDir        string         `json:"data_dir"`
	DatabaseFile   string         `json:"database_file"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
	LogBackend     string         `json:"log_backend"`
	UserAgent      string         `json:"user_agent"`
}

// yamlConfig mirrors jsonConfig. yaml.v3 decodes "30s" into time.Duration
// directly.
type yamlConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	MaxRetries     int           `yaml:"max_retries"`
	RetryBackoff   time.Duration `yaml:"retry_backoff"`
	DataDir        string        `yaml:"data_dir"`
	DatabaseFile   string        `yaml:"database_file"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	LogBackend     string        `yaml:"log_backend"`
	UserAgent      string        `yaml:"user_agent"`
}

// parseFile overlays cfg with the file named by -c/-config. Keys missing from
// the file keep their current value. The format is picked by extension:
// .yaml/.yml for YAML, anything else is read as JSON.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := applyYAML(cfg, data); err != nil {
			panic(fmt.Errorf("parse %s: %w", path, err))
		}
	default:
		if err := applyJSON(cfg, data); err != nil {
			panic(fmt.Errorf("parse %s: %w", path, err))
		}
	}
}

func applyJSON(cfg *Config, data []byte) error {
	jc := jsonConfig{
		BaseURL:        cfg.BaseURL,
		RequestTimeout: timex.Duration{Duration: cfg.RequestTimeout},
		MaxRetries:     cfg.MaxRetries,
		RetryBackoff:   timex.Duration{Duration: cfg.RetryBackoff},
		DataDir:        cfg.DataDir,
		DatabaseFile:   cfg.DatabaseFile,
		LogLevel:       cfg.LogLevel,
		LogFormat:      cfg.LogFormat,
		LogBackend:     cfg.LogBackend,
		UserAgent:      cfg.UserAgent,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	cfg.BaseURL = jc.BaseURL
	cfg.RequestTimeout = jc.RequestTimeout.Duration
	cfg.MaxRetries = jc.MaxRetries
	cfg.RetryBackoff = jc.RetryBackoff.Duration
	cfg.DataDir = jc.DataDir
	cfg.DatabaseFile = jc.DatabaseFile
	cfg.LogLevel = jc.LogLevel
	cfg.LogFormat = jc.LogFormat
	cfg.LogBackend = jc.LogBackend
	cfg.UserAgent = jc.UserAgent
	return nil
}

func applyYAML(cfg *Config, data []byte) error {
	yc := yamlConfig{
		BaseURL:        cfg.BaseURL,
		RequestTimeout: cfg.RequestTimeout,
		MaxRetries:     cfg.MaxRetries,
		RetryBackoff:   cfg.RetryBackoff,
		DataDir:        cfg.DataDir,
		DatabaseFile:   cfg.DatabaseFile,
		LogLevel:       cfg.LogLevel,
		LogFormat:      cfg.LogFormat,
		LogBackend:     cfg.LogBackend,
		UserAgent:      cfg.UserAgent,
	}
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return err
	}

	cfg.BaseURL = yc.BaseURL
	cfg.RequestTimeout = yc.RequestTimeout
	cfg.MaxRetries = yc.MaxRetries
	cfg.RetryBackoff = yc.RetryBackoff
	cfg.DataDir = yc.DataDir
	cfg.DatabaseFile = yc.DatabaseFile
	cfg.LogLevel = yc.LogLevel
	cfg.LogFormat = yc.LogFormat
	cfg.LogBackend = yc.LogBackend
	cfg.UserAgent = yc.UserAgent
	return nil
}
