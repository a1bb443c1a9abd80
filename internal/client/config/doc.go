// Package config loads runtime configuration for the IIS CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in .yaml
//     or .yml are read with yaml.v3, anything else as JSON.
//  3. Environment: a dotenv file (-e, default ".env") is loaded with godotenv,
//     then IIS_BASE_URL, IIS_REQUEST_TIMEOUT, IIS_MAX_RETRIES, IIS_LOG_LEVEL
//     and IIS_DATA_DIR are applied.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   IIS API base URL
//	-t int      request timeout (seconds)
//	-r int      transport retries
//	-l string   log level
//	-d string   data directory
//
// # File schema
//
// Durations can be strings like "30s"; JSON also accepts integer nanoseconds:
//
//	{
//	  "base_url": "https://iis.bsuir.by/api/v1",
//	  "request_timeout": "30s",
//	  "max_retries": 3,
//	  "retry_backoff": "500ms",
//	  "data_dir": ".iis",
//	  "log_level": "info",
//	  "log_backend": "zerolog"
//	}
//
// Primary API
//
//   - type Config                   - holds all settings
//   - func LoadConfig() *Config     - defaults, file, environment, then flags
//   - func (*Config) LoadDefaults() - sets sensible defaults
package config
