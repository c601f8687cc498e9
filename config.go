package flogger

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the default TOML config file for the service.
const ConfigFileName = "flogger.toml"

// Config is the service configuration. All fields are fixed once the
// service is initialized.
type Config struct {
	// Level is the minimum zerolog level for the backing logger.
	Level string `toml:"level" validate:"required"`

	// WithTimestamp stamps every emitted entry.
	WithTimestamp bool `toml:"with_timestamp"`

	// ConsoleLogging writes human-readable output to stderr.
	ConsoleLogging bool `toml:"console_logging"`

	// FileLogging writes to a rolling log file under the working dir.
	FileLogging bool `toml:"file_logging"`

	// RelLogFileDir is the log directory relative to the working dir.
	RelLogFileDir string `toml:"rel_log_file_dir"`

	LogFileMaxBackups int  `toml:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int  `toml:"log_file_max_age_days" validate:"gte=0"`
	LogFileMaxSizeMB  int  `toml:"log_file_max_size_mb" validate:"gte=0"`
	LogFileCompress   bool `toml:"log_file_compress"`

	// PoolWorkers and PoolQueue size the shared flush pool; zero means the
	// package defaults.
	PoolWorkers int `toml:"pool_workers" validate:"gte=0"`
	PoolQueue   int `toml:"pool_queue" validate:"gte=0"`

	// ShutdownTimeoutMS bounds how long Close waits for in-flight flushes.
	ShutdownTimeoutMS int `toml:"shutdown_timeout_ms" validate:"gte=0"`
}

// DefaultConfig returns a console-only configuration at info level.
func DefaultConfig() Config {
	return Config{
		Level:             "info",
		WithTimestamp:     true,
		ConsoleLogging:    true,
		RelLogFileDir:     "logs",
		LogFileMaxBackups: 3,
		LogFileMaxAgeDays: 7,
		LogFileMaxSizeMB:  10,
		ShutdownTimeoutMS: defaultShutdownTimeoutMS,
	}
}

// LoadConfig reads a TOML config file. Fields absent from the file keep the
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}
