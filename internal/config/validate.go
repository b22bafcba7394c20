package config

import (
	"fmt"
	"strings"
)

// Validate checks constraint violations that normalize cannot repair.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	if strings.TrimSpace(c.Paths.TargetDir) == "" {
		return fmt.Errorf("paths.target_dir: must not be empty")
	}
	if strings.TrimSpace(c.Paths.LogPath) == "" {
		return fmt.Errorf("paths.log_path: must not be empty")
	}
	return nil
}
