package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sortd/internal/config"
)

// downloadsToken is the literal --target value that resolves to the home
// Downloads folder rather than a relative path named "Downloads".
const downloadsToken = "Downloads"

// resolveTarget picks the directory to organize: the --target flag when set
// (with the Downloads token special-cased), otherwise the configured default.
func resolveTarget(flagValue string, cfg *config.Config) (string, error) {
	value := strings.TrimSpace(flagValue)
	if value == "" {
		return cfg.Paths.TargetDir, nil
	}
	if value == downloadsToken {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, downloadsToken), nil
	}
	return config.ExpandPath(value)
}

// resolveLogPath picks the move log location: --log flag over config.
func resolveLogPath(flagValue string, cfg *config.Config) (string, error) {
	value := strings.TrimSpace(flagValue)
	if value == "" {
		return cfg.Paths.LogPath, nil
	}
	return config.ExpandPath(value)
}
