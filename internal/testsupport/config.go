package testsupport

import (
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

// NewConfig returns a config pointing at throwaway target and log locations
// under t.TempDir.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.TargetDir = filepath.Join(dir, "target")
	cfg.Paths.LogPath = filepath.Join(dir, "organization_log.csv")
	cfg.Logging.Level = "error"
	return &cfg
}
