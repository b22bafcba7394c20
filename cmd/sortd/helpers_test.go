package main

import (
	"os"
	"path/filepath"
	"testing"

	"sortd/internal/config"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.TargetDir = "/configured/target"
	cfg.Paths.LogPath = "/configured/organization_log.csv"
	return &cfg
}

func TestResolveTargetDefaultsToConfig(t *testing.T) {
	got, err := resolveTarget("", defaultConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if got != "/configured/target" {
		t.Fatalf("resolveTarget = %q", got)
	}
}

func TestResolveTargetDownloadsToken(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}
	got, err := resolveTarget("Downloads", defaultConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "Downloads") {
		t.Fatalf("resolveTarget(Downloads) = %q", got)
	}
}

func TestResolveTargetExplicitPath(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveTarget(dir, defaultConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Fatalf("resolveTarget(%q) = %q", dir, got)
	}
}

func TestResolveLogPathFlagWins(t *testing.T) {
	cfg := defaultConfig(t)

	got, err := resolveLogPath("", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/configured/organization_log.csv" {
		t.Fatalf("resolveLogPath default = %q", got)
	}

	dir := t.TempDir()
	flagged := filepath.Join(dir, "moves.csv")
	got, err = resolveLogPath(flagged, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got != flagged {
		t.Fatalf("resolveLogPath flag = %q", got)
	}
}
