package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"sortd/internal/logging"
	"sortd/internal/testsupport"
)

func TestNewFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	// Test configs run at error level to keep suites quiet.
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("info should be suppressed at error level")
	}
}

func TestNewConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("moved file", logging.String("file", "photo.jpg"), logging.String("category", "Images"))

	out := buf.String()
	for _, want := range []string{"INF", "moved file", "file=photo.jpg", "category=Images"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q: %s", want, out)
		}
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("should be suppressed")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be suppressed") {
		t.Errorf("info line leaked through warn level: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("organized", logging.Int("files_moved", 4))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("json output did not parse: %v: %s", err, buf.String())
	}
	if payload["msg"] != "organized" {
		t.Errorf("msg = %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Errorf("level = %v", payload["level"])
	}
	if payload["files_moved"] != float64(4) {
		t.Errorf("files_moved = %v", payload["files_moved"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestComponentLoggerTagsOutput(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logging.NewComponentLogger(base, "organizer").Info("starting")

	if !strings.Contains(buf.String(), "component=organizer") {
		t.Errorf("component attr missing: %s", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	// Must not panic and must report disabled at every level.
	logger.Error("discarded", logging.Error(nil))
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("nop logger should be disabled")
	}
}
