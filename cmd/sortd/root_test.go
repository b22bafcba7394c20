package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sortd/internal/testsupport"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("sortd %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestOrganizeThenUndoRoundTrip(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "downloads")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "organization_log.csv")

	testsupport.WriteFile(t, target, "photo.jpg", []byte("image"))
	testsupport.WriteFile(t, target, "notes.txt", []byte("text"))

	out := runCommand(t, "--target", target, "--log", logPath)
	if !strings.Contains(out, "Organized 2 files") {
		t.Fatalf("unexpected organize output:\n%s", out)
	}
	testsupport.FileExists(t, filepath.Join(target, "Images", "photo.jpg"))
	testsupport.FileExists(t, filepath.Join(target, "Documents", "notes.txt"))

	out = runCommand(t, "--undo", "--log", logPath)
	if !strings.Contains(out, "Restored 2 files") {
		t.Fatalf("unexpected undo output:\n%s", out)
	}
	testsupport.FileExists(t, filepath.Join(target, "photo.jpg"))
	testsupport.FileExists(t, filepath.Join(target, "notes.txt"))
}

func TestOrganizeMissingTargetFails(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--target", filepath.Join(dir, "absent"), "--log", filepath.Join(dir, "log.csv")})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing target directory")
	}
}

func TestUndoWithoutLogReportsNothingRestored(t *testing.T) {
	dir := t.TempDir()
	out := runCommand(t, "--undo", "--log", filepath.Join(dir, "organization_log.csv"))
	if !strings.Contains(out, "No files were restored") {
		t.Fatalf("unexpected undo output:\n%s", out)
	}
}

func TestCategoriesCommandListsTable(t *testing.T) {
	out := runCommand(t, "categories")
	for _, want := range []string{"Images", ".jpg", "Others", "(everything else)"} {
		if !strings.Contains(out, want) {
			t.Errorf("categories output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryCommandListsSessions(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "downloads")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "organization_log.csv")
	testsupport.WriteFile(t, target, "clip.mkv", []byte("video"))

	runCommand(t, "--target", target, "--log", logPath)

	out := runCommand(t, "history", "--log", logPath)
	if !strings.Contains(out, "Session") || !strings.Contains(out, "1") {
		t.Fatalf("unexpected history output:\n%s", out)
	}
}

func TestHistoryCommandMissingLog(t *testing.T) {
	dir := t.TempDir()
	out := runCommand(t, "history", "--log", filepath.Join(dir, "organization_log.csv"))
	if !strings.Contains(out, "No organization log found") {
		t.Fatalf("unexpected history output:\n%s", out)
	}
}
