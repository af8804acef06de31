package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotateLogIfNeeded(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labelgrid.log")

	// Small logs stay put.
	if err := os.WriteFile(path, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}
	RotateLogIfNeeded(path, 10)
	if _, err := os.Stat(path + ".old"); !os.IsNotExist(err) {
		t.Fatal("log under the limit should not rotate")
	}

	if err := os.WriteFile(path, []byte(strings.Repeat("x", 20)), 0o644); err != nil {
		t.Fatal(err)
	}
	RotateLogIfNeeded(path, 10)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rotated log should be moved away")
	}
	if b, err := os.ReadFile(path + ".old"); err != nil || len(b) != 20 {
		t.Errorf("backup missing or wrong: %d bytes, %v", len(b), err)
	}

	// Missing file is a no-op.
	RotateLogIfNeeded(filepath.Join(dir, "none.log"), 10)
}

func TestOpenLog(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "labelgrid.log")
	f, err := OpenLog(path)
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	log.Printf("hello from the layout")
	f.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hello from the layout") {
		t.Errorf("log line not written, got %q", b)
	}

	if _, err := OpenLog(filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Error("expected error for missing directory")
	}
}
