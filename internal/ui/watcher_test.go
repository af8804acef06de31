package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/lucky7xz/labelgrid/internal/core"
)

func TestIsDocumentEvent(t *testing.T) {
	path := filepath.Join("grids", "host.grid.toml")
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"Write", fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{"Create by rename-save", fsnotify.Event{Name: path, Op: fsnotify.Create}, true},
		{"Unclean path", fsnotify.Event{Name: "grids/./host.grid.toml", Op: fsnotify.Write}, true},
		{"Chmod only", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{"Remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, false},
		{"Sibling file", fsnotify.Event{Name: filepath.Join("grids", "other.grid.toml"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDocumentEvent(tt.event, path); got != tt.want {
				t.Errorf("isDocumentEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "host.grid.toml")
	doc := `
title = "Host"
column = 2
size = "small"

[[items]]
label = "Name"
content = "box"

[[items]]
label = "Kernel"
content = "6.1"
span = 2
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	src := FileSource{Path: path}
	props, err := src.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if props.Title != "Host" || len(props.Items) != 2 {
		t.Errorf("unexpected props: %+v", props)
	}
	if props.Columns.Fixed != 2 || props.Size != core.SizeSmall || !props.Colon {
		t.Errorf("document settings not carried over: %+v", props)
	}

	// A broken document surfaces as an error for the status bar.
	if err := os.WriteFile(path, []byte(`size = "huge"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Load(); err == nil {
		t.Error("expected error for unknown size")
	}

	if _, err := (FileSource{Path: filepath.Join(dir, "missing.toml")}).Load(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNetSource_WatchSchedulesRefresh(t *testing.T) {
	if (NetSource{}).Watch() == nil {
		t.Error("NetSource.Watch() should schedule a refresh")
	}
}
