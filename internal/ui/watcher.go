package ui

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// WatchDocumentCmd blocks until the document at path is written or replaced,
// then resolves to SourceChangedMsg. The parent directory is watched so
// editors that save by rename are picked up too. Run it again after every
// change to keep watching.
func WatchDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Printf("Failed to create file watcher: %v", err)
			return nil
		}
		defer watcher.Close()

		dir := filepath.Dir(path)
		if err := watcher.Add(dir); err != nil {
			log.Printf("Failed to watch %s: %v", dir, err)
			return nil
		}

		log.Printf("Watching for changes to: %s", path)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !isDocumentEvent(event, path) {
					continue
				}
				log.Printf("Detected change in: %s", filepath.Base(event.Name))
				return SourceChangedMsg{Reason: "file changed"}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Printf("File watcher error: %v", err)
			}
		}
	}
}

// isDocumentEvent reports whether event rewrote the file at path.
func isDocumentEvent(event fsnotify.Event, path string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(path)
}
