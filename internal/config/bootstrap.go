package config

import (
	"embed"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

//go:embed all:bootstrap
var bootstrapFS embed.FS

// bootstrapCopy writes the embedded settings and example grids into dstRoot.
// Existing files are never overwritten.
func bootstrapCopy(dstRoot string) error {
	log.Printf("bootstrap: seeding %s", dstRoot)

	return fs.WalkDir(bootstrapFS, "bootstrap", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, "bootstrap"), "/")
		if rel == "" {
			return nil
		}

		target := filepath.Join(dstRoot, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if _, err := os.Stat(target); err == nil {
			return nil
		}

		b, err := bootstrapFS.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		log.Printf("bootstrap: wrote %s", rel)
		return os.WriteFile(target, b, 0o644)
	})
}
