package core

import (
	"fmt"
	"log"
	"os"
)

// MaxLogBytes is the size past which the log file is rotated on startup.
const MaxLogBytes int64 = 1024 * 1024

// RotateLogIfNeeded renames the log at path to path+".old" when it is larger
// than maxBytes, replacing any earlier backup.
func RotateLogIfNeeded(path string, maxBytes int64) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.Size() <= maxBytes {
		return
	}

	oldPath := path + ".old"
	_ = os.Remove(oldPath)
	if err := os.Rename(path, oldPath); err != nil {
		log.Printf("failed to rotate log %s: %v", path, err)
	}
}

// OpenLog rotates the log at path if needed, opens it for appending and
// points the standard logger at it. The caller closes the returned file.
func OpenLog(path string) (*os.File, error) {
	RotateLogIfNeeded(path, MaxLogBytes)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
