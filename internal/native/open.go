// Package native hands items to the desktop's default application.
package native

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Openable reports whether s names something Open can hand to the OS: an
// http(s) or mailto URL, or an existing file or directory.
func Openable(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		return u.Scheme == "http" || u.Scheme == "https"
	}
	if strings.HasPrefix(s, "mailto:") {
		return true
	}
	_, err := os.Stat(expandHome(s))
	return err == nil
}

// Open starts the OS default application for target without waiting for it.
func Open(target string) error {
	target = expandHome(strings.TrimSpace(target))

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		// start is a cmd built-in; the empty argument is the window title.
		cmd = exec.Command("cmd", "/c", "start", "", target)
	case "darwin":
		cmd = exec.Command("open", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", target, err)
	}
	// Reap the child in the background; GUI apps may stay open.
	go func() { _ = cmd.Wait() }()
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
