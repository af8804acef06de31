package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/lucky7xz/labelgrid/internal/screen"
)

const settingsFileName = "settings.toml"

// ErrNoDocument is returned when no grid document was given or configured.
var ErrNoDocument = errors.New("no grid document given and none configured")

// DefaultSettings returns Settings with sensible defaults.
func DefaultSettings() Settings {
	s := Settings{}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills every unset field.
func (s *Settings) ApplyDefaults() {
	if strings.TrimSpace(s.Theme) == "" {
		s.Theme = "dracula"
	}
	if s.RefreshSeconds < 1 {
		s.RefreshSeconds = 2
	}
	if len(s.Breakpoints) == 0 {
		s.Breakpoints = map[string]int{}
		for bp, w := range screen.DefaultThresholds() {
			s.Breakpoints[string(bp)] = w
		}
	}
	s.Controls.InitControls()
}

// Refresh returns the live-source refresh interval.
func (s Settings) Refresh() time.Duration {
	return time.Duration(s.RefreshSeconds) * time.Second
}

// Thresholds converts the [breakpoints] table into screen thresholds.
func (s Settings) Thresholds() (screen.Thresholds, error) {
	if len(s.Breakpoints) == 0 {
		return screen.DefaultThresholds(), nil
	}
	th := make(screen.Thresholds, len(s.Breakpoints))
	var errs []error
	for name, width := range s.Breakpoints {
		bp, err := core.ParseBreakpoint(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("breakpoints: %w", err))
			continue
		}
		if bp == core.XS {
			errs = append(errs, errors.New("breakpoints: xs has no minimum width, it is active below sm"))
			continue
		}
		if width < 1 {
			errs = append(errs, fmt.Errorf("breakpoints.%s must be positive, got %d", name, width))
			continue
		}
		th[bp] = width
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return th, nil
}

// GetConfigDir returns the directory holding settings, grids and the log.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		return filepath.Join(home, ".labelgrid"), nil
	}
	return filepath.Join(configDir, "labelgrid"), nil
}

// LoadSettings reads settings.toml from configDir. On first run the embedded
// defaults are copied into configDir before reading.
func LoadSettings(configDir string) (Settings, error) {
	path := filepath.Join(configDir, settingsFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return Settings{}, fmt.Errorf("create config dir: %w", err)
		}
		if err := bootstrapCopy(configDir); err != nil {
			log.Printf("warning: bootstrap copy failed: %v", err)
		}
	}

	var s Settings
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("no %s in %s, using defaults", settingsFileName, configDir)
	case err != nil:
		return Settings{}, fmt.Errorf("read settings: %w", err)
	default:
		if _, err := toml.Decode(os.ExpandEnv(string(data)), &s); err != nil {
			return Settings{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	s.ApplyDefaults()
	return s, nil
}

// DocumentPath picks the grid document to open: the explicit argument if
// given, otherwise the configured one, resolved against configDir.
func DocumentPath(arg string, s Settings, configDir string) (string, error) {
	p := strings.TrimSpace(arg)
	if p == "" {
		p = strings.TrimSpace(s.Document)
		if p == "" {
			return "", ErrNoDocument
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(configDir, p)
		}
	}
	return filepath.Abs(p)
}

// ParseDocument decodes and validates a grid document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	md, err := toml.Decode(os.ExpandEnv(string(data)), &doc)
	if err != nil {
		return Document{}, fmt.Errorf("decode grid document: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("grid document: ignoring unknown key %q", key.String())
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadDocument reads and parses the grid document at path.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read grid document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded grid %q from %s: items=%d column=%s", doc.Title, path, len(doc.Items), doc.Column)
	return doc, nil
}

// Validate reports every problem in the document at once.
// Item spans of zero mean "one column"; negative spans are rejected here
// even though the layout engine would tolerate them.
func (d Document) Validate() error {
	var errs []error
	if _, err := core.ParseSize(d.Size); err != nil {
		errs = append(errs, err)
	}
	for bp, n := range d.Column.PerBreakpoint {
		if n < 0 {
			errs = append(errs, fmt.Errorf("column.%s must not be negative, got %d", bp, n))
		}
	}
	for i, it := range d.Items {
		if it.Span < 0 {
			errs = append(errs, fmt.Errorf("items[%d] (%q): span must not be negative, got %d", i, it.Label, it.Span))
		}
	}
	return errors.Join(errs...)
}

// Props converts the document into layout inputs.
func (d Document) Props() core.Props {
	size, err := core.ParseSize(d.Size)
	if err != nil {
		size = core.SizeDefault
	}
	colon := true
	if d.Colon != nil {
		colon = *d.Colon
	}

	items := make([]core.Item, len(d.Items))
	for i, it := range d.Items {
		items[i] = core.Item{Label: it.Label, Content: it.Content, Span: it.Span}
	}

	return core.Props{
		Title:    d.Title,
		Extra:    d.Extra,
		Items:    items,
		Columns:  d.Column.ColumnConfig,
		Bordered: d.Bordered,
		Size:     size,
		Colon:    colon,
		Prefix:   d.Prefix,
	}
}
