package config

import (
	"log"
	"sort"
	"strings"
)

// ThemeConfig holds the color palette for a theme.
type ThemeConfig struct {
	Primary    string // Titles
	Secondary  string // Extra text
	Background string
	Foreground string // Content text
	Comment    string // Borders, muted text
	Success    string
	Warning    string
	Error      string
	Info       string // Labels
	Accent     string // Selection
}

// themes is a map of available theme presets.
var themes = map[string]ThemeConfig{
	"dracula": {
		Primary:    "#ff2e63",
		Secondary:  "#ff8c00",
		Background: "#0d0221",
		Foreground: "#f0f0f0",
		Comment:    "#5c527f",
		Success:    "#00f5d4",
		Warning:    "#f9f871",
		Error:      "#ff2e63",
		Info:       "#00f5d4",
		Accent:     "#9d4edd",
	},
	"jade": {
		Primary:    "#50fa7b",
		Secondary:  "#8be9fd",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Comment:    "#6272a4",
		Success:    "#50fa7b",
		Warning:    "#f1fa8c",
		Error:      "#ff5555",
		Info:       "#8be9fd",
		Accent:     "#50fa7b",
	},
	"nord": {
		Primary:    "#0077be",
		Secondary:  "#5e81ac",
		Background: "#0a192f",
		Foreground: "#e5e9f0",
		Comment:    "#4c566a",
		Success:    "#a3be8c",
		Warning:    "#ebcb8b",
		Error:      "#bf616a",
		Info:       "#88c0d0",
		Accent:     "#0077be",
	},
	"mono": {
		Primary:    "#ffffff",
		Secondary:  "#bbbbbb",
		Background: "#000000",
		Foreground: "#dddddd",
		Comment:    "#777777",
		Success:    "#ffffff",
		Warning:    "#ffffff",
		Error:      "#ffffff",
		Info:       "#aaaaaa",
		Accent:     "#ffffff",
	},
}

// GetTheme returns the named palette, falling back to dracula.
func GetTheme(name string) ThemeConfig {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	if name != "" {
		log.Printf("unknown theme %q, using dracula", name)
	}
	return themes["dracula"]
}

// ThemeNames lists the available themes in alphabetical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
