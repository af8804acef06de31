package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/labelgrid/internal/config"
	"github.com/lucky7xz/labelgrid/internal/core"
	"github.com/lucky7xz/labelgrid/internal/netstat"
)

// FileSource reads a grid document and reloads it when the file changes.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Load() (core.Props, error) {
	doc, err := config.LoadDocument(s.Path)
	if err != nil {
		return core.Props{}, err
	}
	return doc.Props(), nil
}

func (s FileSource) Watch() tea.Cmd {
	return WatchDocumentCmd(s.Path)
}

// NetSource shows per-interface traffic counters, refreshed on a timer.
type NetSource struct {
	Interval time.Duration
	Bordered bool
}

func (s NetSource) Name() string { return "network interfaces" }

func (s NetSource) Load() (core.Props, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stats, err := netstat.Counters(ctx)
	if err != nil {
		return core.Props{}, err
	}
	return netstat.Props(stats, s.Bordered), nil
}

func (s NetSource) Watch() tea.Cmd {
	interval := s.Interval
	if interval <= 0 {
		interval = 2500 * time.Millisecond
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SourceChangedMsg{Reason: "refresh"}
	})
}
