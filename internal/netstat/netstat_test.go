package netstat

import (
	"testing"

	"github.com/lucky7xz/labelgrid/internal/core"
	gopsutil_net "github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVirtualInterface(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"lo", true},
		{"docker0", true},
		{"veth12ab", true},
		{"br-1234", true},
		{"tailscale0", true},
		{"eth0", false},
		{"wlan0", false},
		{"en0", false},
	}
	for _, tt := range tests {
		if got := IsVirtualInterface(tt.name); got != tt.expected {
			t.Errorf("IsVirtualInterface(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in       uint64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536 * 1024, "1.50 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.expected {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestItems(t *testing.T) {
	stats := []gopsutil_net.IOCountersStat{
		{Name: "wlan0", BytesSent: 2048, BytesRecv: 1024},
		{Name: "lo", BytesSent: 1 << 30, BytesRecv: 1 << 30},
		{Name: "eth0", BytesSent: 10, BytesRecv: 20},
	}

	items := Items(stats)
	require.Len(t, items, 3)
	assert.Equal(t, "eth0", items[0].Label)
	assert.Equal(t, "↑ 10 B  ↓ 20 B", items[0].Content)
	assert.Equal(t, "wlan0", items[1].Label)
	assert.Equal(t, "Total", items[2].Label)
	assert.Equal(t, "↑ 2.01 KB  ↓ 1.02 KB", items[2].Content)

	assert.Empty(t, Items([]gopsutil_net.IOCountersStat{{Name: "lo"}}))
}

func TestProps_LaysOut(t *testing.T) {
	stats := []gopsutil_net.IOCountersStat{{Name: "eth0"}, {Name: "wlan0"}}
	p := Props(stats, true)
	assert.Equal(t, "2 interfaces", p.Extra)

	g := core.Layout(p, core.Screens{core.MD: true, core.SM: true}, nil)
	assert.Equal(t, 3, g.Columns)
	require.Len(t, g.Rows, 1)
	assert.Len(t, g.Rows[0], 6)
}
