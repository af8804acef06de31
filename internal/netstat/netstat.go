// Package netstat builds grid items from per-interface network counters.
package netstat

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lucky7xz/labelgrid/internal/core"
	gopsutil_net "github.com/shirou/gopsutil/v3/net"
)

// virtualPrefixes are interface names that carry local chatter (Docker, VMs,
// VPN tunnels) rather than physical traffic.
var virtualPrefixes = []string{"lo", "docker", "veth", "br-", "vbox", "vmnet", "tailscale", "tun", "tap"}

// IsVirtualInterface returns true for loopback or known virtual interface prefixes.
func IsVirtualInterface(name string) bool {
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Counters reads per-interface counters from the OS.
func Counters(ctx context.Context) ([]gopsutil_net.IOCountersStat, error) {
	stats, err := gopsutil_net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("read interface counters: %w", err)
	}
	return stats, nil
}

// Items turns counters into one item per physical interface, sorted by
// name, followed by a full-width total.
func Items(stats []gopsutil_net.IOCountersStat) []core.Item {
	var physical []gopsutil_net.IOCountersStat
	for _, s := range stats {
		if IsVirtualInterface(s.Name) {
			continue
		}
		physical = append(physical, s)
	}
	sort.Slice(physical, func(i, j int) bool { return physical[i].Name < physical[j].Name })

	items := make([]core.Item, 0, len(physical)+1)
	var sent, recv uint64
	for _, s := range physical {
		sent += s.BytesSent
		recv += s.BytesRecv
		items = append(items, core.Item{
			Label:   s.Name,
			Content: fmt.Sprintf("↑ %s  ↓ %s", FormatBytes(s.BytesSent), FormatBytes(s.BytesRecv)),
		})
	}
	if len(physical) > 0 {
		items = append(items, core.Item{
			Label:   "Total",
			Content: fmt.Sprintf("↑ %s  ↓ %s", FormatBytes(sent), FormatBytes(recv)),
		})
	}
	return items
}

// Props returns layout inputs for a network grid. The total row is stretched
// by the layout engine, so the column config stays responsive.
func Props(stats []gopsutil_net.IOCountersStat, bordered bool) core.Props {
	return core.Props{
		Title:    "Network",
		Extra:    fmt.Sprintf("%d interfaces", countReal(stats)),
		Items:    Items(stats),
		Bordered: bordered,
		Size:     core.SizeSmall,
		Colon:    true,
	}
}

func countReal(stats []gopsutil_net.IOCountersStat) int {
	n := 0
	for _, s := range stats {
		if !IsVirtualInterface(s.Name) {
			n++
		}
	}
	return n
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(b uint64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GB", float64(b)/gb)
	case b >= mb:
		return fmt.Sprintf("%.2f MB", float64(b)/mb)
	case b >= kb:
		return fmt.Sprintf("%.2f KB", float64(b)/kb)
	default:
		return fmt.Sprintf("%d B", b)
	}
}
