package discovery

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-netcfg/internal/port"
	"go-netcfg/internal/types"
)

// interfaceTableSource reads the backend's own interface table. It is the
// highest-priority source and the only one that knows admin status.
type interfaceTableSource struct {
	backend port.Backend
}

func (s *interfaceTableSource) Name() string { return "interface-table" }

func (s *interfaceTableSource) Discover(ctx context.Context) ([]types.NetworkInterface, error) {
	res := s.backend.ListInterfaces(ctx)
	if !res.OK() {
		return nil, fmt.Errorf("interface table query failed: %s", res.Diagnostic())
	}
	return parseInterfaceTable(res.Stdout), nil
}

// adapterQuerySource asks PowerShell for adapter metadata. More reliable
// than the interface table for USB and Wi-Fi adapters, and the only source
// reporting MAC, link speed and MTU.
type adapterQuerySource struct {
	runner  port.CommandRunner
	timeout time.Duration
}

const adapterQuery = `Get-NetAdapter | Where-Object {$_.Status -eq 'Up' -or $_.Status -eq 'Disconnected' -or $_.Status -eq 'Disabled'} | Format-List Name,InterfaceDescription,Status,MacAddress,LinkSpeed,MtuSize`

func (s *adapterQuerySource) Name() string { return "adapter-query" }

func (s *adapterQuerySource) Discover(ctx context.Context) ([]types.NetworkInterface, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res := s.runner.Run(ctx, "powershell", "-NoProfile", "-Command", adapterQuery)
	if !res.OK() {
		return nil, fmt.Errorf("adapter query failed: %s", res.Diagnostic())
	}

	var out []types.NetworkInterface
	for _, block := range parseFieldBlocks(res.Stdout, "Name") {
		name := block["Name"]
		if name == "" {
			continue
		}
		iface := types.NetworkInterface{
			Name:        name,
			Description: block["InterfaceDescription"],
			MAC:         block["MacAddress"],
			LinkSpeed:   block["LinkSpeed"],
		}
		switch block["Status"] {
		case "Up":
			iface.Status = types.StatusUp
		case "Disconnected":
			iface.Status = types.StatusDown
		case "Disabled":
			iface.Status = types.StatusDisabled
		}
		if mtu, err := strconv.Atoi(block["MtuSize"]); err == nil {
			iface.MTU = mtu
		}
		out = append(out, iface)
	}
	return out, nil
}

// wlanSource lists wireless interfaces, which the interface table sometimes
// hides.
type wlanSource struct {
	runner  port.CommandRunner
	timeout time.Duration
}

func (s *wlanSource) Name() string { return "wlan" }

func (s *wlanSource) Discover(ctx context.Context) ([]types.NetworkInterface, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res := s.runner.Run(ctx, "netsh", "wlan", "show", "interfaces")
	if !res.OK() {
		return nil, fmt.Errorf("wlan query failed: %s", res.Diagnostic())
	}

	var out []types.NetworkInterface
	for _, block := range parseFieldBlocks(res.Stdout, "Name") {
		name := block["Name"]
		if name == "" {
			continue
		}
		iface := types.NetworkInterface{
			Name:        name,
			Description: block["Description"],
			MAC:         strings.ToUpper(block["Physical address"]),
			MediaType:   "Wireless",
		}
		switch strings.ToLower(block["State"]) {
		case "connected":
			iface.Status = types.StatusUp
		case "disconnected":
			iface.Status = types.StatusDown
		}
		out = append(out, iface)
	}
	return out, nil
}

// wmiSource queries WMI for enabled NICs. Catches adapters the other
// sources miss and contributes the hardware description.
type wmiSource struct {
	runner  port.CommandRunner
	timeout time.Duration
}

func (s *wmiSource) Name() string { return "wmi" }

func (s *wmiSource) Discover(ctx context.Context) ([]types.NetworkInterface, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res := s.runner.Run(ctx, "wmic", "nic", "where", "NetEnabled=true",
		"get", "MACAddress,Name,NetConnectionID", "/format:csv")
	if !res.OK() {
		return nil, fmt.Errorf("wmi query failed: %s", res.Diagnostic())
	}

	// CSV columns are alphabetical after the Node column:
	// Node,MACAddress,Name,NetConnectionID
	var out []types.NetworkInterface
	lines := strings.Split(strings.ReplaceAll(res.Stdout, "\r", ""), "\n")
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) < 4 || parts[1] == "MACAddress" {
			continue
		}
		name := strings.TrimSpace(parts[3])
		if name == "" {
			continue
		}
		out = append(out, types.NetworkInterface{
			Name:        name,
			Description: strings.TrimSpace(parts[2]),
			MAC:         strings.TrimSpace(parts[1]),
		})
	}
	return out, nil
}

// DefaultSources returns the production sources in merge priority order.
func DefaultSources(backend port.Backend, runner port.CommandRunner, timeout time.Duration) []port.Source {
	return []port.Source{
		&interfaceTableSource{backend: backend},
		&adapterQuerySource{runner: runner, timeout: timeout},
		&wlanSource{runner: runner, timeout: timeout},
		&wmiSource{runner: runner, timeout: timeout},
	}
}
