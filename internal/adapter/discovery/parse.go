package discovery

import (
	"strings"

	"go-netcfg/internal/types"
)

// parseInterfaceTable parses the backend's interface table:
//
//	Admin State    State          Type             Interface Name
//	-------------------------------------------------------------------------
//	Enabled        Connected      Dedicated        Ethernet
//	Disabled       Disconnected   Dedicated        Bluetooth Network Connection
//
// Rows whose first column is not an admin state are skipped, which also
// drops the header and separator. Names may contain spaces.
func parseInterfaceTable(text string) []types.NetworkInterface {
	var out []types.NetworkInterface
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		admin, state := fields[0], fields[1]
		if admin != "Enabled" && admin != "Disabled" {
			continue
		}
		out = append(out, types.NetworkInterface{
			Name:      strings.Join(fields[3:], " "),
			Status:    mapAdminState(admin, state),
			MediaType: fields[2],
		})
	}
	return out
}

func mapAdminState(admin, state string) types.AdminStatus {
	if admin == "Disabled" {
		return types.StatusDisabled
	}
	switch state {
	case "Connected":
		return types.StatusUp
	case "Disconnected":
		return types.StatusDown
	default:
		return types.StatusUnknown
	}
}

// parseFieldBlocks parses "Key : Value" listings (PowerShell Format-List,
// wlan show interfaces). A reappearing start key opens a new block.
func parseFieldBlocks(text, startKey string) []map[string]string {
	var blocks []map[string]string
	var current map[string]string
	for _, line := range strings.Split(text, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		if key == startKey {
			current = map[string]string{}
			blocks = append(blocks, current)
		}
		if current != nil {
			current[key] = value
		}
	}
	return blocks
}
