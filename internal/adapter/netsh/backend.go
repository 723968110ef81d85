// Package netsh implements the Backend port by driving the netsh command
// line facility. Accepted argument forms vary across backend versions; the
// variance is expressed through the AddressSyntax and qualified parameters
// so the applier can cascade over them.
package netsh

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/port"
)

const program = "netsh"

// BackendAdapter is an adapter that implements the Backend port over a
// CommandRunner. Every invocation carries the configured timeout and is
// logged with its full diagnostic text.
type BackendAdapter struct {
	runner  port.CommandRunner
	timeout time.Duration
}

// Ensure BackendAdapter implements the Backend port
var _ port.Backend = (*BackendAdapter)(nil)

// NewBackendAdapter creates a backend adapter with the given per-invocation
// timeout.
func NewBackendAdapter(runner port.CommandRunner, timeout time.Duration) *BackendAdapter {
	return &BackendAdapter{runner: runner, timeout: timeout}
}

func (b *BackendAdapter) run(ctx context.Context, args ...string) port.Result {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	res := b.runner.Run(ctx, program, args...)

	entry := logging.WithComponent("backend").WithFields(map[string]interface{}{
		"args": strings.Join(args, " "),
		"code": res.Code,
	})
	if res.OK() {
		entry.Debug("Backend call succeeded")
	} else {
		// Full diagnostic retained for forensic review.
		entry.WithField("diagnostic", res.Diagnostic()).Info("Backend call failed")
	}
	return res
}

// escapeName strips stray quoting from an interface name. netsh mutation
// commands take the bare name even when it contains spaces.
func escapeName(name string) string {
	return strings.Trim(name, `"'`)
}

// escapeNameForShow quotes the name for show commands, which unlike the
// mutation commands need quoting for spaces and shell-significant runes.
func escapeNameForShow(name string) string {
	cleaned := escapeName(name)
	if strings.ContainsAny(cleaned, " ()&%$") {
		return `"` + cleaned + `"`
	}
	return cleaned
}

// ListInterfaces returns the backend's interface table.
func (b *BackendAdapter) ListInterfaces(ctx context.Context) port.Result {
	return b.run(ctx, "interface", "show", "interface")
}

// ShowConfig returns the IPv4 configuration for one interface, or for all
// interfaces when name is empty.
func (b *BackendAdapter) ShowConfig(ctx context.Context, name string) port.Result {
	if name == "" {
		return b.run(ctx, "interface", "ip", "show", "config")
	}
	return b.run(ctx, "interface", "ip", "show", "config", "name="+escapeNameForShow(name))
}

// ShowDNS returns the DNS configuration for one interface.
func (b *BackendAdapter) ShowDNS(ctx context.Context, name string) port.Result {
	return b.run(ctx, "interface", "ip", "show", "dns", "name="+escapeNameForShow(name))
}

// SetAddressDHCP switches the interface address to automatic.
func (b *BackendAdapter) SetAddressDHCP(ctx context.Context, name string) port.Result {
	return b.run(ctx, "interface", "ip", "set", "address", "name="+escapeName(name), "dhcp")
}

// SetAddressStatic assigns a static address using the requested syntax.
func (b *BackendAdapter) SetAddressStatic(ctx context.Context, name, addr, mask, gateway string, syntax port.AddressSyntax) port.Result {
	switch syntax {
	case port.SyntaxModern:
		args := []string{"interface", "ip", "set", "address", "name=" + escapeName(name), "source=static", "addr=" + addr, "mask=" + mask}
		if gateway != "" {
			args = append(args, "gateway="+gateway, "gwmetric=1")
		}
		return b.run(ctx, args...)
	default:
		args := []string{"interface", "ip", "set", "address", escapeName(name), "static", addr, mask}
		if gateway != "" {
			args = append(args, gateway, "1")
		}
		return b.run(ctx, args...)
	}
}

// AddAddress adds an address without replacing existing ones.
func (b *BackendAdapter) AddAddress(ctx context.Context, name, addr, mask, gateway string) port.Result {
	args := []string{"interface", "ip", "add", "address", "name=" + escapeName(name), "addr=" + addr, "mask=" + mask}
	if gateway != "" {
		args = append(args, "gateway="+gateway)
	}
	return b.run(ctx, args...)
}

// DeleteAllAddresses removes every IPv4 address from the interface.
func (b *BackendAdapter) DeleteAllAddresses(ctx context.Context, name string) port.Result {
	return b.run(ctx, "interface", "ip", "delete", "address", "name="+escapeName(name), "all")
}

// SetDNSDHCP switches DNS resolution to automatic.
func (b *BackendAdapter) SetDNSDHCP(ctx context.Context, name string, qualified bool) port.Result {
	if qualified {
		return b.run(ctx, "interface", "ip", "set", "dns", "name="+escapeName(name), "dhcp")
	}
	return b.run(ctx, "interface", "ip", "set", "dns", escapeName(name), "dhcp")
}

// SetDNSStatic sets the primary DNS server.
func (b *BackendAdapter) SetDNSStatic(ctx context.Context, name, addr string, qualified bool) port.Result {
	if qualified {
		return b.run(ctx, "interface", "ip", "set", "dns", "name="+escapeName(name), "static", addr)
	}
	return b.run(ctx, "interface", "ip", "set", "dns", escapeName(name), "static", addr)
}

// AddDNS registers an additional DNS server at the given priority index.
func (b *BackendAdapter) AddDNS(ctx context.Context, name, addr string, index int, qualified bool) port.Result {
	idx := fmt.Sprintf("index=%d", index)
	if qualified {
		return b.run(ctx, "interface", "ip", "add", "dns", "name="+escapeName(name), addr, idx)
	}
	return b.run(ctx, "interface", "ip", "add", "dns", escapeName(name), addr, idx)
}

// SetAdminState enables or disables the interface.
func (b *BackendAdapter) SetAdminState(ctx context.Context, name string, enabled bool) port.Result {
	action := "disable"
	if enabled {
		action = "enable"
	}
	return b.run(ctx, "interface", "set", "interface", `name="`+escapeName(name)+`"`, "admin="+action)
}
