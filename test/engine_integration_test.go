//go:build integration
// +build integration

package test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"go-netcfg/internal/adapter/apply"
	"go-netcfg/internal/adapter/file"
	"go-netcfg/internal/adapter/inspect"
	"go-netcfg/internal/adapter/snapshot"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ifaceState is the fake backend's view of one interface.
type ifaceState struct {
	dhcp    bool
	addr    string
	mask    string
	gateway string
	dns     []string
	status  types.AdminStatus
}

// fakeBackend is an in-process stand-in for the OS backend. It renders the
// same text shapes the real backend produces so the parsers are exercised
// end to end, and it rejects the modern address syntax to force the
// fallback cascade.
type fakeBackend struct {
	interfaces map[string]*ifaceState
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		interfaces: map[string]*ifaceState{
			"Ethernet": {dhcp: true, addr: "10.0.0.23", mask: "255.255.255.0", gateway: "10.0.0.1", status: types.StatusUp},
		},
	}
}

func (f *fakeBackend) ListInterfaces(ctx context.Context) port.Result {
	var b strings.Builder
	b.WriteString("Admin State    State          Type             Interface Name\n")
	b.WriteString("-------------------------------------------------------------------------\n")
	for name, st := range f.interfaces {
		admin, state := "Enabled", "Connected"
		if st.status == types.StatusDisabled {
			admin = "Disabled"
		}
		if st.status == types.StatusDown {
			state = "Disconnected"
		}
		fmt.Fprintf(&b, "%-14s %-14s %-16s %s\n", admin, state, "Dedicated", name)
	}
	return port.Result{Code: 0, Stdout: b.String()}
}

func (f *fakeBackend) ShowConfig(ctx context.Context, name string) port.Result {
	if name == "" {
		var b strings.Builder
		index := 1
		for n := range f.interfaces {
			fmt.Fprintf(&b, "Configuration for interface %q (index: %d)\n", n, index)
			index++
		}
		return port.Result{Code: 0, Stdout: b.String()}
	}
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The filename, directory name, or volume label syntax is incorrect."}
	}
	dhcp := "No"
	if st.dhcp {
		dhcp = "Yes"
	}
	out := fmt.Sprintf(`Configuration for interface %q
    DHCP enabled:                         %s
    IP Address:                           %s
    Subnet Prefix:                        10.0.0.0/24 (mask %s)
    Default Gateway:                      %s
`, name, dhcp, st.addr, st.mask, st.gateway)
	return port.Result{Code: 0, Stdout: out}
}

func (f *fakeBackend) ShowDNS(ctx context.Context, name string) port.Result {
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface is unknown."}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Configuration for interface %q\n", name)
	for i, addr := range st.dns {
		if i == 0 {
			fmt.Fprintf(&b, "    Statically Configured DNS Servers:    %s\n", addr)
		} else {
			fmt.Fprintf(&b, "                                          %s\n", addr)
		}
	}
	return port.Result{Code: 0, Stdout: b.String()}
}

func (f *fakeBackend) SetAddressDHCP(ctx context.Context, name string) port.Result {
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface was not found."}
	}
	st.dhcp = true
	st.addr, st.mask, st.gateway = "10.0.0.23", "255.255.255.0", "10.0.0.1"
	return port.Result{Code: 0}
}

func (f *fakeBackend) SetAddressStatic(ctx context.Context, name, addr, mask, gateway string, syntax port.AddressSyntax) port.Result {
	if syntax == port.SyntaxModern {
		// Mimics backend builds that reject the source=static token.
		return port.Result{Code: 1, Stderr: "Invalid source parameter. It must be either 'dhcp' or 'static'."}
	}
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface was not found."}
	}
	st.dhcp = false
	st.addr, st.mask, st.gateway = addr, mask, gateway
	return port.Result{Code: 0}
}

func (f *fakeBackend) AddAddress(ctx context.Context, name, addr, mask, gateway string) port.Result {
	return f.SetAddressStatic(ctx, name, addr, mask, gateway, port.SyntaxLegacy)
}

func (f *fakeBackend) DeleteAllAddresses(ctx context.Context, name string) port.Result {
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface was not found."}
	}
	st.addr, st.mask, st.gateway = "", "", ""
	return port.Result{Code: 0}
}

func (f *fakeBackend) SetDNSDHCP(ctx context.Context, name string, qualified bool) port.Result {
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface was not found."}
	}
	st.dns = nil
	return port.Result{Code: 0}
}

func (f *fakeBackend) SetDNSStatic(ctx context.Context, name, addr string, qualified bool) port.Result {
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface was not found."}
	}
	st.dns = []string{addr}
	return port.Result{Code: 0}
}

func (f *fakeBackend) AddDNS(ctx context.Context, name, addr string, index int, qualified bool) port.Result {
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface was not found."}
	}
	st.dns = append(st.dns, addr)
	return port.Result{Code: 0}
}

func (f *fakeBackend) SetAdminState(ctx context.Context, name string, enabled bool) port.Result {
	st, ok := f.interfaces[name]
	if !ok {
		return port.Result{Code: 1, Stderr: "The interface was not found."}
	}
	if enabled {
		st.status = types.StatusUp
	} else {
		st.status = types.StatusDisabled
	}
	return port.Result{Code: 0}
}

// statusFromTable adapts the fake's interface table into a status provider
// the applier can consult, the same way the real enumerator does.
type statusFromTable struct{ backend *fakeBackend }

func (s statusFromTable) Status(ctx context.Context, name string) types.AdminStatus {
	if st, ok := s.backend.interfaces[name]; ok {
		return st.status
	}
	return types.StatusUnknown
}

// TestApplyAndRestoreRoundTrip drives the full engine against the fake
// backend: inspect the initial DHCP state, apply a static configuration
// through the fallback cascade, then roll back from the snapshot.
func TestApplyAndRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()

	inspector := inspect.NewInspector(backend)
	applier := apply.NewApplier(backend, statusFromTable{backend}, inspector)
	snapshots := snapshot.NewManager(file.NewManagerAdapter(),
		filepath.Join(t.TempDir(), "snapshot.json"), inspector, applier)
	applier.SetSnapshotRecorder(snapshots)

	// Initial state is DHCP.
	initial := inspector.Inspect(ctx, "Ethernet")
	require.Equal(t, types.ModeDHCP, initial.Mode)
	require.Equal(t, "10.0.0.23", initial.Address)

	// The fake rejects the modern syntax, so the legacy strategy wins.
	desired := types.InterfaceConfiguration{
		Mode:       types.ModeStatic,
		Address:    "192.168.50.10",
		SubnetMask: "255.255.255.0",
		Gateway:    "192.168.50.1",
		DNS:        []string{"1.1.1.1", "8.8.8.8"},
	}
	outcome := applier.Apply(ctx, "Ethernet", desired, true)
	require.True(t, outcome.Success, "diagnostic: %s", outcome.Diagnostic)
	assert.Equal(t, 1, outcome.Strategy)

	applied := inspector.Inspect(ctx, "Ethernet")
	assert.Equal(t, types.ModeStatic, applied.Mode)
	assert.Equal(t, "192.168.50.10", applied.Address)
	assert.Equal(t, "255.255.255.0", applied.SubnetMask)
	assert.Equal(t, "192.168.50.1", applied.Gateway)
	assert.Equal(t, []string{"1.1.1.1", "8.8.8.8"}, applied.DNS)

	// The snapshot holds the pre-change DHCP configuration.
	snap, err := snapshots.Load()
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "Ethernet", snap.InterfaceName)
	assert.Equal(t, types.ModeDHCP, snap.Configuration.Mode)

	// Restore rolls the interface back to DHCP and keeps the slot.
	restored, err := snapshots.Restore(ctx)
	require.NoError(t, err)
	require.True(t, restored.Success, "diagnostic: %s", restored.Diagnostic)

	final := inspector.Inspect(ctx, "Ethernet")
	assert.Equal(t, types.ModeDHCP, final.Mode)
	assert.Equal(t, "10.0.0.23", final.Address)

	snap, err = snapshots.Load()
	require.NoError(t, err)
	assert.NotNil(t, snap)
}

func TestApplyToDisabledInterfaceFailsFast(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.interfaces["Ethernet"].status = types.StatusDisabled

	inspector := inspect.NewInspector(backend)
	applier := apply.NewApplier(backend, statusFromTable{backend}, inspector)

	outcome := applier.Apply(ctx, "Ethernet", types.InterfaceConfiguration{
		Mode: types.ModeStatic, Address: "192.168.50.10", SubnetMask: "255.255.255.0",
	}, true)
	require.False(t, outcome.Success)
	assert.Equal(t, types.KindInterfaceDisabled, outcome.Kind)

	// The interface state is untouched.
	st := backend.interfaces["Ethernet"]
	assert.True(t, st.dhcp)
	assert.Equal(t, "10.0.0.23", st.addr)
}
