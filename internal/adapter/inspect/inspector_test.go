//go:build unit

package inspect

import (
	"context"
	"testing"

	"go-netcfg/internal/mock"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const staticConfigOut = `
Configuration for interface "Ethernet"
    DHCP enabled:                         No
    IP Address:                           192.168.1.50
    Subnet Prefix:                        192.168.1.0/24 (mask 255.255.255.0)
    Default Gateway:                      192.168.1.1
    Gateway Metric:                       1
    InterfaceMetric:                      25
`

const dhcpConfigOut = `
Configuration for interface "Wi-Fi"
    DHCP enabled:                         Yes
    IP Address:                           10.0.0.23
    Subnet Prefix:                        10.0.0.0/16 (mask 255.255.0.0)
    Default Gateway:                      10.0.0.1
`

const dnsOut = `
Configuration for interface "Ethernet"
    DNS servers configured through DHCP:  1.1.1.1
                                          8.8.8.8
    Statically Configured DNS Servers:    1.1.1.1
    Register with which suffix:           Primary only
`

func newInspector(t *testing.T) (*Inspector, *mock.MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	return NewInspector(backend), backend
}

func TestInspectStatic(t *testing.T) {
	inspector, backend := newInspector(t)
	backend.EXPECT().ShowConfig(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 0, Stdout: staticConfigOut})
	backend.EXPECT().ShowDNS(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 0, Stdout: dnsOut})

	cfg := inspector.Inspect(context.Background(), "Ethernet")
	assert.Equal(t, types.ModeStatic, cfg.Mode)
	assert.Equal(t, "192.168.1.50", cfg.Address)
	assert.Equal(t, "255.255.255.0", cfg.SubnetMask)
	assert.Equal(t, "192.168.1.1", cfg.Gateway)
	// Union of DHCP-assigned and static servers, deduplicated, report order
	assert.Equal(t, []string{"1.1.1.1", "8.8.8.8"}, cfg.DNS)
}

func TestInspectDHCP(t *testing.T) {
	inspector, backend := newInspector(t)
	backend.EXPECT().ShowConfig(gomock.Any(), "Wi-Fi").
		Return(port.Result{Code: 0, Stdout: dhcpConfigOut})
	backend.EXPECT().ShowDNS(gomock.Any(), "Wi-Fi").
		Return(port.Result{Code: 0, Stdout: ""})

	cfg := inspector.Inspect(context.Background(), "Wi-Fi")
	assert.Equal(t, types.ModeDHCP, cfg.Mode)
	assert.Equal(t, "10.0.0.23", cfg.Address)
	assert.Equal(t, "255.255.0.0", cfg.SubnetMask)
	assert.Empty(t, cfg.DNS)
}

func TestInspectMaskFromPrefixOnly(t *testing.T) {
	out := `
    DHCP enabled:   No
    IP Address:     172.16.4.2
    Subnet Prefix:  172.16.0.0/12
`
	inspector, backend := newInspector(t)
	backend.EXPECT().ShowConfig(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 0, Stdout: out})
	backend.EXPECT().ShowDNS(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 1})

	cfg := inspector.Inspect(context.Background(), "Ethernet")
	assert.Equal(t, "255.240.0.0", cfg.SubnetMask)
}

func TestInspectFirstAddressWins(t *testing.T) {
	out := `
    DHCP enabled:   No
    IP Address:     10.0.0.5
    IP Address:     10.0.0.6
`
	inspector, backend := newInspector(t)
	backend.EXPECT().ShowConfig(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 0, Stdout: out})
	backend.EXPECT().ShowDNS(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 1})

	cfg := inspector.Inspect(context.Background(), "Ethernet")
	assert.Equal(t, "10.0.0.5", cfg.Address)
}

func TestInspectBackendFailureReturnsDefaults(t *testing.T) {
	inspector, backend := newInspector(t)
	backend.EXPECT().ShowConfig(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 1, Stderr: "The interface is unknown."})

	cfg := inspector.Inspect(context.Background(), "Ethernet")
	assert.Equal(t, types.ModeDHCP, cfg.Mode)
	assert.Empty(t, cfg.Address)
	assert.Empty(t, cfg.SubnetMask)
	assert.Empty(t, cfg.Gateway)
	assert.Empty(t, cfg.DNS)
}

func TestInspectGarbageReturnsDefaults(t *testing.T) {
	inspector, backend := newInspector(t)
	backend.EXPECT().ShowConfig(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 0, Stdout: "%%% totally unexpected output %%%"})
	backend.EXPECT().ShowDNS(gomock.Any(), "Ethernet").
		Return(port.Result{Code: 0, Stdout: "nothing here either"})

	cfg := inspector.Inspect(context.Background(), "Ethernet")
	assert.Equal(t, types.ModeDHCP, cfg.Mode)
	assert.Empty(t, cfg.Address)
}
