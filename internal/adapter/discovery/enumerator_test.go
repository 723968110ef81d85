//go:build unit

package discovery

import (
	"context"
	"testing"

	"go-netcfg/internal/mock"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sourceReturning(ctrl *gomock.Controller, name string, list []types.NetworkInterface, err error) *mock.MockSource {
	src := mock.NewMockSource(ctrl)
	src.EXPECT().Name().Return(name).AnyTimes()
	src.EXPECT().Discover(gomock.Any()).Return(list, err).AnyTimes()
	return src
}

func TestDiscoverMergesByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := sourceReturning(ctrl, "a", []types.NetworkInterface{
		{Name: "Ethernet"},
	}, nil)
	b := sourceReturning(ctrl, "b", []types.NetworkInterface{
		{Name: "Ethernet", MAC: "AA:BB"},
		{Name: "Wi-Fi"},
	}, nil)

	e := NewEnumerator(nil, a, b)
	got := e.Discover(context.Background())

	require.Len(t, got, 2)
	assert.Equal(t, "Ethernet", got[0].Name)
	assert.Equal(t, "AA:BB", got[0].MAC)
	assert.Equal(t, "Wi-Fi", got[1].Name)
	assert.Empty(t, got[1].MAC)
}

func TestDiscoverNeverErasesEarlierFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := sourceReturning(ctrl, "a", []types.NetworkInterface{
		{Name: "Ethernet", Status: types.StatusUp, MediaType: "Dedicated"},
	}, nil)
	b := sourceReturning(ctrl, "b", []types.NetworkInterface{
		{Name: "Ethernet", Description: "Intel(R) Ethernet"},
	}, nil)

	e := NewEnumerator(nil, a, b)
	got := e.Discover(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, types.StatusUp, got[0].Status)
	assert.Equal(t, "Dedicated", got[0].MediaType)
	assert.Equal(t, "Intel(R) Ethernet", got[0].Description)
}

func TestDiscoverExcludesPseudoInterfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := sourceReturning(ctrl, "a", []types.NetworkInterface{
		{Name: "Ethernet"},
		{Name: "Loopback Pseudo-Interface 1"},
		{Name: "LOOPBACK adapter"},
		{Name: "isatap.{guid}"},
		{Name: "Teredo Tunneling"},
	}, nil)

	e := NewEnumerator(nil, a)
	got := e.Discover(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "Ethernet", got[0].Name)
}

func TestDiscoverSkipsFailingSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	failing := sourceReturning(ctrl, "broken", nil, assert.AnError)
	working := sourceReturning(ctrl, "ok", []types.NetworkInterface{{Name: "Wi-Fi"}}, nil)

	e := NewEnumerator(nil, failing, working)
	got := e.Discover(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "Wi-Fi", got[0].Name)
}

func TestDiscoverAllSourcesFailedIsEmptyNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := sourceReturning(ctrl, "a", nil, assert.AnError)
	b := sourceReturning(ctrl, "b", nil, assert.AnError)

	e := NewEnumerator(nil, a, b)
	assert.Empty(t, e.Discover(context.Background()))
}

func TestDiscoverSortsLexicographically(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := sourceReturning(ctrl, "a", []types.NetworkInterface{
		{Name: "Wi-Fi"}, {Name: "Bluetooth"}, {Name: "Ethernet"},
	}, nil)

	e := NewEnumerator(nil, a)
	got := e.Discover(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Bluetooth", "Ethernet", "Wi-Fi"},
		[]string{got[0].Name, got[1].Name, got[2].Name})
}

const interfaceTable = `
Admin State    State          Type             Interface Name
-------------------------------------------------------------------------
Enabled        Connected      Dedicated        Ethernet
Enabled        Disconnected   Dedicated        Local Area Connection 2
Disabled       Disconnected   Dedicated        Bluetooth Network Connection
`

func TestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock.NewMockBackend(ctrl)
	backend.EXPECT().ListInterfaces(gomock.Any()).
		Return(port.Result{Code: 0, Stdout: interfaceTable}).AnyTimes()

	e := NewEnumerator(backend)
	ctx := context.Background()

	assert.Equal(t, types.StatusUp, e.Status(ctx, "Ethernet"))
	assert.Equal(t, types.StatusDown, e.Status(ctx, "Local Area Connection 2"))
	assert.Equal(t, types.StatusDisabled, e.Status(ctx, "Bluetooth Network Connection"))
	assert.Equal(t, types.StatusUnknown, e.Status(ctx, "nonexistent"))
}

func TestStatusBackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mock.NewMockBackend(ctrl)
	backend.EXPECT().ListInterfaces(gomock.Any()).
		Return(port.Result{Code: 1, Stderr: "boom"})

	e := NewEnumerator(backend)
	assert.Equal(t, types.StatusUnknown, e.Status(context.Background(), "Ethernet"))
}
