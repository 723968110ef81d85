package port

//go:generate mockgen -source=discovery.go -destination=../mock/discovery.go -package=mock

import (
	"context"

	"go-netcfg/internal/types"
)

// Source is one unreliable interface discovery source. A failing source is
// skipped by the enumerator, never fatal.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Discover returns the interfaces this source can see. Fields it does
	// not know stay zero.
	Discover(ctx context.Context) ([]types.NetworkInterface, error)
}

// StatusProvider resolves the current administrative status of a single
// interface by name.
type StatusProvider interface {
	Status(ctx context.Context, name string) types.AdminStatus
}
