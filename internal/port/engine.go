package port

//go:generate mockgen -source=engine.go -destination=../mock/engine.go -package=mock

import (
	"context"

	"go-netcfg/internal/types"
)

// Enumerator merges every discovery source into one canonical interface
// list. An empty result means "no adapters detected", not a fault.
type Enumerator interface {
	StatusProvider

	// Discover returns the deduplicated, lexicographically sorted merge of
	// all sources.
	Discover(ctx context.Context) []types.NetworkInterface
}

// Inspector reads an interface's current configuration. It never fails the
// caller: on backend failure or unparseable output it returns the default
// configuration (DHCP, all fields empty).
type Inspector interface {
	Inspect(ctx context.Context, name string) types.InterfaceConfiguration
}

// Applier mutates an interface's configuration through the fallback
// cascade. Callers must serialize apply calls per interface name; the
// engine does not lock per name.
type Applier interface {
	Apply(ctx context.Context, name string, cfg types.InterfaceConfiguration, recordSnapshot bool) types.ApplyOutcome
}

// SnapshotRecorder receives the pre-change configuration of a successful
// apply. It is the applier-facing half of the snapshot manager.
type SnapshotRecorder interface {
	Record(name string, cfg types.InterfaceConfiguration) error
}

// SnapshotManager owns the single durable rollback slot.
type SnapshotManager interface {
	SnapshotRecorder

	// Capture records the interface's current configuration, overwriting
	// any prior snapshot.
	Capture(ctx context.Context, name string) error

	// Load returns the captured snapshot, or nil when the slot is empty.
	Load() (*types.ConfigurationSnapshot, error)

	// Restore reapplies the captured configuration to its interface with
	// snapshot recording suppressed. Returns errclass.ErrNoSnapshot when
	// the slot is empty. The slot is kept, so a repeated restore is
	// idempotent.
	Restore(ctx context.Context) (types.ApplyOutcome, error)
}
