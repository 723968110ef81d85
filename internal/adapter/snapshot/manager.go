// Package snapshot owns the single durable rollback slot: the
// configuration an interface had before the last recorded change.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go-netcfg/internal/pkg/errclass"
	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"
)

// Manager is an adapter that implements the SnapshotManager port. The slot
// holds at most one snapshot; every Record or Capture overwrites it.
type Manager struct {
	mu        sync.Mutex
	files     port.FileManager
	path      string
	inspector port.Inspector
	applier   port.Applier
}

// Ensure Manager implements the SnapshotManager port
var _ port.SnapshotManager = (*Manager)(nil)

// NewManager creates a snapshot manager persisting to path.
func NewManager(files port.FileManager, path string, inspector port.Inspector, applier port.Applier) *Manager {
	return &Manager{files: files, path: path, inspector: inspector, applier: applier}
}

// Record persists cfg as the rollback snapshot for the named interface,
// replacing any prior snapshot regardless of interface.
func (m *Manager) Record(name string, cfg types.InterfaceConfiguration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := types.ConfigurationSnapshot{
		InterfaceName: name,
		Configuration: cfg,
		CapturedAt:    time.Now().UTC(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := m.files.WriteFile(m.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	logging.WithComponentAndInterface("snapshot", name).Debug("Rollback snapshot recorded")
	return nil
}

// Capture inspects the interface's current configuration and records it.
func (m *Manager) Capture(ctx context.Context, name string) error {
	cfg := m.inspector.Inspect(ctx, name)
	return m.Record(name, cfg)
}

// Load returns the captured snapshot, or nil when the slot is empty.
func (m *Manager) Load() (*types.ConfigurationSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

func (m *Manager) load() (*types.ConfigurationSnapshot, error) {
	if !m.files.FileExists(m.path) {
		return nil, nil
	}
	data, err := m.files.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	var snap types.ConfigurationSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	return &snap, nil
}

// Restore reapplies the captured configuration with snapshot recording
// suppressed, so the restore itself never clobbers the slot. The slot is
// kept afterwards; restoring twice is idempotent.
func (m *Manager) Restore(ctx context.Context) (types.ApplyOutcome, error) {
	m.mu.Lock()
	snap, err := m.load()
	m.mu.Unlock()
	if err != nil {
		return types.ApplyOutcome{}, err
	}
	if snap == nil {
		return types.ApplyOutcome{}, errclass.ErrNoSnapshot
	}

	logging.WithComponentAndInterface("snapshot", snap.InterfaceName).
		WithField("captured_at", snap.CapturedAt).
		Info("Restoring configuration from snapshot")
	return m.applier.Apply(ctx, snap.InterfaceName, snap.Configuration, false), nil
}
