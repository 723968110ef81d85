package cmd

import (
	"fmt"

	"go-netcfg/internal/adapter/apply"
	"go-netcfg/internal/adapter/discovery"
	"go-netcfg/internal/adapter/file"
	"go-netcfg/internal/adapter/inspect"
	"go-netcfg/internal/adapter/netsh"
	"go-netcfg/internal/adapter/profile"
	"go-netcfg/internal/adapter/shell"
	"go-netcfg/internal/adapter/snapshot"
	"go-netcfg/internal/pkg/config"
	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/pkg/netdiag"
	"go-netcfg/internal/port"
)

// app bundles the wired engine components behind one construction point so
// every command shares the same assembly.
type app struct {
	cfg        *config.Config
	backend    port.Backend
	enumerator port.Enumerator
	inspector  port.Inspector
	applier    port.Applier
	snapshots  port.SnapshotManager
	profiles   *profile.Store
	pinger     *netdiag.Pinger
}

// newApp loads the configuration, initializes logging, and wires the
// adapters together. The snapshot recorder is attached to the applier last
// because the snapshot manager needs the applier for its restore path.
func newApp() (*app, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	logging.InitLogger(cfg.Logging)

	runner := shell.NewRunner()
	backend := netsh.NewBackendAdapter(runner, cfg.Backend.CommandTimeout.Std())
	enumerator := discovery.NewEnumerator(backend,
		discovery.DefaultSources(backend, runner, cfg.Backend.CommandTimeout.Std())...)
	inspector := inspect.NewInspector(backend)
	applier := apply.NewApplier(backend, enumerator, inspector)

	fileMgr := file.NewManagerAdapter()
	snapshots := snapshot.NewManager(fileMgr, cfg.Storage.SnapshotFile, inspector, applier)
	applier.SetSnapshotRecorder(snapshots)

	return &app{
		cfg:        cfg,
		backend:    backend,
		enumerator: enumerator,
		inspector:  inspector,
		applier:    applier,
		snapshots:  snapshots,
		profiles:   profile.NewStore(fileMgr, cfg.Storage.ProfilesFile),
		pinger:     netdiag.NewPinger(cfg.Ping.Count, cfg.Ping.Timeout.Std()),
	}, nil
}
