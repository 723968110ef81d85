// Package apply mutates interface configuration through a cascading
// sequence of fallback command strategies that compensate for backend
// syntax variance and interface connection state.
package apply

import (
	"context"

	"github.com/sirupsen/logrus"

	"go-netcfg/internal/pkg/errclass"
	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/pkg/validate"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"
)

// Applier is an adapter that implements the Applier port. One ApplyOutcome
// is owned per call; the applier itself retains no state between calls.
// Callers must serialize apply calls per interface name.
type Applier struct {
	backend   port.Backend
	status    port.StatusProvider
	inspector port.Inspector
	snapshots port.SnapshotRecorder
}

// Ensure Applier implements the Applier port
var _ port.Applier = (*Applier)(nil)

// NewApplier creates an applier. The snapshot recorder is attached later
// via SetSnapshotRecorder because the snapshot manager needs the applier
// for its restore path.
func NewApplier(backend port.Backend, status port.StatusProvider, inspector port.Inspector) *Applier {
	return &Applier{backend: backend, status: status, inspector: inspector}
}

// SetSnapshotRecorder attaches the rollback slot recorder. A nil recorder
// disables snapshot recording entirely.
func (a *Applier) SetSnapshotRecorder(recorder port.SnapshotRecorder) {
	a.snapshots = recorder
}

// Apply drives the interface to the desired configuration. On success the
// pre-change configuration is recorded into the rollback slot first, unless
// recordSnapshot is false.
func (a *Applier) Apply(ctx context.Context, name string, cfg types.InterfaceConfiguration, recordSnapshot bool) types.ApplyOutcome {
	logger := logging.WithComponentAndInterface("apply", name)

	if outcome, ok := a.validateDesired(&cfg, logger); !ok {
		return outcome
	}

	status := a.status.Status(ctx, name)
	if status == types.StatusDisabled {
		logger.Warn("Interface is disabled, refusing to configure")
		return types.Failure(types.KindInterfaceDisabled,
			"interface is administratively disabled",
			errclass.Hint(types.KindInterfaceDisabled))
	}

	// The rollback record must describe the world before any mutation.
	preChange := a.inspector.Inspect(ctx, name)

	var outcome types.ApplyOutcome
	if cfg.Mode == types.ModeDHCP {
		outcome = a.applyDHCP(ctx, name, logger)
	} else {
		outcome = a.applyStatic(ctx, name, cfg, status, logger)
	}
	if !outcome.Success {
		return outcome
	}

	if recordSnapshot && a.snapshots != nil {
		if err := a.snapshots.Record(name, preChange); err != nil {
			// The interface already changed; reporting failure here would
			// misstate reality. The rollback slot is just stale.
			logger.WithError(err).Error("Failed to record rollback snapshot")
		}
	}

	logger.WithField("mode", cfg.Mode).Info("Configuration applied")
	return outcome
}

// validateDesired checks the syntactic preconditions. Address and mask are
// fatal when invalid in static mode; malformed gateway and DNS entries are
// dropped with a warning, never fatal.
func (a *Applier) validateDesired(cfg *types.InterfaceConfiguration, logger *logrus.Entry) (types.ApplyOutcome, bool) {
	if cfg.Mode != types.ModeStatic {
		cfg.DNS = filterValidDNS(cfg.DNS, logger)
		return types.ApplyOutcome{}, true
	}

	if cfg.Address == "" || cfg.SubnetMask == "" {
		return types.Failure(types.KindValidation,
			"static mode requires both an address and a subnet mask",
			errclass.Hint(types.KindValidation)), false
	}
	if !validate.IsValidIPv4(cfg.Address) || !validate.IsValidIPv4(cfg.SubnetMask) {
		return types.Failure(types.KindValidation,
			"address or subnet mask is not a valid dotted-quad literal",
			errclass.Hint(types.KindValidation)), false
	}
	if cfg.Gateway != "" && !validate.IsValidIPv4(cfg.Gateway) {
		logger.WithField("gateway", cfg.Gateway).Warn("Dropping malformed gateway")
		cfg.Gateway = ""
	}
	cfg.DNS = filterValidDNS(cfg.DNS, logger)
	return types.ApplyOutcome{}, true
}

func filterValidDNS(dns []string, logger *logrus.Entry) []string {
	valid := make([]string, 0, len(dns))
	for _, addr := range dns {
		if validate.IsValidIPv4(addr) {
			valid = append(valid, addr)
		} else {
			logger.WithField("dns", addr).Warn("Dropping malformed DNS server")
		}
	}
	return valid
}

// applyDHCP issues the two idempotent automatic-mode calls. There is no
// fallback chain for DHCP.
func (a *Applier) applyDHCP(ctx context.Context, name string, logger *logrus.Entry) types.ApplyOutcome {
	if res := a.backend.SetAddressDHCP(ctx, name); !res.OK() {
		kind := errclass.Classify(res.Diagnostic())
		return types.Failure(kind, res.Diagnostic(), errclass.Hint(kind))
	}
	if res := a.backend.SetDNSDHCP(ctx, name, true); !res.OK() {
		kind := errclass.Classify(res.Diagnostic())
		return types.Failure(kind, res.Diagnostic(), errclass.Hint(kind))
	}
	return types.ApplyOutcome{Success: true, Strategy: -1}
}

// applyStatic runs the four-strategy cascade and then applies DNS. Each
// strategy failure is non-fatal to the chain; only exhausting all four
// yields overall failure, classified from the last diagnostic.
func (a *Applier) applyStatic(ctx context.Context, name string, cfg types.InterfaceConfiguration, status types.AdminStatus, logger *logrus.Entry) types.ApplyOutcome {
	winner := -1
	var last port.Result
	for i, s := range a.strategies(name, cfg) {
		res := s.attempt(ctx)
		if res.OK() {
			logger.WithField("strategy", s.name).Debug("Strategy succeeded")
			winner = i
			break
		}
		logger.WithFields(map[string]interface{}{
			"strategy":   s.name,
			"diagnostic": res.Diagnostic(),
		}).Debug("Strategy failed, trying next")
		last = res
	}

	if winner < 0 {
		kind := errclass.Classify(last.Diagnostic())
		hint := errclass.Hint(kind)
		if status == types.StatusDown {
			// The interface may still accept configuration without link;
			// keep the detail and add the remediation.
			hint = errclass.Hint(types.KindDisconnected)
		}
		return types.Failure(kind, last.Diagnostic(), hint)
	}

	if outcome, ok := a.applyDNS(ctx, name, cfg.DNS); !ok {
		return outcome
	}
	return types.ApplyOutcome{Success: true, Strategy: winner}
}

// applyDNS runs only after a successful IP assignment. A non-empty list
// sets the primary server and adds the rest by priority index; an empty
// list explicitly resets DNS to automatic, never leaving it unspecified.
func (a *Applier) applyDNS(ctx context.Context, name string, dns []string) (types.ApplyOutcome, bool) {
	logger := logging.WithComponentAndInterface("apply", name)

	if len(dns) == 0 {
		if res := a.backend.SetDNSDHCP(ctx, name, true); !res.OK() {
			if res = a.backend.SetDNSDHCP(ctx, name, false); !res.OK() {
				logger.WithField("diagnostic", res.Diagnostic()).Warn("Could not reset DNS to automatic")
			}
		}
		return types.ApplyOutcome{}, true
	}

	res := a.backend.SetDNSStatic(ctx, name, dns[0], true)
	if !res.OK() {
		res = a.backend.SetDNSStatic(ctx, name, dns[0], false)
	}
	if !res.OK() {
		kind := errclass.Classify(res.Diagnostic())
		return types.Failure(kind, res.Diagnostic(), errclass.Hint(kind)), false
	}

	// Priority index is the 1-based list position: second entry gets 2.
	for i, addr := range dns[1:] {
		index := i + 2
		if res := a.backend.AddDNS(ctx, name, addr, index, true); !res.OK() {
			if res = a.backend.AddDNS(ctx, name, addr, index, false); !res.OK() {
				logger.WithFields(map[string]interface{}{
					"dns":        addr,
					"diagnostic": res.Diagnostic(),
				}).Warn("Could not add secondary DNS server")
			}
		}
	}
	return types.ApplyOutcome{}, true
}
