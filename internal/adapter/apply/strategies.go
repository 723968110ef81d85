package apply

import (
	"context"
	"regexp"
	"strings"

	"go-netcfg/internal/port"
	"go-netcfg/internal/types"
)

// strategy is one concrete command-invocation pattern for a static address
// assignment. Strategies are attempted in order, stopping at the first
// success; each failure only becomes the retained last error.
type strategy struct {
	name    string
	attempt func(ctx context.Context) port.Result
}

var indexRe = regexp.MustCompile(`index:\s*(\d+)`)

// strategies returns the ordered cascade for one apply call.
func (a *Applier) strategies(name string, cfg types.InterfaceConfiguration) []strategy {
	return []strategy{
		{
			// Modern syntax: name qualifier plus explicit source token and
			// route metric.
			name: "modern",
			attempt: func(ctx context.Context) port.Result {
				return a.backend.SetAddressStatic(ctx, name, cfg.Address, cfg.SubnetMask, cfg.Gateway, port.SyntaxModern)
			},
		},
		{
			// Some backend versions reject the source token; retry with the
			// legacy positional form.
			name: "legacy",
			attempt: func(ctx context.Context) port.Result {
				return a.backend.SetAddressStatic(ctx, name, cfg.Address, cfg.SubnetMask, cfg.Gateway, port.SyntaxLegacy)
			},
		},
		{
			// Some names the backend's own parser mishandles; address the
			// interface by its numeric index instead.
			name: "by-index",
			attempt: func(ctx context.Context) port.Result {
				index, ok := a.resolveIndex(ctx, name)
				if !ok {
					return port.Result{Code: 1, Stderr: "interface index could not be resolved"}
				}
				return a.backend.SetAddressStatic(ctx, index, cfg.Address, cfg.SubnetMask, cfg.Gateway, port.SyntaxLegacy)
			},
		},
		{
			// Recovers interfaces where "set" is rejected but "delete all
			// plus add" succeeds, notably disconnected-but-configurable
			// ones.
			name: "force",
			attempt: func(ctx context.Context) port.Result {
				a.backend.DeleteAllAddresses(ctx, name)
				return a.backend.AddAddress(ctx, name, cfg.Address, cfg.SubnetMask, cfg.Gateway)
			},
		},
	}
}

// resolveIndex finds the interface's numeric index by pattern-matching its
// block in the all-interface configuration listing.
func (a *Applier) resolveIndex(ctx context.Context, name string) (string, bool) {
	res := a.backend.ShowConfig(ctx, "")
	if !res.OK() {
		return "", false
	}
	for _, line := range strings.Split(res.Stdout, "\n") {
		if !strings.Contains(line, "Configuration for interface") || !strings.Contains(line, name) {
			continue
		}
		if m := indexRe.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
