// Package discovery merges several unreliable interface discovery sources
// into one canonical adapter list.
package discovery

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"
)

// Names containing these substrings (case-insensitive) are pseudo
// interfaces and excluded after merge.
var excludedNameParts = []string{"loopback", "isatap", "teredo"}

// Enumerator is an adapter that implements the Enumerator port. Sources are
// queried in parallel but merged in their fixed priority order, so the
// result is deterministic regardless of arrival order. A failing source is
// skipped; if every source fails the result is empty, which callers treat
// as "no adapters detected", not a fault.
type Enumerator struct {
	backend port.Backend
	sources []port.Source
}

// Ensure Enumerator implements the Enumerator port
var _ port.Enumerator = (*Enumerator)(nil)

// NewEnumerator creates an enumerator over the given sources. Source order
// is merge precedence: a later source enriches earlier results but only
// with the fields it actually reports.
func NewEnumerator(backend port.Backend, sources ...port.Source) *Enumerator {
	return &Enumerator{backend: backend, sources: sources}
}

// Discover returns the deduplicated, lexicographically sorted merge of all
// sources.
func (e *Enumerator) Discover(ctx context.Context) []types.NetworkInterface {
	logger := logging.WithComponent("discovery")

	results := make([][]types.NetworkInterface, len(e.sources))
	var wg sync.WaitGroup
	for i, src := range e.sources {
		wg.Add(1)
		go func(i int, src port.Source) {
			defer wg.Done()
			list, err := src.Discover(ctx)
			if err != nil {
				logger.WithField("source", src.Name()).WithError(err).Debug("Discovery source skipped")
				return
			}
			results[i] = list
		}(i, src)
	}
	wg.Wait()

	merged := make(map[string]*types.NetworkInterface)
	for _, list := range results {
		for _, iface := range list {
			if iface.Name == "" {
				continue
			}
			known, ok := merged[iface.Name]
			if !ok {
				copied := iface
				merged[iface.Name] = &copied
				continue
			}
			enrich(known, iface)
		}
	}

	out := make([]types.NetworkInterface, 0, len(merged))
	for _, iface := range merged {
		if isExcludedName(iface.Name) {
			continue
		}
		out = append(out, *iface)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	logger.WithField("count", len(out)).Debug("Discovery complete")
	return out
}

// Status resolves the administrative status of one interface from the
// backend's interface table.
func (e *Enumerator) Status(ctx context.Context, name string) types.AdminStatus {
	res := e.backend.ListInterfaces(ctx)
	if !res.OK() {
		return types.StatusUnknown
	}
	for _, iface := range parseInterfaceTable(res.Stdout) {
		if iface.Name == name {
			return iface.Status
		}
	}
	return types.StatusUnknown
}

// enrich overlays the fields src actually reports onto dst, never erasing
// fields an earlier source contributed.
func enrich(dst *types.NetworkInterface, src types.NetworkInterface) {
	if src.Status != "" && src.Status != types.StatusUnknown {
		dst.Status = src.Status
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if src.MediaType != "" {
		dst.MediaType = src.MediaType
	}
	if src.LinkSpeed != "" {
		dst.LinkSpeed = src.LinkSpeed
	}
	if src.MAC != "" {
		dst.MAC = src.MAC
	}
	if src.MTU > 0 {
		dst.MTU = src.MTU
	}
}

func isExcludedName(name string) bool {
	lower := strings.ToLower(name)
	for _, part := range excludedNameParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
