// Package inspect reads an interface's current IPv4 configuration from the
// backend's show output.
package inspect

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/pkg/validate"
	"go-netcfg/internal/port"
	"go-netcfg/internal/types"
)

var (
	ipv4Re   = regexp.MustCompile(`(\d{1,3}(?:\.\d{1,3}){3})`)
	maskRe   = regexp.MustCompile(`mask\s+(\d{1,3}(?:\.\d{1,3}){3})`)
	prefixRe = regexp.MustCompile(`/(\d{1,2})`)
)

// Inspector is an adapter that implements the Inspector port. It never
// fails the caller: backend failure or unparseable text degrades to the
// default configuration (DHCP, all fields empty). The backend's default
// non-localized text form is assumed.
type Inspector struct {
	backend port.Backend
}

// Ensure Inspector implements the Inspector port
var _ port.Inspector = (*Inspector)(nil)

// NewInspector creates an inspector over the given backend.
func NewInspector(backend port.Backend) *Inspector {
	return &Inspector{backend: backend}
}

// Inspect returns the interface's current configuration.
func (i *Inspector) Inspect(ctx context.Context, name string) types.InterfaceConfiguration {
	cfg := types.InterfaceConfiguration{Mode: types.ModeDHCP}

	res := i.backend.ShowConfig(ctx, name)
	if !res.OK() {
		logging.WithComponentAndInterface("inspect", name).
			WithField("diagnostic", res.Diagnostic()).
			Debug("Config query failed, returning defaults")
		return cfg
	}

	dhcp := parseConfigText(res.Stdout, &cfg)

	dnsRes := i.backend.ShowDNS(ctx, name)
	if dnsRes.OK() {
		cfg.DNS = parseDNSText(dnsRes.Stdout)
	}

	// An address without the DHCP flag means static assignment; everything
	// else is reported as DHCP.
	if !dhcp && cfg.Address != "" {
		cfg.Mode = types.ModeStatic
	}
	return cfg
}

// parseConfigText extracts the address fields from a "show config" block,
// tolerating whitespace variance. Returns the DHCP-enabled flag. Only the
// first reported address wins; the mask comes from the explicit "mask"
// annotation when present, otherwise from the CIDR prefix length.
func parseConfigText(text string, cfg *types.InterfaceConfiguration) bool {
	dhcp := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "DHCP enabled"):
			if strings.Contains(line, "Yes") {
				dhcp = true
			}
		case strings.HasPrefix(line, "IP Address"):
			if cfg.Address != "" {
				continue
			}
			if value := afterColon(line); validate.IsValidIPv4(value) {
				cfg.Address = value
			}
		case strings.HasPrefix(line, "Subnet Prefix"):
			if cfg.SubnetMask != "" {
				continue
			}
			if m := maskRe.FindStringSubmatch(line); m != nil {
				cfg.SubnetMask = m[1]
			} else if m := prefixRe.FindStringSubmatch(line); m != nil {
				if prefixLen, err := strconv.Atoi(m[1]); err == nil {
					if mask, err := validate.PrefixToMask(prefixLen); err == nil {
						cfg.SubnetMask = mask
					}
				}
			}
		case strings.HasPrefix(line, "Default Gateway"):
			if cfg.Gateway != "" {
				continue
			}
			if value := afterColon(line); validate.IsValidIPv4(value) {
				cfg.Gateway = value
			}
		}
	}
	return dhcp
}

// parseDNSText collects every IPv4 literal from the "show dns" output: the
// union, in report order, of DHCP-assigned and statically configured
// servers, de-duplicated by exact string.
func parseDNSText(text string) []string {
	var dns []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		for _, match := range ipv4Re.FindAllString(line, -1) {
			if !validate.IsValidIPv4(match) || seen[match] {
				continue
			}
			seen[match] = true
			dns = append(dns, match)
		}
	}
	return dns
}

func afterColon(line string) string {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
