// Package errclass classifies backend failures from unstructured diagnostic
// text and maps each error kind to a remediation hint.
//
// Classification is substring matching on free-text output and assumes the
// backend's default, non-localized text form. This is a known limitation:
// on a localized system everything falls through to the unknown bucket.
package errclass

import (
	"errors"
	"strings"

	"go-netcfg/internal/types"
)

// ErrNoSnapshot is returned by a restore when the rollback slot is empty.
var ErrNoSnapshot = errors.New("no snapshot recorded")

// Classify maps a backend diagnostic to an error kind. The fallback bucket
// is KindBackendFailure; an empty diagnostic still lands there.
func Classify(diagnostic string) types.ErrorKind {
	lower := strings.ToLower(diagnostic)
	switch {
	case strings.Contains(lower, "elevation") || strings.Contains(lower, "administrator"):
		return types.KindElevationRequired
	case strings.Contains(lower, "invalid source parameter"):
		return types.KindSyntaxRejected
	case strings.Contains(lower, "not found") || strings.Contains(lower, "could not find"):
		return types.KindInterfaceNotFound
	case strings.Contains(lower, "timed out") || strings.Contains(lower, "deadline exceeded"):
		return types.KindTimeout
	default:
		return types.KindBackendFailure
	}
}

// Hint returns the user-facing remediation text for a kind. Intermediate
// per-strategy failures are never surfaced; only the final classified
// outcome plus this hint.
func Hint(kind types.ErrorKind) string {
	switch kind {
	case types.KindValidation:
		return "Check that the address, mask, gateway and DNS entries are dotted-quad IPv4 literals."
	case types.KindInterfaceNotFound:
		return "Interface not found. Refresh the interface list and retry."
	case types.KindInterfaceDisabled:
		return "Interface is disabled. Enable it first (netcfg enable <interface>)."
	case types.KindElevationRequired:
		return "Administrator privileges required. Re-run from an elevated shell."
	case types.KindSyntaxRejected:
		return "The backend rejected the command syntax. Refresh the interface list and retry."
	case types.KindDisconnected:
		return "Interface has no link. Settings may still be stored and take effect once the cable is connected."
	case types.KindNoSnapshot:
		return "Nothing to restore: no configuration snapshot has been captured yet."
	case types.KindTimeout:
		return "The backend did not answer in time. Retry; if it persists the backend service may be hung."
	case types.KindBackendFailure:
		return "The backend reported an unclassified failure. See the diagnostic output."
	default:
		return ""
	}
}
