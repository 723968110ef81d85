// Package validate provides pure syntax checks for address-like literals.
package validate

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
)

var dottedQuadRe = regexp.MustCompile(`^(?:\d{1,3}\.){3}\d{1,3}$`)

// IsValidIPv4 reports whether text is exactly four dot-separated decimal
// groups, each in 0-255, with no extraneous characters. Used uniformly for
// addresses, masks, gateways and DNS entries.
func IsValidIPv4(text string) bool {
	if !dottedQuadRe.MatchString(text) {
		return false
	}
	for _, part := range strings.Split(text, ".") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// PrefixToMask converts a CIDR prefix length (0-32) to a dotted-quad subnet
// mask, e.g. 24 -> "255.255.255.0".
func PrefixToMask(prefixLen int) (string, error) {
	if prefixLen < 0 || prefixLen > 32 {
		return "", fmt.Errorf("invalid prefix length: %d", prefixLen)
	}
	mask := net.CIDRMask(prefixLen, 32)
	return fmt.Sprintf("%d.%d.%d.%d", mask[0], mask[1], mask[2], mask[3]), nil
}
