// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=backend.go -destination=../mock/backend.go -package=mock

import "context"

// Result is the raw outcome of one backend invocation. Code 0 denotes
// success by convention; invocation errors (including timeouts) are folded
// into a non-zero Code with the error text in Stderr, never a Go error.
type Result struct {
	Code   int
	Stdout string
	Stderr string
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool {
	return r.Code == 0
}

// Diagnostic returns the most useful text for error reporting: stderr when
// present, stdout otherwise.
func (r Result) Diagnostic() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Stdout
}

// AddressSyntax selects the argument form used for a static address
// assignment. Backend versions disagree on which form they accept.
type AddressSyntax int

const (
	// SyntaxModern uses the name= qualifier and the explicit source=static
	// token with an explicit route metric.
	SyntaxModern AddressSyntax = iota
	// SyntaxLegacy uses bare positional arguments without the source token.
	// The interface may be identified by name or by numeric index.
	SyntaxLegacy
)

// CommandRunner executes one external command and captures its output.
// Implementations must honor the context deadline.
type CommandRunner interface {
	Run(ctx context.Context, program string, args ...string) Result
}

// Backend is the OS network-configuration facility. Every call carries the
// configured per-invocation timeout and is logged with its full diagnostic
// text for forensic review.
type Backend interface {
	// ListInterfaces returns the backend's interface table.
	ListInterfaces(ctx context.Context) Result

	// ShowConfig returns the IPv4 configuration text for one interface, or
	// for every interface when name is empty.
	ShowConfig(ctx context.Context, name string) Result

	// ShowDNS returns the DNS configuration text for one interface.
	ShowDNS(ctx context.Context, name string) Result

	// SetAddressDHCP switches the interface address to automatic.
	SetAddressDHCP(ctx context.Context, name string) Result

	// SetAddressStatic assigns a static address using the requested syntax.
	// gateway may be empty. With SyntaxLegacy, name may be a numeric
	// interface index instead of the interface name.
	SetAddressStatic(ctx context.Context, name, addr, mask, gateway string, syntax AddressSyntax) Result

	// AddAddress adds an address via the additive primitive without
	// replacing existing ones.
	AddAddress(ctx context.Context, name, addr, mask, gateway string) Result

	// DeleteAllAddresses removes every IPv4 address from the interface.
	DeleteAllAddresses(ctx context.Context, name string) Result

	// SetDNSDHCP switches DNS resolution to automatic. qualified selects
	// the name= argument form; some backend versions only accept the bare
	// form.
	SetDNSDHCP(ctx context.Context, name string, qualified bool) Result

	// SetDNSStatic sets the primary DNS server.
	SetDNSStatic(ctx context.Context, name, addr string, qualified bool) Result

	// AddDNS registers an additional DNS server at the given priority
	// index (2 = second entry).
	AddDNS(ctx context.Context, name, addr string, index int, qualified bool) Result

	// SetAdminState enables or disables the interface.
	SetAdminState(ctx context.Context, name string, enabled bool) Result
}
