// Package types defines common types used across the application.
package types

import "time"

// AdminStatus is the administrative/link status of a network interface as
// reported by the backend's interface table.
type AdminStatus string

const (
	StatusUp       AdminStatus = "Up"
	StatusDown     AdminStatus = "Down" // enabled but disconnected
	StatusDisabled AdminStatus = "Disabled"
	StatusUnknown  AdminStatus = "Unknown"
)

// ConfigMode selects between automatic and static addressing.
type ConfigMode string

const (
	ModeDHCP   ConfigMode = "dhcp"
	ModeStatic ConfigMode = "static"
)

// ErrorKind classifies an apply failure from the backend's diagnostic text.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindValidation        ErrorKind = "validation"
	KindInterfaceNotFound ErrorKind = "interface-not-found"
	KindInterfaceDisabled ErrorKind = "interface-disabled"
	KindElevationRequired ErrorKind = "elevation-required"
	KindSyntaxRejected    ErrorKind = "backend-syntax-rejected"
	KindDisconnected      ErrorKind = "disconnected"
	KindNoSnapshot        ErrorKind = "no-snapshot"
	KindTimeout           ErrorKind = "timeout"
	KindBackendFailure    ErrorKind = "backend-failure"
)

// NetworkInterface is one adapter as merged from the discovery sources.
// Instances are ephemeral; the name is the only identity that survives a
// re-enumeration.
type NetworkInterface struct {
	Name        string      `yaml:"name" json:"name"`
	Status      AdminStatus `yaml:"status,omitempty" json:"status,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	MediaType   string      `yaml:"media_type,omitempty" json:"media_type,omitempty"`
	LinkSpeed   string      `yaml:"link_speed,omitempty" json:"link_speed,omitempty"`
	MAC         string      `yaml:"mac,omitempty" json:"mac,omitempty"`
	MTU         int         `yaml:"mtu,omitempty" json:"mtu,omitempty"`
}

// InterfaceConfiguration is the desired or observed IPv4 configuration of a
// single interface. Static mode requires Address and SubnetMask; the DNS
// list is ordered by priority and may be empty even under static addressing,
// meaning DNS stays automatic.
type InterfaceConfiguration struct {
	Mode       ConfigMode `yaml:"mode" json:"mode" validate:"required,oneof=dhcp static"`
	Address    string     `yaml:"address,omitempty" json:"address,omitempty" validate:"omitempty,dotted_quad"`
	SubnetMask string     `yaml:"mask,omitempty" json:"mask,omitempty" validate:"omitempty,dotted_quad"`
	Gateway    string     `yaml:"gateway,omitempty" json:"gateway,omitempty" validate:"omitempty,dotted_quad"`
	DNS        []string   `yaml:"dns,omitempty" json:"dns,omitempty" validate:"dive,dotted_quad"`
}

// ConfigurationSnapshot is the single rollback record. Exactly one slot
// exists; every capture overwrites it.
type ConfigurationSnapshot struct {
	InterfaceName string                 `json:"interface"`
	Configuration InterfaceConfiguration `json:"configuration"`
	CapturedAt    time.Time              `json:"captured_at"`
}

// ApplyOutcome is the result of one apply call. Strategy is the zero-based
// index of the command strategy that succeeded, or -1.
type ApplyOutcome struct {
	Success    bool
	Strategy   int
	Kind       ErrorKind
	Diagnostic string
	Hint       string
}

// Failure builds a failed outcome.
func Failure(kind ErrorKind, diagnostic, hint string) ApplyOutcome {
	return ApplyOutcome{Success: false, Strategy: -1, Kind: kind, Diagnostic: diagnostic, Hint: hint}
}
