// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"pptpd-setup/internal/types"
)

//go:generate mockgen -source=provision.go -destination=../mock/provision.go -package=mock

// TunnelConfigurator is the port for the PPTP daemon configuration files.
// Implementations must be idempotent: applying the same inputs twice leaves
// the target files byte-identical.
type TunnelConfigurator interface {
	// EnsureServerConfig ensures the daemon config carries exactly one
	// localip and one remoteip line for the given values
	EnsureServerConfig(localIP, clientRange string) error

	// WriteOptions overwrites the ppp options file with the fixed template
	// plus one ms-dns line per server
	WriteOptions(dns []string) error
}

// SecretsStore is the port for the CHAP credential file.
type SecretsStore interface {
	// EnsureUsers replaces or appends one secrets line per credential,
	// leaving unrelated lines untouched
	EnsureUsers(users []types.UserCredential) error
}

// NetfilterConfigurator is the port for kernel forwarding and firewall state.
type NetfilterConfigurator interface {
	// EnableForwarding turns on IPv4 forwarding for the running kernel
	EnableForwarding() error

	// PersistForwarding writes the sysctl drop-in applied at boot
	PersistForwarding() error

	// LoadConntrackHelpers loads the PPTP connection tracking modules
	LoadConntrackHelpers() error

	// EnsureInputRules accepts PPTP control and GRE traffic on INPUT
	EnsureInputRules() error

	// EnsureForwardingRules installs masquerading and the two FORWARD
	// accepts between the ppp interfaces and the egress interface
	EnsureForwardingRules(egress string) error

	// PersistRuleset saves the current ruleset to the rules file
	PersistRuleset() error
}

// SystemManager is the port for the package manager and the service manager.
type SystemManager interface {
	// UpdatePackageIndex refreshes the package lists
	UpdatePackageIndex() error

	// InstallPackages installs the given packages noninteractively
	InstallPackages(packages ...string) error

	// EnableService marks a service for boot-time start
	EnableService(name string) error

	// RestartService restarts a service
	RestartService(name string) error
}
