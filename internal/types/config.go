// Package types defines common types used across the application.
package types

// UserCredential represents a single VPN account entry.
// This type is used by the secrets adapter when rewriting chap-secrets.
type UserCredential struct {
	Name     string `yaml:"name"`     // login name, must not contain whitespace or ':'
	Password string `yaml:"password"` // plaintext password as required by CHAP
}

// EgressInterface describes the interface carrying the default route.
// It is detected from the routing table on every run and never persisted.
type EgressInterface struct {
	Name string // interface name (e.g., "eth0")
	IPv4 string // primary IPv4 address in dotted decimal notation
}
