// Package netfilter provides the kernel forwarding and firewall adapter.
// It implements the NetfilterConfigurator port by driving sysctl, modprobe,
// iptables and iptables-save as external commands.
package netfilter

import (
	"fmt"
	"path/filepath"
	"strings"

	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/port"
)

// Default locations on a Debian-family host.
const (
	DefaultSysctlDropInPath = "/etc/sysctl.d/99-pptp-ipforward.conf"
	DefaultRulesPath        = "/etc/iptables/rules.v4"
)

const sysctlDropInContent = "net.ipv4.ip_forward = 1\n"

// conntrackModules track GRE call IDs so PPTP sessions survive NAT.
var conntrackModules = []string{"nf_conntrack_pptp", "nf_nat_pptp"}

// Manager is an adapter that configures kernel forwarding and the firewall.
type Manager struct {
	sysctlDropInPath string
	rulesPath        string
	runner           port.CommandRunner
	fileMgr          port.FileManager
}

// Ensure Manager implements the NetfilterConfigurator port
var _ port.NetfilterConfigurator = (*Manager)(nil)

// NewManager creates a new netfilter adapter writing to the given paths.
func NewManager(sysctlDropInPath, rulesPath string, runner port.CommandRunner, fileMgr port.FileManager) *Manager {
	return &Manager{
		sysctlDropInPath: sysctlDropInPath,
		rulesPath:        rulesPath,
		runner:           runner,
		fileMgr:          fileMgr,
	}
}

// EnableForwarding turns on IPv4 forwarding for the running kernel.
func (m *Manager) EnableForwarding() error {
	if err := m.runner.Run("sysctl", "-w", "net.ipv4.ip_forward=1"); err != nil {
		return fmt.Errorf("failed to enable IP forwarding: %w", err)
	}
	return nil
}

// PersistForwarding writes the sysctl drop-in applied at boot.
func (m *Manager) PersistForwarding() error {
	if err := m.fileMgr.WriteFile(m.sysctlDropInPath, []byte(sysctlDropInContent), 0644); err != nil {
		return fmt.Errorf("failed to persist IP forwarding: %w", err)
	}
	return nil
}

// LoadConntrackHelpers loads the PPTP connection tracking modules. Both
// modules are attempted even when the first fails; the first error is
// returned so the caller can decide severity.
func (m *Manager) LoadConntrackHelpers() error {
	var firstErr error
	for _, module := range conntrackModules {
		if err := m.runner.Run("modprobe", module); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to load module %s: %w", module, err)
		}
	}
	return firstErr
}

// EnsureInputRules accepts PPTP control (TCP/1723) and GRE traffic on INPUT.
func (m *Manager) EnsureInputRules() error {
	if err := m.ensureRule("", "INPUT", "-p", "tcp", "--dport", "1723", "-j", "ACCEPT"); err != nil {
		return err
	}
	return m.ensureRule("", "INPUT", "-p", "gre", "-j", "ACCEPT")
}

// EnsureForwardingRules installs masquerading on the egress interface and
// the two FORWARD accepts between the ppp interfaces and the egress
// interface.
func (m *Manager) EnsureForwardingRules(egress string) error {
	if err := m.ensureRule("nat", "POSTROUTING", "-o", egress, "-j", "MASQUERADE"); err != nil {
		return err
	}
	if err := m.ensureRule("", "FORWARD", "-i", "ppp+", "-o", egress, "-j", "ACCEPT"); err != nil {
		return err
	}
	return m.ensureRule("", "FORWARD",
		"-i", egress, "-o", "ppp+",
		"-m", "state", "--state", "ESTABLISHED,RELATED",
		"-j", "ACCEPT")
}

// ensureRule appends a rule only when the check reports it missing, so
// repeated runs never duplicate rules.
func (m *Manager) ensureRule(table, chain string, ruleSpec ...string) error {
	var base []string
	if table != "" {
		base = append(base, "-t", table)
	}

	checkArgs := append(append(append([]string(nil), base...), "-C", chain), ruleSpec...)
	if err := m.runner.Run("iptables", checkArgs...); err == nil {
		logging.WithComponent("netfilter").WithField("chain", chain).Debug("Rule already present, skipping")
		return nil
	}

	addArgs := append(append(append([]string(nil), base...), "-A", chain), ruleSpec...)
	if err := m.runner.Run("iptables", addArgs...); err != nil {
		return fmt.Errorf("failed to add rule %s %s: %w", chain, strings.Join(ruleSpec, " "), err)
	}
	return nil
}

// PersistRuleset saves the current ruleset to the rules file so
// iptables-persistent restores it at boot.
func (m *Manager) PersistRuleset() error {
	out, err := m.runner.Output("iptables-save")
	if err != nil {
		return fmt.Errorf("failed to dump ruleset: %w", err)
	}
	if err := m.fileMgr.MkdirAll(filepath.Dir(m.rulesPath), 0755); err != nil {
		return err
	}
	if err := m.fileMgr.WriteFile(m.rulesPath, out, 0644); err != nil {
		return fmt.Errorf("failed to persist ruleset: %w", err)
	}
	return nil
}
