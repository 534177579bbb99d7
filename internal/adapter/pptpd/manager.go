// Package pptpd provides the PPTP daemon configuration adapter.
// It implements the TunnelConfigurator port over the daemon config file and
// the ppp options file.
package pptpd

import (
	"fmt"
	"strings"

	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/port"

	"github.com/sirupsen/logrus"
)

// Default locations on a Debian-family host.
const (
	DefaultConfigPath  = "/etc/pptpd.conf"
	DefaultOptionsPath = "/etc/ppp/pptpd-options"
)

const optionsHeader = "# Generated by pptpd-setup\n"

// optionsTemplate is the fixed ppp options body: MS-CHAPv2 only, 128-bit
// MPPE required, proxy ARP so clients appear on the local segment.
var optionsTemplate = []string{
	"name pptpd",
	"refuse-pap",
	"refuse-chap",
	"refuse-mschap",
	"require-mschap-v2",
	"require-mppe-128",
	"proxyarp",
	"lock",
	"nobsdcomp",
	"novj",
	"novjccomp",
	"nologfd",
}

// Manager is an adapter that maintains the pptpd configuration files.
type Manager struct {
	configPath  string
	optionsPath string
	fileMgr     port.FileManager
}

// Ensure Manager implements the TunnelConfigurator port
var _ port.TunnelConfigurator = (*Manager)(nil)

// NewManager creates a new pptpd configuration adapter writing to the given
// paths.
func NewManager(configPath, optionsPath string, fileMgr port.FileManager) *Manager {
	return &Manager{
		configPath:  configPath,
		optionsPath: optionsPath,
		fileMgr:     fileMgr,
	}
}

// EnsureServerConfig rewrites the daemon config so it carries exactly one
// localip and one remoteip line. All other lines are preserved; the previous
// file is backed up first.
func (m *Manager) EnsureServerConfig(localIP, clientRange string) error {
	logger := logging.WithComponent("pptpd")

	var existing []byte
	if m.fileMgr.FileExists(m.configPath) {
		backupPath, err := m.fileMgr.BackupFile(m.configPath)
		if err != nil {
			return fmt.Errorf("failed to back up %s: %w", m.configPath, err)
		}
		logger.WithField("backup", backupPath).Debug("Backed up existing daemon config")

		existing, err = m.fileMgr.ReadFile(m.configPath)
		if err != nil {
			return err
		}
	}

	merged := mergeServerConfig(existing, localIP, clientRange)
	if err := m.fileMgr.WriteFile(m.configPath, merged, 0644); err != nil {
		return fmt.Errorf("failed to update %s: %w", m.configPath, err)
	}

	logger.WithFields(logrus.Fields{
		"localip":  localIP,
		"remoteip": clientRange,
	}).Info("Updated pptpd daemon config")
	return nil
}

// mergeServerConfig drops every line whose first field is localip or
// remoteip and appends fresh ones. The tail of the file is normalized to a
// single trailing newline so repeated merges are byte-stable.
func mergeServerConfig(existing []byte, localIP, clientRange string) []byte {
	var kept []string
	if trimmed := strings.TrimRight(string(existing), "\n"); trimmed != "" {
		for _, line := range strings.Split(trimmed, "\n") {
			fields := strings.Fields(line)
			if len(fields) > 0 && (fields[0] == "localip" || fields[0] == "remoteip") {
				continue
			}
			kept = append(kept, line)
		}
	}
	kept = append(kept, "localip "+localIP, "remoteip "+clientRange)
	return []byte(strings.Join(kept, "\n") + "\n")
}

// WriteOptions overwrites the ppp options file with the fixed template plus
// one ms-dns line per server, order preserved, blanks and duplicates
// skipped. The previous file is backed up first.
func (m *Manager) WriteOptions(dns []string) error {
	logger := logging.WithComponent("pptpd")

	if m.fileMgr.FileExists(m.optionsPath) {
		backupPath, err := m.fileMgr.BackupFile(m.optionsPath)
		if err != nil {
			return fmt.Errorf("failed to back up %s: %w", m.optionsPath, err)
		}
		logger.WithField("backup", backupPath).Debug("Backed up existing options file")
	}

	if err := m.fileMgr.WriteFile(m.optionsPath, renderOptions(dns), 0644); err != nil {
		return fmt.Errorf("failed to update %s: %w", m.optionsPath, err)
	}

	logger.WithField("dns", strings.Join(dns, ",")).Info("Wrote ppp options file")
	return nil
}

func renderOptions(dns []string) []byte {
	var b strings.Builder
	b.WriteString(optionsHeader)
	for _, option := range optionsTemplate {
		b.WriteString(option)
		b.WriteByte('\n')
	}

	seen := make(map[string]struct{}, len(dns))
	for _, server := range dns {
		if server == "" {
			continue
		}
		if _, dup := seen[server]; dup {
			continue
		}
		seen[server] = struct{}{}
		b.WriteString("ms-dns ")
		b.WriteString(server)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
