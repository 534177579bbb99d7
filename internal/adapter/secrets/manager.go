// Package secrets provides the CHAP credential file adapter.
package secrets

import (
	"fmt"
	"strings"

	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/port"
	"pptpd-setup/internal/types"
)

// DefaultSecretsPath is the ppp CHAP secrets location on Debian-family hosts.
const DefaultSecretsPath = "/etc/ppp/chap-secrets"

// secretsFileMode keeps the plaintext passwords readable by root only.
const secretsFileMode = 0600

// Manager is an adapter that maintains the CHAP secrets file. It implements
// the SecretsStore port.
type Manager struct {
	secretsPath string
	fileMgr     port.FileManager
}

// Ensure Manager implements the SecretsStore port
var _ port.SecretsStore = (*Manager)(nil)

// NewManager creates a new CHAP secrets adapter writing to the given path.
func NewManager(secretsPath string, fileMgr port.FileManager) *Manager {
	return &Manager{
		secretsPath: secretsPath,
		fileMgr:     fileMgr,
	}
}

// EnsureUsers replaces or appends one secrets line per credential. For each
// user, every existing line whose first field matches the name is removed,
// then a fresh line is appended, so repeated runs leave exactly one active
// line per user. Unrelated lines keep their order. The file ends up mode
// 0600 whether or not it existed before.
func (m *Manager) EnsureUsers(users []types.UserCredential) error {
	logger := logging.WithComponent("secrets")

	var content []byte
	if m.fileMgr.FileExists(m.secretsPath) {
		backupPath, err := m.fileMgr.BackupFile(m.secretsPath)
		if err != nil {
			return fmt.Errorf("failed to back up %s: %w", m.secretsPath, err)
		}
		logger.WithField("backup", backupPath).Debug("Backed up existing secrets file")

		content, err = m.fileMgr.ReadFile(m.secretsPath)
		if err != nil {
			return err
		}
	}

	applied := 0
	for _, user := range users {
		if user.Name == "" || user.Password == "" {
			logger.Warnf("Skipping user entry with empty name or password")
			continue
		}
		content = mergeSecret(content, user)
		applied++
	}

	if err := m.fileMgr.WriteFile(m.secretsPath, content, secretsFileMode); err != nil {
		return fmt.Errorf("failed to update %s: %w", m.secretsPath, err)
	}
	// WriteFile only applies the mode on creation
	if err := m.fileMgr.Chmod(m.secretsPath, secretsFileMode); err != nil {
		return err
	}

	logger.WithField("users", applied).Info("Updated CHAP secrets")
	return nil
}

// mergeSecret removes every line whose first field equals the user name and
// appends a fresh entry with wildcard server and address fields.
func mergeSecret(existing []byte, user types.UserCredential) []byte {
	var kept []string
	if trimmed := strings.TrimRight(string(existing), "\n"); trimmed != "" {
		for _, line := range strings.Split(trimmed, "\n") {
			fields := strings.Fields(line)
			if len(fields) > 0 && fields[0] == user.Name {
				continue
			}
			kept = append(kept, line)
		}
	}
	kept = append(kept, fmt.Sprintf("%s * %s *", user.Name, user.Password))
	return []byte(strings.Join(kept, "\n") + "\n")
}
