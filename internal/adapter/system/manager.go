// Package system provides the package manager and service manager adapter.
package system

import (
	"fmt"
	"strings"

	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/port"
)

// aptEnv keeps dpkg from prompting during install.
var aptEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

// Manager is an adapter that drives apt-get and systemctl. It implements
// the SystemManager port.
type Manager struct {
	runner port.CommandRunner
}

// Ensure Manager implements the SystemManager port
var _ port.SystemManager = (*Manager)(nil)

// NewManager creates a new system manager adapter.
func NewManager(runner port.CommandRunner) *Manager {
	return &Manager{runner: runner}
}

// UpdatePackageIndex refreshes the package lists.
func (m *Manager) UpdatePackageIndex() error {
	if err := m.runner.RunEnv(aptEnv, "apt-get", "update"); err != nil {
		return fmt.Errorf("failed to update package index: %w", err)
	}
	return nil
}

// InstallPackages installs the given packages noninteractively.
func (m *Manager) InstallPackages(packages ...string) error {
	logging.WithComponent("system").WithField("packages", strings.Join(packages, ",")).Info("Installing packages")

	args := append([]string{"install", "-y"}, packages...)
	if err := m.runner.RunEnv(aptEnv, "apt-get", args...); err != nil {
		return fmt.Errorf("failed to install packages %s: %w", strings.Join(packages, " "), err)
	}
	return nil
}

// EnableService marks a service for boot-time start.
func (m *Manager) EnableService(name string) error {
	if err := m.runner.Run("systemctl", "enable", name); err != nil {
		return fmt.Errorf("failed to enable service %s: %w", name, err)
	}
	return nil
}

// RestartService restarts a service.
func (m *Manager) RestartService(name string) error {
	if err := m.runner.Run("systemctl", "restart", name); err != nil {
		return fmt.Errorf("failed to restart service %s: %w", name, err)
	}
	return nil
}
