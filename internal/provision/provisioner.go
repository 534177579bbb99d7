package provision

import (
	"context"
	"fmt"

	"pptpd-setup/internal/pkg/config"
	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/port"
	"pptpd-setup/internal/types"
)

// ServiceName is the systemd unit managed by the pipeline.
const ServiceName = "pptpd"

// requiredPackages are installed before any configuration file is touched.
var requiredPackages = []string{"pptpd", "iptables", "iptables-persistent"}

// Provisioner runs the provisioning pipeline end to end. Each external
// effect goes through a port so the sequence is testable.
type Provisioner struct {
	cfg       config.ServerConfig
	egress    *types.EgressInterface
	tunnel    port.TunnelConfigurator
	secrets   port.SecretsStore
	netfilter port.NetfilterConfigurator
	system    port.SystemManager
}

// NewProvisioner creates a provisioner for the resolved configuration.
// egress may be nil when detection failed; NAT setup is then skipped.
func NewProvisioner(
	cfg config.ServerConfig,
	egress *types.EgressInterface,
	tunnel port.TunnelConfigurator,
	secrets port.SecretsStore,
	netfilter port.NetfilterConfigurator,
	system port.SystemManager,
) *Provisioner {
	return &Provisioner{
		cfg:       cfg,
		egress:    egress,
		tunnel:    tunnel,
		secrets:   secrets,
		netfilter: netfilter,
		system:    system,
	}
}

// Run executes the pipeline strictly in sequence. Fatal step errors abort
// and propagate; best-effort steps log a warning and continue.
func (p *Provisioner) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := logging.WithComponent("provision")

	logger.Info("Installing packages")
	if err := p.system.UpdatePackageIndex(); err != nil {
		logger.WithError(err).Warn("Package index update failed, installing with stale lists")
	}
	if err := p.system.InstallPackages(requiredPackages...); err != nil {
		return fmt.Errorf("package installation failed: %w", err)
	}

	logger.Info("Writing PPTP configuration")
	if err := p.tunnel.EnsureServerConfig(p.cfg.LocalIP, p.cfg.ClientRange); err != nil {
		return fmt.Errorf("daemon configuration failed: %w", err)
	}
	if err := p.tunnel.WriteOptions(p.cfg.DNS); err != nil {
		return fmt.Errorf("ppp options configuration failed: %w", err)
	}
	if err := p.secrets.EnsureUsers(p.cfg.Users); err != nil {
		return fmt.Errorf("credential update failed: %w", err)
	}

	logger.Info("Enabling IP forwarding")
	if err := p.netfilter.EnableForwarding(); err != nil {
		return fmt.Errorf("enabling IP forwarding failed: %w", err)
	}
	if err := p.netfilter.PersistForwarding(); err != nil {
		return fmt.Errorf("persisting IP forwarding failed: %w", err)
	}

	logger.Info("Configuring firewall")
	if err := p.netfilter.LoadConntrackHelpers(); err != nil {
		logger.WithError(err).Warn("Could not load PPTP conntrack helpers")
	}
	if err := p.netfilter.EnsureInputRules(); err != nil {
		return fmt.Errorf("firewall input rules failed: %w", err)
	}
	if p.egress != nil {
		if err := p.netfilter.EnsureForwardingRules(p.egress.Name); err != nil {
			return fmt.Errorf("NAT configuration failed: %w", err)
		}
	} else {
		logger.Warn("Egress interface unknown, skipping NAT setup; clients will have no internet access")
	}
	if err := p.netfilter.PersistRuleset(); err != nil {
		logger.WithError(err).Warn("Could not persist firewall rules")
	}

	logger.Info("Restarting service")
	if err := p.system.EnableService(ServiceName); err != nil {
		logger.WithError(err).Warn("Could not enable service for boot-time start")
	}
	if err := p.system.RestartService(ServiceName); err != nil {
		return fmt.Errorf("service restart failed: %w", err)
	}

	logger.Info("PPTP server provisioned")
	return nil
}
