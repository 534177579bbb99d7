// Package provision holds the provisioning pipeline: default resolution and
// the step sequence that turns a host into a PPTP server.
package provision

import (
	"fmt"
	"net"

	"pptpd-setup/internal/pkg/config"
	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/port"
	"pptpd-setup/internal/types"

	"github.com/sirupsen/logrus"
)

// probeAddress is only used to ask the kernel which interface carries the
// default route; no packet is sent to it.
const probeAddress = "8.8.8.8"

// Resolver fills unset configuration fields from the environment and the
// built-in defaults.
type Resolver struct {
	networkMgr port.NetworkManager
}

// NewResolver creates a new resolver over the given network manager.
func NewResolver(networkMgr port.NetworkManager) *Resolver {
	return &Resolver{networkMgr: networkMgr}
}

// DetectEgress returns the interface carrying the default route and its
// primary IPv4 address.
func (r *Resolver) DetectEgress() (*types.EgressInterface, error) {
	routes, err := r.networkMgr.RouteGet(net.ParseIP(probeAddress))
	if err != nil {
		return nil, fmt.Errorf("failed to probe route to %s: %w", probeAddress, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("no route to %s", probeAddress)
	}

	link, err := r.networkMgr.LinkByIndex(routes[0].LinkIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve egress link: %w", err)
	}
	name := link.Attrs().Name

	addrs, err := r.networkMgr.ListAddresses(link)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses on %s: %w", name, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no IPv4 address on egress interface %s", name)
	}

	return &types.EgressInterface{
		Name: name,
		IPv4: addrs[0].IPNet.IP.String(),
	}, nil
}

// Resolve fills the unset fields of cfg with detected or built-in defaults
// and returns the egress interface, nil when detection failed. usersGiven
// reports whether any user input was supplied at all, so the default
// account is only synthesized on a truly empty run.
func (r *Resolver) Resolve(cfg *config.ServerConfig, usersGiven bool) *types.EgressInterface {
	logger := logging.WithComponent("resolver")

	egress, err := r.DetectEgress()
	if err != nil {
		logger.WithError(err).Warn("Could not detect egress interface, NAT setup will be skipped")
	} else {
		logger.WithFields(logrus.Fields{
			"interface": egress.Name,
			"ip":        egress.IPv4,
		}).Info("Detected egress interface")
	}

	if cfg.LocalIP == "" {
		if egress != nil {
			cfg.LocalIP = egress.IPv4
		} else {
			cfg.LocalIP = config.DefaultLocalIP
			logger.Warnf("Falling back to local IP %s", config.DefaultLocalIP)
		}
	}
	if cfg.ClientRange == "" {
		cfg.ClientRange = config.DefaultClientRange
	}
	if len(cfg.DNS) == 0 {
		cfg.DNS = append([]string(nil), config.DefaultDNS...)
	}

	cfg.Users = config.FilterUsers(cfg.Users)
	if len(cfg.Users) == 0 && !usersGiven {
		cfg.Users = []types.UserCredential{{Name: config.DefaultUsername, Password: config.DefaultPassword}}
	}

	return egress
}
