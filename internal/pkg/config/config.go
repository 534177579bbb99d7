package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/types"

	"gopkg.in/yaml.v3"
)

// Built-in defaults applied when neither the config file nor the CLI
// supplies a value.
const (
	DefaultClientRange = "192.168.99.100-120"
	DefaultLocalIP     = "192.168.99.1"
	DefaultUsername    = "user"
	DefaultPassword    = "123"
)

// DefaultDNS lists the resolvers pushed to clients when none are configured.
var DefaultDNS = []string{"8.8.8.8", "8.8.4.4"}

// ServerConfig represents the PPTP server provisioning parameters
type ServerConfig struct {
	LocalIP     string                 `yaml:"local_ip,omitempty"`
	ClientRange string                 `yaml:"client_range,omitempty"`
	DNS         []string               `yaml:"dns,omitempty"`
	Users       []types.UserCredential `yaml:"users,omitempty"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Server  ServerConfig      `yaml:"server"`
}

// Load loads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &config, nil
}

// clientRangePattern accepts the `IPv4-lastOctet` suffix form, e.g.
// "192.168.99.100-120". Octet bounds are checked separately.
var clientRangePattern = regexp.MustCompile(`^(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})-(\d{1,3})$`)

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.Server.Validate()
}

// Validate checks the server parameters. It is called after defaults and
// overrides have been merged, so empty optional fields are accepted.
func (s *ServerConfig) Validate() error {
	if s.LocalIP != "" && !isIPv4(s.LocalIP) {
		return fmt.Errorf("local IP %q is not a valid IPv4 address", s.LocalIP)
	}
	if s.ClientRange != "" {
		if err := validateClientRange(s.ClientRange); err != nil {
			return err
		}
	}
	for _, server := range s.DNS {
		if !isIPv4(server) {
			return fmt.Errorf("DNS server %q is not a valid IPv4 address", server)
		}
	}
	return nil
}

func validateClientRange(clientRange string) error {
	m := clientRangePattern.FindStringSubmatch(clientRange)
	if m == nil {
		return fmt.Errorf("client range %q does not match the expected form A.B.C.D-E", clientRange)
	}
	if !isIPv4(m[1]) {
		return fmt.Errorf("client range %q does not start with a valid IPv4 address", clientRange)
	}
	last, err := strconv.Atoi(m[2])
	if err != nil || last > 255 {
		return fmt.Errorf("client range %q ends with an invalid final octet", clientRange)
	}
	return nil
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// ParseUsers parses a comma-separated list of "user:pass" entries.
// Blank items are ignored; malformed items (no colon, empty name or
// password) are skipped with a warning.
func ParseUsers(csv string) []types.UserCredential {
	logger := logging.WithComponent("config")

	var users []types.UserCredential
	for _, item := range strings.Split(csv, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, password, found := strings.Cut(item, ":")
		if !found || name == "" || password == "" {
			logger.Warnf("Skipping invalid user entry %q, expected user:pass", item)
			continue
		}
		users = append(users, types.UserCredential{Name: name, Password: password})
	}
	return users
}

// FilterUsers drops credential entries with an empty name or password.
// CLI input is already filtered by ParseUsers; this guards entries loaded
// from a config file.
func FilterUsers(users []types.UserCredential) []types.UserCredential {
	logger := logging.WithComponent("config")

	valid := users[:0:0]
	for _, user := range users {
		if user.Name == "" || user.Password == "" {
			logger.Warnf("Skipping user entry with empty name or password")
			continue
		}
		valid = append(valid, user)
	}
	return valid
}

// ParseDNSList parses a comma-separated list of DNS server addresses.
// Blank items are ignored; address validity is checked by Validate.
func ParseDNSList(csv string) []string {
	var servers []string
	for _, item := range strings.Split(csv, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		servers = append(servers, item)
	}
	return servers
}
