package cmd

import (
	"context"
	"fmt"
	"os"

	"pptpd-setup/internal/adapter/infrastructure/command"
	"pptpd-setup/internal/adapter/infrastructure/file"
	"pptpd-setup/internal/adapter/infrastructure/network"
	"pptpd-setup/internal/adapter/netfilter"
	"pptpd-setup/internal/adapter/pptpd"
	"pptpd-setup/internal/adapter/secrets"
	"pptpd-setup/internal/adapter/system"
	"pptpd-setup/internal/pkg/config"
	"pptpd-setup/internal/pkg/logging"
	"pptpd-setup/internal/provision"

	"github.com/spf13/cobra"
)

var (
	configFlag    string
	localIPFlag   string
	rangeFlag     string
	dnsFlag       string
	usersFlag     string
	logLevelFlag  string
	logFormatFlag string
)

// Exit codes: 1 when not privileged or a provisioning step fails, 2 on
// invalid arguments or config.
const (
	exitFailure     = 1
	exitInvalidArgs = 2
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Install and configure the PPTP server on this host",
	Run: func(cmd *cobra.Command, args []string) {
		if os.Geteuid() != 0 {
			fmt.Fprintln(os.Stderr, "This command must be run as root")
			os.Exit(exitFailure)
		}

		// Merge order: built-in defaults, then config file, then flags
		logLevel := logLevelFlag
		logFormat := logFormatFlag
		server := config.ServerConfig{}
		usersGiven := false

		if configFlag != "" {
			loaded, err := config.Load(configFlag)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
				os.Exit(exitInvalidArgs)
			}
			if loaded.Logging.Level != "" && !cmd.Flags().Changed("log-level") {
				logLevel = loaded.Logging.Level
			}
			if loaded.Logging.Format != "" && !cmd.Flags().Changed("log-format") {
				logFormat = loaded.Logging.Format
			}
			server = loaded.Server
			usersGiven = len(loaded.Server.Users) > 0
		}

		logging.InitLogger(logging.LogConfig{Level: logLevel, Format: logFormat})
		logger := logging.GetLogger()

		if cmd.Flags().Changed("local-ip") {
			server.LocalIP = localIPFlag
		}
		if cmd.Flags().Changed("range") {
			server.ClientRange = rangeFlag
		}
		if cmd.Flags().Changed("dns") {
			server.DNS = config.ParseDNSList(dnsFlag)
		}
		if cmd.Flags().Changed("users") {
			server.Users = config.ParseUsers(usersFlag)
			usersGiven = true
		}

		if err := server.Validate(); err != nil {
			logger.WithError(err).Error("Invalid configuration")
			os.Exit(exitInvalidArgs)
		}

		// Shared infrastructure adapters
		runner := command.NewRunnerAdapter()
		fileMgr := file.NewManagerAdapter()
		networkMgr := network.NewManagerAdapter()

		resolver := provision.NewResolver(networkMgr)
		egress := resolver.Resolve(&server, usersGiven)

		provisioner := provision.NewProvisioner(
			server,
			egress,
			pptpd.NewManager(pptpd.DefaultConfigPath, pptpd.DefaultOptionsPath, fileMgr),
			secrets.NewManager(secrets.DefaultSecretsPath, fileMgr),
			netfilter.NewManager(netfilter.DefaultSysctlDropInPath, netfilter.DefaultRulesPath, runner, fileMgr),
			system.NewManager(runner),
		)

		if err := provisioner.Run(context.Background()); err != nil {
			logger.WithError(err).Error("Provisioning failed")
			os.Exit(exitFailure)
		}
	},
}

func init() {
	provisionCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	provisionCmd.Flags().StringVar(&localIPFlag, "local-ip", "", "VPN-side server address (default: egress interface address)")
	provisionCmd.Flags().StringVar(&rangeFlag, "range", "", fmt.Sprintf("Client address range in A.B.C.D-E form (default %s)", config.DefaultClientRange))
	provisionCmd.Flags().StringVar(&dnsFlag, "dns", "", "Comma-separated DNS servers pushed to clients")
	provisionCmd.Flags().StringVar(&usersFlag, "users", "", "Comma-separated user:pass credentials")
	provisionCmd.Flags().StringVar(&logLevelFlag, "log-level", "info", "Log level (debug, info, warn, error)")
	provisionCmd.Flags().StringVar(&logFormatFlag, "log-format", "simple", "Log format (text, json, simple, compact)")
	rootCmd.AddCommand(provisionCmd)
}
