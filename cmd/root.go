package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pptpd-setup",
	Short: "pptpd-setup provisions a PPTP VPN server on a Debian-family host",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
