package cmd

import (
	"github.com/spf13/cobra"
)

var configFlag string

var rootCmd = &cobra.Command{
	Use:   "netcfg",
	Short: "netcfg inspects and reconfigures IPv4 network interfaces",
	Long: `netcfg drives the OS network configuration backend to enumerate
interfaces, inspect their IPv4 settings, and apply DHCP or static
configurations with automatic command fallbacks and a rollback snapshot.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
}
