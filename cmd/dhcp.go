package cmd

import (
	"go-netcfg/internal/types"

	"github.com/spf13/cobra"
)

var dhcpCmd = &cobra.Command{
	Use:   "dhcp <interface>",
	Short: "Switch an interface to automatic (DHCP) addressing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		outcome := app.applier.Apply(cmd.Context(), args[0],
			types.InterfaceConfiguration{Mode: types.ModeDHCP}, true)
		return reportOutcome(outcome)
	},
}

func init() {
	rootCmd.AddCommand(dhcpCmd)
}
