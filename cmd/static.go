package cmd

import (
	"go-netcfg/internal/types"

	"github.com/spf13/cobra"
)

var (
	staticIP      string
	staticMask    string
	staticGateway string
	staticDNS     []string
)

var staticCmd = &cobra.Command{
	Use:   "static <interface>",
	Short: "Assign a static IPv4 configuration to an interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		cfg := types.InterfaceConfiguration{
			Mode:       types.ModeStatic,
			Address:    staticIP,
			SubnetMask: staticMask,
			Gateway:    staticGateway,
			DNS:        staticDNS,
		}
		outcome := app.applier.Apply(cmd.Context(), args[0], cfg, true)
		return reportOutcome(outcome)
	},
}

func init() {
	staticCmd.Flags().StringVar(&staticIP, "ip", "", "IPv4 address to assign")
	staticCmd.Flags().StringVar(&staticMask, "mask", "", "Subnet mask (dotted quad)")
	staticCmd.Flags().StringVar(&staticGateway, "gateway", "", "Default gateway (optional)")
	staticCmd.Flags().StringSliceVar(&staticDNS, "dns", nil, "DNS servers in priority order (optional)")
	if err := staticCmd.MarkFlagRequired("ip"); err != nil {
		panic(err) // This should never happen during initialization
	}
	if err := staticCmd.MarkFlagRequired("mask"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(staticCmd)
}
