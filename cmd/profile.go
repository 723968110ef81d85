package cmd

import (
	"fmt"

	"go-netcfg/internal/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	profileIP      string
	profileMask    string
	profileGateway string
	profileDNS     []string
	profileDHCP    bool
	profileFrom    string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named configuration profiles",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a configuration under a profile name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		var cfg types.InterfaceConfiguration
		switch {
		case profileFrom != "":
			cfg = app.inspector.Inspect(cmd.Context(), profileFrom)
		case profileDHCP:
			cfg = types.InterfaceConfiguration{Mode: types.ModeDHCP}
		default:
			cfg = types.InterfaceConfiguration{
				Mode:       types.ModeStatic,
				Address:    profileIP,
				SubnetMask: profileMask,
				Gateway:    profileGateway,
				DNS:        profileDNS,
			}
		}
		return app.profiles.Save(args[0], cfg)
	},
}

var profileApplyCmd = &cobra.Command{
	Use:   "apply <name> <interface>",
	Short: "Apply a saved profile to an interface",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		cfg, err := app.profiles.Get(args[0])
		if err != nil {
			return err
		}
		outcome := app.applier.Apply(cmd.Context(), args[1], cfg, true)
		return reportOutcome(outcome)
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		names, err := app.profiles.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No profiles saved")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		cfg, err := app.profiles.Get(args[0])
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.profiles.Delete(args[0])
	},
}

func init() {
	profileSaveCmd.Flags().StringVar(&profileFrom, "from", "", "Save the current configuration of this interface")
	profileSaveCmd.Flags().BoolVar(&profileDHCP, "dhcp", false, "Save an automatic (DHCP) profile")
	profileSaveCmd.Flags().StringVar(&profileIP, "ip", "", "IPv4 address")
	profileSaveCmd.Flags().StringVar(&profileMask, "mask", "", "Subnet mask (dotted quad)")
	profileSaveCmd.Flags().StringVar(&profileGateway, "gateway", "", "Default gateway (optional)")
	profileSaveCmd.Flags().StringSliceVar(&profileDNS, "dns", nil, "DNS servers in priority order (optional)")

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileApplyCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}
