package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCommand(use, short string, enable bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <interface>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			res := app.backend.SetAdminState(cmd.Context(), args[0], enable)
			if !res.OK() {
				return fmt.Errorf("failed to change admin state of %s: %s", args[0], res.Diagnostic())
			}
			fmt.Printf("Interface %s %sd\n", args[0], use)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newAdminCommand("enable", "Administratively enable an interface", true))
	rootCmd.AddCommand(newAdminCommand("disable", "Administratively disable an interface", false))
}
