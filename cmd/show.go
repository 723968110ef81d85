package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showCmd = &cobra.Command{
	Use:   "show <interface>",
	Short: "Show the current IPv4 configuration of an interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		name := args[0]

		cfg := app.inspector.Inspect(cmd.Context(), name)
		status := app.enumerator.Status(cmd.Context(), name)

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("interface: %s\nstatus: %s\n%s", name, status, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
