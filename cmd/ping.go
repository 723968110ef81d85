package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping [target]",
	Short: "Check connectivity after a configuration change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		target := "8.8.8.8"
		if len(args) == 1 {
			target = args[0]
		}

		result, err := app.pinger.Ping(cmd.Context(), target)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d/%d packets received, %.1f%% loss, avg rtt %s\n",
			result.Target, result.Received, result.Sent, result.PacketLoss, result.AvgRtt)
		if result.Received == 0 {
			return fmt.Errorf("no reply from %s", target)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
