package cmd

import (
	"errors"
	"fmt"

	"go-netcfg/internal/pkg/errclass"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage the rollback snapshot slot",
}

var snapshotCaptureCmd = &cobra.Command{
	Use:   "capture <interface>",
	Short: "Capture an interface's current configuration into the rollback slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.snapshots.Capture(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Snapshot captured for %s\n", args[0])
		return nil
	},
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the captured snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		snap, err := app.snapshots.Load()
		if err != nil {
			return err
		}
		if snap == nil {
			fmt.Println("No snapshot captured")
			return nil
		}
		out, err := yaml.Marshal(snap.Configuration)
		if err != nil {
			return err
		}
		fmt.Printf("interface: %s\ncaptured_at: %s\n%s",
			snap.InterfaceName, snap.CapturedAt.Format("2006-01-02 15:04:05 MST"), out)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Reapply the configuration captured in the rollback slot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		outcome, err := app.snapshots.Restore(cmd.Context())
		if err != nil {
			if errors.Is(err, errclass.ErrNoSnapshot) {
				return fmt.Errorf("nothing to restore: no snapshot has been captured")
			}
			return err
		}
		return reportOutcome(outcome)
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotCaptureCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(restoreCmd)
}
