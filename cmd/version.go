package cmd

import (
	"fmt"

	"go-netcfg/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and git info",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("Tag: %s\nBranch: %s\nCommit: %s\n", info.Tag, info.Branch, info.Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
