package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List network interfaces merged from all discovery sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		interfaces := app.enumerator.Discover(cmd.Context())
		if len(interfaces) == 0 {
			fmt.Println("No network interfaces detected")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTATUS\tMEDIA\tMAC\tDESCRIPTION")
		for _, iface := range interfaces {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				iface.Name, iface.Status, iface.MediaType, iface.MAC, iface.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
