package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dropsync/internal/app"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a single merge pass over the drop root and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonLogs, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Sync(cmd.Context(), app.Options{
				JSON:    jsonLogs,
				Verbose: verbose,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	cmd.Flags().BoolP("verbose", "v", false, "Log every copied and replaced file")
	return cmd
}
