package cmd

import (
	"github.com/PolarWolf314/jpas/internal/workflows"
	"github.com/spf13/cobra"
)

var queryURL string

func init() {
	queryCmd.Flags().StringVarP(&queryURL, "url", "u", "", "URL to look up (reserved)")
}

// resetQueryCommandState resets the query command's global state for testing.
func resetQueryCommandState() {
	queryURL = ""
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query password entries (not implemented)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Debugf("Query URL: %q", queryURL)
		return workflows.Query(cmd.Context(), workflows.QueryOptions{URL: queryURL})
	},
}
