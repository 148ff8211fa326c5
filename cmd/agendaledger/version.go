package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agendaledger/internal"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and ledger schema version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agendaledger %s (ledger schema v%d)\n", version, internal.LedgerSchemaVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
