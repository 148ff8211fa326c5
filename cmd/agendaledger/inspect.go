package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agendaledger/internal/committee"
	"agendaledger/internal/config"
	"agendaledger/internal/pipeline"
	"agendaledger/internal/storage"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Print the rows extracted from one PDF as CSV",
	Long: `Inspect runs the extraction on a single PDF and prints the resulting rows
to stdout in ledger format. No ledger or error log is touched.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("no-header", false, "omit the header row")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := config.Load(viper.GetViper())
	if err := cfg.ValidateExtraction(); err != nil {
		return err
	}
	aliases, err := committee.Load(cfg.AliasesFile)
	if err != nil {
		return err
	}

	svc := pipeline.NewProcessingService(cfg, aliases, pipeline.OpenPDF)
	rows, err := svc.ProcessFile(args[0])
	if err != nil {
		return err
	}

	noHeader, _ := cmd.Flags().GetBool("no-header")
	return storage.WriteRows(cmd.OutOrStdout(), rows, !noHeader)
}
