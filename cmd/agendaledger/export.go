package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agendaledger/internal/config"
	"agendaledger/internal/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Combine the committee ledgers into one XLSX workbook",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{config.KeyOutputDir: "ledgers"})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(viper.GetViper())
		out, _ := cmd.Flags().GetString("out")
		if strings.TrimSpace(out) == "" {
			return fmt.Errorf("--out is required")
		}
		if err := cfg.Require(config.KeyOutputDir, cfg.OutputDir); err != nil {
			return err
		}

		sheets, err := pipeline.ExportLedgersToXLSX(cfg.OutputDir, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d ledgers to %s\n", sheets, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "output xlsx path (required)")
	exportCmd.Flags().String("ledgers", "", "folder holding the committee CSV ledgers (default ./csv_output)")

	rootCmd.AddCommand(exportCmd)
}
