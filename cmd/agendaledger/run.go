package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agendaledger/internal/committee"
	"agendaledger/internal/config"
	"agendaledger/internal/logging"
	"agendaledger/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process new PDFs and append their rows to the committee ledgers",
	Long: `Run walks <input>/<committee>/<year>/*.pdf. Subcommittee (소위원회) and
appendix (별첨) documents are skipped, as are files already recorded in the
committee ledger. Files that cannot be parsed are listed in the error log and
do not stop the run.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd, map[string]string{
			config.KeyInputDir:  "input",
			config.KeyOutputDir: "output",
			config.KeyErrorLog:  "error-log",
			config.KeyDryRun:    "dry-run",
		})
	},
	RunE: runBatch,
}

func init() {
	runCmd.Flags().String("input", "", "root folder of meeting-record PDFs (required)")
	runCmd.Flags().String("output", "", "folder for committee CSV ledgers (default ./csv_output)")
	runCmd.Flags().String("error-log", "", "path of the error log (default ./error_files.txt)")
	runCmd.Flags().Bool("dry-run", false, "extract and report without writing any file")

	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	aliases, err := committee.Load(cfg.AliasesFile)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc := pipeline.NewBatchService(cfg, aliases, pipeline.OpenPDF, logger)
	summary, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run done committees=%d processed=%d skipped=%d failed=%d rows=%d\n",
		summary.Committees, summary.Processed, summary.Skipped, summary.Failed, summary.Rows)
	if summary.Failed > 0 && !cfg.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "failed files listed in %s\n", cfg.ErrorLog)
	}
	return nil
}
