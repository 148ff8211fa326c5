// Command agendaledger extracts agenda items and resolutions from committee
// meeting-record PDFs into per-committee CSV ledgers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"agendaledger/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "agendaledger",
	Short: "Extract meeting-record agendas from PDFs into CSV ledgers",
	Long: `agendaledger walks a folder of committee meeting-record PDFs laid out as
<root>/<committee>/<year>/*.pdf, reads each agenda listing and the recorded
resolutions, and appends the rows to one CSV ledger per committee. Files that
are already in a ledger are skipped, so re-running on the same folder is safe.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./agendaledger.yaml or ~/.config/agendaledger/agendaledger.yaml)")
	rootCmd.PersistentFlags().String("aliases", "", "YAML file mapping raw committee names to canonical names")
	rootCmd.PersistentFlags().Int("toc-pages", 3, "number of leading pages scanned for the agenda listing")
	rootCmd.PersistentFlags().String("session-format", config.SessionVerbatim, "session field format: verbatim or digits")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	cobra.CheckErr(bindFlags(rootCmd, map[string]string{
		config.KeyAliasesFile:   "aliases",
		config.KeyTOCPages:      "toc-pages",
		config.KeySessionFormat: "session-format",
		config.KeyLogLevel:      "log-level",
		config.KeyLogFormat:     "log-format",
	}))
}

// bindFlags maps config keys to flags of cmd. Commands sharing a key bind in
// PreRunE so that only the running command's flag is attached.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		f := cmd.PersistentFlags().Lookup(name)
		if f == nil {
			f = cmd.Flags().Lookup(name)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("agendaledger")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "agendaledger"))
		}
	}

	viper.SetEnvPrefix("AGENDALEDGER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
