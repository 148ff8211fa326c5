package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"agendaledger/internal/logging"
)

const (
	SessionVerbatim = "verbatim"
	SessionDigits   = "digits"
)

const (
	KeyInputDir      = "input_dir"
	KeyOutputDir     = "output_dir"
	KeyErrorLog      = "error_log"
	KeyAliasesFile   = "aliases_file"
	KeyTOCPages      = "toc_pages"
	KeySessionFormat = "session_format"
	KeyLogLevel      = "log_level"
	KeyLogFormat     = "log_format"
	KeyDryRun        = "dry_run"
)

type Config struct {
	InputDir    string
	OutputDir   string
	ErrorLog    string
	AliasesFile string

	TOCPages      int
	SessionFormat string

	LogLevel  string
	LogFormat string
	DryRun    bool
}

// SetDefaults registers the defaults on v. Paths are relative to the working
// directory.
func SetDefaults(v *viper.Viper) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	v.SetDefault(KeyOutputDir, filepath.Join(cwd, "csv_output"))
	v.SetDefault(KeyErrorLog, filepath.Join(cwd, "error_files.txt"))
	v.SetDefault(KeyTOCPages, 3)
	v.SetDefault(KeySessionFormat, SessionVerbatim)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, logging.FormatText)
	v.SetDefault(KeyDryRun, false)
}

// Load reads .env into the process environment and resolves every key from v
// (flags, environment, config file, defaults in that order).
func Load(v *viper.Viper) Config {
	_ = godotenv.Load()
	SetDefaults(v)

	return Config{
		InputDir:      strings.TrimSpace(v.GetString(KeyInputDir)),
		OutputDir:     strings.TrimSpace(v.GetString(KeyOutputDir)),
		ErrorLog:      strings.TrimSpace(v.GetString(KeyErrorLog)),
		AliasesFile:   strings.TrimSpace(v.GetString(KeyAliasesFile)),
		TOCPages:      v.GetInt(KeyTOCPages),
		SessionFormat: strings.ToLower(strings.TrimSpace(v.GetString(KeySessionFormat))),
		LogLevel:      v.GetString(KeyLogLevel),
		LogFormat:     v.GetString(KeyLogFormat),
		DryRun:        v.GetBool(KeyDryRun),
	}
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required setting: %s", name)
	}
	return nil
}

// Validate checks the settings used by the batch run.
func (c Config) Validate() error {
	if err := c.Require(KeyInputDir, c.InputDir); err != nil {
		return err
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input directory %s is not a directory", c.InputDir)
	}
	if err := c.Require(KeyOutputDir, c.OutputDir); err != nil {
		return err
	}
	if err := c.Require(KeyErrorLog, c.ErrorLog); err != nil {
		return err
	}
	return c.ValidateExtraction()
}

// ValidateExtraction checks only the settings that shape per-file extraction.
func (c Config) ValidateExtraction() error {
	if c.TOCPages < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", KeyTOCPages, c.TOCPages)
	}
	switch c.SessionFormat {
	case SessionVerbatim, SessionDigits:
	default:
		return fmt.Errorf("unsupported %s: %s", KeySessionFormat, c.SessionFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unsupported %s: %s", KeyLogFormat, c.LogFormat)
	}
	return nil
}
