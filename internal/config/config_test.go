package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(viper.New())

	assert.Equal(t, 3, cfg.TOCPages)
	assert.Equal(t, SessionVerbatim, cfg.SessionFormat)
	assert.Equal(t, "csv_output", filepath.Base(cfg.OutputDir))
	assert.Equal(t, "error_files.txt", filepath.Base(cfg.ErrorLog))
	assert.False(t, cfg.DryRun)
}

func TestLoadExplicitValues(t *testing.T) {
	v := viper.New()
	v.Set(KeyInputDir, "/data/회의록")
	v.Set(KeyTOCPages, 2)
	v.Set(KeySessionFormat, "DIGITS")
	v.Set(KeyDryRun, true)

	cfg := Load(v)
	assert.Equal(t, "/data/회의록", cfg.InputDir)
	assert.Equal(t, 2, cfg.TOCPages)
	assert.Equal(t, SessionDigits, cfg.SessionFormat)
	assert.True(t, cfg.DryRun)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	valid := Config{
		InputDir:      dir,
		OutputDir:     filepath.Join(dir, "out"),
		ErrorLog:      filepath.Join(dir, "errors.txt"),
		TOCPages:      3,
		SessionFormat: SessionVerbatim,
		LogLevel:      "info",
		LogFormat:     "text",
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing input", mutate: func(c *Config) { c.InputDir = "" }, errMsg: "input_dir"},
		{name: "input not found", mutate: func(c *Config) { c.InputDir = filepath.Join(dir, "nope") }, errMsg: "input directory"},
		{name: "input is file", mutate: func(c *Config) { c.InputDir = file }, errMsg: "not a directory"},
		{name: "missing output", mutate: func(c *Config) { c.OutputDir = " " }, errMsg: "output_dir"},
		{name: "zero toc pages", mutate: func(c *Config) { c.TOCPages = 0 }, errMsg: "toc_pages"},
		{name: "bad session format", mutate: func(c *Config) { c.SessionFormat = "roman" }, errMsg: "session_format"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, errMsg: "log level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, errMsg: "log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
