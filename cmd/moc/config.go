package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"moc/internal/console"
	"moc/internal/diagfmt"
)

const configFileName = "moc.toml"

// fileConfig mirrors moc.toml.
type fileConfig struct {
	Output  outputConfig  `toml:"output"`
	Check   checkConfig   `toml:"check"`
	Explore exploreConfig `toml:"explore"`
}

type outputConfig struct {
	Color string `toml:"color"`
}

type checkConfig struct {
	Preview        bool   `toml:"preview"`
	ReportFormat   string `toml:"report_format"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type exploreConfig struct {
	Encoding string `toml:"encoding"`
}

// settings is the effective configuration of one run:
// defaults, then moc.toml, then explicitly set flags.
type settings struct {
	debug   bool
	quiet   bool
	timings bool
	color   string

	preview        bool
	reportPath     string
	reportFormat   diagfmt.Format
	maxDiagnostics int

	encoding string

	configPath string // empty when no file was used
}

func defaultSettings() settings {
	return settings{
		color:          "auto",
		reportFormat:   diagfmt.FormatJSON,
		maxDiagnostics: 100,
		encoding:       console.Auto,
	}
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (fileConfig, toml.MetaData, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, meta, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, meta, nil
}

// loadSettings merges defaults, the configuration file and the flags of cmd.
func loadSettings(cmd *cobra.Command) (settings, error) {
	s := defaultSettings()
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfigFile(".")
		if err != nil {
			return s, err
		}
		if ok {
			path = found
		}
	}

	reportFormat := s.reportFormat.String()
	if path != "" {
		cfg, meta, err := loadConfigFile(path)
		if err != nil {
			return s, err
		}
		s.configPath = path
		if meta.IsDefined("output", "color") {
			s.color = cfg.Output.Color
		}
		if meta.IsDefined("check", "preview") {
			s.preview = cfg.Check.Preview
		}
		if meta.IsDefined("check", "report_format") {
			reportFormat = cfg.Check.ReportFormat
		}
		if meta.IsDefined("check", "max_diagnostics") {
			s.maxDiagnostics = cfg.Check.MaxDiagnostics
		}
		if meta.IsDefined("explore", "encoding") {
			s.encoding = cfg.Explore.Encoding
		}
	}

	s.debug, _ = flags.GetBool("debug")
	s.quiet, _ = flags.GetBool("quiet")
	s.timings, _ = flags.GetBool("timings")
	if flags.Changed("color") {
		s.color, _ = flags.GetString("color")
	}
	if changed(cmd, "preview") {
		s.preview, _ = flags.GetBool("preview")
	}
	if changed(cmd, "report") {
		s.reportPath, _ = flags.GetString("report")
	}
	if changed(cmd, "report-format") {
		reportFormat, _ = flags.GetString("report-format")
	}
	if changed(cmd, "max-diagnostics") {
		s.maxDiagnostics, _ = flags.GetInt("max-diagnostics")
	}
	if changed(cmd, "encoding") {
		s.encoding, _ = flags.GetString("encoding")
	}

	s.color = strings.ToLower(strings.TrimSpace(s.color))
	switch s.color {
	case "auto", "on", "off":
	default:
		return s, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", s.color)
	}
	if s.reportFormat, err = diagfmt.ParseFormat(reportFormat); err != nil {
		return s, err
	}
	if s.maxDiagnostics < 0 {
		return s, fmt.Errorf("max-diagnostics must not be negative, got %d", s.maxDiagnostics)
	}
	return s, nil
}

// changed reports whether cmd has a flag called name and it was set.
func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
