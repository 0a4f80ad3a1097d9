package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"moc/internal/version"
)

type versionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
}

type versionOptions struct {
	format   string
	showHash bool
	showDate bool
}

type versionPayload struct {
	Tool      string   `json:"tool"`
	Version   string   `json:"version"`
	Programs  []string `json:"programs"`
	GitCommit string   `json:"git_commit,omitempty"`
	BuildDate string   `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show moc build information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().Bool("hash", false, "include git commit hash")
	cmd.Flags().Bool("date", false, "include build timestamp")
	cmd.Flags().Bool("full", false, "show every recorded bit of build metadata")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	showHash, _ := cmd.Flags().GetBool("hash")
	showDate, _ := cmd.Flags().GetBool("date")
	showFull, _ := cmd.Flags().GetBool("full")
	opts := versionOptions{
		format:   strings.ToLower(format),
		showHash: showHash || showFull,
		showDate: showDate || showFull,
	}

	switch opts.format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	info := collectVersionInfo()
	if opts.format == "json" {
		return renderVersionJSON(cmd.OutOrStdout(), info, opts)
	}
	return renderVersionPretty(cmd.OutOrStdout(), info, opts)
}

func collectVersionInfo() versionInfo {
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	return versionInfo{
		Version:   v,
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
	}
}

func renderVersionPretty(out io.Writer, info versionInfo, opts versionOptions) error {
	v := info.Version
	if f, ok := out.(*os.File); ok && v == version.Version && isTerminal(f) {
		v = version.Pretty()
	}
	if _, err := fmt.Fprintf(out, "moc %s (%s, %s, %s)\n", v, progCheck, progExplore, progNormalize); err != nil {
		return err
	}
	if opts.showHash {
		if _, err := fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(info.GitCommit)); err != nil {
			return err
		}
	}
	if opts.showDate {
		if _, err := fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(info.BuildDate)); err != nil {
			return err
		}
	}
	return nil
}

func renderVersionJSON(out io.Writer, info versionInfo, opts versionOptions) error {
	payload := versionPayload{
		Tool:     "moc",
		Version:  info.Version,
		Programs: []string{progCheck, progExplore, progNormalize},
	}
	if opts.showHash {
		payload.GitCommit = valueOrUnknown(info.GitCommit)
	}
	if opts.showDate {
		payload.BuildDate = valueOrUnknown(info.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
