package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"moc/internal/diag"
	"moc/internal/driver"
	"moc/internal/observ"
	"moc/internal/prof"
	"moc/internal/source"
	"moc/internal/version"
)

// Program names printed in every log line, one per tool.
const (
	progCheck     = "moc_check"
	progExplore   = "moc_expl"
	progNormalize = "moc_norm"
)

// toolRun is the state shared by the check, explore and normalize commands
// for the duration of one invocation.
type toolRun struct {
	prog   string
	cmd    *cobra.Command
	cfg    settings
	color  bool
	log    *log.Logger
	timer  *observ.Timer
	prof   *prof.Session
	stderr io.Writer
}

// startTool resolves settings, sets up logging and prints the debug header.
func startTool(cmd *cobra.Command, prog string, args []string) (*toolRun, error) {
	stderr := cmd.ErrOrStderr()
	cfg, err := loadSettings(cmd)
	if err != nil {
		newLogger(stderr, prog, defaultSettings(), false).Error(err.Error())
		return nil, &exitError{code: exitUsage, err: err}
	}

	t := &toolRun{
		prog:   prog,
		cmd:    cmd,
		cfg:    cfg,
		color:  useColor(cfg.color, stderr),
		stderr: stderr,
	}
	t.log = newLogger(stderr, prog, cfg, t.color)
	if cfg.timings {
		t.timer = observ.NewTimer()
	}

	cpuPath, _ := cmd.Flags().GetString("cpu-profile")
	memPath, _ := cmd.Flags().GetString("mem-profile")
	if t.prof, err = prof.Start(cpuPath, memPath); err != nil {
		t.log.Warn("profiling disabled", "err", err)
	}

	t.log.Debug(fmt.Sprintf("%s - v. %s", prog, version.Version))
	t.log.Debug("arguments", "args", strings.Join(args, " "), "color", cfg.color, "quiet", cfg.quiet)
	if cfg.configPath != "" {
		t.log.Debug("configuration", "path", cfg.configPath)
	}
	t.log.Debug("--- Process started. ---")
	return t, nil
}

// finish stops profiling, prints timings and the closing debug line,
// then passes err through.
func (t *toolRun) finish(err error) error {
	if perr := t.prof.Stop(); perr != nil {
		t.log.Warn("cannot write profile", "err", perr)
	}
	if werr := t.timer.WriteSummary(t.stderr); werr != nil {
		t.log.Warn("cannot print timings", "err", werr)
	}
	t.log.Debug("--- Process complete. ---")
	return err
}

// fail logs err under its diagnostic code and converts it into an exit status.
func (t *toolRun) fail(status int, code diag.Code, err error) error {
	t.log.Error(err.Error(), "code", code.ID())
	return &exitError{code: status, err: err}
}

// processError classifies an error returned by a driver loop.
func (t *toolRun) processError(err error) error {
	var de *source.DecodeError
	if errors.As(err, &de) {
		return t.fail(exitDecode, diag.IODecode, fmt.Errorf("input is not valid UTF-8: %w", err))
	}
	var we *driver.WriteError
	if errors.As(err, &we) {
		return t.fail(exitIOError, diag.IOWrite, err)
	}
	return t.fail(exitIOError, diag.IORead, err)
}

// openInput opens path for reading; the phase is timed as "open".
func (t *toolRun) openInput(path string) (*os.File, error) {
	idx := t.timer.Begin("open")
	f, err := os.Open(path)
	t.timer.End(idx, "")
	if err != nil {
		return nil, fmt.Errorf("cannot open input file %q: %w", path, err)
	}
	return f, nil
}

// closeInput closes an input file. Errors are only logged: all data was read.
func (t *toolRun) closeInput(f *os.File) {
	if err := f.Close(); err != nil {
		t.log.Warn("cannot close input", "path", f.Name(), "err", err)
	}
}
