package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"moc/internal/charset"
	"moc/internal/diag"
	"moc/internal/diagfmt"
	"moc/internal/driver"
	"moc/internal/version"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] INPUT",
		Short: "Check that a result file only uses allowed characters",
		Long: `Check reads INPUT as UTF-8 and reports every character outside the
challenge allow-list. Exit status: 0 clean, 10 input cannot be opened,
30 input is not valid UTF-8, 50 illegal characters found.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Bool("preview", false, "show the offending line with a caret under each character")
	cmd.Flags().String("report", "", "write a machine-readable report to this path (- for stdout)")
	cmd.Flags().String("report-format", "json", "report format (json|msgpack)")
	cmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics kept in the report (0 = no limit)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	t, err := startTool(cmd, progCheck, args)
	if err != nil {
		return err
	}
	path := args[0]

	in, err := t.openInput(path)
	if err != nil {
		return t.finish(t.fail(exitNoFile, diag.IOOpenFailed, err))
	}
	defer t.closeInput(in)

	text := diagfmt.NewTextReporter(t.stderr, diagfmt.TextOpts{
		Color:        t.color,
		Preview:      t.cfg.preview,
		Hint:         !t.cfg.quiet,
		CleanMessage: !t.cfg.quiet,
	})
	bag := &diag.BagReporter{Bag: diag.NewBag(t.cfg.maxDiagnostics)}

	idx := t.timer.Begin("check")
	res, err := driver.Check(in, diag.MultiReporter{text, bag}, charset.Default)
	t.timer.End(idx, fmt.Sprintf("%d lines", res.Lines))
	if err != nil {
		return t.finish(t.processError(err))
	}
	if text.Err() != nil {
		t.log.Warn("cannot write diagnostics", "err", text.Err())
	}

	if t.cfg.reportPath != "" {
		idx := t.timer.Begin("report")
		err := t.writeReport(path, bag, res)
		t.timer.End(idx, t.cfg.reportFormat.String())
		if err != nil {
			return t.finish(t.fail(exitIOError, diag.IOWrite, err))
		}
	}

	if !res.Clean() {
		return t.finish(&exitError{code: exitExtraChar, err: errIllegalChars})
	}
	return t.finish(nil)
}

func (t *toolRun) writeReport(input string, bag *diag.BagReporter, res driver.Result) error {
	bag.Bag.Sort()
	if dropped := bag.Bag.Dropped(); dropped > 0 {
		t.log.Warn("report truncated", "kept", bag.Bag.Len(), "dropped", dropped)
	}
	rep := diagfmt.BuildReport(diagfmt.ReportMeta{
		Tool:    t.prog,
		Version: version.Version,
		Input:   input,
	}, bag.Bag, res.Summary())

	if t.cfg.reportPath == "-" {
		return writeReportTo(t.cmd.OutOrStdout(), rep, t.cfg.reportFormat)
	}
	f, err := os.Create(t.cfg.reportPath)
	if err != nil {
		return fmt.Errorf("cannot create report: %w", err)
	}
	if err := writeReportTo(f, rep, t.cfg.reportFormat); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	t.log.Debug("report written", "path", t.cfg.reportPath, "format", t.cfg.reportFormat)
	return nil
}

func writeReportTo(w io.Writer, rep diagfmt.Report, format diagfmt.Format) error {
	if err := diagfmt.WriteReport(w, rep, format); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	return nil
}
