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
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [flags] INPUT [OUTPUT]",
		Short: "Rewrite a result file with NFKC and the challenge substitutions",
		Long: `Normalize applies NFKC and the challenge substitution table to every line
of INPUT and writes the result to OUTPUT (stdout when omitted or "-").
Illegal characters are reported but written unchanged. Exit status: 0 clean,
10 input cannot be opened, 20 output error, 30 input is not valid UTF-8,
50 illegal characters found.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runNormalize,
	}
}

func runNormalize(cmd *cobra.Command, args []string) error {
	t, err := startTool(cmd, progNormalize, args)
	if err != nil {
		return err
	}

	in, err := t.openInput(args[0])
	if err != nil {
		return t.finish(t.fail(exitNoFile, diag.IOOpenFailed, err))
	}
	defer t.closeInput(in)

	var out io.Writer = t.cmd.OutOrStdout()
	var outFile *os.File
	if len(args) == 2 && args[1] != "-" {
		outFile, err = os.Create(args[1])
		if err != nil {
			return t.finish(t.fail(exitIOError, diag.IOOpenFailed, fmt.Errorf("cannot create output file %q: %w", args[1], err)))
		}
		out = outFile
	}

	text := diagfmt.NewTextReporter(t.stderr, diagfmt.TextOpts{
		Color: t.color,
		Hint:  !t.cfg.quiet,
	})

	idx := t.timer.Begin("normalize")
	res, err := driver.Normalize(in, out, text, charset.Default)
	if outFile != nil {
		if cerr := outFile.Close(); err == nil && cerr != nil {
			err = &driver.WriteError{Err: cerr}
		}
	}
	t.timer.End(idx, fmt.Sprintf("%d lines", res.Lines))
	if err != nil {
		return t.finish(t.processError(err))
	}

	if !res.Clean() {
		return t.finish(&exitError{code: exitExtraChar, err: errIllegalChars})
	}
	t.log.Debug("Input file contains only legal characters.")
	return t.finish(nil)
}
