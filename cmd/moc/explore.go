package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moc/internal/console"
	"moc/internal/diag"
	"moc/internal/driver"
)

func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [flags] INPUT",
		Short: "List every character of a file with its code point and name",
		Long: `Explore prints each line of INPUT followed by one entry per character:
column, code point and Unicode name. Exit status: 0 success, 20 input or
output error, 30 input is not valid UTF-8.`,
		Args: cobra.ExactArgs(1),
		RunE: runExplore,
	}
	cmd.Flags().String("encoding", console.Auto, "output encoding name, or auto to follow the locale")
	return cmd
}

func runExplore(cmd *cobra.Command, args []string) error {
	t, err := startTool(cmd, progExplore, args)
	if err != nil {
		return err
	}

	enc := console.Resolve(t.cfg.encoding, os.Getenv)
	switch {
	case enc.Fallback:
		t.log.Warn("unknown output encoding, using UTF-8", "encoding", enc.Requested)
	case !enc.IsUTF8():
		t.log.Warn("output encoding is not UTF-8, unsupported characters are written as XML character references", "encoding", enc.Name)
	}

	in, err := t.openInput(args[0])
	if err != nil {
		return t.finish(t.fail(exitIOError, diag.IOOpenFailed, err))
	}
	defer t.closeInput(in)

	out := enc.Writer(t.cmd.OutOrStdout())
	idx := t.timer.Begin("explore")
	res, err := driver.Explore(in, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = &driver.WriteError{Err: cerr}
	}
	t.timer.End(idx, fmt.Sprintf("%d lines", res.Lines))
	if err != nil {
		return t.finish(t.processError(err))
	}
	return t.finish(nil)
}
