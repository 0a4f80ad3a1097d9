package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"moc/internal/version"
)

// newRootCmd builds the command tree. A fresh tree is built for every run
// so that flag state never leaks between invocations.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moc",
		Short: "Mobile OCR Challenge result tools",
		Long: `moc checks, explores and normalizes OCR result files.
Every character must belong to the challenge allow-list; normalize rewrites
a file with NFKC and the challenge substitution table.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	root.PersistentFlags().BoolP("debug", "d", false, "print debug messages")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("config", "", "configuration file (default: nearest "+configFileName+")")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this path")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to this path on exit")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newNormalizeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitUsage
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves an --color mode for output written to w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
