package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maxvaer/dddtools/internal/inspect"
	"github.com/maxvaer/dddtools/internal/output"
	"github.com/spf13/cobra"
)

// errNoFile is reported as JSON on stdout and mapped to exit code 1.
var errNoFile = errors.New("No file provided")

func newRootCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "dddinspect <file>",
		Short: "Report coarse metadata for a tachograph DDD file",
		Long: `dddinspect is the fallback used by the DDD viewer when no full decoder is
available. It reports the file's size, name and first 16 bytes as JSON
without interpreting the content.`,
		// Every argument is a path, even one that looks like a flag.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(output.NewJSONWriter(stdout), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// runInspect writes exactly one record to w. Inspection failures are part of
// the output contract and do not produce an error; only a missing argument
// or a failed write does.
func runInspect(w output.Writer, args []string) error {
	if len(args) == 0 {
		if err := w.WriteError(errNoFile.Error()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return errNoFile
	}

	result, err := inspect.File(args[0])
	if err != nil {
		err = w.WriteError(err.Error())
	} else {
		err = w.WriteResult(result)
	}
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// run executes the inspector with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	rootCmd := newRootCmd(stdout)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoFile) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// Execute runs the root command.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
