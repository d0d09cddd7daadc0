package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provide-io/toolbelt/pkg/shellout"
	"github.com/provide-io/toolbelt/pkg/timespan"
)

var runTimeout string

var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command and propagate its exit code",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runTimeout, "timeout", "", "Time limit as a timespan (e.g. 30s, 5m); overrides the config file")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	timeout, err := cfg.RunTimeout()
	if err != nil {
		return err
	}
	if runTimeout != "" {
		span, err := timespan.Parse(runTimeout)
		if err != nil {
			return err
		}
		timeout = span.Duration()
	}

	sh := shellout.Runner{
		Timeout: timeout,
		Stdin:   os.Stdin,
		Logger:  newLogger("run"),
	}
	result, err := sh.RunArgs(cmd.Context(), args)
	if err != nil {
		return err
	}

	fmt.Print(result.Stdout)
	fmt.Fprint(os.Stderr, result.Stderr)
	exitCode = result.ExitCode
	return nil
}
