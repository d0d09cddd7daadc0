package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provide-io/toolbelt/pkg/shellout"
	"github.com/provide-io/toolbelt/pkg/stopwatch"
)

var benchRuns int

var benchCmd = &cobra.Command{
	Use:   "bench -- <command> [args...]",
	Short: "Time repeated runs of a command",
	Long: `Time repeated runs of a command and report total, min, mean and max.

A run that exits non-zero stops the benchmark.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchRuns, "runs", "n", 0, "Number of runs (default from config)")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	runs := benchRuns
	if runs <= 0 {
		runs = cfg.Bench.Runs
	}

	sh := shellout.Runner{Logger: newLogger("bench")}
	result, err := stopwatch.Measure(shellout.Join(args), runs, func() error {
		res, err := sh.RunArgs(cmd.Context(), args)
		if err != nil {
			return err
		}
		if !res.Success() {
			return fmt.Errorf("exit code %d", res.ExitCode)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Summary())
	if result.Err != nil {
		exitCode = 1
	}
	return nil
}
