package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/provide-io/toolbelt/pkg/natsort"
)

var sortReverse bool

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Sort lines in natural order",
	Long: `Sort lines in natural order, so that "file2" comes before "file10".

Reads from the given file, or from standard input when no file is named.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "Sort in descending order")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	natsort.Sort(lines)
	if sortReverse || cfg.Sort.Reverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
