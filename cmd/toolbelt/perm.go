package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/provide-io/toolbelt/pkg/unixmode"
)

var permCmd = &cobra.Command{
	Use:   "perm <mode>...",
	Short: "Convert file modes between octal and symbolic notation",
	Long: `Convert file modes between octal and symbolic notation.

Each argument may be octal ("644", "0755") or symbolic ("rwxr-xr-x",
"drwxr-x---"); a full ls -l line works too.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPerm,
}

func init() {
	rootCmd.AddCommand(permCmd)
}

func runPerm(cmd *cobra.Command, args []string) error {
	logger := newLogger("perm")

	for _, arg := range args {
		p, err := unixmode.Parse(arg)
		if err != nil {
			return err
		}
		logger.Debug("parsed mode", "input", arg, "notation", p.Notation().String())
		printPermission(p)
	}
	return nil
}

func printPermission(p unixmode.Permission) {
	bold := color.New(color.Bold)
	label := color.New(color.FgCyan)

	fmt.Printf("%s  %s\n", bold.Sprint(p.Symbolic()), p.Octal())
	if ft, ok := p.FileType(); ok {
		fmt.Printf("  %s %s\n", label.Sprint("type:"), fileTypeName(ft))
	}
	fmt.Printf("  %s %s   %s %s   %s %s\n",
		label.Sprint("owner:"), p.Owner(),
		label.Sprint("group:"), p.Group(),
		label.Sprint("other:"), p.Other())
}

func fileTypeName(ft byte) string {
	switch ft {
	case '-':
		return "regular file"
	case 'd':
		return "directory"
	case 'l':
		return "symbolic link"
	case 'b':
		return "block device"
	case 'c':
		return "character device"
	case 'p':
		return "fifo"
	case 's':
		return "socket"
	case 'w':
		return "whiteout"
	default:
		return "unknown"
	}
}
