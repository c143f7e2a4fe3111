package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"piuml/internal/diagfmt"
	"piuml/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.pml",
	Short: "Parse a source file and dump its statement tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	printDiagnostics(cmd, result.Bag, result.FileSet)
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: parse failed", args[0])
	}
	return diagfmt.FormatAST(os.Stdout, result.Builder, result.FileID)
}
