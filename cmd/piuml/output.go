package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"piuml/internal/diag"
	"piuml/internal/diagfmt"
	"piuml/internal/driver"
	"piuml/internal/source"
	"piuml/internal/style"
)

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

// printDiagnostics writes whatever the bag collected to stderr.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowContext: true,
		ShowNotes:   true,
	})
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return driver.DefaultMaxDiagnostics
	}
	return n
}

// stageLogger returns a debug logger when --verbose is set, nil otherwise.
func stageLogger(cmd *cobra.Command) *log.Logger {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil || !verbose {
		return nil
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})
}

// loadSheet resolves the --style flag, falling back to defaults.
func loadSheet(cmd *cobra.Command) (*style.Sheet, error) {
	path, err := cmd.Flags().GetString("style")
	if err != nil || path == "" {
		return style.Default(), nil
	}
	return style.Load(path)
}

func compileOptions(cmd *cobra.Command, sheet *style.Sheet) driver.Options {
	return driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Sheet:          sheet,
		Logger:         stageLogger(cmd),
	}
}
