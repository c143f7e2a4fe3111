package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"piuml/internal/diagfmt"
	"piuml/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.pml...",
	Short: "Compile sources and report diagnostics without rendering",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	outcomes := driver.CompileFiles(args, driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Logger:         stageLogger(cmd),
	})

	failed := 0
	for _, oc := range outcomes {
		if oc.Err != nil {
			fmt.Fprintf(os.Stderr, "piuml: %s: %v\n", oc.Path, oc.Err)
			failed++
			continue
		}
		switch format {
		case "pretty":
			printDiagnostics(cmd, oc.Result.Bag, oc.Result.FileSet)
		case "json":
			jsonErr := diagfmt.WriteJSON(os.Stdout, oc.Result.Bag, oc.Result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
			})
			if jsonErr != nil {
				return jsonErr
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if !oc.Result.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "checked %d file(s), no errors\n", len(outcomes))
	return nil
}
