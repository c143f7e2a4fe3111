package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"piuml/internal/driver"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file.pml",
	Short: "Compile one source file and export the laid-out model",
	Long: `Dump runs the full pipeline and writes the compiled model, geometry
included, for external renderers and tooling to consume.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().String("format", "json", "export format (json|msgpack)")
	dumpCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	res, err := driver.Compile(args[0], driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Logger:         stageLogger(cmd),
	})
	if err != nil {
		return err
	}
	printDiagnostics(cmd, res.Bag, res.FileSet)
	if !res.OK() {
		return fmt.Errorf("%s: compilation failed", args[0])
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, createErr := os.Create(outPath)
		if createErr != nil {
			return createErr
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		return driver.ExportJSON(out, res.Model)
	case "msgpack":
		return driver.ExportMsgpack(out, res.Model)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
