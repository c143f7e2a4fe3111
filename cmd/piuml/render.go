package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"piuml/internal/driver"
	"piuml/internal/render"
	"piuml/internal/style"
)

// runRender is the default command: compile every input and write one
// picture per file next to it. A failing file is reported and skipped;
// the rest still render.
func runRender(cmd *cobra.Command, args []string) error {
	formatName, err := cmd.Flags().GetString("filetype")
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}
	sheet, err := loadSheet(cmd)
	if err != nil {
		return err
	}

	outcomes := driver.CompileFiles(args, compileOptions(cmd, sheet))

	failed := 0
	for _, oc := range outcomes {
		if oc.Err != nil {
			fmt.Fprintf(os.Stderr, "piuml: %s: %v\n", oc.Path, oc.Err)
			failed++
			continue
		}
		printDiagnostics(cmd, oc.Result.Bag, oc.Result.FileSet)
		if !oc.Result.OK() {
			failed++
			continue
		}
		if err := renderFile(oc.Path, oc.Result.Model, format, sheet); err != nil {
			fmt.Fprintf(os.Stderr, "piuml: %s: %v\n", oc.Path, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(outcomes))
	}
	return nil
}

func renderFile(inputPath string, m *driver.Model, format render.Format, sheet *style.Sheet) error {
	outPath := outputPath(inputPath, format)
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := render.Render(m.Diagram, m.Layout, format, f, sheet); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// outputPath swaps the source extension for the render format's one.
func outputPath(inputPath string, format render.Format) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + format.Ext()
}
