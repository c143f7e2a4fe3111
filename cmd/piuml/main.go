package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"piuml/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "piuml [flags] file.pml...",
	Short: "piUML diagram compiler",
	Long: `piuml compiles textual UML descriptions into rendered diagrams.
Given source files it writes one picture per file next to the input.`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runRender,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringP("filetype", "T", "pdf", "output format (pdf|svg|png)")
	rootCmd.Flags().String("style", "", "TOML style sheet overriding the built-in defaults")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log pipeline stages to stderr")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
