package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"piuml/internal/diag"
	"piuml/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	noteColor = color.New(color.FgBlue)
)

// Pretty writes the bag human-readably, one diagnostic per block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~
//
// followed by any notes. Callers sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printOne(w, d, fs, opts)
	}
}

func printOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	head := fmt.Sprintf("%s %s", d.Severity, d.Code.ID())
	if opts.Color {
		head = severityColor(d.Severity).Sprint(head)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", location(d.Primary, fs, opts.PathMode), head, d.Message)
	if opts.ShowContext {
		printContext(w, d.Primary, fs, opts)
	}
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		label := "note"
		if opts.Color {
			label = noteColor.Sprint(label)
		}
		fmt.Fprintf(w, "%s: %s: %s\n", location(n.Span, fs, opts.PathMode), label, n.Msg)
		if opts.ShowContext {
			printContext(w, n.Span, fs, opts)
		}
	}
}

func printContext(w io.Writer, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	text := file.GetLine(start.Line)
	if text == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", text)

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = severityColor(diag.SevError).Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col)-1), underline)
}

func location(sp source.Span, fs *source.FileSet, mode PathMode) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	path := file.Path
	if mode == PathModeBasename {
		path = filepath.Base(path)
	}
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
