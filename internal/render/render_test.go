package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"piuml/internal/align"
	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/layout"
	"piuml/internal/lexer"
	"piuml/internal/parser"
	"piuml/internal/render"
	"piuml/internal/source"
	"piuml/internal/uml"
)

type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

const sample = `class r <<device>> 'Reader'
class p 'Publication'
    : title: str
class b 'Book'
r == p
    : [1]
    :: [0..n]
b => p
:layout:
    center: p b
`

func laidOut(t *testing.T) (*uml.Diagram, *layout.Result) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.pml", []byte(sample))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: reporter})
	d, ok := uml.Build(arenas, result.File, uml.Options{Reporter: reporter})
	if !ok {
		t.Fatalf("build: %v", reporter.diagnostics)
	}
	ar, ok := align.Resolve(d, align.Default(), align.Options{Reporter: reporter})
	if !ok {
		t.Fatalf("align: %v", reporter.diagnostics)
	}
	res, ok := layout.Compute(d, ar, layout.Options{Reporter: reporter})
	if !ok {
		t.Fatalf("layout: %v", reporter.diagnostics)
	}
	return d, res
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"svg", "png", "pdf"} {
		if _, err := render.ParseFormat(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := render.ParseFormat("gif"); err == nil {
		t.Error("expected error for gif")
	}
}

func TestRenderSVG(t *testing.T) {
	d, res := laidOut(t)
	var buf bytes.Buffer
	if err := render.Render(d, res, render.SVG, &buf, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Error("not an svg document")
	}
	for _, want := range []string{"Reader", "Publication", "Book", "«device»", "title: str", "[0..n]"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	d, res := laidOut(t)
	var buf bytes.Buffer
	if err := render.Render(d, res, render.PNG, &buf, nil); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Errorf("empty image: %v", img.Bounds())
	}
}

func TestRenderPDF(t *testing.T) {
	d, res := laidOut(t)
	var buf bytes.Buffer
	if err := render.Render(d, res, render.PDF, &buf, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("not a pdf document")
	}
}
