package layout_test

import (
	"fmt"
	"reflect"
	"testing"

	"piuml/internal/align"
	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/layout"
	"piuml/internal/lexer"
	"piuml/internal/parser"
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

func (r *testReporter) hasCode(code diag.Code) bool {
	for _, d := range r.diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

func compute(t *testing.T, input string) (*layout.Result, bool, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.pml", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: reporter})

	seq := 0
	d, ok := uml.Build(arenas, result.File, uml.Options{
		Reporter: reporter,
		IfaceID: func() string {
			seq++
			return fmt.Sprintf("iface%d", seq)
		},
	})
	if !ok {
		t.Fatalf("model build failed: %v", reporter.diagnostics)
	}
	ar, ok := align.Resolve(d, align.Default(), align.Options{Reporter: reporter})
	if !ok {
		t.Fatalf("alignment failed: %v", reporter.diagnostics)
	}
	res, ok := layout.Compute(d, ar, layout.Options{Reporter: reporter})
	return res, ok, reporter
}

func mustCompute(t *testing.T, input string) *layout.Result {
	t.Helper()
	res, ok, reporter := compute(t, input)
	if !ok {
		t.Fatalf("layout failed: %v", reporter.diagnostics)
	}
	return res
}

// The smallest diagrams carry only a couple of constraints, so reaching
// the intrinsic minimum size must not eat the iteration budget.
func TestSingleElementLaysOut(t *testing.T) {
	res := mustCompute(t, "class a 'A'\n")
	b := res.Nodes["a"]
	if b.Size.Width < 80 || b.Size.Height < 40 {
		t.Errorf("box below minimum size: %+v", b.Size)
	}
	if res.Canvas.Size.Width < b.Size.Width {
		t.Errorf("canvas %v does not wrap box %v", res.Canvas.Size, b.Size)
	}
}

func TestReaderPublicationBookGeometry(t *testing.T) {
	res := mustCompute(t, `class r <<device>> 'Reader'
class p 'Publication'
    : title: str
    : authors: str
class b 'Book'
    : isbn: str
r == p
    : [1]
    :: [0..n]
b => p
:layout:
    center: p b
`)
	p, b := res.Nodes["p"], res.Nodes["b"]
	pc := p.Pos.X + p.Size.Width/2
	bc := b.Pos.X + b.Size.Width/2
	if pc != bc {
		t.Errorf("p and b centers differ: %v vs %v", pc, bc)
	}

	// the default row places r left of p with line clearance
	r := res.Nodes["r"]
	if r.Pos.X+r.Size.Width+100 > p.Pos.X {
		t.Errorf("r not left of p: r=%+v p=%+v", r, p)
	}
	for id, n := range res.Nodes {
		if n.Size.Width < 80 || n.Size.Height < 40 {
			t.Errorf("%s below minimum size: %+v", id, n.Size)
		}
	}
	if len(res.Edges) != 2 {
		t.Fatalf("edges: %d", len(res.Edges))
	}
	for _, e := range res.Edges {
		if len(e.Points) < 2 {
			t.Errorf("edge with %d points", len(e.Points))
		}
	}
}

func TestDefaultRowFollowsSourceOrder(t *testing.T) {
	res := mustCompute(t, "class a 'A'\nclass b 'B'\nclass c 'C'\n")
	a, b, c := res.Nodes["a"], res.Nodes["b"], res.Nodes["c"]
	if !(a.Pos.X+a.Size.Width <= b.Pos.X && b.Pos.X+b.Size.Width <= c.Pos.X) {
		t.Errorf("not left to right: a=%+v b=%+v c=%+v", a.Pos, b.Pos, c.Pos)
	}
	am := a.Pos.Y + a.Size.Height/2
	bm := b.Pos.Y + b.Size.Height/2
	if am != bm {
		t.Errorf("middles differ: %v vs %v", am, bm)
	}
}

func TestTopDirectiveAlignsEdges(t *testing.T) {
	res := mustCompute(t, `class a 'A'
class b 'B'
:layout:
    top: a b
`)
	a, b := res.Nodes["a"], res.Nodes["b"]
	if a.Pos.Y != b.Pos.Y {
		t.Errorf("tops differ: %v vs %v", a.Pos.Y, b.Pos.Y)
	}
}

func TestContainmentWrapsChildren(t *testing.T) {
	res := mustCompute(t, `package p 'P'
    class a 'A'
    class b 'B'
`)
	p, a, b := res.Nodes["p"], res.Nodes["a"], res.Nodes["b"]
	for id, kid := range map[string]*layout.Box{"a": a, "b": b} {
		if kid.Pos.X < p.Pos.X || kid.Pos.Y < p.Pos.Y {
			t.Errorf("%s escapes parent: %+v vs %+v", id, kid.Pos, p.Pos)
		}
		if kid.Pos.X+kid.Size.Width > p.Pos.X+p.Size.Width {
			t.Errorf("%s wider than parent", id)
		}
		if kid.Pos.Y+kid.Size.Height > p.Pos.Y+p.Size.Height {
			t.Errorf("%s taller than parent", id)
		}
	}
	// children sit below the package head compartment
	if a.Pos.Y <= p.Pos.Y {
		t.Errorf("child overlaps head: %v vs %v", a.Pos.Y, p.Pos.Y)
	}
}

func TestAssemblyInterfaceSitsBetweenComponents(t *testing.T) {
	res := mustCompute(t, `component c1 'C1'
component c2 'C2'
component c3 'C3'
c1 c2 o) 'Mgmt' c3
`)
	iface := res.Nodes["iface1"]
	if iface == nil {
		t.Fatal("missing interface box")
	}
	c1, c3 := res.Nodes["c1"], res.Nodes["c3"]
	cx := iface.Pos.X + iface.Size.Width/2
	if cx <= c1.Pos.X || cx >= c3.Pos.X+c3.Size.Width {
		t.Errorf("interface outside component span: %v", cx)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	input := `package p 'P'
    class a 'A'
    class b 'B'
class c 'C'
p == c
:layout:
    bottom: p c
`
	first := mustCompute(t, input)
	second := mustCompute(t, input)
	if !reflect.DeepEqual(first, second) {
		t.Error("geometry differs between runs")
	}
}

func TestContradictoryGroupsFail(t *testing.T) {
	_, ok, reporter := compute(t, `class a 'A'
class b 'B'
:layout:
    top: a b
    left: a b
`)
	if ok || !reporter.hasCode(diag.AlignUnsatisfiable) {
		t.Fatalf("expected AlignUnsatisfiable, got %v", reporter.diagnostics)
	}
}
