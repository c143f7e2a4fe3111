package uml_test

import (
	"fmt"
	"testing"

	"piuml/internal/ast"
	"piuml/internal/diag"
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

func buildSource(t *testing.T, input string) (*uml.Diagram, bool, *testReporter) {
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
	return d, ok, reporter
}

func mustBuild(t *testing.T, input string) *uml.Diagram {
	t.Helper()
	d, ok, reporter := buildSource(t, input)
	if !ok || len(reporter.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.diagnostics)
	}
	return d
}

func TestReaderPublicationBook(t *testing.T) {
	d := mustBuild(t, `class r <<device>> 'Reader'
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
	if len(d.Elements()) != 3 {
		t.Fatalf("elements: %d", len(d.Elements()))
	}
	if len(d.Relationships) != 2 {
		t.Fatalf("relationships: %d", len(d.Relationships))
	}
	if len(d.Directives) != 1 || d.Directives[0].Op != ast.AlignCenter {
		t.Fatalf("directives: %+v", d.Directives)
	}

	r, _ := d.Element("r")
	if r.Kind != uml.KClass || len(r.Stereotypes) != 1 || r.Stereotypes[0] != "device" {
		t.Errorf("reader: %+v", r)
	}
	p, _ := d.Element("p")
	if len(p.Features) != 2 || p.Features[0].Name != "title" || p.Features[0].Type != "str" {
		t.Errorf("publication features: %+v", p.Features)
	}

	assoc := d.Relationships[0]
	if assoc.Kind != uml.Association || assoc.TailEnd.Mult != "1" || assoc.HeadEnd.Mult != "0..n" {
		t.Errorf("association: %+v", assoc)
	}
	gen := d.Relationships[1]
	if gen.Kind != uml.Generalization || gen.Supplier != "p" {
		t.Errorf("generalization: %+v", gen)
	}
}

func TestKeywordKindsSelfStereotype(t *testing.T) {
	d := mustBuild(t, "component c 'C'\nclass k 'K'\n")
	c, _ := d.Element("c")
	if len(c.Stereotypes) != 1 || c.Stereotypes[0] != "component" {
		t.Errorf("component stereotypes: %v", c.Stereotypes)
	}
	k, _ := d.Element("k")
	if len(k.Stereotypes) != 0 {
		t.Errorf("class stereotypes: %v", k.Stereotypes)
	}
}

// Duplicate declarations are a parse error; by the time the model
// builder runs, each id resolves to exactly one element.
func TestDuplicateIDRejectedBeforeBuild(t *testing.T) {
	d, _, reporter := buildSource(t, "class a 'A'\nclass a 'Again'\n")
	if !reporter.hasCode(diag.SynDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", reporter.diagnostics)
	}
	el, found := d.Element("a")
	if !found || el.Name != "A" {
		t.Errorf("first declaration should win, got %+v", el)
	}
}

func TestUnknownEndpoint(t *testing.T) {
	_, ok, reporter := buildSource(t, "class c1 'A'\nclass c2 'B'\nc1 -- cx\n")
	if ok || !reporter.hasCode(diag.UmlUnknownID) {
		t.Fatalf("expected unknown id error, got %v", reporter.diagnostics)
	}
}

func TestDeclarationBeforeUse(t *testing.T) {
	_, ok, reporter := buildSource(t, "class a 'A'\na == b\nclass b 'B'\n")
	if ok || !reporter.hasCode(diag.UmlUnknownID) {
		t.Fatalf("forward reference must fail, got %v", reporter.diagnostics)
	}
}

func TestPackagingCapability(t *testing.T) {
	_, ok, reporter := buildSource(t, "usecase u 'U'\n    class c 'C'\n")
	if ok || !reporter.hasCode(diag.UmlNotPackaging) {
		t.Fatalf("expected packaging error, got %v", reporter.diagnostics)
	}

	d := mustBuild(t, "package p 'P'\n    class c 'C'\n")
	p, _ := d.Element("p")
	if len(p.Children) != 1 || p.Children[0].Parent != p {
		t.Errorf("containment: %+v", p.Children)
	}
}

func TestCompartmentCapability(t *testing.T) {
	_, ok, reporter := buildSource(t, "actor a 'User'\n    : x: int\n")
	if ok || !reporter.hasCode(diag.UmlNoCompartments) {
		t.Fatalf("expected compartment error, got %v", reporter.diagnostics)
	}
}

func TestStereotypeAttributeGroups(t *testing.T) {
	d := mustBuild(t, `class c 'C'
    : plain: int
    : <<tagged>> :
    : grouped: str
`)
	c, _ := d.Element("c")
	if len(c.Features) != 2 {
		t.Fatalf("features: %+v", c.Features)
	}
	if c.Features[0].Group != "" || c.Features[1].Group != "tagged" {
		t.Errorf("groups: %q, %q", c.Features[0].Group, c.Features[1].Group)
	}
}

func TestExtensionPromotion(t *testing.T) {
	d := mustBuild(t, "metaclass m 'M'\nstereotype s 'S'\nm == s\n")
	if d.Relationships[0].Kind != uml.Extension {
		t.Errorf("kind: %v", d.Relationships[0].Kind)
	}
}

func TestDependencyLetters(t *testing.T) {
	d := mustBuild(t, "package a 'A'\npackage b 'B'\na -i> b\n")
	if got := d.Relationships[0].Stereotypes; len(got) != 1 || got[0] != "import" {
		t.Errorf("package import: %v", got)
	}

	d = mustBuild(t, "usecase a 'A'\nusecase b 'B'\na -i> b\n")
	if got := d.Relationships[0].Stereotypes; len(got) != 1 || got[0] != "include" {
		t.Errorf("usecase include: %v", got)
	}

	d = mustBuild(t, "class a 'A'\nclass b 'B'\na -u> b\n")
	if got := d.Relationships[0].Stereotypes; len(got) != 1 || got[0] != "use" {
		t.Errorf("use: %v", got)
	}

	d = mustBuild(t, "package a 'A'\npackage b 'B'\na -m> b\n")
	if got := d.Relationships[0].Stereotypes; len(got) != 1 || got[0] != "merge" {
		t.Errorf("package merge: %v", got)
	}

	d = mustBuild(t, "usecase a 'A'\nusecase b 'B'\na -e> b\n")
	if got := d.Relationships[0].Stereotypes; len(got) != 1 || got[0] != "extend" {
		t.Errorf("usecase extend: %v", got)
	}

	for _, input := range []string{
		"class a 'A'\nclass b 'B'\na -i> b\n",
		"class a 'A'\npackage b 'B'\na -m> b\n",
		"package a 'A'\nclass b 'B'\na -e> b\n",
	} {
		_, ok, reporter := buildSource(t, input)
		if ok || !reporter.hasCode(diag.UmlBadDependency) {
			t.Errorf("input %q: expected UmlBadDependency, got %v", input, reporter.diagnostics)
		}
	}
}

func TestDependencySupplier(t *testing.T) {
	d := mustBuild(t, "class a 'A'\nclass b 'B'\na <- b\n")
	if d.Relationships[0].Supplier != "a" {
		t.Errorf("supplier: %q", d.Relationships[0].Supplier)
	}
}

func TestCommentLineCheck(t *testing.T) {
	for _, input := range []string{
		"comment c1 'C1'\ncomment c2 'C2'\nc1 -- c2\n",
		"class c1 'C1'\nclass c2 'C2'\nc1 -- c2\n",
	} {
		_, ok, reporter := buildSource(t, input)
		if ok || !reporter.hasCode(diag.UmlBadCommentLine) {
			t.Errorf("input %q: expected UmlBadCommentLine, got %v", input, reporter.diagnostics)
		}
	}

	d := mustBuild(t, "comment c1 'Note'\nclass c2 'C2'\nc1 -- c2\n")
	if d.Relationships[0].Kind != uml.CommentLine {
		t.Errorf("kind: %v", d.Relationships[0].Kind)
	}
}

func TestAssemblyBuildsConnectors(t *testing.T) {
	d := mustBuild(t, `component c1 'C1'
component c2 'C2'
component c3 'C3'
c1 c2 o) 'Mgmt' c3
`)
	iface, ok := d.Element("iface1")
	if !ok || iface.Kind != uml.KFoldedIface || iface.Name != "Mgmt" {
		t.Fatalf("interface node: %+v", iface)
	}
	if len(d.Relationships) != 3 {
		t.Fatalf("connectors: %d", len(d.Relationships))
	}
	for _, r := range d.Relationships {
		if r.Kind != uml.Connector {
			t.Errorf("kind: %v", r.Kind)
		}
	}
	last := d.Relationships[2]
	if last.TailID != "iface1" || last.HeadID != "c3" {
		t.Errorf("head-side connector: %+v", last)
	}
}

func TestAssemblyComponentsOnly(t *testing.T) {
	_, ok, reporter := buildSource(t, "component c 'C'\nclass k 'K'\nc o) 'I' k\n")
	if ok || !reporter.hasCode(diag.UmlBadAssembly) {
		t.Fatalf("expected UmlBadAssembly, got %v", reporter.diagnostics)
	}
}

func TestFoldedIfaceDependencyStereotype(t *testing.T) {
	// The stereotype follows which side of the symbol the component
	// sits on, for both symbol spellings.
	cases := []struct {
		line   string
		stereo string
	}{
		{"c o) 'I'", "realize"},
		{"'I' (o c", "realize"},
		{"(o 'I' c", "realize"},
		{"c 'I' o)", "realize"},
		{"o) 'I' c", "use"},
		{"c 'I' (o", "use"},
		{"c (o 'I'", "use"},
		{"'I' o) c", "use"},
	}
	for _, tc := range cases {
		d := mustBuild(t, "component c 'C'\n"+tc.line+"\n")
		r := d.Relationships[0]
		if r.Kind != uml.Dependency || len(r.Stereotypes) != 1 || r.Stereotypes[0] != tc.stereo {
			t.Errorf("line %q: %+v", tc.line, r)
		}
		if r.Supplier == "" {
			t.Errorf("line %q: missing supplier", tc.line)
		}
	}
}
