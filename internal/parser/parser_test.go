package parser_test

import (
	"testing"

	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/lexer"
	"piuml/internal/parser"
	"piuml/internal/source"
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

func parseSource(t *testing.T, input string) (*ast.Builder, parser.Result, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.pml", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter})
	return builder, result, reporter
}

func mustParse(t *testing.T, input string) (*ast.Builder, *ast.File) {
	t.Helper()
	builder, result, reporter := parseSource(t, input)
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.diagnostics)
	}
	return builder, builder.Files.Get(result.File)
}

func onlyRelation(t *testing.T, b *ast.Builder, file *ast.File) *ast.RelationStmt {
	t.Helper()
	for _, id := range file.Stmts {
		if rel, ok := b.Stmts.Relation(id); ok {
			return rel
		}
	}
	t.Fatal("no relation statement parsed")
	return nil
}

func TestElementWithCompartments(t *testing.T) {
	b, file := mustParse(t, `class c 'Counter'
    : count: int = 0
    : step: int
    : incr(): int
`)
	if len(file.Stmts) != 1 {
		t.Fatalf("top-level statements: %d", len(file.Stmts))
	}
	el, ok := b.Stmts.Element(file.Stmts[0])
	if !ok {
		t.Fatal("expected an element statement")
	}
	if el.ID != "c" || el.Name != "Counter" {
		t.Fatalf("element: %+v", el)
	}
	if len(el.Children) != 3 {
		t.Fatalf("children: %d", len(el.Children))
	}

	attr, _ := b.Stmts.Feature(el.Children[0])
	if attr.Kind != ast.FeatureAttribute || attr.Name != "count" || attr.Type != "int" || attr.Default != "0" {
		t.Errorf("first attribute: %+v", attr)
	}
	oper, _ := b.Stmts.Feature(el.Children[2])
	if oper.Kind != ast.FeatureOperation || oper.Name != "incr()" || oper.Type != "int" {
		t.Errorf("operation: %+v", oper)
	}
}

func TestAnonymousElementUsesIDAsName(t *testing.T) {
	b, file := mustParse(t, "actor a\n")
	el, _ := b.Stmts.Element(file.Stmts[0])
	if el.Name != "a" {
		t.Errorf("name: %q", el.Name)
	}
}

func TestStereotypeBeforeOrAfterName(t *testing.T) {
	for _, input := range []string{
		"class r <<device>> 'Reader'\n",
		"class r 'Reader' <<device>>\n",
	} {
		b, file := mustParse(t, input)
		el, _ := b.Stmts.Element(file.Stmts[0])
		if el.Name != "Reader" || len(el.Stereotypes) != 1 || el.Stereotypes[0] != "device" {
			t.Errorf("input %q: %+v", input, el)
		}
	}
}

func TestIndentationNesting(t *testing.T) {
	b, file := mustParse(t, `package p 'Platform'
    class a 'A'
    class b 'B'
class top 'Top'
`)
	if len(file.Stmts) != 2 {
		t.Fatalf("top-level statements: %d", len(file.Stmts))
	}
	pkg, _ := b.Stmts.Element(file.Stmts[0])
	if len(pkg.Children) != 2 {
		t.Fatalf("package children: %d", len(pkg.Children))
	}
	inner, _ := b.Stmts.Element(pkg.Children[1])
	if inner.ID != "b" {
		t.Errorf("second child: %+v", inner)
	}
}

func TestDeepNestingAndDedent(t *testing.T) {
	b, file := mustParse(t, `node n 'Node'
  package p 'P'
    class c 'C'
  package q 'Q'
`)
	root, _ := b.Stmts.Element(file.Stmts[0])
	if len(root.Children) != 2 {
		t.Fatalf("node children: %d", len(root.Children))
	}
	p, _ := b.Stmts.Element(root.Children[0])
	if len(p.Children) != 1 {
		t.Fatalf("package p children: %d", len(p.Children))
	}
}

func TestAssociationExtras(t *testing.T) {
	b, file := mustParse(t, `class a 'A'
class b 'B'
a ==> 'reads' <<fast>> b
    : items [0..n]
    :: [1]
`)
	rel := onlyRelation(t, b, file)
	if rel.Kind != ast.RelAssociation || rel.Name != "reads" {
		t.Fatalf("relation: %+v", rel)
	}
	if len(rel.Stereotypes) != 1 || rel.Stereotypes[0] != "fast" {
		t.Errorf("stereotypes: %v", rel.Stereotypes)
	}
	if rel.HeadAdorn != ast.EndNavigable {
		t.Errorf("head adornment: %v", rel.HeadAdorn)
	}
	if len(rel.Features) != 2 {
		t.Fatalf("end features: %d", len(rel.Features))
	}
	tail, _ := b.Stmts.Feature(rel.Features[0])
	if tail.Head || tail.Name != "items" || tail.Mult != "0..n" {
		t.Errorf("tail end: %+v", tail)
	}
	head, _ := b.Stmts.Feature(rel.Features[1])
	if !head.Head || head.Mult != "1" {
		t.Errorf("head end: %+v", head)
	}
}

func TestSecondPlainEndFillsHead(t *testing.T) {
	b, file := mustParse(t, `class a 'A'
class b 'B'
a == b
    : [1]
    : [0..n]
`)
	rel := onlyRelation(t, b, file)
	head, _ := b.Stmts.Feature(rel.Features[1])
	if !head.Head {
		t.Error("second plain end line must land on the head")
	}
}

func TestOperatorDecoding(t *testing.T) {
	cases := []struct {
		op   string
		kind ast.RelKind
		tail ast.EndAdorn
		head ast.EndAdorn
		dir  ast.Direction
	}{
		{"==", ast.RelAssociation, ast.EndUnknown, ast.EndUnknown, ast.DirNone},
		{"x==", ast.RelAssociation, ast.EndNone, ast.EndUnknown, ast.DirNone},
		{"O==*", ast.RelAssociation, ast.EndShared, ast.EndComposite, ast.DirNone},
		{"=>=", ast.RelAssociation, ast.EndUnknown, ast.EndUnknown, ast.DirHead},
		{"=<=", ast.RelAssociation, ast.EndUnknown, ast.EndUnknown, ast.DirTail},
		{"<==", ast.RelAssociation, ast.EndNavigable, ast.EndUnknown, ast.DirNone},
		{"<=", ast.RelGeneralization, ast.EndUnknown, ast.EndUnknown, ast.DirNone},
		{"--", ast.RelCommentLine, ast.EndUnknown, ast.EndUnknown, ast.DirNone},
	}
	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			b, file := mustParse(t, "class a 'A'\nclass b 'B'\na "+tc.op+" b\n")
			rel := onlyRelation(t, b, file)
			if rel.Kind != tc.kind || rel.TailAdorn != tc.tail || rel.HeadAdorn != tc.head || rel.Dir != tc.dir {
				t.Errorf("decoded: %+v", rel)
			}
		})
	}
}

func TestDependencyLetter(t *testing.T) {
	b, file := mustParse(t, "package a 'A'\npackage b 'B'\na -m> b\n")
	rel := onlyRelation(t, b, file)
	if rel.Kind != ast.RelDependency || rel.DepLetter != 'm' {
		t.Fatalf("dependency: %+v", rel)
	}
}

func TestAssembly(t *testing.T) {
	b, file := mustParse(t, `component c1 'C1'
component c2 'C2'
component c3 'C3'
c1 c2 o) 'Mgmt' c3
`)
	rel := onlyRelation(t, b, file)
	if rel.Kind != ast.RelAssembly || rel.IfaceName != "Mgmt" || rel.IfaceSymbol != "o)" {
		t.Fatalf("assembly: %+v", rel)
	}
	if len(rel.AsmTail) != 2 || len(rel.AsmHead) != 1 {
		t.Errorf("sides: %d/%d", len(rel.AsmTail), len(rel.AsmHead))
	}
}

func TestFoldedIfaceDependency(t *testing.T) {
	b, file := mustParse(t, "component c 'C'\nc o) 'Mgmt'\n")
	rel := onlyRelation(t, b, file)
	if rel.Kind != ast.RelIfaceDep || rel.IfaceSymbol != "o)" {
		t.Fatalf("iface dep: %+v", rel)
	}

	b, file = mustParse(t, "component c 'C'\n'Mgmt' (o c\n")
	rel = onlyRelation(t, b, file)
	if rel.Kind != ast.RelIfaceDep || rel.IfaceSymbol != "(o" || len(rel.AsmHead) != 1 {
		t.Fatalf("iface dep: %+v", rel)
	}
}

// The symbol and the interface name come in either order, on either
// side of the component run, so a line may open with the symbol itself.
func TestFoldedIfaceTokenOrder(t *testing.T) {
	cases := []struct {
		line   string
		symbol string
		tail   int
		head   int
	}{
		{"o) 'Mgmt' c", "o)", 0, 1},
		{"(o 'Mgmt' c", "(o", 0, 1},
		{"c (o 'Mgmt'", "(o", 1, 0},
		{"c 'Mgmt' o)", "o)", 1, 0},
		{"'Mgmt' o) c", "o)", 0, 1},
	}
	for _, tc := range cases {
		b, file := mustParse(t, "component c 'C'\n"+tc.line+"\n")
		rel := onlyRelation(t, b, file)
		if rel.Kind != ast.RelIfaceDep || rel.IfaceSymbol != tc.symbol ||
			rel.IfaceName != "Mgmt" ||
			len(rel.AsmTail) != tc.tail || len(rel.AsmHead) != tc.head {
			t.Errorf("line %q: %+v", tc.line, rel)
		}
	}
}

func TestLayoutBlock(t *testing.T) {
	b, file := mustParse(t, `class a 'A'
class b 'B'
class c 'C'
:layout:
    center: a b
    left: b c
`)
	var block *ast.LayoutBlockStmt
	for _, id := range file.Stmts {
		if lb, ok := b.Stmts.LayoutBlock(id); ok {
			block = lb
		}
	}
	if block == nil || len(block.Directives) != 2 {
		t.Fatalf("layout block: %+v", block)
	}
	first, _ := b.Stmts.Align(block.Directives[0])
	if first.Op != ast.AlignCenter || len(first.IDs) != 2 || first.IDs[0] != "a" {
		t.Errorf("first directive: %+v", first)
	}
	second, _ := b.Stmts.Align(block.Directives[1])
	if second.Op != ast.AlignLeft || second.Op.Axis() != ast.AxisVertical {
		t.Errorf("second directive: %+v", second)
	}
}

func TestInlineAlign(t *testing.T) {
	b, file := mustParse(t, "class a 'A'\nclass b 'B'\nalign=middle: a b\n")
	var al *ast.AlignStmt
	for _, id := range file.Stmts {
		if a, ok := b.Stmts.Align(id); ok {
			al = a
		}
	}
	if al == nil || al.Op != ast.AlignMiddle {
		t.Fatalf("inline align: %+v", al)
	}
}

func TestDuplicateElementID(t *testing.T) {
	_, _, reporter := parseSource(t, "class a 'A'\nclass a 'Again'\n")
	if !reporter.hasCode(diag.SynDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", reporter.diagnostics)
	}
	for _, d := range reporter.diagnostics {
		if d.Code == diag.SynDuplicateID && len(d.Notes) != 1 {
			t.Errorf("expected a note at the first declaration: %+v", d)
		}
	}
}

func TestParserErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"feature outside element", ": count: int\n", diag.SynFeatureOutsideElement},
		{"missing identifier", "class 'Name'\n", diag.SynExpectIdentifier},
		{"bad indent", "class a 'A'\n    : x: int\n  class b 'B'\n", diag.SynBadIndent},
		{"feature not nestable", "class a 'A'\n  : x: int\n    : y: int\n", diag.SynStatementNotNestable},
		{"unknown align op", "class a 'A'\nclass b 'B'\nalign=diagonal: a b\n", diag.SynBadAlignOperator},
		{"axis mismatch", "class a 'A'\nclass b 'B'\nvertical=top: a b\n", diag.SynBadAlignOperator},
		{"bare op outside block", "class a 'A'\nclass b 'B'\ncenter: a b\n", diag.SynBadAlignOperator},
		{"too few align ids", "class a 'A'\nclass b 'B'\n:layout:\n  center: a\n", diag.SynExpectIdentifier},
		{"too many ends", "class a 'A'\nclass b 'B'\na == b\n  : [1]\n  :: [2]\n  : [3]\n", diag.SynTooManyAssociationEnds},
		{"two ids before op", "class a 'A'\nclass b 'B'\na b == a\n", diag.SynUnexpectedToken},
		{"missing iface name", "component c 'C'\nc o) c\n", diag.SynExpectName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, reporter := parseSource(t, tc.input)
			if !reporter.hasCode(tc.code) {
				t.Errorf("expected %v, got %v", tc.code, reporter.diagnostics)
			}
		})
	}
}
