package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/diagfmt"
	"piuml/internal/lexer"
	"piuml/internal/parser"
	"piuml/internal/source"
	"piuml/internal/token"
)

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.pml", []byte("class a 'A'\n"))
	file := fs.Get(fileID)

	lx := lexer.New(file, lexer.Options{})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"KwClass", "Ident", `"a"`, "Name", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens := []token.Token{
		{Kind: token.Ident, Text: "a"},
		{Kind: token.EOF},
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"kind": "Ident"`) {
		t.Errorf("bad json:\n%s", buf.String())
	}
}

func TestFormatAST(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.pml", []byte(`package p 'P'
    class c 'C'
        : x: int
c => p
:layout:
    center: p c
`))
	file := fs.Get(fileID)

	reporter := &diag.BagReporter{Bag: diag.NewBag(16)}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})
	result := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: reporter})
	if result.Bag.HasErrors() {
		t.Fatalf("parse errors: %v", result.Bag.Items())
	}

	var buf bytes.Buffer
	if err := diagfmt.FormatAST(&buf, arenas, result.File); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`element package p "P"`,
		`    element class c "C"`,
		`        feature attribute "x: int"`,
		"relation generalization c => p",
		"layout:",
		"align center: p c",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
