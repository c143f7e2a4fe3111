package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"piuml/internal/ast"
	"piuml/internal/token"
)

// FormatAST dumps the statement tree of one parsed file, one node per
// line, children indented.
func FormatAST(w io.Writer, arenas *ast.Builder, file ast.FileID) error {
	f := arenas.Files.Get(file)
	for _, id := range f.Stmts {
		printStmt(w, arenas, id, 0)
	}
	return nil
}

func printStmt(w io.Writer, arenas *ast.Builder, id ast.StmtID, depth int) {
	indent := strings.Repeat("    ", depth)
	stmt := arenas.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtElement:
		el, _ := arenas.Stmts.Element(id)
		fmt.Fprintf(w, "%selement %s %s %q", indent, token.KeywordText(el.Keyword), el.ID, el.Name)
		if len(el.Stereotypes) > 0 {
			fmt.Fprintf(w, " <<%s>>", strings.Join(el.Stereotypes, ", "))
		}
		fmt.Fprintln(w)
		for _, child := range el.Children {
			printStmt(w, arenas, child, depth+1)
		}
	case ast.StmtFeature:
		ft, _ := arenas.Stmts.Feature(id)
		fmt.Fprintf(w, "%sfeature %s %q\n", indent, featureKind(ft.Kind), ft.Raw)
	case ast.StmtRelation:
		rel, _ := arenas.Stmts.Relation(id)
		printRelation(w, rel, indent)
		for _, child := range rel.Features {
			printStmt(w, arenas, child, depth+1)
		}
	case ast.StmtAlign:
		al, _ := arenas.Stmts.Align(id)
		fmt.Fprintf(w, "%salign %s: %s\n", indent, al.Op, strings.Join(al.IDs, " "))
	case ast.StmtLayoutBlock:
		lb, _ := arenas.Stmts.LayoutBlock(id)
		fmt.Fprintf(w, "%slayout:\n", indent)
		for _, child := range lb.Directives {
			printStmt(w, arenas, child, depth+1)
		}
	}
}

func printRelation(w io.Writer, rel *ast.RelationStmt, indent string) {
	switch rel.Kind {
	case ast.RelAssembly, ast.RelIfaceDep:
		fmt.Fprintf(w, "%srelation %s %s %q %s\n", indent, relKind(rel.Kind),
			refTexts(rel.AsmTail), rel.IfaceName, refTexts(rel.AsmHead))
	default:
		fmt.Fprintf(w, "%srelation %s %s %s %s", indent, relKind(rel.Kind),
			rel.Tail.Text, rel.Op, rel.Head.Text)
		if rel.Name != "" {
			fmt.Fprintf(w, " %q", rel.Name)
		}
		fmt.Fprintln(w)
	}
}

func refTexts(refs []ast.Ref) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = r.Text
	}
	return strings.Join(parts, " ")
}

func featureKind(k ast.FeatureKind) string {
	switch k {
	case ast.FeatureAttribute:
		return "attribute"
	case ast.FeatureOperation:
		return "operation"
	case ast.FeatureMultiplicity:
		return "multiplicity"
	case ast.FeatureStereotypeAttrs:
		return "stereotype-attrs"
	}
	return "unknown"
}

func relKind(k ast.RelKind) string {
	switch k {
	case ast.RelAssociation:
		return "association"
	case ast.RelDependency:
		return "dependency"
	case ast.RelGeneralization:
		return "generalization"
	case ast.RelCommentLine:
		return "comment-line"
	case ast.RelAssembly:
		return "assembly"
	case ast.RelIfaceDep:
		return "iface-dependency"
	}
	return "unknown"
}
