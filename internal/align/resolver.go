// Package align turns the diagram's ordered alignment directives into
// one final assignment per element and axis, plus the directive groups
// the layout engine must keep on a shared coordinate.
//
// Resolution is a pure function of its inputs: running it twice over
// the same diagram yields identical results.
package align

import (
	"piuml/internal/ast"
	"piuml/internal/diag"
	"piuml/internal/source"
	"piuml/internal/uml"
)

// Assignment is the per-element outcome, one operator per axis.
type Assignment struct {
	H ast.AlignOp `json:"h"`
	V ast.AlignOp `json:"v"`
}

// Default is the initial assignment every element starts from.
func Default() Assignment {
	return Assignment{H: ast.AlignCenter, V: ast.AlignMiddle}
}

// Group is one directive's surviving member set for its axis. Members
// drop out when a later directive on the same axis names them again.
type Group struct {
	Axis    ast.AlignAxis `json:"axis"`
	Op      ast.AlignOp   `json:"op"`
	Members []string      `json:"members"`
	Index   int           `json:"index"`
}

// Result is the resolved alignment state handed to the layout engine.
type Result struct {
	Assign map[string]Assignment `json:"assign"`
	Groups []Group               `json:"groups"`
}

type Options struct {
	// Reporter receives alignment diagnostics. Nil disables reporting.
	Reporter diag.Reporter
}

// Resolve applies every directive in source order on top of initial.
// ok is false when any directive failed; failed directives are skipped
// and the rest still resolve.
func Resolve(d *uml.Diagram, initial Assignment, opts Options) (*Result, bool) {
	r := &Result{
		Assign: make(map[string]Assignment),
	}
	for _, el := range d.Elements() {
		r.Assign[el.ID] = initial
	}

	ok := true
	// last same-axis directive naming an element wins; owner tracks it
	type ownerKey struct {
		id   string
		axis ast.AlignAxis
	}
	owner := make(map[ownerKey]int)

	groups := make([]Group, 0, len(d.Directives))
	for _, dir := range d.Directives {
		if !validate(d, dir, opts) {
			ok = false
			continue
		}
		axis := dir.Op.Axis()
		for _, id := range dir.IDs {
			a := r.Assign[id]
			if axis == ast.AxisHorizontal {
				a.H = dir.Op
			} else {
				a.V = dir.Op
			}
			r.Assign[id] = a
			owner[ownerKey{id, axis}] = dir.Index
		}
		groups = append(groups, Group{
			Axis:    axis,
			Op:      dir.Op,
			Members: dir.IDs,
			Index:   dir.Index,
		})
	}

	// prune overridden members; groups below two members carry no
	// constraint anymore
	for _, g := range groups {
		members := make([]string, 0, len(g.Members))
		for _, id := range g.Members {
			if owner[ownerKey{id, g.Axis}] == g.Index {
				members = append(members, id)
			}
		}
		if len(members) >= 2 {
			g.Members = members
			r.Groups = append(r.Groups, g)
		}
	}
	return r, ok
}

// validate checks one directive: every id must be declared before the
// directive and all members must be siblings in the containment forest.
func validate(d *uml.Diagram, dir uml.Directive, opts Options) bool {
	var parent *uml.Element
	for i, id := range dir.IDs {
		el, found := d.Element(id)
		if !found {
			report(opts, diag.AlignUnknownID, idSpan(dir, i),
				"unknown element id \""+id+"\" in alignment directive")
			return false
		}
		if el.Span.Start >= dir.Span.Start {
			report(opts, diag.AlignUnknownID, idSpan(dir, i),
				"element id \""+id+"\" is declared after the alignment directive")
			return false
		}
		if i == 0 {
			parent = el.Parent
			continue
		}
		if el.Parent != parent {
			report(opts, diag.AlignCrossContainment, idSpan(dir, i),
				"alignment group crosses containment boundaries")
			return false
		}
	}
	return true
}

func idSpan(dir uml.Directive, i int) source.Span {
	if i < len(dir.Spans) {
		return dir.Spans[i]
	}
	return dir.Span
}

func report(opts Options, code diag.Code, sp source.Span, msg string) {
	if opts.Reporter != nil {
		opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
