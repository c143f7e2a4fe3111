package layout_test

import (
	"errors"
	"testing"

	"piuml/internal/layout"
	"piuml/internal/style"
)

func box(x, y, w, h float64) *layout.Box {
	return &layout.Box{
		Pos:          style.Pos{X: x, Y: y},
		Size:         style.Size{Width: w, Height: h},
		MinSize:      style.Size{Width: w, Height: h},
		Compartments: []float64{0},
	}
}

func TestMinSizeGrowsBox(t *testing.T) {
	b := box(0, 0, 0, 0)
	b.MinSize = style.Size{Width: 35, Height: 15}
	s := layout.NewSolver()
	s.Add(&layout.MinSize{R: b})
	if err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	if b.Size.Width < 35 || b.Size.Height < 15 {
		t.Errorf("size: %+v", b.Size)
	}
}

func TestTopEqMovesLesserBox(t *testing.T) {
	a, b := box(0, 10, 40, 40), box(100, 30, 40, 40)
	s := layout.NewSolver()
	s.Add(&layout.TopEq{Pair: layout.Pair{A: a, B: b}})
	if err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	if a.Pos.Y != 30 || b.Pos.Y != 30 {
		t.Errorf("tops: %v %v", a.Pos.Y, b.Pos.Y)
	}
}

func TestMinHDistPushesRight(t *testing.T) {
	a, b := box(0, 0, 40, 40), box(0, 0, 40, 40)
	s := layout.NewSolver()
	s.Add(&layout.MinHDist{Pair: layout.Pair{A: a, B: b}, Dist: 20})
	if err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	if b.Pos.X != 60 {
		t.Errorf("b.x: %v", b.Pos.X)
	}
}

func TestWithinGrowsParent(t *testing.T) {
	parent := box(0, 0, 50, 50)
	kid := box(0, 0, 80, 30)
	s := layout.NewSolver()
	s.Add(&layout.Within{Kid: kid, Parent: parent, Pad: style.Area{Top: 10, Right: 10, Bottom: 10, Left: 10}})
	if err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	if kid.Pos.X != 10 || kid.Pos.Y != 10 {
		t.Errorf("kid pos: %+v", kid.Pos)
	}
	if parent.Size.Width < 100 {
		t.Errorf("parent width: %v", parent.Size.Width)
	}
}

func TestBetweenCentersBox(t *testing.T) {
	a := box(0, 0, 20, 20)
	left, right := box(0, 0, 40, 40), box(160, 0, 40, 40)
	s := layout.NewSolver()
	s.Add(&layout.Between{A: a, Others: []*layout.Box{left, right}})
	if err := s.Solve(); err != nil {
		t.Fatal(err)
	}
	if got := a.Pos.X + a.Size.Width/2; got != 100 {
		t.Errorf("center x: %v", got)
	}
}

func TestContradictionHitsIterationBudget(t *testing.T) {
	a, b := box(0, 0, 40, 40), box(0, 0, 40, 40)
	s := layout.NewSolver()
	s.Add(&layout.MinHDist{Pair: layout.Pair{A: a, B: b}, Dist: 10})
	s.Add(&layout.MinHDist{Pair: layout.Pair{A: b, B: a}, Dist: 10})
	err := s.Solve()
	var uerr *layout.UnsolvableError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnsolvableError, got %v", err)
	}
}
