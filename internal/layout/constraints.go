package layout

import (
	"sort"

	"piuml/internal/style"
)

// MinSize keeps a box at least as large as its intrinsic minimum.
// Boxes enter the solver pre-seeded at that minimum, so this only
// fires on a dimension some other constraint left too small.
type MinSize struct {
	R *Box
}

func (c *MinSize) Vars() []*Box { return []*Box{c.R} }

func (c *MinSize) Solve() []*Box {
	var changed []*Box
	if c.R.Size.Width < c.R.MinSize.Width {
		c.R.Size.Width = c.R.MinSize.Width
		changed = []*Box{c.R}
	}
	if c.R.Size.Height < c.R.MinSize.Height {
		c.R.Size.Height = c.R.MinSize.Height
		changed = []*Box{c.R}
	}
	return changed
}

// Pair is the shared variable holder for two-box constraints.
type Pair struct {
	A, B *Box
}

func (c *Pair) Vars() []*Box { return []*Box{c.A, c.B} }

// TopEq keeps the top edges of two boxes at the same position.
type TopEq struct{ Pair }

func (c *TopEq) Solve() []*Box {
	switch {
	case c.A.Pos.Y < c.B.Pos.Y:
		c.A.Pos.Y = c.B.Pos.Y
		return []*Box{c.A}
	case c.A.Pos.Y > c.B.Pos.Y:
		c.B.Pos.Y = c.A.Pos.Y
		return []*Box{c.B}
	}
	return nil
}

// BottomEq keeps the bottom edges of two boxes at the same position.
type BottomEq struct{ Pair }

func (c *BottomEq) Solve() []*Box {
	switch {
	case c.A.bottom() < c.B.bottom():
		c.A.Pos.Y = c.B.bottom() - c.A.Size.Height
		return []*Box{c.A}
	case c.A.bottom() > c.B.bottom():
		c.B.Pos.Y = c.A.bottom() - c.B.Size.Height
		return []*Box{c.B}
	}
	return nil
}

// LeftEq keeps the left edges of two boxes at the same position.
type LeftEq struct{ Pair }

func (c *LeftEq) Solve() []*Box {
	switch {
	case c.A.Pos.X < c.B.Pos.X:
		c.A.Pos.X = c.B.Pos.X
		return []*Box{c.A}
	case c.A.Pos.X > c.B.Pos.X:
		c.B.Pos.X = c.A.Pos.X
		return []*Box{c.B}
	}
	return nil
}

// RightEq keeps the right edges of two boxes at the same position.
type RightEq struct{ Pair }

func (c *RightEq) Solve() []*Box {
	switch {
	case c.A.right() < c.B.right():
		c.A.Pos.X = c.B.right() - c.A.Size.Width
		return []*Box{c.A}
	case c.A.right() > c.B.right():
		c.B.Pos.X = c.A.right() - c.B.Size.Width
		return []*Box{c.B}
	}
	return nil
}

// CenterEq keeps the horizontal centers of two boxes aligned, moving
// whichever box has the lesser center.
type CenterEq struct{ Pair }

func (c *CenterEq) Solve() []*Box {
	v1, v2 := c.A.centerX(), c.B.centerX()
	switch {
	case v1 > v2:
		c.B.Pos.X = v1 - c.B.Size.Width/2
		return []*Box{c.B}
	case v2 > v1:
		c.A.Pos.X = v2 - c.A.Size.Width/2
		return []*Box{c.A}
	}
	return nil
}

// MiddleEq keeps the vertical centers of two boxes aligned.
type MiddleEq struct{ Pair }

func (c *MiddleEq) Solve() []*Box {
	v1, v2 := c.A.middleY(), c.B.middleY()
	switch {
	case v1 > v2:
		c.B.Pos.Y = v1 - c.B.Size.Height/2
		return []*Box{c.B}
	case v2 > v1:
		c.A.Pos.Y = v2 - c.A.Size.Height/2
		return []*Box{c.A}
	}
	return nil
}

// MinHDist pushes B to the right until the horizontal gap from A is at
// least Dist.
type MinHDist struct {
	Pair
	Dist float64
}

func (c *MinHDist) Solve() []*Box {
	if c.A.right()+c.Dist > c.B.Pos.X {
		c.B.Pos.X = c.A.right() + c.Dist
		return []*Box{c.B}
	}
	return nil
}

// MinVDist pushes B down until the vertical gap from A is at least
// Dist.
type MinVDist struct {
	Pair
	Dist float64
}

func (c *MinVDist) Solve() []*Box {
	if c.A.bottom()+c.Dist > c.B.Pos.Y {
		c.B.Pos.Y = c.A.bottom() + c.Dist
		return []*Box{c.B}
	}
	return nil
}

// Within keeps Kid inside Parent with the given padding, growing the
// parent when the kid does not fit.
type Within struct {
	Kid, Parent *Box
	Pad         style.Area
}

func (c *Within) Vars() []*Box { return []*Box{c.Kid, c.Parent} }

func (c *Within) Solve() []*Box {
	p, k, pad := c.Parent, c.Kid, c.Pad
	var changed []*Box
	if p.Pos.X+pad.Left > k.Pos.X {
		k.Pos.X = p.Pos.X + pad.Left
		changed = append(changed, k)
	}
	if k.right()+pad.Right > p.right() {
		p.Size.Width = k.right() + pad.Right - p.Pos.X
		changed = append(changed, p)
	}
	if p.Pos.Y+pad.Top > k.Pos.Y {
		k.Pos.Y = p.Pos.Y + pad.Top
		if len(changed) == 0 || changed[len(changed)-1] != k {
			changed = append(changed, k)
		}
	}
	if k.bottom()+pad.Bottom > p.bottom() {
		p.Size.Height = k.bottom() + pad.Bottom - p.Pos.Y
		if len(changed) == 0 || changed[len(changed)-1] != p {
			changed = append(changed, p)
		}
	}
	return changed
}

// Between centers a box amid the bounding span of the other boxes.
type Between struct {
	A      *Box
	Others []*Box
}

func (c *Between) Vars() []*Box {
	return append([]*Box{c.A}, c.Others...)
}

func (c *Between) Solve() []*Box {
	rects := make([]*Box, len(c.Others))
	copy(rects, c.Others)

	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].right() < rects[j].Pos.X
	})
	minx, maxx := rects[0], rects[len(rects)-1]

	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].bottom() < rects[j].Pos.Y
	})
	miny, maxy := rects[0], rects[len(rects)-1]

	x := (minx.Pos.X + minx.Size.Width + maxx.Pos.X) / 2
	y := (miny.Pos.Y + miny.Size.Height + maxy.Pos.Y) / 2
	c.A.Pos.X = x - c.A.Size.Width/2
	c.A.Pos.Y = y - c.A.Size.Height/2
	return nil
}
