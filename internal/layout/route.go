package layout

import (
	"piuml/internal/style"
)

// route connects two solved boxes. When the boxes overlap on an axis
// the line runs straight through the shared band; otherwise a single
// orthogonal dogleg joins them.
func route(t, h *Box) []style.Pos {
	if t == nil || h == nil {
		return nil
	}

	// vertical line through the shared horizontal band
	ox1, ox2 := max(t.Pos.X, h.Pos.X), min(t.right(), h.right())
	if ox1 <= ox2 {
		x := (ox1 + ox2) / 2
		switch {
		case t.bottom() <= h.Pos.Y:
			return []style.Pos{{X: x, Y: t.bottom()}, {X: x, Y: h.Pos.Y}}
		case h.bottom() <= t.Pos.Y:
			return []style.Pos{{X: x, Y: t.Pos.Y}, {X: x, Y: h.bottom()}}
		default:
			// overlapping boxes, draw center to center
			return []style.Pos{
				{X: t.centerX(), Y: t.middleY()},
				{X: h.centerX(), Y: h.middleY()},
			}
		}
	}

	// horizontal line through the shared vertical band
	oy1, oy2 := max(t.Pos.Y, h.Pos.Y), min(t.bottom(), h.bottom())
	if oy1 <= oy2 {
		y := (oy1 + oy2) / 2
		if t.right() <= h.Pos.X {
			return []style.Pos{{X: t.right(), Y: y}, {X: h.Pos.X, Y: y}}
		}
		return []style.Pos{{X: t.Pos.X, Y: y}, {X: h.right(), Y: y}}
	}

	// diagonal neighbours take an L through the head's column
	start := style.Pos{X: t.right(), Y: t.middleY()}
	if h.centerX() < t.Pos.X {
		start.X = t.Pos.X
	}
	end := style.Pos{X: h.centerX(), Y: h.Pos.Y}
	if h.Pos.Y < t.middleY() {
		end.Y = h.bottom()
	}
	return []style.Pos{start, {X: h.centerX(), Y: t.middleY()}, end}
}
