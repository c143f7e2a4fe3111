package layout

import (
	"piuml/internal/style"
)

// Box is the solver variable: a mutable rectangle with the spacing and
// compartment data the constraints read. One box exists per element,
// plus one for the diagram canvas itself.
type Box struct {
	ID      string     `json:"id"`
	Pos     style.Pos  `json:"pos"`
	Size    style.Size `json:"size"`
	MinSize style.Size `json:"min_size"`
	Margin  style.Area `json:"margin"`
	Padding style.Area `json:"padding"`
	// Compartments holds the height of each compartment, head first.
	Compartments []float64 `json:"compartments"`
}

func (b *Box) right() float64  { return b.Pos.X + b.Size.Width }
func (b *Box) bottom() float64 { return b.Pos.Y + b.Size.Height }
func (b *Box) centerX() float64 { return b.Pos.X + b.Size.Width/2 }
func (b *Box) middleY() float64 { return b.Pos.Y + b.Size.Height/2 }
