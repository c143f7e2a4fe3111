package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"piuml/internal/style"
	"piuml/internal/uml"
)

// sizeBox derives the minimum size of an element box from its text
// compartments: the head (stereotypes and name) plus one compartment
// per feature group.
func sizeBox(el *uml.Element, b *Box, sheet *style.Sheet) {
	if el.Kind == uml.KFoldedIface {
		b.MinSize = sheet.IconSize
		b.Size = b.MinSize
		b.Compartments = []float64{sheet.IconSize.Height}
		return
	}

	font := sheet.Font
	pad := b.Padding

	maxW := 0.0
	measure := func(s string) {
		if w := float64(runewidth.StringWidth(s)) * font.CharWidth; w > maxW {
			maxW = w
		}
	}

	headLines := 1
	measure(el.Name)
	if len(el.Stereotypes) > 0 {
		headLines++
		measure("«" + strings.Join(el.Stereotypes, ", ") + "»")
	}
	head := pad.Top + float64(headLines)*font.LineHeight + pad.Bottom
	b.Compartments = []float64{head}

	// features grouped by stereotype tag form separate compartments
	group := ""
	lines := 0
	flush := func() {
		if lines > 0 {
			b.Compartments = append(b.Compartments,
				pad.Top+float64(lines)*font.LineHeight+pad.Bottom)
		}
		lines = 0
	}
	for i, f := range el.Features {
		if i == 0 || f.Group != group {
			flush()
			group = f.Group
			if group != "" {
				lines++ // group header line
				measure("«" + group + "»")
			}
		}
		lines++
		measure(featureText(f))
	}
	flush()

	height := 0.0
	for _, c := range b.Compartments {
		height += c
	}
	b.MinSize = style.Size{
		Width:  max(sheet.MinSize.Width, maxW+pad.Left+pad.Right),
		Height: max(sheet.MinSize.Height, height),
	}
	// seed at the minimum so the solver spends its budget on placement
	b.Size = b.MinSize
}

func featureText(f uml.Feature) string {
	if f.Raw != "" {
		return f.Raw
	}
	s := f.Name
	if f.Type != "" {
		s += ": " + f.Type
	}
	if f.Default != "" {
		s += " = " + f.Default
	}
	return s
}
