package sheet

import "xlstyle/style"

// position records where a cell sits inside a selection. The expander only
// cares about the perimeter, so this is all the context it needs.
type position uint8

const (
	posFirstRow position = 1 << iota
	posLastRow
	posFirstCol
	posLastCol
)

func positionOf(rng Range, c Coord) position {
	var p position
	if c.Row == rng.From.Row {
		p |= posFirstRow
	}
	if c.Row == rng.To.Row {
		p |= posLastRow
	}
	if c.Col == rng.From.Col {
		p |= posFirstCol
	}
	if c.Col == rng.To.Col {
		p |= posLastCol
	}
	return p
}

func (p position) has(f position) bool { return p&f != 0 }

// compose returns the patch equivalent to applying a, then b.
func compose(a, b *style.EdgePatch) *style.EdgePatch {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := *a
	if b.Line != nil {
		out.Line = b.Line
	}
	if b.Color != nil {
		out.Color = b.Color
	}
	return &out
}

// expandBorders turns a selection-level borders patch into the patch for one
// cell at position pos. The result holds stored edges only.
//
// Layers, later ones winning: explicit edges, allBorders, outline, inside,
// vertical and horizontal. The diagonal edge and direction are passed through
// untouched.
func expandBorders(p style.BordersPatch, pos position) style.BordersPatch {
	out := style.BordersPatch{
		Edges:             p.Edges,
		DiagonalDirection: p.DiagonalDirection,
	}
	layer := func(ep *style.EdgePatch, sides ...style.Side) {
		if ep == nil {
			return
		}
		for _, side := range sides {
			out.Edges[side] = compose(out.Edges[side], ep)
		}
	}

	layer(p.Pseudo[style.PseudoAllBorders], style.SideLeft, style.SideRight, style.SideTop, style.SideBottom)

	if ep := p.Pseudo[style.PseudoOutline]; ep != nil {
		if pos.has(posFirstRow) {
			layer(ep, style.SideTop)
		}
		if pos.has(posLastRow) {
			layer(ep, style.SideBottom)
		}
		if pos.has(posFirstCol) {
			layer(ep, style.SideLeft)
		}
		if pos.has(posLastCol) {
			layer(ep, style.SideRight)
		}
	}

	vertical := func(ep *style.EdgePatch) {
		if ep == nil {
			return
		}
		if !pos.has(posFirstCol) {
			layer(ep, style.SideLeft)
		}
		if !pos.has(posLastCol) {
			layer(ep, style.SideRight)
		}
	}
	horizontal := func(ep *style.EdgePatch) {
		if ep == nil {
			return
		}
		if !pos.has(posFirstRow) {
			layer(ep, style.SideTop)
		}
		if !pos.has(posLastRow) {
			layer(ep, style.SideBottom)
		}
	}

	vertical(p.Pseudo[style.PseudoInside])
	horizontal(p.Pseudo[style.PseudoInside])
	vertical(p.Pseudo[style.PseudoVertical])
	horizontal(p.Pseudo[style.PseudoHorizontal])

	return out
}
