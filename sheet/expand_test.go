package sheet

import (
	"testing"

	"xlstyle/style"
)

func lineOf(k style.LineKind) *style.EdgePatch {
	return &style.EdgePatch{Line: &k}
}

// sidesSet lists the sides of an expanded patch which carry a line kind equal to k.
func sidesSet(p style.BordersPatch, k style.LineKind) map[style.Side]bool {
	out := map[style.Side]bool{}
	for side, ep := range p.Edges {
		if ep != nil && ep.Line != nil && *ep.Line == k {
			out[style.Side(side)] = true
		}
	}
	return out
}

func TestPositionOf(t *testing.T) {
	rng := NewRange(Coord{Col: 2, Row: 2}, Coord{Col: 4, Row: 4})
	cases := []struct {
		c    Coord
		want position
	}{
		{Coord{Col: 2, Row: 2}, posFirstRow | posFirstCol},
		{Coord{Col: 3, Row: 3}, 0},
		{Coord{Col: 4, Row: 4}, posLastRow | posLastCol},
		{Coord{Col: 3, Row: 2}, posFirstRow},
		{Coord{Col: 4, Row: 3}, posLastCol},
	}
	for _, tc := range cases {
		if got := positionOf(rng, tc.c); got != tc.want {
			t.Errorf("positionOf(%s) = %04b, want %04b", tc.c, got, tc.want)
		}
	}
	one := NewRange(Coord{Col: 1, Row: 1}, Coord{Col: 1, Row: 1})
	if got := positionOf(one, one.From); got != posFirstRow|posLastRow|posFirstCol|posLastCol {
		t.Errorf("single cell position = %04b, want all bits", got)
	}
}

func TestExpandOutline(t *testing.T) {
	var p style.BordersPatch
	p.Pseudo[style.PseudoOutline] = lineOf(style.LineKindThick)

	cases := []struct {
		name string
		pos  position
		want []style.Side
	}{
		{"top-left", posFirstRow | posFirstCol, []style.Side{style.SideTop, style.SideLeft}},
		{"top", posFirstRow, []style.Side{style.SideTop}},
		{"bottom-right", posLastRow | posLastCol, []style.Side{style.SideBottom, style.SideRight}},
		{"interior", 0, nil},
		{"single", posFirstRow | posLastRow | posFirstCol | posLastCol,
			[]style.Side{style.SideTop, style.SideBottom, style.SideLeft, style.SideRight}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sidesSet(expandBorders(p, tc.pos), style.LineKindThick)
			if len(got) != len(tc.want) {
				t.Fatalf("sides = %v, want %v", got, tc.want)
			}
			for _, side := range tc.want {
				if !got[side] {
					t.Errorf("side %s not set", side)
				}
			}
		})
	}
}

func TestExpandInside(t *testing.T) {
	var p style.BordersPatch
	p.Pseudo[style.PseudoInside] = lineOf(style.LineKindThin)

	// interior cell gets every side, corner only the two inner ones
	if got := sidesSet(expandBorders(p, 0), style.LineKindThin); len(got) != 4 {
		t.Errorf("interior sides = %v, want all four", got)
	}
	got := sidesSet(expandBorders(p, posFirstRow|posFirstCol), style.LineKindThin)
	if len(got) != 2 || !got[style.SideRight] || !got[style.SideBottom] {
		t.Errorf("top-left sides = %v, want right and bottom", got)
	}
	all := posFirstRow | posLastRow | posFirstCol | posLastCol
	if got := sidesSet(expandBorders(p, all), style.LineKindThin); len(got) != 0 {
		t.Errorf("single cell sides = %v, want none", got)
	}
}

func TestExpandVerticalHorizontal(t *testing.T) {
	var p style.BordersPatch
	p.Pseudo[style.PseudoVertical] = lineOf(style.LineKindDashed)
	p.Pseudo[style.PseudoHorizontal] = lineOf(style.LineKindDotted)

	out := expandBorders(p, posFirstCol)
	if got := sidesSet(out, style.LineKindDashed); len(got) != 1 || !got[style.SideRight] {
		t.Errorf("vertical sides = %v, want right", got)
	}
	if got := sidesSet(out, style.LineKindDotted); len(got) != 2 || !got[style.SideTop] || !got[style.SideBottom] {
		t.Errorf("horizontal sides = %v, want top and bottom", got)
	}
}

func TestExpandPrecedence(t *testing.T) {
	var p style.BordersPatch
	p.Edges[style.SideLeft] = lineOf(style.LineKindHair)
	p.Pseudo[style.PseudoAllBorders] = lineOf(style.LineKindThin)
	p.Pseudo[style.PseudoOutline] = lineOf(style.LineKindThick)
	p.Pseudo[style.PseudoInside] = lineOf(style.LineKindMedium)
	p.Pseudo[style.PseudoVertical] = lineOf(style.LineKindDouble)

	// top-middle cell of a wide selection
	out := expandBorders(p, posFirstRow)
	want := map[style.Side]style.LineKind{
		style.SideTop:    style.LineKindThick,
		style.SideBottom: style.LineKindMedium,
		style.SideLeft:   style.LineKindDouble,
		style.SideRight:  style.LineKindDouble,
	}
	for side, k := range want {
		ep := out.Edges[side]
		if ep == nil || ep.Line == nil || *ep.Line != k {
			t.Errorf("%s = %v, want %s", side, ep, k)
		}
	}
}

func TestExpandComposesFields(t *testing.T) {
	red, err := style.RGB("FF0000")
	if err != nil {
		t.Fatal(err)
	}
	var p style.BordersPatch
	p.Pseudo[style.PseudoAllBorders] = &style.EdgePatch{Color: &red}
	p.Pseudo[style.PseudoOutline] = lineOf(style.LineKindThick)

	ep := expandBorders(p, posFirstRow).Edges[style.SideTop]
	if ep == nil || ep.Line == nil || *ep.Line != style.LineKindThick || ep.Color == nil || *ep.Color != red {
		t.Errorf("top = %+v, want thick red", ep)
	}
	if *p.Pseudo[style.PseudoAllBorders] != (style.EdgePatch{Color: &red}) {
		t.Error("input patch was modified")
	}
}

func TestExpandLeavesDiagonalAlone(t *testing.T) {
	up := style.DiagonalDirectionUp
	var p style.BordersPatch
	p.Edges[style.SideDiagonal] = lineOf(style.LineKindMedium)
	p.DiagonalDirection = &up
	p.Pseudo[style.PseudoAllBorders] = lineOf(style.LineKindThin)
	p.Pseudo[style.PseudoOutline] = lineOf(style.LineKindThick)

	out := expandBorders(p, posFirstRow|posLastRow|posFirstCol|posLastCol)
	if out.Edges[style.SideDiagonal] != p.Edges[style.SideDiagonal] {
		t.Error("diagonal edge changed")
	}
	if out.DiagonalDirection == nil || *out.DiagonalDirection != up {
		t.Errorf("direction = %v, want up", out.DiagonalDirection)
	}
	if out.HasRangeEdges() || out.Pseudo != [5]*style.EdgePatch{} {
		t.Error("expanded patch still carries pseudo-edges")
	}
}
