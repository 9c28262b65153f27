package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Side names one stored edge of a border set.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	SideDiagonal
)

var sideNames = [...]string{"left", "right", "top", "bottom", "diagonal"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return "Side(" + strconv.Itoa(int(s)) + ")"
	}
	return sideNames[s]
}

// PseudoEdge is a configuration shorthand which expands into several concrete
// edges. Pseudo-edges are never stored.
type PseudoEdge int

const (
	PseudoAllBorders PseudoEdge = iota
	PseudoOutline
	PseudoInside
	PseudoVertical
	PseudoHorizontal
)

var pseudoNames = [...]string{"allBorders", "outline", "inside", "vertical", "horizontal"}

func (p PseudoEdge) String() string {
	if p < 0 || int(p) >= len(pseudoNames) {
		return "PseudoEdge(" + strconv.Itoa(int(p)) + ")"
	}
	return pseudoNames[p]
}

// Borders is the border set of a cell: four sides, the diagonal and which
// diagonals are drawn.
type Borders struct {
	Left              Edge
	Right             Edge
	Top               Edge
	Bottom            Edge
	Diagonal          Edge
	DiagonalDirection DiagonalDirection
}

func DefaultBorders() Borders {
	e := DefaultEdge()
	return Borders{Left: e, Right: e, Top: e, Bottom: e, Diagonal: e, DiagonalDirection: DiagonalDirectionNone}
}

// Edge returns the stored edge for side.
func (b Borders) Edge(side Side) Edge {
	switch side {
	case SideLeft:
		return b.Left
	case SideRight:
		return b.Right
	case SideTop:
		return b.Top
	case SideBottom:
		return b.Bottom
	case SideDiagonal:
		return b.Diagonal
	}
	panic(fmt.Sprintf("unknown border side %d", side))
}

func (b *Borders) edge(side Side) *Edge {
	switch side {
	case SideLeft:
		return &b.Left
	case SideRight:
		return &b.Right
	case SideTop:
		return &b.Top
	case SideBottom:
		return &b.Bottom
	case SideDiagonal:
		return &b.Diagonal
	}
	panic(fmt.Sprintf("unknown border side %d", side))
}

// BordersPatch is a parsed borders configuration. Stored edges are indexed by
// Side, pseudo-edges by PseudoEdge; nil means the key was absent.
type BordersPatch struct {
	Edges             [5]*EdgePatch
	DiagonalDirection *DiagonalDirection
	Pseudo            [5]*EdgePatch
}

func (p BordersPatch) IsZero() bool {
	return p == BordersPatch{}
}

// HasRangeEdges reports whether the patch uses shorthands which depend on the
// position of a cell within a selection.
func (p BordersPatch) HasRangeEdges() bool {
	return p.Pseudo[PseudoOutline] != nil || p.Pseudo[PseudoInside] != nil ||
		p.Pseudo[PseudoVertical] != nil || p.Pseudo[PseudoHorizontal] != nil
}

// Config renders the patch back into configuration form.
func (p BordersPatch) Config() Config {
	cfg := Config{}
	for side, ep := range p.Edges {
		if ep != nil {
			cfg[sideNames[side]] = ep.Config()
		}
	}
	if p.DiagonalDirection != nil {
		cfg["diagonalDirection"] = p.DiagonalDirection.String()
	}
	for pe, ep := range p.Pseudo {
		if ep != nil {
			cfg[pseudoNames[pe]] = ep.Config()
		}
	}
	return cfg
}

// ParseBordersPatch reads a borders configuration mapping. Recognized keys are
// the five stored edges, diagonalDirection and the pseudo-edges.
func ParseBordersPatch(in any) (BordersPatch, error) {
	if p, ok := in.(BordersPatch); ok {
		return p, nil
	}
	cfg, err := asConfig(in, "borders")
	if err != nil {
		return BordersPatch{}, err
	}

	var p BordersPatch
	err = walkConfig(cfg, "borders", func(key string, val any) (bool, error) {
		if key == "diagonaldirection" {
			d, err := CoerceDiagonalDirection(val)
			if err != nil {
				return true, err
			}
			p.DiagonalDirection = &d
			return true, nil
		}
		for side, name := range sideNames {
			if key == foldKey(name) {
				ep, err := parseEdgePatch(val, "borders."+name)
				if err != nil {
					return true, err
				}
				p.Edges[side] = &ep
				return true, nil
			}
		}
		for pe, name := range pseudoNames {
			if key == foldKey(name) {
				ep, err := parseEdgePatch(val, "borders."+name)
				if err != nil {
					return true, err
				}
				p.Pseudo[pe] = &ep
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return BordersPatch{}, err
	}
	return p, nil
}

// CoerceDiagonalDirection accepts a direction name, its numeric value or an
// empty value, which means none.
func CoerceDiagonalDirection(in any) (DiagonalDirection, error) {
	switch v := in.(type) {
	case nil:
		return DiagonalDirectionNone, nil
	case DiagonalDirection:
		if !v.IsValid() {
			return DiagonalDirectionNone, configError("diagonal direction %d is out of range", int(v))
		}
		return v, nil
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return DiagonalDirectionNone, nil
		}
		if n, err := strconv.Atoi(v); err == nil {
			return CoerceDiagonalDirection(n)
		}
		d, err := ParseDiagonalDirection(v)
		if err != nil {
			return DiagonalDirectionNone, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return d, nil
	}
	n, err := asInt(in)
	if err != nil {
		return DiagonalDirectionNone, err
	}
	d := DiagonalDirection(n)
	if !d.IsValid() {
		return DiagonalDirectionNone, configError("diagonal direction %d is out of range", n)
	}
	return d, nil
}

// Apply returns a copy of b with p applied: stored edges first, then the
// diagonal direction, then allBorders over left, right, top and bottom.
// Selection-only shorthands are rejected.
func (b Borders) Apply(p BordersPatch) (Borders, error) {
	if p.HasRangeEdges() {
		return b, configError("borders: outline, inside, vertical and horizontal need a cell selection")
	}
	for side, ep := range p.Edges {
		if ep != nil {
			e := b.edge(Side(side))
			*e = e.Apply(*ep)
		}
	}
	if p.DiagonalDirection != nil {
		b.DiagonalDirection = *p.DiagonalDirection
	}
	if ep := p.Pseudo[PseudoAllBorders]; ep != nil {
		for _, side := range []Side{SideLeft, SideRight, SideTop, SideBottom} {
			e := b.edge(side)
			*e = e.Apply(*ep)
		}
	}
	return b, nil
}

// ApplyFromConfig parses cfg and applies it to a copy of b.
func (b Borders) ApplyFromConfig(cfg any) (Borders, error) {
	p, err := ParseBordersPatch(cfg)
	if err != nil {
		return b, err
	}
	return b.Apply(p)
}

// WithDiagonalDirection returns a copy of b with the direction replaced. An
// empty value is stored as none.
func (b Borders) WithDiagonalDirection(v any) (Borders, error) {
	d, err := CoerceDiagonalDirection(v)
	if err != nil {
		return b, err
	}
	b.DiagonalDirection = d
	return b, nil
}

func (b Borders) Hash() Digest {
	enc := newCanonical(schemaBorders)
	enc.digest(b.Left.Hash()).
		digest(b.Right.Hash()).
		digest(b.Top.Hash()).
		digest(b.Bottom.Hash()).
		digest(b.Diagonal.Hash()).
		int(int(b.DiagonalDirection))
	return enc.sum()
}
