package sheet

import (
	"fmt"

	"xlstyle/style"
)

// StyleView is the read/write capability shared by a concrete style and a
// selection-bound one.
type StyleView interface {
	// Style returns the concrete value the view currently represents.
	Style() style.Style
	Borders() BordersView
	ApplyFromConfig(cfg any) error
	Hash() style.Digest
}

// BordersView is the borders category of a StyleView.
type BordersView interface {
	Value() style.Borders
	Edge(side style.Side) style.Edge
	DiagonalDirection() style.DiagonalDirection
	SetDiagonalDirection(v any) error
	ApplyFromConfig(cfg any) error
	Hash() style.Digest

	Left() EdgeTarget
	Right() EdgeTarget
	Top() EdgeTarget
	Bottom() EdgeTarget
	Diagonal() EdgeTarget

	// Shorthands. Only selection-bound views have them, concrete views
	// return style.ErrInvalidOperation.
	AllBorders() (EdgeTarget, error)
	Outline() (EdgeTarget, error)
	Inside() (EdgeTarget, error)
	Vertical() (EdgeTarget, error)
	Horizontal() (EdgeTarget, error)
}

// EdgeTarget accepts edge patches. The owning borders view wraps them into a
// full borders patch, edges never know where they live.
type EdgeTarget interface {
	ApplyFromConfig(cfg any) error
	SetLineKind(k style.LineKind) error
	SetColor(c style.Color) error
}

type edgeTarget struct {
	apply func(style.EdgePatch) error
}

func (t edgeTarget) ApplyFromConfig(cfg any) error {
	p, err := style.ParseEdgePatch(cfg)
	if err != nil {
		return err
	}
	return t.apply(p)
}

func (t edgeTarget) SetLineKind(k style.LineKind) error {
	if !k.IsValid() {
		return fmt.Errorf("%w: line kind %d is out of range", style.ErrConfiguration, int(k))
	}
	return t.apply(style.EdgePatch{Line: &k})
}

func (t edgeTarget) SetColor(c style.Color) error {
	return t.apply(style.EdgePatch{Color: &c})
}

func sideTarget(apply func(style.BordersPatch) error, side style.Side) EdgeTarget {
	return edgeTarget{apply: func(ep style.EdgePatch) error {
		var bp style.BordersPatch
		bp.Edges[side] = &ep
		return apply(bp)
	}}
}

func pseudoTarget(apply func(style.BordersPatch) error, pe style.PseudoEdge) EdgeTarget {
	return edgeTarget{apply: func(ep style.EdgePatch) error {
		var bp style.BordersPatch
		bp.Pseudo[pe] = &ep
		return apply(bp)
	}}
}

// ConcreteStyle owns one concrete style value. Every change builds a new
// value and registers it, Index follows the latest value.
type ConcreteStyle struct {
	reg   *style.Registry[style.Style]
	value style.Style
	index int
}

// NewConcreteStyle registers v and wraps it.
func NewConcreteStyle(reg *style.Registry[style.Style], v style.Style) *ConcreteStyle {
	return &ConcreteStyle{reg: reg, value: v, index: reg.Register(v)}
}

func (cs *ConcreteStyle) Style() style.Style { return cs.value }

// Index is the registry index of the current value.
func (cs *ConcreteStyle) Index() int { return cs.index }

func (cs *ConcreteStyle) Hash() style.Digest { return cs.value.Hash() }

func (cs *ConcreteStyle) ApplyFromConfig(cfg any) error {
	p, err := style.ParseStylePatch(cfg)
	if err != nil {
		return err
	}
	return cs.apply(p)
}

func (cs *ConcreteStyle) apply(p style.StylePatch) error {
	next, err := cs.value.Apply(p)
	if err != nil {
		return err
	}
	cs.value, cs.index = next, cs.reg.Register(next)
	return nil
}

func (cs *ConcreteStyle) Borders() BordersView {
	return &ConcreteBorders{owner: cs}
}

// ConcreteBorders is the borders category of a ConcreteStyle.
type ConcreteBorders struct {
	owner *ConcreteStyle
}

func (cb *ConcreteBorders) Value() style.Borders { return cb.owner.value.Borders }

func (cb *ConcreteBorders) Edge(side style.Side) style.Edge { return cb.owner.value.Borders.Edge(side) }

func (cb *ConcreteBorders) DiagonalDirection() style.DiagonalDirection {
	return cb.owner.value.Borders.DiagonalDirection
}

func (cb *ConcreteBorders) Hash() style.Digest { return cb.owner.value.Borders.Hash() }

func (cb *ConcreteBorders) applyPatch(bp style.BordersPatch) error {
	return cb.owner.apply(style.StylePatch{Borders: &bp})
}

func (cb *ConcreteBorders) ApplyFromConfig(cfg any) error {
	bp, err := style.ParseBordersPatch(cfg)
	if err != nil {
		return err
	}
	return cb.applyPatch(bp)
}

func (cb *ConcreteBorders) SetDiagonalDirection(v any) error {
	d, err := style.CoerceDiagonalDirection(v)
	if err != nil {
		return err
	}
	return cb.applyPatch(style.BordersPatch{DiagonalDirection: &d})
}

func (cb *ConcreteBorders) Left() EdgeTarget     { return sideTarget(cb.applyPatch, style.SideLeft) }
func (cb *ConcreteBorders) Right() EdgeTarget    { return sideTarget(cb.applyPatch, style.SideRight) }
func (cb *ConcreteBorders) Top() EdgeTarget      { return sideTarget(cb.applyPatch, style.SideTop) }
func (cb *ConcreteBorders) Bottom() EdgeTarget   { return sideTarget(cb.applyPatch, style.SideBottom) }
func (cb *ConcreteBorders) Diagonal() EdgeTarget { return sideTarget(cb.applyPatch, style.SideDiagonal) }

func pseudoOnConcrete(pe style.PseudoEdge) error {
	return fmt.Errorf("%w: %s pseudo-border is only available on a selection", style.ErrInvalidOperation, pe)
}

func (cb *ConcreteBorders) AllBorders() (EdgeTarget, error) {
	return nil, pseudoOnConcrete(style.PseudoAllBorders)
}
func (cb *ConcreteBorders) Outline() (EdgeTarget, error) { return nil, pseudoOnConcrete(style.PseudoOutline) }
func (cb *ConcreteBorders) Inside() (EdgeTarget, error)  { return nil, pseudoOnConcrete(style.PseudoInside) }
func (cb *ConcreteBorders) Vertical() (EdgeTarget, error) {
	return nil, pseudoOnConcrete(style.PseudoVertical)
}
func (cb *ConcreteBorders) Horizontal() (EdgeTarget, error) {
	return nil, pseudoOnConcrete(style.PseudoHorizontal)
}

// SelectionStyle represents "the style of a selection". It holds no style data:
// reads resolve through the selection anchor's shared style, writes are applied
// to every cell of the selection.
type SelectionStyle struct {
	sel Selection
}

// NewSelectionStyle binds a view to sel.
func NewSelectionStyle(sel Selection) (*SelectionStyle, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}
	return &SelectionStyle{sel: sel}, nil
}

func (ss *SelectionStyle) Selection() Selection { return ss.sel }

// Style is a snapshot of the anchor cell's shared style.
func (ss *SelectionStyle) Style() style.Style {
	return ss.sel.Sheet.CellStyle(ss.sel.Anchor())
}

// Hash delegates to the anchor's concrete style, the view has no identity of
// its own.
func (ss *SelectionStyle) Hash() style.Digest { return ss.Style().Hash() }

func (ss *SelectionStyle) ApplyFromConfig(cfg any) error {
	return ss.sel.Apply(cfg)
}

func (ss *SelectionStyle) Borders() BordersView {
	return &SelectionBorders{sel: ss.sel}
}

// SelectionBorders is the borders category of a SelectionStyle.
type SelectionBorders struct {
	sel Selection
}

func (sb *SelectionBorders) Value() style.Borders {
	return sb.sel.Sheet.CellStyle(sb.sel.Anchor()).Borders
}

func (sb *SelectionBorders) Edge(side style.Side) style.Edge { return sb.Value().Edge(side) }

func (sb *SelectionBorders) DiagonalDirection() style.DiagonalDirection {
	return sb.Value().DiagonalDirection
}

func (sb *SelectionBorders) Hash() style.Digest { return sb.Value().Hash() }

func (sb *SelectionBorders) applyPatch(bp style.BordersPatch) error {
	return sb.sel.Apply(style.StylePatch{Borders: &bp})
}

func (sb *SelectionBorders) ApplyFromConfig(cfg any) error {
	bp, err := style.ParseBordersPatch(cfg)
	if err != nil {
		return err
	}
	return sb.applyPatch(bp)
}

func (sb *SelectionBorders) SetDiagonalDirection(v any) error {
	d, err := style.CoerceDiagonalDirection(v)
	if err != nil {
		return err
	}
	return sb.applyPatch(style.BordersPatch{DiagonalDirection: &d})
}

func (sb *SelectionBorders) Left() EdgeTarget     { return sideTarget(sb.applyPatch, style.SideLeft) }
func (sb *SelectionBorders) Right() EdgeTarget    { return sideTarget(sb.applyPatch, style.SideRight) }
func (sb *SelectionBorders) Top() EdgeTarget      { return sideTarget(sb.applyPatch, style.SideTop) }
func (sb *SelectionBorders) Bottom() EdgeTarget   { return sideTarget(sb.applyPatch, style.SideBottom) }
func (sb *SelectionBorders) Diagonal() EdgeTarget { return sideTarget(sb.applyPatch, style.SideDiagonal) }

func (sb *SelectionBorders) AllBorders() (EdgeTarget, error) {
	return pseudoTarget(sb.applyPatch, style.PseudoAllBorders), nil
}
func (sb *SelectionBorders) Outline() (EdgeTarget, error) {
	return pseudoTarget(sb.applyPatch, style.PseudoOutline), nil
}
func (sb *SelectionBorders) Inside() (EdgeTarget, error) {
	return pseudoTarget(sb.applyPatch, style.PseudoInside), nil
}
func (sb *SelectionBorders) Vertical() (EdgeTarget, error) {
	return pseudoTarget(sb.applyPatch, style.PseudoVertical), nil
}
func (sb *SelectionBorders) Horizontal() (EdgeTarget, error) {
	return pseudoTarget(sb.applyPatch, style.PseudoHorizontal), nil
}

var (
	_ StyleView   = (*ConcreteStyle)(nil)
	_ StyleView   = (*SelectionStyle)(nil)
	_ BordersView = (*ConcreteBorders)(nil)
	_ BordersView = (*SelectionBorders)(nil)
)
