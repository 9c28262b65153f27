package sheet

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"xlstyle/style"
)

// Worksheet maps cells to style indexes of its workbook. Cells absent from the
// map use the default style.
type Worksheet struct {
	wb    *Workbook
	name  string
	cells map[Coord]int
	log   *zap.Logger
}

func (ws *Worksheet) Name() string { return ws.name }

func (ws *Worksheet) Workbook() *Workbook { return ws.wb }

// StyleIndex returns the style index of cell c.
func (ws *Worksheet) StyleIndex(c Coord) int {
	return ws.cells[c]
}

// CellStyle returns the shared concrete style of cell c.
func (ws *Worksheet) CellStyle(c Coord) style.Style {
	s, ok := ws.wb.styles.Lookup(ws.cells[c])
	if !ok {
		// this should never happen, indexes come from the registry
		panic(fmt.Sprintf("cell %s references unknown style %d", c, ws.cells[c]))
	}
	return s
}

func (ws *Worksheet) setIndex(c Coord, idx int) {
	if idx == 0 {
		delete(ws.cells, c)
		return
	}
	ws.cells[c] = idx
}

// StyledCells returns every cell with a non-default style in row-major order.
func (ws *Worksheet) StyledCells() []Coord {
	out := make([]Coord, 0, len(ws.cells))
	for c := range ws.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

// Selection binds a range reference on this worksheet into an explicit
// selection value. The reference may be qualified with a sheet name
// ("Data!A1:B2", "'My Sheet'!B2"), which has to name this worksheet.
func (ws *Worksheet) Selection(ref string) (Selection, error) {
	if i := strings.LastIndexByte(ref, '!'); i >= 0 {
		if name := unquoteSheetName(ref[:i]); !strings.EqualFold(name, ws.name) {
			return Selection{}, fmt.Errorf("%w: reference %q points to another worksheet", style.ErrConfiguration, ref)
		}
		ref = ref[i+1:]
	}
	rng, err := ParseRange(ref)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Sheet: ws, Range: rng}, nil
}

func unquoteSheetName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= 2 && name[0] == '\'' && name[len(name)-1] == '\'' {
		name = strings.ReplaceAll(name[1:len(name)-1], "''", "'")
	}
	return name
}

// Style returns the selection-bound style view for ref.
func (ws *Worksheet) Style(ref string) (*SelectionStyle, error) {
	sel, err := ws.Selection(ref)
	if err != nil {
		return nil, err
	}
	return NewSelectionStyle(sel)
}

func (ws *Worksheet) checkRange(rng Range) error {
	if !rng.From.valid() || !rng.To.valid() {
		return fmt.Errorf("%w: range %s is outside of worksheet bounds", style.ErrConfiguration, rng)
	}
	if limit := ws.wb.opts.MaxSelectionCells; rng.Size() > limit {
		return fmt.Errorf("%w: selection %s has %d cells, limit is %d", style.ErrConfiguration, rng, rng.Size(), limit)
	}
	return nil
}

// AssignStyle points every cell of rng at an already registered style.
func (ws *Worksheet) AssignStyle(rng Range, idx int) error {
	if err := ws.checkRange(rng); err != nil {
		return err
	}
	if _, ok := ws.wb.styles.Lookup(idx); !ok {
		return fmt.Errorf("%w: style index %d is not registered in this workbook", style.ErrConfiguration, idx)
	}
	for c := range rng.Cells() {
		ws.setIndex(c, idx)
	}
	return nil
}

type memoKey struct {
	old int
	pos position
}

// ApplyStyle applies a style configuration to every cell of rng. Border
// shorthands are expanded per cell position; each resulting value is
// registered and the cell re-pointed at its index.
//
// The configuration is validated before any cell is touched.
func (ws *Worksheet) ApplyStyle(rng Range, cfg any) error {
	if err := ws.checkRange(rng); err != nil {
		return err
	}
	p, err := style.ParseStylePatch(cfg)
	if err != nil {
		return err
	}
	if p.IsZero() {
		return nil
	}

	positional := p.Borders != nil && p.Borders.HasRangeEdges()
	memo := make(map[memoKey]int)
	before := ws.wb.styles.Len()

	for c := range rng.Cells() {
		key := memoKey{old: ws.cells[c]}
		if positional {
			// otherwise every cell expands the same way
			key.pos = positionOf(rng, c)
		}
		if idx, ok := memo[key]; ok {
			ws.setIndex(c, idx)
			continue
		}

		cellPatch := p
		if p.Borders != nil {
			cellPatch = p.WithBorders(expandBorders(*p.Borders, key.pos))
		}
		next, err := ws.CellStyle(c).Apply(cellPatch)
		if err != nil {
			return fmt.Errorf("unable to style cell %s: %w", c, err)
		}
		idx := ws.wb.styles.Register(next)
		memo[key] = idx
		ws.setIndex(c, idx)
	}

	ws.log.Debug("Styled selection",
		zap.Stringer("range", rng),
		zap.Int("cells", rng.Size()),
		zap.Int("variants", len(memo)),
		zap.Int("new styles", ws.wb.styles.Len()-before))
	return nil
}
