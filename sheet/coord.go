package sheet

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet/reference"

	"xlstyle/style"
)

// Worksheet limits of the xlsx format.
const (
	MaxColumns = 16384
	MaxRows    = 1048576
)

// Coord addresses one cell. Both Col and Row are 1-based, so A1 is {1, 1}.
type Coord struct {
	Col int
	Row int
}

func (c Coord) String() string {
	if c.Col < 1 || c.Row < 1 {
		return fmt.Sprintf("R%dC%d", c.Row, c.Col)
	}
	return reference.IndexToColumn(uint32(c.Col-1)) + strconv.Itoa(c.Row)
}

func (c Coord) valid() bool {
	return c.Col >= 1 && c.Col <= MaxColumns && c.Row >= 1 && c.Row <= MaxRows
}

// ParseCoord parses an A1 style cell reference, '$' markers are ignored.
func ParseCoord(ref string) (Coord, error) {
	cr, err := reference.ParseCellReference(strings.ToUpper(strings.TrimSpace(ref)))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: bad cell reference %q: %w", style.ErrConfiguration, ref, err)
	}
	c := Coord{Col: int(cr.ColumnIdx) + 1, Row: int(cr.RowIdx)}
	if !c.valid() {
		return Coord{}, fmt.Errorf("%w: cell reference %q is outside of worksheet bounds", style.ErrConfiguration, ref)
	}
	return c, nil
}

// Range is a rectangular block of cells. From is always the top-left corner
// and To the bottom-right one.
type Range struct {
	From Coord
	To   Coord
}

// NewRange builds a normalized range from any two opposite corners.
func NewRange(a, b Coord) Range {
	return Range{
		From: Coord{Col: min(a.Col, b.Col), Row: min(a.Row, b.Row)},
		To:   Coord{Col: max(a.Col, b.Col), Row: max(a.Row, b.Row)},
	}
}

// ParseRange parses "B2" or "B2:D5". Corners may be given in any order.
func ParseRange(ref string) (Range, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if !strings.Contains(ref, ":") {
		c, err := ParseCoord(ref)
		if err != nil {
			return Range{}, err
		}
		return Range{From: c, To: c}, nil
	}
	from, to, err := reference.ParseRangeReference(ref)
	if err != nil {
		return Range{}, fmt.Errorf("%w: bad range reference %q: %w", style.ErrConfiguration, ref, err)
	}
	a := Coord{Col: int(from.ColumnIdx) + 1, Row: int(from.RowIdx)}
	b := Coord{Col: int(to.ColumnIdx) + 1, Row: int(to.RowIdx)}
	if !a.valid() || !b.valid() {
		return Range{}, fmt.Errorf("%w: range reference %q is outside of worksheet bounds", style.ErrConfiguration, ref)
	}
	return NewRange(a, b), nil
}

func (r Range) Rows() int { return r.To.Row - r.From.Row + 1 }
func (r Range) Cols() int { return r.To.Col - r.From.Col + 1 }
func (r Range) Size() int { return r.Rows() * r.Cols() }

func (r Range) Contains(c Coord) bool {
	return c.Col >= r.From.Col && c.Col <= r.To.Col && c.Row >= r.From.Row && c.Row <= r.To.Row
}

func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return r.From.String() + ":" + r.To.String()
}

// Cells yields every cell of the range in row-major order.
func (r Range) Cells() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for row := r.From.Row; row <= r.To.Row; row++ {
			for col := r.From.Col; col <= r.To.Col; col++ {
				if !yield(Coord{Col: col, Row: row}) {
					return
				}
			}
		}
	}
}
