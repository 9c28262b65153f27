package style

//go:generate go tool go-enum --marshal --names --nocase

// Border line drawing kind.
// ENUM(none, thin, medium, dashed, dotted, thick, double, hair, mediumDashed, dashDot, mediumDashDot, dashDotDot, mediumDashDotDot, slantDashDot)
type LineKind int

// Which diagonals of a cell are drawn with the diagonal edge.
// ENUM(none, up, down, both)
type DiagonalDirection int

func (d DiagonalDirection) Up() bool {
	return d == DiagonalDirectionUp || d == DiagonalDirectionBoth
}

func (d DiagonalDirection) Down() bool {
	return d == DiagonalDirectionDown || d == DiagonalDirectionBoth
}

// Font underline kind.
// ENUM(none, single, double, singleAccounting, doubleAccounting)
type Underline int

// Cell fill pattern.
// ENUM(none, solid, gray125, gray0625, darkGray, mediumGray, lightGray)
type FillPattern int

// Horizontal alignment of cell content.
// ENUM(general, left, center, right, fill, justify, centerContinuous, distributed)
type HorizontalAlignment int

// Vertical alignment of cell content.
// ENUM(bottom, top, center, justify, distributed)
type VerticalAlignment int
