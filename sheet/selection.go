package sheet

import (
	"fmt"
	"strings"

	"xlstyle/style"
)

// Selection is an explicit (worksheet, range) handle. Selection-bound views
// resolve reads and re-target writes through it; nothing is read from shared
// "active" state.
type Selection struct {
	Sheet *Worksheet
	Range Range
}

func (s Selection) validate() error {
	if s.Sheet == nil {
		return fmt.Errorf("%w: selection %s is not bound to a worksheet", style.ErrInvalidOperation, s.Range)
	}
	return s.Sheet.checkRange(s.Range)
}

// Anchor is the representative cell reads resolve through.
func (s Selection) Anchor() Coord {
	return s.Range.From
}

// Apply styles every cell of the selection.
func (s Selection) Apply(cfg any) error {
	if err := s.validate(); err != nil {
		return err
	}
	return s.Sheet.ApplyStyle(s.Range, cfg)
}

func (s Selection) String() string {
	if s.Sheet == nil {
		return s.Range.String()
	}
	return "'" + strings.ReplaceAll(s.Sheet.name, "'", "''") + "'!" + s.Range.String()
}
