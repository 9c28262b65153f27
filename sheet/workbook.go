// Package sheet is the minimal worksheet model styles are applied to: a
// workbook owning the style registry, worksheets mapping cells to style
// indexes, explicit selections and the two flavours of style views.
package sheet

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xlstyle/style"
)

// DefaultMaxSelectionCells bounds bulk styling of a single selection.
const DefaultMaxSelectionCells = 1 << 20

// Options tune workbook behavior.
type Options struct {
	MaxSelectionCells int
	DefaultFont       style.Font
}

func WithMaxSelectionCells(n int) func(*Options) {
	return func(o *Options) {
		if n > 0 {
			o.MaxSelectionCells = n
		}
	}
}

func WithDefaultFont(name string, size float64) func(*Options) {
	return func(o *Options) {
		if name != "" {
			o.DefaultFont.Name = name
		}
		if size > 0 {
			o.DefaultFont.Size = size
		}
	}
}

// Workbook owns the worksheets and the workbook-scoped style registry. Style
// index 0 is always the default style.
type Workbook struct {
	id     uuid.UUID
	title  string
	opts   Options
	styles *style.Registry[style.Style]
	sheets []*Worksheet
	log    *zap.Logger
}

// New creates an empty workbook with its default style registered.
func New(log *zap.Logger, options ...func(*Options)) *Workbook {
	if log == nil {
		log = zap.NewNop()
	}
	opts := Options{
		MaxSelectionCells: DefaultMaxSelectionCells,
		DefaultFont:       style.DefaultFont(),
	}
	for _, setOpt := range options {
		setOpt(&opts)
	}

	wb := &Workbook{
		id:   uuid.New(),
		opts: opts,
	}
	wb.log = log.With(zap.Stringer("workbook", wb.id))
	wb.styles = style.NewRegistry[style.Style]("cellXfs", wb.log)

	def := style.Default()
	def.Font = opts.DefaultFont
	wb.styles.Register(def)
	return wb
}

func (wb *Workbook) ID() uuid.UUID { return wb.id }

func (wb *Workbook) Title() string { return wb.title }

func (wb *Workbook) SetTitle(title string) { wb.title = title }

// Styles exposes the deduplicated style table, index order is the order the
// writer emits.
func (wb *Workbook) Styles() *style.Registry[style.Style] { return wb.styles }

// DefaultStyle returns the style unstyled cells use.
func (wb *Workbook) DefaultStyle() style.Style {
	s, _ := wb.styles.Lookup(0)
	return s
}

// Style resolves a style index.
func (wb *Workbook) Style(idx int) (style.Style, bool) {
	return wb.styles.Lookup(idx)
}

// NewStyle starts a concrete style from the workbook default.
func (wb *Workbook) NewStyle() *ConcreteStyle {
	return NewConcreteStyle(wb.styles, wb.DefaultStyle())
}

// AddSheet appends a worksheet. Names are unique ignoring case.
func (wb *Workbook) AddSheet(name string) (*Worksheet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: worksheet name is empty", style.ErrConfiguration)
	}
	if len([]rune(name)) > 31 {
		return nil, fmt.Errorf("%w: worksheet name %q is longer than 31 characters", style.ErrConfiguration, name)
	}
	if strings.ContainsAny(name, `:\/?*[]`) {
		return nil, fmt.Errorf("%w: worksheet name %q contains invalid characters", style.ErrConfiguration, name)
	}
	if _, ok := wb.Sheet(name); ok {
		return nil, fmt.Errorf("%w: worksheet %q already exists", style.ErrConfiguration, name)
	}
	ws := &Worksheet{
		wb:    wb,
		name:  name,
		cells: make(map[Coord]int),
		log:   wb.log.With(zap.String("sheet", name)),
	}
	wb.sheets = append(wb.sheets, ws)
	return ws, nil
}

// Sheet finds a worksheet by name ignoring case.
func (wb *Workbook) Sheet(name string) (*Worksheet, bool) {
	for _, ws := range wb.sheets {
		if strings.EqualFold(ws.name, name) {
			return ws, true
		}
	}
	return nil, false
}

// Sheets returns worksheets in creation order.
func (wb *Workbook) Sheets() []*Worksheet {
	out := make([]*Worksheet, len(wb.sheets))
	copy(out, wb.sheets)
	return out
}
