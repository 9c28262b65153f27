// Package writer serializes the style table of a workbook into the
// SpreadsheetML styles part (xl/styles.xml).
package writer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"xlstyle/sheet"
	"xlstyle/style"
)

const nsMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// StyleSheet is the flattened form of a workbook style table: every cell
// format broken into deduplicated category tables which cellXfs reference by
// position.
type StyleSheet struct {
	NumFmts []NumFmt
	Fonts   []style.Font
	Fills   []style.Fill
	Borders []style.Borders
	CellXfs []Xf
}

// NumFmt is a custom number format entry.
type NumFmt struct {
	ID   int
	Code string
}

// Xf is one cell format record.
type Xf struct {
	NumFmtID  int
	FontID    int
	FillID    int
	BorderID  int
	Alignment style.Alignment
}

// Flatten builds the category tables for wb. Xfs follow the workbook style
// registry order so cell style indexes can be written as is.
func Flatten(wb *sheet.Workbook, log *zap.Logger) *StyleSheet {
	if log == nil {
		log = zap.NewNop()
	}
	def := wb.DefaultStyle()

	fonts := style.NewRegistry[style.Font]("fonts", log)
	fills := style.NewRegistry[style.Fill]("fills", log)
	borders := style.NewRegistry[style.Borders]("borders", log)
	numFmts := newNumFmtTable()

	// mandatory leading entries, readers expect fills 0 and 1 to be exactly these
	fonts.Register(def.Font)
	fills.Register(style.DefaultFill())
	gray := style.DefaultFill()
	gray.Pattern = style.FillPatternGray125
	fills.Register(gray)
	borders.Register(style.DefaultBorders())

	ss := &StyleSheet{}
	for _, e := range wb.Styles().Entries() {
		s := e.Value
		ss.CellXfs = append(ss.CellXfs, Xf{
			NumFmtID:  numFmts.id(s.NumberFormat),
			FontID:    fonts.Register(s.Font),
			FillID:    fills.Register(effectiveFill(s.Fill)),
			BorderID:  borders.Register(s.Borders),
			Alignment: s.Alignment,
		})
	}
	for _, nf := range numFmts.custom {
		ss.NumFmts = append(ss.NumFmts, NumFmt{ID: numFmts.ids[nf.Code], Code: nf.Code})
	}
	for _, e := range fonts.Entries() {
		ss.Fonts = append(ss.Fonts, e.Value)
	}
	for _, e := range fills.Entries() {
		ss.Fills = append(ss.Fills, e.Value)
	}
	for _, e := range borders.Entries() {
		ss.Borders = append(ss.Borders, e.Value)
	}

	log.Debug("Style sheet flattened",
		zap.Int("cellXfs", len(ss.CellXfs)),
		zap.Int("fonts", len(ss.Fonts)),
		zap.Int("fills", len(ss.Fills)),
		zap.Int("borders", len(ss.Borders)),
		zap.Int("numFmts", len(ss.NumFmts)))
	return ss
}

// effectiveFill drops colors which are never written so fills that only differ
// by them share a single entry.
func effectiveFill(f style.Fill) style.Fill {
	if f.Pattern == style.FillPatternNone {
		return style.DefaultFill()
	}
	return f
}

// BuildStyleSheet produces the styles part of wb as an XML document.
func BuildStyleSheet(wb *sheet.Workbook, log *zap.Logger) *etree.Document {
	return Flatten(wb, log).Document()
}

// WriteStyleSheet writes the indented styles part of wb to w.
func WriteStyleSheet(w io.Writer, wb *sheet.Workbook, log *zap.Logger) error {
	doc := BuildStyleSheet(wb, log)
	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write style sheet: %w", err)
	}
	return nil
}

// Document renders the style sheet.
func (ss *StyleSheet) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("styleSheet")
	root.CreateAttr("xmlns", nsMain)

	if len(ss.NumFmts) > 0 {
		list := counted(root, "numFmts", len(ss.NumFmts))
		for _, nf := range ss.NumFmts {
			el := list.CreateElement("numFmt")
			el.CreateAttr("numFmtId", strconv.Itoa(nf.ID))
			el.CreateAttr("formatCode", nf.Code)
		}
	}

	list := counted(root, "fonts", len(ss.Fonts))
	for _, f := range ss.Fonts {
		writeFont(list.CreateElement("font"), f)
	}

	list = counted(root, "fills", len(ss.Fills))
	for _, f := range ss.Fills {
		writeFill(list.CreateElement("fill"), f)
	}

	list = counted(root, "borders", len(ss.Borders))
	for _, b := range ss.Borders {
		writeBorder(list.CreateElement("border"), b)
	}

	list = counted(root, "cellStyleXfs", 1)
	xf := list.CreateElement("xf")
	for _, attr := range []string{"numFmtId", "fontId", "fillId", "borderId"} {
		xf.CreateAttr(attr, "0")
	}

	list = counted(root, "cellXfs", len(ss.CellXfs))
	for _, x := range ss.CellXfs {
		writeXf(list.CreateElement("xf"), x)
	}

	list = counted(root, "cellStyles", 1)
	normal := list.CreateElement("cellStyle")
	normal.CreateAttr("name", "Normal")
	normal.CreateAttr("xfId", "0")
	normal.CreateAttr("builtinId", "0")

	return doc
}

func counted(parent *etree.Element, tag string, n int) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("count", strconv.Itoa(n))
	return el
}

func setBool(el *etree.Element, attr string, v bool) {
	if v {
		el.CreateAttr(attr, "1")
	}
}

func writeColor(el *etree.Element, c style.Color) {
	if c.IsTheme {
		el.CreateAttr("theme", strconv.Itoa(c.Theme))
		if c.Tint != 0 {
			el.CreateAttr("tint", strconv.FormatFloat(c.Tint, 'f', -1, 64))
		}
		return
	}
	el.CreateAttr("rgb", c.ARGB)
}

func writeFont(el *etree.Element, f style.Font) {
	if f.Bold {
		el.CreateElement("b")
	}
	if f.Italic {
		el.CreateElement("i")
	}
	if f.Strike {
		el.CreateElement("strike")
	}
	if f.Underline != style.UnderlineNone {
		u := el.CreateElement("u")
		if f.Underline != style.UnderlineSingle {
			u.CreateAttr("val", f.Underline.String())
		}
	}
	el.CreateElement("sz").CreateAttr("val", strconv.FormatFloat(f.Size, 'f', -1, 64))
	writeColor(el.CreateElement("color"), f.Color)
	el.CreateElement("name").CreateAttr("val", f.Name)
}

func writeFill(el *etree.Element, f style.Fill) {
	pf := el.CreateElement("patternFill")
	pf.CreateAttr("patternType", f.Pattern.String())
	if f.Pattern == style.FillPatternNone {
		return
	}
	// mandatory gray125 entry stays bare
	if def := style.DefaultFill(); f.Pattern == style.FillPatternGray125 && f.StartColor == def.StartColor && f.EndColor == def.EndColor {
		return
	}
	writeColor(pf.CreateElement("fgColor"), f.StartColor)
	writeColor(pf.CreateElement("bgColor"), f.EndColor)
}

func writeBorder(el *etree.Element, b style.Borders) {
	setBool(el, "diagonalUp", b.DiagonalDirection.Up())
	setBool(el, "diagonalDown", b.DiagonalDirection.Down())
	for _, side := range []style.Side{style.SideLeft, style.SideRight, style.SideTop, style.SideBottom, style.SideDiagonal} {
		edge := b.Edge(side)
		child := el.CreateElement(side.String())
		if edge.Line == style.LineKindNone {
			continue
		}
		child.CreateAttr("style", edge.Line.String())
		writeColor(child.CreateElement("color"), edge.Color)
	}
}

func writeXf(el *etree.Element, x Xf) {
	el.CreateAttr("numFmtId", strconv.Itoa(x.NumFmtID))
	el.CreateAttr("fontId", strconv.Itoa(x.FontID))
	el.CreateAttr("fillId", strconv.Itoa(x.FillID))
	el.CreateAttr("borderId", strconv.Itoa(x.BorderID))
	el.CreateAttr("xfId", "0")
	setBool(el, "applyNumberFormat", x.NumFmtID != 0)
	setBool(el, "applyFont", x.FontID != 0)
	setBool(el, "applyFill", x.FillID != 0)
	setBool(el, "applyBorder", x.BorderID != 0)

	def := style.DefaultAlignment()
	if x.Alignment == def {
		return
	}
	setBool(el, "applyAlignment", true)
	a := x.Alignment
	al := el.CreateElement("alignment")
	if a.Horizontal != def.Horizontal {
		al.CreateAttr("horizontal", a.Horizontal.String())
	}
	if a.Vertical != def.Vertical {
		al.CreateAttr("vertical", a.Vertical.String())
	}
	if a.TextRotation != 0 {
		al.CreateAttr("textRotation", strconv.Itoa(xmlRotation(a.TextRotation)))
	}
	setBool(al, "wrapText", a.WrapText)
	setBool(al, "shrinkToFit", a.ShrinkToFit)
	if a.Indent != 0 {
		al.CreateAttr("indent", strconv.Itoa(a.Indent))
	}
}

// xmlRotation maps -90..-1 degrees onto 91..180 as the file format wants.
func xmlRotation(deg int) int {
	if deg < 0 && deg >= -90 {
		return 90 - deg
	}
	return deg
}
