package sheet

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"xlstyle/style"
)

func newTestSheet(t *testing.T, options ...func(*Options)) *Worksheet {
	t.Helper()
	wb := New(zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))), options...)
	ws, err := wb.AddSheet("Data")
	if err != nil {
		t.Fatalf("AddSheet() error = %v", err)
	}
	return ws
}

func mustRange(t *testing.T, ref string) Range {
	t.Helper()
	rng, err := ParseRange(ref)
	if err != nil {
		t.Fatalf("ParseRange(%q) error = %v", ref, err)
	}
	return rng
}

func mustCoord(t *testing.T, ref string) Coord {
	t.Helper()
	c, err := ParseCoord(ref)
	if err != nil {
		t.Fatalf("ParseCoord(%q) error = %v", ref, err)
	}
	return c
}

func TestWorkbookDefaultStyle(t *testing.T) {
	wb := New(nil, WithDefaultFont("Arial", 10))
	if wb.Styles().Len() != 1 {
		t.Fatalf("registry size = %d, want 1", wb.Styles().Len())
	}
	def := wb.DefaultStyle()
	if def.Font.Name != "Arial" || def.Font.Size != 10 {
		t.Errorf("default font = %s %v, want Arial 10", def.Font.Name, def.Font.Size)
	}
	if idx, ok := wb.Styles().IndexOf(def); !ok || idx != 0 {
		t.Errorf("default style index = %d, %v", idx, ok)
	}
}

func TestWorkbookAddSheet(t *testing.T) {
	wb := New(nil)
	if _, err := wb.AddSheet("Report"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"", "   ", "report", "a/b", "[x]", "this name is far too long for a worksheet"} {
		if _, err := wb.AddSheet(name); !errors.Is(err, style.ErrConfiguration) {
			t.Errorf("AddSheet(%q) error = %v, want ErrConfiguration", name, err)
		}
	}
	if ws, ok := wb.Sheet("REPORT"); !ok || ws.Name() != "Report" {
		t.Error("case-insensitive lookup failed")
	}
	if len(wb.Sheets()) != 1 {
		t.Errorf("sheets = %d, want 1", len(wb.Sheets()))
	}
}

func TestApplyStyleSharesValues(t *testing.T) {
	ws := newTestSheet(t)
	cfg := style.Config{"font": style.Config{"bold": true}}

	if err := ws.ApplyStyle(mustRange(t, "A1:C3"), cfg); err != nil {
		t.Fatal(err)
	}
	if err := ws.ApplyStyle(mustRange(t, "E5"), cfg); err != nil {
		t.Fatal(err)
	}

	reg := ws.Workbook().Styles()
	if reg.Len() != 2 {
		t.Errorf("registry size = %d, want 2 (default and bold)", reg.Len())
	}
	want := ws.StyleIndex(mustCoord(t, "A1"))
	if want == 0 {
		t.Fatal("A1 still uses the default style")
	}
	for _, ref := range []string{"B2", "C3", "E5"} {
		if got := ws.StyleIndex(mustCoord(t, ref)); got != want {
			t.Errorf("%s index = %d, want %d", ref, got, want)
		}
	}
	if got := ws.StyleIndex(mustCoord(t, "D4")); got != 0 {
		t.Errorf("D4 index = %d, want 0", got)
	}
	if !ws.CellStyle(mustCoord(t, "B2")).Font.Bold {
		t.Error("B2 is not bold")
	}
	if n := len(ws.StyledCells()); n != 10 {
		t.Errorf("styled cells = %d, want 10", n)
	}
}

func TestApplyStyleOutline(t *testing.T) {
	ws := newTestSheet(t)
	err := ws.ApplyStyle(mustRange(t, "B2:D4"), style.Config{
		"borders": style.Config{"outline": style.Config{"style": "thick"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string][]style.Side{
		"B2": {style.SideTop, style.SideLeft},
		"C2": {style.SideTop},
		"D2": {style.SideTop, style.SideRight},
		"B3": {style.SideLeft},
		"C3": nil,
		"D4": {style.SideBottom, style.SideRight},
	}
	for ref, sides := range cases {
		b := ws.CellStyle(mustCoord(t, ref)).Borders
		thick := 0
		for _, side := range []style.Side{style.SideLeft, style.SideRight, style.SideTop, style.SideBottom} {
			if b.Edge(side).Line == style.LineKindThick {
				thick++
			}
		}
		if thick != len(sides) {
			t.Errorf("%s has %d thick sides, want %v", ref, thick, sides)
		}
		for _, side := range sides {
			if b.Edge(side).Line != style.LineKindThick {
				t.Errorf("%s %s = %s, want thick", ref, side, b.Edge(side).Line)
			}
		}
	}
	// 8 perimeter positions, the interior cell keeps the default style
	if n := ws.Workbook().Styles().Len(); n != 9 {
		t.Errorf("registry size = %d, want 9", n)
	}
	if ws.StyleIndex(mustCoord(t, "C3")) != 0 {
		t.Error("interior cell was restyled")
	}
}

func TestApplyStyleKeepsOtherCategories(t *testing.T) {
	ws := newTestSheet(t)
	rng := mustRange(t, "A1:B2")
	if err := ws.ApplyStyle(rng, style.Config{"fill": style.Config{"type": "solid", "startColor": "FFFF00"}}); err != nil {
		t.Fatal(err)
	}
	if err := ws.ApplyStyle(rng, style.Config{"borders": style.Config{"allBorders": style.Config{"style": "thin"}}}); err != nil {
		t.Fatal(err)
	}
	s := ws.CellStyle(mustCoord(t, "B2"))
	if s.Fill.Pattern != style.FillPatternSolid {
		t.Errorf("fill pattern = %s, want solid", s.Fill.Pattern)
	}
	if s.Borders.Left.Line != style.LineKindThin {
		t.Errorf("left line = %s, want thin", s.Borders.Left.Line)
	}
}

func TestApplyStyleRejectsBeforeTouchingCells(t *testing.T) {
	ws := newTestSheet(t)
	rng := mustRange(t, "A1:B2")
	err := ws.ApplyStyle(rng, style.Config{
		"font":    style.Config{"bold": true},
		"borders": style.Config{"left": style.Config{"style": "wiggly"}},
	})
	if !errors.Is(err, style.ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
	if len(ws.StyledCells()) != 0 || ws.Workbook().Styles().Len() != 1 {
		t.Error("failed configuration modified the worksheet")
	}
}

func TestApplyStyleSelectionLimit(t *testing.T) {
	ws := newTestSheet(t, WithMaxSelectionCells(4))
	err := ws.ApplyStyle(mustRange(t, "A1:C3"), style.Config{"font": style.Config{"bold": true}})
	if !errors.Is(err, style.ErrConfiguration) {
		t.Fatalf("error = %v, want ErrConfiguration", err)
	}
	if err := ws.ApplyStyle(mustRange(t, "A1:B2"), style.Config{"font": style.Config{"bold": true}}); err != nil {
		t.Errorf("selection at the limit failed: %v", err)
	}
}

func TestApplyStyleBackToDefault(t *testing.T) {
	ws := newTestSheet(t)
	rng := mustRange(t, "C1")
	if err := ws.ApplyStyle(rng, style.Config{"font": style.Config{"italic": true}}); err != nil {
		t.Fatal(err)
	}
	if err := ws.ApplyStyle(rng, style.Config{"font": style.Config{"italic": false}}); err != nil {
		t.Fatal(err)
	}
	if len(ws.StyledCells()) != 0 {
		t.Errorf("styled cells = %v, want none", ws.StyledCells())
	}
}

func TestAssignStyle(t *testing.T) {
	ws := newTestSheet(t)
	cs := ws.Workbook().NewStyle()
	if err := cs.ApplyFromConfig(style.Config{"numberFormat": style.Config{"code": "0.00%"}}); err != nil {
		t.Fatal(err)
	}
	if err := ws.AssignStyle(mustRange(t, "A1:A3"), cs.Index()); err != nil {
		t.Fatal(err)
	}
	if got := ws.CellStyle(mustCoord(t, "A2")).NumberFormat.Code; got != "0.00%" {
		t.Errorf("A2 number format = %q", got)
	}
	if err := ws.AssignStyle(mustRange(t, "A1"), 42); !errors.Is(err, style.ErrConfiguration) {
		t.Errorf("unknown index error = %v, want ErrConfiguration", err)
	}
}

func TestStyledCellsOrder(t *testing.T) {
	ws := newTestSheet(t)
	cfg := style.Config{"alignment": style.Config{"wrapText": true}}
	for _, ref := range []string{"C2", "A3", "B1", "A2"} {
		if err := ws.ApplyStyle(mustRange(t, ref), cfg); err != nil {
			t.Fatal(err)
		}
	}
	var got []string
	for _, c := range ws.StyledCells() {
		got = append(got, c.String())
	}
	want := []string{"B1", "A2", "C2", "A3"}
	if len(got) != len(want) {
		t.Fatalf("StyledCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("StyledCells() = %v, want %v", got, want)
		}
	}
}

func TestSelectionSheetQualifier(t *testing.T) {
	ws := newTestSheet(t)

	for _, ref := range []string{"Data!A1:B2", "'data'!a1:b2", " 'Data' !B2:A1"} {
		sel, err := ws.Selection(ref)
		if err != nil {
			t.Errorf("Selection(%q) error = %v", ref, err)
			continue
		}
		if sel.Sheet != ws || sel.Range != mustRange(t, "A1:B2") {
			t.Errorf("Selection(%q) = %v on %s", ref, sel.Range, sel.Sheet.Name())
		}
	}
	for _, ref := range []string{"Other!A1:B2", "'Data 2'!A1", "!A1"} {
		if _, err := ws.Selection(ref); !errors.Is(err, style.ErrConfiguration) {
			t.Errorf("Selection(%q) error = %v, want ErrConfiguration", ref, err)
		}
	}

	quoted, err := ws.Workbook().AddSheet("Bob's")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := quoted.Selection("'Bob''s'!C3"); err != nil {
		t.Errorf("Selection() on escaped name error = %v", err)
	}
}
