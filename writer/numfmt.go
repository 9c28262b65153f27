package writer

import "xlstyle/style"

// builtinNumFmts are the number formats every spreadsheet application knows by
// id, they are never written to the numFmts table.
var builtinNumFmts = map[string]int{
	"General":                  0,
	"0":                        1,
	"0.00":                     2,
	"#,##0":                    3,
	"#,##0.00":                 4,
	"0%":                       9,
	"0.00%":                    10,
	"0.00E+00":                 11,
	"# ?/?":                    12,
	"# ??/??":                  13,
	"mm-dd-yy":                 14,
	"d-mmm-yy":                 15,
	"d-mmm":                    16,
	"mmm-yy":                   17,
	"h:mm AM/PM":               18,
	"h:mm:ss AM/PM":            19,
	"h:mm":                     20,
	"h:mm:ss":                  21,
	"m/d/yy h:mm":              22,
	"#,##0 ;(#,##0)":           37,
	"#,##0 ;[Red](#,##0)":      38,
	"#,##0.00;(#,##0.00)":      39,
	"#,##0.00;[Red](#,##0.00)": 40,
	"mm:ss":                    45,
	"[h]:mm:ss":                46,
	"mmss.0":                   47,
	"##0.0E+0":                 48,
	"@":                        49,
}

// firstCustomNumFmt is the lowest id available to custom format codes.
const firstCustomNumFmt = 164

type numFmtTable struct {
	ids    map[string]int
	custom []style.NumberFormat
}

func newNumFmtTable() *numFmtTable {
	return &numFmtTable{ids: make(map[string]int)}
}

func (t *numFmtTable) id(nf style.NumberFormat) int {
	if id, ok := builtinNumFmts[nf.Code]; ok {
		return id
	}
	if id, ok := t.ids[nf.Code]; ok {
		return id
	}
	id := firstCustomNumFmt + len(t.custom)
	t.ids[nf.Code] = id
	t.custom = append(t.custom, nf)
	return id
}
