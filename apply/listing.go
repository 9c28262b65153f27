package apply

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"xlstyle/sheet"
)

// writeListing dumps every styled cell of the workbook, one per line: cell
// reference, style index and style digest. Sheets are listed in natural name
// order, cells in row-major order.
func writeListing(w io.Writer, wb *sheet.Workbook) error {
	sheets := wb.Sheets()
	slices.SortStableFunc(sheets, func(a, b *sheet.Worksheet) int {
		switch {
		case natural.Less(a.Name(), b.Name()):
			return -1
		case natural.Less(b.Name(), a.Name()):
			return 1
		}
		return 0
	})

	bw := bufio.NewWriter(w)
	for _, ws := range sheets {
		name := "'" + strings.ReplaceAll(ws.Name(), "'", "''") + "'"
		for _, c := range ws.StyledCells() {
			if _, err := fmt.Fprintf(bw, "%s!%s\t%d\t%s\n", name, c, ws.StyleIndex(c), ws.CellStyle(c).Hash()); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
