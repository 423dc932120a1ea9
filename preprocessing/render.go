package preprocessing

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the output as a text table. Generated columns print 0, 1 or NaN and
// passthrough columns print their original records.
func (e *Encoded) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := make(table.Row, len(e.cols))
	for j, c := range e.cols {
		header[j] = c.name
	}
	t.AppendHeader(header)

	for i := 0; i < e.nrow; i++ {
		row := make(table.Row, len(e.cols))
		for j, c := range e.cols {
			if c.generated() {
				row[j] = strconv.FormatFloat(c.data.At(i), 'g', -1, 64)
				continue
			}
			row[j] = c.src.Elem(i).String()
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"rows", e.nrow})

	t.Render()
}
