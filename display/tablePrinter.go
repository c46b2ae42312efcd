package display

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrNilHeader signals that a table is requested without a header
var ErrNilHeader = errors.New("nil table header")

// ErrEmptyTable signals that a table has neither header nor rows
var ErrEmptyTable = errors.New("empty table")

// Row is a table row, optionally followed by a horizontal rule
type Row struct {
	Cells        []string
	RuleAfterRow bool
}

// NewRow creates a row out of its cells
func NewRow(ruleAfterRow bool, cells ...string) *Row {
	return &Row{
		Cells:        cells,
		RuleAfterRow: ruleAfterRow,
	}
}

// CreateTableString renders an ASCII table. Columns are as wide as their widest cell.
func CreateTableString(header []string, rows []*Row) (string, error) {
	if header == nil {
		return "", ErrNilHeader
	}
	if len(header) == 0 && len(rows) == 0 {
		return "", ErrEmptyTable
	}

	widths := columnWidths(header, rows)

	builder := &strings.Builder{}
	writeRule(builder, widths)
	writeCells(builder, widths, header)
	writeRule(builder, widths)

	ruleWritten := true
	for i, row := range rows {
		if row == nil {
			return "", errors.Errorf("nil row at index %d", i)
		}

		writeCells(builder, widths, row.Cells)
		ruleWritten = row.RuleAfterRow
		if row.RuleAfterRow {
			writeRule(builder, widths)
		}
	}

	if !ruleWritten {
		writeRule(builder, widths)
	}

	return builder.String(), nil
}

func columnWidths(header []string, rows []*Row) []int {
	widths := make([]int, 0, len(header))
	widen := func(cells []string) {
		for i, cell := range cells {
			if len(widths) <= i {
				widths = append(widths, 0)
			}
			if widths[i] < len(cell) {
				widths[i] = len(cell)
			}
		}
	}

	widen(header)
	for _, row := range rows {
		if row != nil {
			widen(row.Cells)
		}
	}

	return widths
}

func writeRule(builder *strings.Builder, widths []int) {
	builder.WriteByte('+')
	for _, width := range widths {
		builder.WriteString(strings.Repeat("-", width+2))
		builder.WriteByte('+')
	}
	builder.WriteByte('\n')
}

func writeCells(builder *strings.Builder, widths []int, cells []string) {
	builder.WriteByte('|')
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}

		builder.WriteByte(' ')
		builder.WriteString(cell)
		builder.WriteString(strings.Repeat(" ", width-len(cell)))
		builder.WriteString(" |")
	}
	builder.WriteByte('\n')
}
