package export

import (
	"sjsage522/lotteryscraper/internal/lottery"
)

// DateLayout is the string form of draw dates in exported tables
const DateLayout = "2006-01-02"

// Columns are the exported column names in record declaration order
var Columns = []string{
	"date",
	"day",
	"th_month",
	"year",
	"1st_prize",
	"2digit_up",
	"3digit_up",
	"2digit_bottom",
	"3digit_front_bottom",
	"3digit_front",
	"3digit_bottom",
}

// Table is a row/column view of draw records with string cells
type Table struct {
	Columns []string
	Rows    [][]string
}

// FromRecords converts draw records to a table; list fields are joined with a space
func FromRecords(records []lottery.DrawRecord) Table {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, toParquetRow(r).cells())
	}

	return Table{
		Columns: append([]string{}, Columns...),
		Rows:    rows,
	}
}

// Len returns the number of rows
func (t Table) Len() int {
	return len(t.Rows)
}

// Column returns the values of the named column, or nil if there is no such column
func (t Table) Column(name string) []string {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values
}
