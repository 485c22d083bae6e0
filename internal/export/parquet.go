package export

import (
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"sjsage522/lotteryscraper/internal/lottery"
	"sjsage522/lotteryscraper/logger"
	"sjsage522/lotteryscraper/pkg/errors"
)

// DefaultParquetPath is the parquet file written when no path is configured
const DefaultParquetPath = "lottery_results.parquet"

// parquetRow is the parquet schema of a draw; column names match Columns
type parquetRow struct {
	Date             time.Time `parquet:"date"`
	Day              string    `parquet:"day"`
	ThaiMonth        string    `parquet:"th_month"`
	Year             string    `parquet:"year"`
	FirstPrize       string    `parquet:"1st_prize"`
	TwoDigitTop      string    `parquet:"2digit_up"`
	ThreeDigitTop    string    `parquet:"3digit_up"`
	TwoDigitBottom   string    `parquet:"2digit_bottom"`
	FrontBottomThree string    `parquet:"3digit_front_bottom"`
	FrontThree       []string  `parquet:"3digit_front,list"`
	BottomThree      []string  `parquet:"3digit_bottom,list"`
}

func toParquetRow(r lottery.DrawRecord) parquetRow {
	return parquetRow{
		Date:             r.Date.UTC(),
		Day:              r.Day,
		ThaiMonth:        r.ThaiMonth,
		Year:             r.Year,
		FirstPrize:       r.FirstPrize,
		TwoDigitTop:      r.TwoDigitTop,
		ThreeDigitTop:    r.ThreeDigitTop,
		TwoDigitBottom:   r.TwoDigitBottom,
		FrontBottomThree: r.FrontBottomThree,
		FrontThree:       r.FrontThree,
		BottomThree:      r.BottomThree,
	}
}

func (p parquetRow) cells() []string {
	return []string{
		p.Date.UTC().Format(DateLayout),
		p.Day,
		p.ThaiMonth,
		p.Year,
		p.FirstPrize,
		p.TwoDigitTop,
		p.ThreeDigitTop,
		p.TwoDigitBottom,
		p.FrontBottomThree,
		strings.Join(p.FrontThree, " "),
		strings.Join(p.BottomThree, " "),
	}
}

// WriteParquet writes records to path as a parquet file with no index column
func WriteParquet(path string, records []lottery.DrawRecord) error {
	rows := make([]parquetRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, toParquetRow(r))
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return errors.NewExport(path, "failed to write parquet file", err)
	}

	logger.ForExporter().Info().
		Str("path", path).
		Int("rows", len(rows)).
		Msg("Wrote parquet")

	return nil
}

// ReadParquet loads a parquet file written by WriteParquet into a table
func ReadParquet(path string) (Table, error) {
	rows, err := parquet.ReadFile[parquetRow](path)
	if err != nil {
		return Table{}, errors.NewExport(path, "failed to read parquet file", err)
	}

	table := Table{
		Columns: append([]string{}, Columns...),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, row.cells())
	}
	return table, nil
}
