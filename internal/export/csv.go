package export

import (
	"encoding/csv"
	"os"

	"sjsage522/lotteryscraper/internal/lottery"
	"sjsage522/lotteryscraper/logger"
	"sjsage522/lotteryscraper/pkg/errors"
)

// DefaultCSVPath is the csv file written when no path is configured
const DefaultCSVPath = "lottery_results.csv"

// WriteCSV writes records to path with a header row and no index column
func WriteCSV(path string, records []lottery.DrawRecord) error {
	table := FromRecords(records)

	f, err := os.Create(path)
	if err != nil {
		return errors.NewExport(path, "failed to create csv file", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Columns); err != nil {
		return errors.NewExport(path, "failed to write csv header", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return errors.NewExport(path, "failed to write csv rows", err)
	}

	if err := f.Close(); err != nil {
		return errors.NewExport(path, "failed to close csv file", err)
	}

	logger.ForExporter().Info().
		Str("path", path).
		Int("rows", table.Len()).
		Msg("Wrote csv")

	return nil
}

// ReadCSV loads a csv file written by WriteCSV; the first row is the header
func ReadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, errors.NewExport(path, "failed to open csv file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, errors.NewExport(path, "failed to read csv file", err)
	}
	if len(records) == 0 {
		return Table{}, errors.NewExport(path, "csv file has no header", nil)
	}

	return Table{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
