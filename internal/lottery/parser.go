package lottery

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"sjsage522/lotteryscraper/helpers"
	"sjsage522/lotteryscraper/logger"
	"sjsage522/lotteryscraper/pkg/errors"
)

const (
	// TableSelector locates the stats table
	TableSelector = "table#dl_lottery_stats_list"

	rowSelector    = "div.rowx"
	columnSelector = "div.colx"

	// frontCount is how many leading numbers of the front/bottom cell are front numbers
	frontCount = 2
)

// cell positions among the extracted colx texts
const (
	cellDay            = 0
	cellMonth          = 1
	cellYear           = 3
	cellFirstPrize     = 5
	cellTwoDigitTop    = 6
	cellThreeDigitTop  = 7
	cellTwoDigitBottom = 8
	cellFrontBottom    = 9
)

// ParseDraws extracts draw records from the stats page in table row order.
// A page without the stats table yields no records.
func ParseDraws(r io.Reader) ([]DrawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.NewParsing(SourceName, "failed to parse HTML", err)
	}

	draws := []DrawRecord{}

	table := doc.Find(TableSelector).First()
	if table.Length() == 0 {
		logger.ForScraper().Debug().Msg("Stats table not found")
		return draws, nil
	}

	var parseErr error
	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := rowCells(row)
		if len(cells) < MinCells {
			return true
		}

		draw, err := processRow(cells)
		if err != nil {
			parseErr = errors.NewParsing(SourceName, fmt.Sprintf("row %d", i), err)
			return false
		}
		draws = append(draws, *draw)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return draws, nil
}

// rowCells returns the trimmed texts of the colx cells of a row, or nil when the
// row has no td/rowx container
func rowCells(row *goquery.Selection) []string {
	td := row.Find("td").First()
	if td.Length() == 0 {
		return nil
	}

	rowx := td.Find(rowSelector).First()
	if rowx.Length() == 0 {
		return nil
	}

	columns := rowx.Find(columnSelector)
	cells := make([]string, 0, columns.Length())
	columns.Each(func(_ int, s *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(s.Text()))
	})
	return cells
}

// processRow maps the cells of one row to a draw record
func processRow(cells []string) (*DrawRecord, error) {
	day := cells[cellDay]
	month := cells[cellMonth]
	year := cells[cellYear]

	date, err := drawDate(day, month, year)
	if err != nil {
		return nil, err
	}

	firstPrize := cells[cellFirstPrize]
	frontBottom := cells[cellFrontBottom]
	front, bottom := helpers.SplitAt(frontBottom, frontCount)

	return &DrawRecord{
		Date:              date,
		Day:               day,
		ThaiMonth:         month,
		Year:              year,
		FirstPrize:        firstPrize,
		FirstPrizeNumbers: helpers.SplitFields(firstPrize),
		TwoDigitTop:       cells[cellTwoDigitTop],
		ThreeDigitTop:     cells[cellThreeDigitTop],
		TwoDigitBottom:    cells[cellTwoDigitBottom],
		FrontBottomThree:  frontBottom,
		FrontThree:        front,
		BottomThree:       bottom,
	}, nil
}

// drawDate converts a Thai day, month name and Buddhist year to a UTC date
func drawDate(day, month, year string) (time.Time, error) {
	buddhistYear, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	dayNum, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", day, err)
	}

	monthNum, known := ThaiMonth(month)
	if !known {
		// Kept for compatibility with earlier exports; the draw lands in January.
		logger.ForScraper().Warn().
			Str("month", month).
			Str("day", day).
			Str("year", year).
			Msg("Unknown Thai month name, defaulting to January")
	}

	gregorianYear := GregorianYear(buddhistYear)
	if gregorianYear < 1 {
		return time.Time{}, fmt.Errorf("invalid year %d", buddhistYear)
	}
	if dayNum < 1 || dayNum > daysIn(gregorianYear, monthNum) {
		return time.Time{}, fmt.Errorf("day %d is out of range for %s %d", dayNum, monthNum, gregorianYear)
	}

	return time.Date(gregorianYear, monthNum, dayNum, 0, 0, 0, 0, time.UTC), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
