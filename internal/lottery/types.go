package lottery

import "time"

// BuddhistEraOffset is the difference between a Buddhist and a Gregorian year
const BuddhistEraOffset = 543

// MinCells is the number of colx cells a row needs to become a record
const MinCells = 10

// DrawRecord represents one lottery draw scraped from the stats table
type DrawRecord struct {
	Date              time.Time `json:"date"`
	Day               string    `json:"day"`
	ThaiMonth         string    `json:"th_month"`
	Year              string    `json:"year"`
	FirstPrize        string    `json:"1st_prize"`
	FirstPrizeNumbers []string  `json:"1st_prize_numbers"`
	TwoDigitTop       string    `json:"2digit_up"`
	ThreeDigitTop     string    `json:"3digit_up"`
	TwoDigitBottom    string    `json:"2digit_bottom"`
	FrontBottomThree  string    `json:"3digit_front_bottom"`
	FrontThree        []string  `json:"3digit_front"`
	BottomThree       []string  `json:"3digit_bottom"`
}

// Source interface defines the contract for draw sources
type Source interface {
	// FetchDraws retrieves the draws published for a Buddhist year
	FetchDraws(year int) ([]DrawRecord, error)

	// GetName returns the source's name for logging and identification
	GetName() string
}

// thaiMonths maps Thai month names to month numbers
var thaiMonths = map[string]time.Month{
	"มกราคม":     time.January,
	"กุมภาพันธ์": time.February,
	"มีนาคม":     time.March,
	"เมษายน":     time.April,
	"พฤษภาคม":    time.May,
	"มิถุนายน":   time.June,
	"กรกฎาคม":    time.July,
	"สิงหาคม":    time.August,
	"กันยายน":    time.September,
	"ตุลาคม":     time.October,
	"พฤศจิกายน":  time.November,
	"ธันวาคม":    time.December,
}

// ThaiMonth returns the month for a Thai month name and whether the name is known.
// Unknown names resolve to January.
func ThaiMonth(name string) (time.Month, bool) {
	month, ok := thaiMonths[name]
	if !ok {
		return time.January, false
	}
	return month, true
}

// GregorianYear converts a Buddhist year to a Gregorian year
func GregorianYear(buddhistYear int) int {
	return buddhistYear - BuddhistEraOffset
}
