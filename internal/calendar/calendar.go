// Package calendar derives calendar and astronomical attributes for draw dates.
//
// All functions are pure: they depend only on their argument. Lunar values come
// from the Meeus ephemeris (github.com/soniakeys/meeus).
package calendar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"
)

// buddhistEraOffset is the difference between a Buddhist and a Gregorian year
const buddhistEraOffset = 543

// thaiZodiac is indexed by Buddhist year modulo 12
var thaiZodiac = [12]string{
	"Snake",   // มะเส็ง
	"Horse",   // มะเมีย
	"Goat",    // มะแม
	"Monkey",  // วอก
	"Rooster", // ระกา
	"Dog",     // จอ
	"Pig",     // กุน
	"Rat",     // ชวด
	"Ox",      // ฉลู
	"Tiger",   // ขาล
	"Rabbit",  // เถาะ
	"Dragon",  // มะโรง
}

// Attributes holds the derived attributes of a date
type Attributes struct {
	DayOfWeek    int     `json:"day_of_week"`
	ThaiZodiac   string  `json:"thai_zodiac"`
	MoonPhase    float64 `json:"moon_phase"`
	MoonDistance float64 `json:"moon_distance_km"`
}

// Describe returns all derived attributes of t
func Describe(t time.Time) Attributes {
	return Attributes{
		DayOfWeek:    DayOfWeek(t),
		ThaiZodiac:   ThaiZodiac(t),
		MoonPhase:    MoonPhase(t),
		MoonDistance: MoonDistance(t),
	}
}

// DayOfWeek returns the weekday of t with Monday as 0 and Sunday as 6
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ThaiZodiac returns the Thai zodiac animal of the year of t
func ThaiZodiac(t time.Time) string {
	return ThaiZodiacForBuddhistYear(t.Year() + buddhistEraOffset)
}

// ThaiZodiacForBuddhistYear returns the Thai zodiac animal of a Buddhist year
func ThaiZodiacForBuddhistYear(year int) string {
	remainder := year % 12
	if remainder < 0 {
		remainder += 12
	}
	return thaiZodiac[remainder]
}

// MoonPhase returns the lunar phase at t in [0, 1): 0 is new moon, 0.5 full moon.
// The phase is the Moon–Sun elongation in ecliptic longitude as a fraction of a turn.
func MoonPhase(t time.Time) float64 {
	jde := julian.TimeToJD(t.UTC())

	moonLon, _, _ := moonposition.Position(jde)
	sunLon := solar.ApparentLongitude(base.J2000Century(jde))

	elongation := math.Mod(moonLon.Deg()-sunLon.Deg(), 360)
	if elongation < 0 {
		elongation += 360
	}
	return elongation / 360
}

// MoonDistance returns the distance between the centers of the Earth and the Moon at t, in km
func MoonDistance(t time.Time) float64 {
	_, _, distance := moonposition.Position(julian.TimeToJD(t.UTC()))
	return distance
}
