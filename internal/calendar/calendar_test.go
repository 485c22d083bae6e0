package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// phaseDistance is the circular distance between two phases
func phaseDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestDayOfWeek(t *testing.T) {
	testCases := []struct {
		date     time.Time
		expected int
	}{
		{date(2023, time.October, 1, 0, 0), 6}, // Sunday
		{date(2023, time.October, 2, 0, 0), 0}, // Monday
		{date(2024, time.January, 1, 0, 0), 0}, // Monday
		{date(2024, time.January, 17, 0, 0), 2},
		{date(2024, time.February, 29, 0, 0), 3},
		{date(2024, time.March, 16, 0, 0), 5},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, DayOfWeek(tc.date), tc.date.Format("2006-01-02"))
	}
}

func TestThaiZodiac(t *testing.T) {
	testCases := []struct {
		year     int
		expected string
	}{
		{1990, "Horse"},
		{1991, "Goat"},
		{1992, "Monkey"},
		{1995, "Pig"},
		{1996, "Rat"},
		{2000, "Dragon"},
		{2001, "Snake"},
		{2024, "Dragon"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ThaiZodiac(date(tc.year, time.June, 1, 0, 0)), tc.year)
	}
}

func TestThaiZodiacForBuddhistYear(t *testing.T) {
	expected := map[int]string{
		0: "Snake", 1: "Horse", 2: "Goat", 3: "Monkey", 4: "Rooster", 5: "Dog",
		6: "Pig", 7: "Rat", 8: "Ox", 9: "Tiger", 10: "Rabbit", 11: "Dragon",
	}

	for remainder, animal := range expected {
		assert.Equal(t, animal, ThaiZodiacForBuddhistYear(2532+remainder))
	}

	// Only the year matters
	assert.Equal(t, ThaiZodiac(date(1990, time.January, 1, 0, 0)), ThaiZodiac(date(1990, time.December, 31, 23, 59)))
}

func TestMoonPhase(t *testing.T) {
	// New moon 2024-01-11 11:57 UTC, full moon 2024-01-25 17:54 UTC
	newMoon := MoonPhase(date(2024, time.January, 11, 11, 57))
	fullMoon := MoonPhase(date(2024, time.January, 25, 17, 54))
	firstQuarter := MoonPhase(date(2024, time.January, 18, 3, 53))

	assert.Less(t, phaseDistance(newMoon, 0), 0.01)
	assert.Less(t, phaseDistance(fullMoon, 0.5), 0.01)
	assert.Less(t, phaseDistance(firstQuarter, 0.25), 0.01)
}

func TestMoonPhaseRange(t *testing.T) {
	start := date(2024, time.January, 1, 0, 0)
	for day := 0; day < 60; day++ {
		phase := MoonPhase(start.AddDate(0, 0, day))
		assert.GreaterOrEqual(t, phase, 0.0)
		assert.Less(t, phase, 1.0)
	}
}

func TestMoonDistance(t *testing.T) {
	// Perigee 2024-01-13 10:35 UTC at 362,267 km
	assert.InDelta(t, 362267, MoonDistance(date(2024, time.January, 13, 10, 35)), 500)

	start := date(2024, time.January, 1, 0, 0)
	for day := 0; day < 60; day++ {
		distance := MoonDistance(start.AddDate(0, 0, day))
		assert.Greater(t, distance, 356000.0)
		assert.Less(t, distance, 407000.0)
	}
}

func TestDescribe(t *testing.T) {
	when := date(2024, time.January, 17, 0, 0)

	attrs := Describe(when)
	assert.Equal(t, 2, attrs.DayOfWeek)
	assert.Equal(t, "Dragon", attrs.ThaiZodiac)
	assert.Equal(t, MoonPhase(when), attrs.MoonPhase)
	assert.Equal(t, MoonDistance(when), attrs.MoonDistance)
}
