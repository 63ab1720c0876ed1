package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingDate(t *testing.T) {
	date, err := ParseBookingDate("2030-05-10")
	assert.NoError(t, err)
	assert.Equal(t, 2030, date.Year())
	assert.Equal(t, time.May, date.Month())
	assert.Equal(t, 10, date.Day())

	_, err = ParseBookingDate("10-05-2030")
	assert.Error(t, err)

	_, err = ParseBookingDate("2030-13-01")
	assert.Error(t, err)
}

func TestParseBookingTime(t *testing.T) {
	parsed, err := ParseBookingTime("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 9, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	_, err = ParseBookingTime("9.30")
	assert.Error(t, err)

	_, err = ParseBookingTime("25:00")
	assert.Error(t, err)
}

func TestCombineDateTime(t *testing.T) {
	date, _ := ParseBookingDate("2030-05-10")
	timeOfDay, _ := ParseBookingTime("14:45")

	combined := CombineDateTime(date, timeOfDay)

	assert.Equal(t, "2030-05-10 14:45", combined.Format("2006-01-02 15:04"))
}

func TestMinutesOfDay(t *testing.T) {
	timeOfDay, _ := ParseBookingTime("10:30")
	assert.Equal(t, 630, MinutesOfDay(timeOfDay))

	midnight, _ := ParseBookingTime("00:00")
	assert.Zero(t, MinutesOfDay(midnight))
}

func TestSameDate(t *testing.T) {
	a, _ := ParseBookingDate("2030-05-10")
	b, _ := ParseBookingDate("2030-05-10")
	c, _ := ParseBookingDate("2030-05-11")

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
	assert.True(t, SameDate(a.Add(2*time.Hour), b)) // same calendar date, later clock
}
