package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthIndex(t *testing.T) {
	dec := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)
	jan := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, MonthIndex(dec)+1, MonthIndex(jan))

	// 2026-11-01 01:00 in UTC+3 is still October in UTC.
	east := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, MonthIndex(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)), MonthIndex(time.Date(2026, time.November, 1, 1, 0, 0, 0, east)))
}

func TestMonthBoundaries(t *testing.T) {
	ts := time.Date(2026, time.December, 18, 13, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), MonthStartUTC(ts))
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), NextMonthStartUTC(ts))
	assert.Equal(t, "2027-01-01T00:00:00Z", FormatRFC3339(NextMonthStartUTC(ts)))
	assert.Empty(t, FormatRFC3339(time.Time{}))
	assert.True(t, FromUnixSeconds(0).IsZero())
	assert.Equal(t, ts, FromUnixSeconds(ts.Unix()))
}
