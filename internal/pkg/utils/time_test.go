package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentTime(t *testing.T) {
	t.Run("AcceptedFormats", func(t *testing.T) {
		testCases := []string{
			"2026-03-09T10:00:00Z",
			"2026-03-09T10:00:00+07:00",
			"2026-03-09T10:00:00",
			"2026-03-09T10:00",
		}
		for _, value := range testCases {
			parsed, err := ParseAppointmentTime(value)
			assert.NoError(t, err, value)
			assert.Equal(t, 10, parsed.Hour(), value)
		}
	})

	t.Run("LocalFormatsUseServerTimezone", func(t *testing.T) {
		parsed, err := ParseAppointmentTime("2026-03-09T10:00")
		assert.NoError(t, err)
		assert.Equal(t, time.Local, parsed.Location())
	})

	t.Run("Rejected", func(t *testing.T) {
		for _, value := range []string{"", "next tuesday", "2026-03-09", "09/03/2026 10:00"} {
			_, err := ParseAppointmentTime(value)
			assert.Error(t, err, value)
		}
	})
}

func TestCanonicalInstant(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	utc := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)
	local := time.Date(2026, 3, 9, 10, 0, 0, 0, jakarta)

	assert.Equal(t, CanonicalInstant(utc), CanonicalInstant(local))
	assert.Equal(t, "2026-03-09T03:00:00Z", CanonicalInstant(utc))
}

func TestIntervalsOverlap(t *testing.T) {
	base := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	end := base.Add(30 * time.Minute)

	testCases := []struct {
		name     string
		start2   time.Time
		expected bool
	}{
		{"Identical", base, true},
		{"StartsOneMinuteBeforeEnd", base.Add(29 * time.Minute), true},
		{"StartsExactlyAtEnd", base.Add(30 * time.Minute), false},
		{"EndsExactlyAtStart", base.Add(-30 * time.Minute), false},
		{"PartialFromBefore", base.Add(-15 * time.Minute), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			end2 := tc.start2.Add(30 * time.Minute)
			assert.Equal(t, tc.expected, IntervalsOverlap(base, end, tc.start2, end2))
		})
	}
}

func TestSameLocalDate(t *testing.T) {
	morning := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	night := time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	assert.True(t, SameLocalDate(morning, night))
	assert.False(t, SameLocalDate(night, nextDay))
}
