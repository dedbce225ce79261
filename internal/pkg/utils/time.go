package utils

import (
	"fmt"
	"time"
)

// AppointmentSlotDuration is the fixed length of every bookable slot. It is
// applied uniformly for conflict detection and availability enumeration.
const AppointmentSlotDuration = 30 * time.Minute

const (
	DateLayout          = "2006-01-02"
	LocalDateTimeLayout = "2006-01-02T15:04"
)

// appointmentTimeLayouts are the accepted wire formats for appointment start
// instants, tried in order. Layouts without an explicit offset are interpreted
// in the server's local timezone.
var appointmentTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	LocalDateTimeLayout,
}

func ParseAppointmentTime(value string) (time.Time, error) {
	for _, layout := range appointmentTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported datetime format: %q", value)
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

// CanonicalInstant renders a start instant in the single normalized form used
// for slot lock keys, so the same instant expressed in different input formats
// always maps to the same key.
func CanonicalInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func FormatSlotLocal(t time.Time) string {
	return t.Format(LocalDateTimeLayout)
}

// IntervalsOverlap reports whether [start1, end1) and [start2, end2) overlap.
// End boundaries are exclusive: an interval starting exactly at another's end
// does not overlap it.
func IntervalsOverlap(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}

func SameLocalDate(a, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()
	return aYear == bYear && aMonth == bMonth && aDay == bDay
}
