package datetools

import (
	"time"

	"github.com/hrygo/datetools/timezone"
)

// Midnight returns the instant of local midnight (00:00:00 in the process's
// current zone) on t's local date shifted by offset whole days. offset 0 is
// the midnight at or before t, offset 1 the following midnight; negative
// and larger offsets shift accordingly.
//
// The zone's offset rules are reapplied at the target date, so the result
// is the correct local midnight even across daylight-saving transitions.
func Midnight(t time.Time, offset int) time.Time {
	loc := timezone.Current()
	day := t.In(loc).AddDate(0, 0, offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
}

// LastMidnight returns the most recent local midnight at or before t.
func LastMidnight(t time.Time) time.Time {
	return Midnight(t, 0)
}

// NextMidnight returns the first local midnight after t's local date.
func NextMidnight(t time.Time) time.Time {
	return Midnight(t, 1)
}
