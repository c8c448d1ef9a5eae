package datetools

import "time"

// RelativeDelta is a calendar-aware difference between two instants,
// honoring variable month and year lengths. All fields carry the sign of
// the difference: the delta of an earlier minus a later instant has every
// nonzero field negative.
type RelativeDelta struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether the delta is empty.
func (d RelativeDelta) IsZero() bool {
	return d == RelativeDelta{}
}

// DeltaBetween returns t2 minus t1 as a calendar breakdown. The month
// component is found first on the calendar fields, clamped so that t1 plus
// the whole months never overshoots t2; the remainder is then decomposed
// into days, hours, minutes and seconds of absolute duration.
func DeltaBetween(t1, t2 time.Time) RelativeDelta {
	sign := 1
	if t2.Before(t1) {
		t1, t2 = t2, t1
		sign = -1
	}

	months := (t2.Year()-t1.Year())*12 + int(t2.Month()) - int(t1.Month())
	anchor := addMonths(t1, months)
	for anchor.After(t2) {
		months--
		anchor = addMonths(t1, months)
	}

	rem := int(t2.Sub(anchor) / time.Second)
	d := RelativeDelta{
		Years:   months / 12,
		Months:  months % 12,
		Days:    rem / 86400,
		Hours:   rem % 86400 / 3600,
		Minutes: rem % 3600 / 60,
		Seconds: rem % 60,
	}
	if sign < 0 {
		d.Years, d.Months, d.Days = -d.Years, -d.Months, -d.Days
		d.Hours, d.Minutes, d.Seconds = -d.Hours, -d.Minutes, -d.Seconds
	}
	return d
}

// addMonths shifts t by whole months, clamping the day-of-month to the
// target month's length. time.AddDate normalizes instead of clamping
// (Jan 31 plus one month would become Mar 3), which is wrong for calendar
// deltas.
func addMonths(t time.Time, months int) time.Time {
	m := int(t.Month()) - 1 + months
	y := t.Year() + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}

	day := t.Day()
	if last := daysInMonth(y, time.Month(m+1)); day > last {
		day = last
	}
	return time.Date(y, time.Month(m+1), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
