package datetools

import (
	"fmt"
	"strings"

	"github.com/hrygo/datetools/timezone"
)

// Units selects which components of a RelativeDelta to render.
type Units uint8

const (
	UnitYears Units = 1 << iota
	UnitMonths
	UnitDays
	UnitHours
	UnitMinutes
)

// AllUnits selects every renderable component.
const AllUnits = UnitYears | UnitMonths | UnitDays | UnitHours | UnitMinutes

// Has reports whether u selects unit.
func (u Units) Has(unit Units) bool {
	return u&unit != 0
}

// ParseUnits derives a Units set from a selector string in strftime-like
// nomenclature. Recognized letters: Y/y years, m/b/B months, d/D days,
// H/h hours, M/i/I minutes. Unrecognized letters are ignored.
func ParseUnits(selector string) Units {
	var u Units
	for _, r := range selector {
		switch r {
		case 'Y', 'y':
			u |= UnitYears
		case 'm', 'b', 'B':
			u |= UnitMonths
		case 'd', 'D':
			u |= UnitDays
		case 'H', 'h':
			u |= UnitHours
		case 'M', 'i', 'I':
			u |= UnitMinutes
		}
	}
	return u
}

// PluralizeFunc chooses between a singular and plural template for a count
// and substitutes the count into it. Implementations may be backed by a
// translation catalog; Pluralize is the plain English default.
type PluralizeFunc func(singular, plural string, count int) string

// Pluralize renders count into the singular template when count is exactly
// one, the plural template otherwise. Templates use a %d verb, e.g.
// "%d year" / "%d years".
func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return fmt.Sprintf(singular, count)
	}
	return fmt.Sprintf(plural, count)
}

// DeltaTextOptions controls DeltaAsText. The zero value of each field falls
// back to the documented default, so callers may set only what they need.
type DeltaTextOptions struct {
	// Zone1 and Zone2 are the zones to normalize the two inputs against.
	// Unlike Normalize, the default here is UTC, not the current zone.
	Zone1 timezone.Spec
	Zone2 timezone.Spec

	// Units is the selector string passed to ParseUnits. Empty selects
	// "YmdHM", i.e. everything.
	Units string

	// SuppressZeros omits units whose delta value is zero. Zeros are
	// included by default.
	SuppressZeros bool

	// Pluralize overrides the English default, e.g. with a catalog-backed
	// translator.
	Pluralize PluralizeFunc
}

// DefaultDeltaTextOptions returns the options DeltaAsText uses when given
// nil options.
func DefaultDeltaTextOptions() *DeltaTextOptions {
	return &DeltaTextOptions{
		Zone1: timezone.UTCZone(),
		Zone2: timezone.UTCZone(),
		Units: "YmdHM",
	}
}

// unitTexts drives rendering in fixed order: years, months, days, hours,
// minutes, regardless of selector-string order.
var unitTexts = []struct {
	unit     Units
	singular string
	plural   string
	value    func(RelativeDelta) int
}{
	{UnitYears, "%d year", "%d years", func(d RelativeDelta) int { return d.Years }},
	{UnitMonths, "%d month", "%d months", func(d RelativeDelta) int { return d.Months }},
	{UnitDays, "%d day", "%d days", func(d RelativeDelta) int { return d.Days }},
	{UnitHours, "%d hour", "%d hours", func(d RelativeDelta) int { return d.Hours }},
	{UnitMinutes, "%d minute", "%d minutes", func(d RelativeDelta) int { return d.Minutes }},
}

// DeltaAsText tells how old dt1 is compared to dt2 in human-readable form,
// e.g. "3 months, 11 days". dt1 and dt2 accept anything Normalize accepts;
// a nil dt2 means "now". The rendered units appear in fixed calendar order
// joined by ", "; with no selected units (or everything zero-suppressed)
// the result is the empty string.
//
// If either input fails to normalize the call fails with ErrParse and no
// partial output.
func DeltaAsText(dt1, dt2 any, opts *DeltaTextOptions) (string, error) {
	if opts == nil {
		opts = DefaultDeltaTextOptions()
	}

	zone1 := opts.Zone1
	if zone1.IsZero() {
		zone1 = timezone.UTCZone()
	}
	zone2 := opts.Zone2
	if zone2.IsZero() {
		zone2 = timezone.UTCZone()
	}

	t1, err := Normalize(dt1, zone1)
	if err != nil {
		return "", err
	}

	t2 := Now(zone2)
	if dt2 != nil {
		t2, err = Normalize(dt2, zone2)
		if err != nil {
			return "", err
		}
	}

	delta := DeltaBetween(t1, t2)

	selector := opts.Units
	if selector == "" {
		selector = "YmdHM"
	}
	units := ParseUnits(selector)

	pluralize := opts.Pluralize
	if pluralize == nil {
		pluralize = Pluralize
	}

	var parts []string
	for _, ut := range unitTexts {
		if !units.Has(ut.unit) {
			continue
		}
		value := ut.value(delta)
		if opts.SuppressZeros && value == 0 {
			continue
		}
		parts = append(parts, pluralize(ut.singular, ut.plural, value))
	}
	return strings.Join(parts, ", "), nil
}
