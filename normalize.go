package datetools

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"

	"github.com/hrygo/datetools/timezone"
)

// ErrParse reports that an input could not be resolved to any timestamp.
// All parser-level failures are normalized into this sentinel so callers
// can detect the outcome with errors.Is.
var ErrParse = errors.New("could not parse date")

// Normalize coerces value into a timezone-aware time.Time expressed in the
// zone spec resolves to (the process's current zone when unspecified).
//
// A time.Time value is converted to the target zone directly, without
// re-parsing. A string value is fuzzy-parsed: when the string carries no
// offset information the clock reading is assumed to already be in the
// target zone (the instant is not shifted), while a string with an explicit
// offset is converted to the target zone preserving the instant.
//
// The relative keywords "now", "today", "yesterday" and "tomorrow" are
// also accepted; the day keywords resolve to local midnight of that day in
// the target zone.
func Normalize(value any, spec timezone.Spec) (time.Time, error) {
	loc := spec.Resolve()

	switch v := value.(type) {
	case time.Time:
		return v.In(loc), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, errors.WithMessage(ErrParse, "nil timestamp")
		}
		return v.In(loc), nil
	case string:
		return parseString(v, loc)
	default:
		return time.Time{}, errors.WithMessagef(ErrParse, "unsupported input type %T", value)
	}
}

func parseString(s string, loc *time.Location) (time.Time, error) {
	if t, ok := resolveKeyword(s, loc); ok {
		return t, nil
	}

	// ParseIn interprets offset-less strings in loc, which is exactly the
	// assume-then-convert policy: naive readings keep their clock values,
	// offset-carrying readings keep their instant.
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, errors.WithMessagef(ErrParse, "%q: %v", s, err)
	}
	return t.In(loc), nil
}

// resolveKeyword handles the small set of relative date keywords the fuzzy
// parser does not understand.
func resolveKeyword(s string, loc *time.Location) (time.Time, bool) {
	now := time.Now().In(loc)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "now":
		return now, true
	case "today":
		return startOfDay(now, loc), true
	case "yesterday":
		return startOfDay(now.AddDate(0, 0, -1), loc), true
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1), loc), true
	}
	return time.Time{}, false
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
