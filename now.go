package datetools

import (
	"strings"
	"time"

	"github.com/hrygo/datetools/timezone"
)

// ISO8601Layout renders timestamps as e.g. "2017-04-12T20:51:00+02:00".
const ISO8601Layout = "2006-01-02T15:04:05Z07:00"

// Now returns the current instant in the zone spec resolves to.
//
// The instant is captured in UTC first so that the reference point is
// canonical regardless of the requested zone; conversion happens only when
// a non-UTC zone is asked for.
func Now(spec timezone.Spec) time.Time {
	now := time.Now().UTC()

	loc := spec.Resolve()
	if loc == timezone.UTC {
		return now
	}
	return now.In(loc)
}

// NowFormatted returns the current instant in the given zone rendered with
// the given layout. The layout "iso" (or "iso8601") is shorthand for
// ISO8601Layout; anything else is a Go reference layout.
func NowFormatted(spec timezone.Spec, layout string) string {
	switch strings.ToLower(layout) {
	case "iso", "iso8601":
		layout = ISO8601Layout
	}
	return Now(spec).Format(layout)
}
