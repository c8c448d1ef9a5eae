// Package timezone resolves flexible timezone specifiers into concrete
// *time.Location values.
//
// A Spec is a tagged variant over the four ways callers may indicate a
// timezone: unspecified, the process's configured current zone ("local"),
// UTC, or an explicit location. Resolution is total: every well-formed
// Spec resolves to a location without an error return.
package timezone

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// UTC is the coordinated universal time location.
var UTC = time.UTC

type specKind int

const (
	kindUnset specKind = iota
	kindLocal
	kindUTC
	kindExplicit
)

// Spec identifies a target timezone. The zero value means "unspecified",
// which resolves to the process's current zone, same as LocalZone().
type Spec struct {
	kind specKind
	loc  *time.Location
}

// LocalZone returns a Spec for the process's configured current zone.
func LocalZone() Spec {
	return Spec{kind: kindLocal}
}

// UTCZone returns a Spec for UTC.
func UTCZone() Spec {
	return Spec{kind: kindUTC}
}

// Zone returns a Spec for an explicit location. A nil location yields the
// zero (unspecified) Spec.
func Zone(loc *time.Location) Spec {
	if loc == nil {
		return Spec{}
	}
	return Spec{kind: kindExplicit, loc: loc}
}

// ParseSpec converts a string timezone expression into a Spec.
// Empty strings and the markers "local", "true" and "1" mean the current
// zone, "utc" means UTC, anything else is treated as an IANA identifier.
// Matching is case-insensitive.
func ParseSpec(tz string) (Spec, error) {
	switch strings.ToLower(strings.TrimSpace(tz)) {
	case "", "local", "true", "1":
		return LocalZone(), nil
	case "utc":
		return UTCZone(), nil
	}
	loc, err := ParseTimezone(tz)
	if err != nil {
		return Spec{}, err
	}
	return Zone(loc), nil
}

// IsZero reports whether s is the unspecified Spec.
func (s Spec) IsZero() bool {
	return s.kind == kindUnset
}

// Resolve maps s to a concrete location. Unspecified and local Specs
// resolve to Current(), which requires the current zone to be configured.
func (s Spec) Resolve() *time.Location {
	switch s.kind {
	case kindUTC:
		return UTC
	case kindExplicit:
		return s.loc
	default:
		return Current()
	}
}

func (s Spec) String() string {
	switch s.kind {
	case kindUTC:
		return "utc"
	case kindExplicit:
		return s.loc.String()
	default:
		return "local"
	}
}

// current holds the process-wide current zone. It is read-mostly: set once
// during startup (profile.Apply or SetCurrent) and read by any number of
// concurrent callers.
var current atomic.Pointer[time.Location]

// SetCurrent installs loc as the process's current zone.
func SetCurrent(loc *time.Location) {
	if loc == nil {
		panic("timezone: SetCurrent called with nil location")
	}
	current.Store(loc)
}

// SetCurrentName installs the zone with the given IANA identifier as the
// process's current zone.
func SetCurrentName(tz string) error {
	loc, err := ParseTimezone(tz)
	if err != nil {
		return err
	}
	SetCurrent(loc)
	return nil
}

// Current returns the process's current zone. It panics if no zone has
// been configured: a missing current zone is a setup bug, and silently
// defaulting to UTC would mask it.
func Current() *time.Location {
	loc := current.Load()
	if loc == nil {
		panic("timezone: current timezone not configured (call SetCurrent or profile.Apply during startup)")
	}
	return loc
}

// ParseTimezone parses an IANA timezone identifier (e.g. "Asia/Shanghai").
// If the timezone is invalid, returns UTC and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" || tz == "UTC" {
		return UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return UTC, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}

	return loc, nil
}

// MustParseTimezone parses a timezone or panics if invalid.
// Use this for identifiers that are known to be valid at compile time.
func MustParseTimezone(tz string) *time.Location {
	loc, err := ParseTimezone(tz)
	if err != nil {
		panic(err)
	}
	return loc
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "UTC" {
		return true
	}

	_, err := time.LoadLocation(tz)
	return err == nil
}
