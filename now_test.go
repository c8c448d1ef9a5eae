package datetools

import (
	"testing"
	"time"

	"github.com/hrygo/datetools/timezone"
)

func TestNowUTCHasZeroOffset(t *testing.T) {
	now := Now(timezone.UTCZone())
	if _, offset := now.Zone(); offset != 0 {
		t.Errorf("Now(utc) offset = %d, want 0", offset)
	}
}

func TestNowLocalSameInstant(t *testing.T) {
	local := Now(timezone.LocalZone())
	utc := Now(timezone.UTCZone())

	if local.Location() != timezone.Current() {
		t.Errorf("Now(local) location = %v, want %v", local.Location(), timezone.Current())
	}
	// Same instant, different representation.
	if diff := utc.Sub(local); diff < -2*time.Second || diff > 2*time.Second {
		t.Errorf("Now(local) and Now(utc) differ by %v as instants", diff)
	}
}

func TestNowUnspecifiedUsesCurrentZone(t *testing.T) {
	now := Now(timezone.Spec{})
	if now.Location() != timezone.Current() {
		t.Errorf("Now(unspecified) location = %v, want current zone", now.Location())
	}
}

func TestNowFormatted(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		parse  string
	}{
		{"iso shorthand", "iso", ISO8601Layout},
		{"ISO8601 shorthand", "ISO8601", ISO8601Layout},
		{"explicit layout", "2006-01-02 15:04", "2006-01-02 15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NowFormatted(timezone.UTCZone(), tt.layout)
			if _, err := time.Parse(tt.parse, got); err != nil {
				t.Errorf("NowFormatted(%q) = %q, not parseable as %q: %v", tt.layout, got, tt.parse, err)
			}
		})
	}
}
