package datetools

import (
	"testing"
	"time"

	"github.com/hrygo/datetools/timezone"
)

func TestMidnightClockTime(t *testing.T) {
	loc := timezone.MustParseTimezone("America/New_York")
	setCurrent(t, loc)

	in := time.Date(2025, 6, 15, 17, 45, 12, 0, loc)

	tests := []struct {
		name    string
		offset  int
		wantDay int
	}{
		{"last midnight", 0, 15},
		{"next midnight", 1, 16},
		{"two days ahead", 2, 17},
		{"previous day", -1, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Midnight(in, tt.offset)
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("Midnight() clock = %02d:%02d:%02d, want 00:00:00", got.Hour(), got.Minute(), got.Second())
			}
			if got.Day() != tt.wantDay {
				t.Errorf("Midnight() day = %d, want %d", got.Day(), tt.wantDay)
			}
			if got.Location() != loc {
				t.Errorf("Midnight() location = %v, want %v", got.Location(), loc)
			}
		})
	}
}

// TestMidnightUsesLocalDate checks that the input is converted to the
// current zone before its calendar date is taken.
func TestMidnightUsesLocalDate(t *testing.T) {
	loc := timezone.MustParseTimezone("America/New_York")
	setCurrent(t, loc)

	// 03:00 UTC on Mar 9 is still 22:00 on Mar 8 in New York.
	in := time.Date(2025, 3, 9, 3, 0, 0, 0, time.UTC)
	got := Midnight(in, 0)
	if got.Day() != 8 {
		t.Errorf("Midnight() day = %d, want 8 (the local date)", got.Day())
	}
}

// TestMidnightAcrossDSTTransition checks that stepping one midnight at a
// time advances exactly one calendar day even when the day is 23 or 25
// hours long.
func TestMidnightAcrossDSTTransition(t *testing.T) {
	loc := timezone.MustParseTimezone("America/New_York")
	setCurrent(t, loc)

	// DST starts Mar 9 2025 in New York: that day is 23 hours long.
	in := time.Date(2025, 3, 8, 15, 0, 0, 0, loc)

	m0 := Midnight(in, 0)
	m1 := Midnight(in, 1)
	m2 := Midnight(in, 2)

	if m1.Day() != 9 || m2.Day() != 10 {
		t.Fatalf("midnights on days %d, %d; want 9, 10", m1.Day(), m2.Day())
	}
	if d := m1.Sub(m0); d != 24*time.Hour {
		t.Errorf("Mar 8 length = %v, want 24h", d)
	}
	if d := m2.Sub(m1); d != 23*time.Hour {
		t.Errorf("Mar 9 (spring forward) length = %v, want 23h", d)
	}

	// Step relation: the next midnight of the last midnight is the next
	// midnight of the original instant.
	if got := Midnight(m0, 1); !got.Equal(m1) {
		t.Errorf("Midnight(Midnight(t,0),1) = %v, want %v", got, m1)
	}
}

func TestLastAndNextMidnight(t *testing.T) {
	loc := timezone.MustParseTimezone("Asia/Shanghai")
	setCurrent(t, loc)

	in := time.Date(2024, 10, 1, 12, 0, 0, 0, loc)
	if got := LastMidnight(in); !got.Equal(Midnight(in, 0)) {
		t.Errorf("LastMidnight() = %v, want %v", got, Midnight(in, 0))
	}
	if got := NextMidnight(in); !got.Equal(Midnight(in, 1)) {
		t.Errorf("NextMidnight() = %v, want %v", got, Midnight(in, 1))
	}
}
