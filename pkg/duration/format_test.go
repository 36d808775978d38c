package duration

import (
	"math"
	"testing"
	"testing/quick"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		micros int64
		want   string
	}{
		{"zero", 0, "0s"},
		{"one microsecond", 1, "1"},
		{"one second", Second, "1s"},
		{"one hour", Hour, "1h"},
		{"ten hours", 10 * Hour, "10h"},
		{"hours and minutes", 10*Hour + 35*Minute, "10h 35m"},
		{"one day", Day, "1d"},
		{"ten days", 10 * Day, "10d"},
		{"year folds into days", Year, "365d"},
		{"every unit", 2*Day + 3*Hour + 4*Minute + 5*Second + 6, "2d 3h 4m 5s 6"},
		{"skips zero units", Day + 7, "1d 7"},
		{"negative", -(Day + 2*Hour), "-1d -2h"},
		{"negative microseconds", -1, "-1"},
		{"max", math.MaxInt64, "106751991d 4h 54s 775807"},
		{"min", math.MinInt64, "-106751991d -4h -54s -775808"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(FromMicroseconds(tt.micros))
			if got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.micros, got, tt.want)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	// Values from the original field tests plus edge cases.
	values := []int64{
		0, 1, -1, Hour, 10 * Hour, 10*Hour + 35*Minute, Day, 10 * Day,
		Day - 1, -(Day - 1), Year + Month + Week, math.MaxInt64, math.MinInt64,
		math.MaxInt64 - 1, math.MinInt64 + 1,
	}
	for _, n := range values {
		v := FromMicroseconds(n)
		got, err := Parse(Format(v))
		if err != nil {
			t.Errorf("Parse(Format(%d)) error = %v", n, err)
			continue
		}
		if got != v {
			t.Errorf("Parse(Format(%d)) = %+v, want %+v", n, got, v)
		}
	}

	roundTrip := func(n int64) bool {
		v := FromMicroseconds(n)
		got, err := Parse(Format(v))
		return err == nil && got == v
	}
	if err := quick.Check(roundTrip, &quick.Config{MaxCount: 5000}); err != nil {
		t.Error(err)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	idempotent := func(n int64) bool {
		text := Format(FromMicroseconds(n))
		v, err := Parse(text)
		return err == nil && Format(v) == text
	}
	if err := quick.Check(idempotent, &quick.Config{MaxCount: 5000}); err != nil {
		t.Error(err)
	}
}

func TestFormat_NonCanonicalInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"24 days", "24d"},
		{"1Y 10M 3w 2d 3m", "688d 3m"},
		{"90m", "1h 30m"},
		{"-1d 2h", "-22h"},
		{"0m", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := Format(v); got != tt.want {
				t.Errorf("Format(Parse(%q)) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
