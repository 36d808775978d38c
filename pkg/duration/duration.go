// Package duration converts between compact duration expressions such as
// "1Y 10M 3w 2d 3m", signed microsecond counts, and normalized
// (days, seconds, microseconds) values.
//
// Years and months are fixed-length approximations of 365 and 30 days.
// No calendar is consulted.
package duration

import (
	"fmt"
	"math"
	"time"
)

// Unit lengths in microseconds.
const (
	Microsecond int64 = 1
	Second            = 1_000_000 * Microsecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
	Week              = 7 * Day
	Month             = 30 * Day
	Year              = 365 * Day
)

// Duration is a normalized span of time with a single overall sign.
//
// The magnitude is held as days, seconds in [0, 86399] and microseconds
// in [0, 999999]. A negative Duration negates the whole magnitude, not the
// individual fields. The zero value is the zero duration, and two
// Durations denote the same span exactly when they are ==.
type Duration struct {
	neg     bool
	days    int64
	seconds int64
	micros  int64
}

// FromMicroseconds returns the normalized Duration for a signed microsecond
// count. It is defined for every int64, math.MinInt64 included.
func FromMicroseconds(n int64) Duration {
	neg := n < 0
	mag := uint64(n)
	if neg {
		mag = -mag
	}
	return Duration{
		neg:     neg,
		days:    int64(mag / uint64(Day)),
		seconds: int64(mag % uint64(Day) / uint64(Second)),
		micros:  int64(mag % uint64(Second)),
	}
}

// ToMicroseconds returns the signed microsecond count of d.
// FromMicroseconds(ToMicroseconds(d)) == d for every Duration.
func ToMicroseconds(d Duration) int64 {
	mag := uint64(d.days)*uint64(Day) + uint64(d.seconds)*uint64(Second) + uint64(d.micros)
	if d.neg {
		return int64(-mag)
	}
	return int64(mag)
}

// New builds a Duration from components that need not be normalized or
// share a sign; they are summed and then normalized.
// It returns ErrOverflow if the total does not fit in int64 microseconds.
func New(days, seconds, micros int64) (Duration, error) {
	d, ok := mulInt64(days, Day)
	if !ok {
		return Duration{}, fmt.Errorf("%d days: %w", days, ErrOverflow)
	}
	s, ok := mulInt64(seconds, Second)
	if !ok {
		return Duration{}, fmt.Errorf("%d seconds: %w", seconds, ErrOverflow)
	}
	total, ok := addInt64(d, s)
	if ok {
		total, ok = addInt64(total, micros)
	}
	if !ok {
		return Duration{}, fmt.Errorf("%d days %d seconds %d microseconds: %w", days, seconds, micros, ErrOverflow)
	}
	return FromMicroseconds(total), nil
}

// FromStd converts a time.Duration, truncating toward zero below one microsecond.
func FromStd(td time.Duration) Duration {
	return FromMicroseconds(td.Microseconds())
}

// Std converts d to a time.Duration. The boolean is false when d is too
// long to be expressed in nanoseconds.
func (d Duration) Std() (time.Duration, bool) {
	us := ToMicroseconds(d)
	if us > math.MaxInt64/int64(time.Microsecond) || us < math.MinInt64/int64(time.Microsecond) {
		return 0, false
	}
	return time.Duration(us) * time.Microsecond, true
}

// Days returns the whole days of the magnitude.
func (d Duration) Days() int64 { return d.days }

// Seconds returns the seconds of the magnitude past the last whole day.
func (d Duration) Seconds() int64 { return d.seconds }

// Microseconds returns the microseconds of the magnitude past the last whole second.
func (d Duration) Microseconds() int64 { return d.micros }

// Negative reports whether d is less than zero.
func (d Duration) Negative() bool { return d.neg }

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool { return d == Duration{} }

// String returns the canonical text form of d.
func (d Duration) String() string { return Format(d) }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(Format(d)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return p, true
}
