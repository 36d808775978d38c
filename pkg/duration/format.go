package duration

import (
	"strconv"
	"strings"
)

// Format returns the canonical text of d: days, hours, minutes, seconds
// and a trailing bare microsecond count, zero units omitted. A negative
// duration carries the sign on every token so that Parse reads it back
// unchanged. The zero duration formats as "0s".
//
// Format never emits years, months or weeks.
func Format(d Duration) string {
	if d.IsZero() {
		return "0s"
	}

	sign := ""
	if d.neg {
		sign = "-"
	}

	parts := make([]string, 0, 5)
	add := func(n int64, unit string) {
		if n != 0 {
			parts = append(parts, sign+strconv.FormatInt(n, 10)+unit)
		}
	}

	add(d.days, "d")
	add(d.seconds/3600, "h")
	add(d.seconds%3600/60, "m")
	add(d.seconds%60, "s")
	add(d.micros, "")

	return strings.Join(parts, " ")
}
