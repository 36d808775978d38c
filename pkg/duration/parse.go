package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned when the input holds no tokens.
	ErrEmpty = errors.New("empty duration string")
	// ErrInvalidToken is returned for a token outside the grammar, unknown
	// unit suffixes included.
	ErrInvalidToken = errors.New("invalid token")
	// ErrOverflow is returned when a value does not fit in int64 microseconds.
	ErrOverflow = errors.New("value out of range")
)

// ParseError describes a failed Parse. Err is one of ErrEmpty,
// ErrInvalidToken or ErrOverflow.
type ParseError struct {
	Input string // the full text passed to Parse
	Token string // the offending token, empty for ErrEmpty
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid duration %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid duration %q: %v %q", e.Input, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// daysWord is the long spelling of the day suffix. It may also stand
// alone after a bare number, as in "24 days".
const daysWord = "days"

// tokenRegex matches a single token: optional sign, digits, optional unit.
var tokenRegex = regexp.MustCompile(`^([+-]?)([0-9]+)(Y|M|w|days|d|h|m|s)?$`)

// units maps a case-sensitive suffix to its length in microseconds.
// The empty suffix is a bare microsecond count.
var units = map[string]int64{
	"Y":      Year,
	"M":      Month,
	"w":      Week,
	"d":      Day,
	daysWord: Day,
	"h":      Hour,
	"m":      Minute,
	"s":      Second,
	"":       Microsecond,
}

// Parse parses a whitespace-separated duration expression such as
// "1Y 10M 3w 2d 3m" or "24 days".
//
// Each token is <sign><digits><unit>, where unit is one of Y, M, w, d,
// days, h, m or s (case-sensitive). Bare digits without a unit are
// microseconds and are accepted only as the last token, or when followed
// by the word "days".
//
// A sign applies to its own token only: "-1d 2h" is 22 hours below zero,
// and "-1d -2h" is 26 hours below zero.
func Parse(s string) (Duration, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Duration{}, &ParseError{Input: s, Err: ErrEmpty}
	}

	var total int64
	for i := 0; i < len(fields); i++ {
		token := fields[i]
		m := tokenRegex.FindStringSubmatch(token)
		if m == nil {
			return Duration{}, &ParseError{Input: s, Token: token, Err: ErrInvalidToken}
		}

		unit := m[3]
		if unit == "" {
			switch {
			case i+1 < len(fields) && fields[i+1] == daysWord:
				i++
				unit = daysWord
				token += " " + daysWord
			case i == len(fields)-1:
			default:
				return Duration{}, &ParseError{Input: s, Token: token, Err: ErrInvalidToken}
			}
		}

		v, ok := contribution(m[1] == "-", m[2], units[unit])
		if ok {
			total, ok = addInt64(total, v)
		}
		if !ok {
			return Duration{}, &ParseError{Input: s, Token: token, Err: ErrOverflow}
		}
	}

	return FromMicroseconds(total), nil
}

// contribution returns the signed microseconds of digits*factor, or false
// if the product leaves the int64 range.
func contribution(neg bool, digits string, factor int64) (int64, bool) {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		// The regexp guarantees digits, so this is a range error.
		return 0, false
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if n > limit/uint64(factor) {
		return 0, false
	}

	mag := n * uint64(factor)
	if neg {
		return int64(-mag), true
	}
	return int64(mag), true
}
