// Package field normalizes loosely typed duration input at a storage
// boundary. Text goes through duration.Parse, integers through
// duration.FromMicroseconds, and Duration values pass through unchanged.
package field

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/d-kuro/durfield/pkg/duration"
)

var (
	// ErrUnsupportedType is returned by ValueOf for Go types it cannot classify.
	ErrUnsupportedType = errors.New("unsupported duration input type")
	// ErrNotIntegral is returned for float input with a fractional part.
	ErrNotIntegral = errors.New("microsecond count is not integral")
	// ErrRequired is returned by Field.Clean for null input when the field
	// is neither nullable nor has a default.
	ErrRequired = errors.New("duration is required")
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindMicroseconds
	KindFloat
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindMicroseconds:
		return "microseconds"
	case KindFloat:
		return "float"
	case KindDuration:
		return "duration"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is raw duration input: null, text, an integer or float
// microsecond count, or an already normalized Duration.
type Value struct {
	kind   Kind
	text   string
	micros int64
	float  float64
	dur    duration.Duration
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Text returns a Value holding a duration expression.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Microseconds returns a Value holding a signed microsecond count.
func Microseconds(n int64) Value { return Value{kind: KindMicroseconds, micros: n} }

// Float returns a Value holding a microsecond count as a float, as
// decoded from JSON numbers and some database drivers.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// Of returns a Value holding d.
func Of(d duration.Duration) Value { return Value{kind: KindDuration, dur: d} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// ValueOf classifies a Go value. nil maps to Null; string and []byte to
// Text; signed and unsigned integers to Microseconds; floats to Float;
// time.Duration and duration.Duration (or pointers to them) to a Duration.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return Text(t), nil
	case []byte:
		if t == nil {
			return Null(), nil
		}
		return Text(string(t)), nil
	case duration.Duration:
		return Of(t), nil
	case *duration.Duration:
		if t == nil {
			return Null(), nil
		}
		return Of(*t), nil
	case time.Duration:
		return Of(duration.FromStd(t)), nil
	case *time.Duration:
		if t == nil {
			return Null(), nil
		}
		return Of(duration.FromStd(*t)), nil
	case NullDuration:
		if !t.Valid {
			return Null(), nil
		}
		return Of(t.Duration), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Microseconds(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, fmt.Errorf("%d microseconds: %w", u, duration.ErrOverflow)
		}
		return Microseconds(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	}
	return Value{}, fmt.Errorf("%T: %w", x, ErrUnsupportedType)
}

// Normalize converts v into a NullDuration. Null input and blank text
// give an invalid NullDuration. Floats must be integral and within the
// int64 range.
func (v Value) Normalize() (NullDuration, error) {
	switch v.kind {
	case KindNull:
		return NullDuration{}, nil
	case KindText:
		if strings.TrimSpace(v.text) == "" {
			return NullDuration{}, nil
		}
		d, err := duration.Parse(v.text)
		if err != nil {
			return NullDuration{}, err
		}
		return Valid(d), nil
	case KindMicroseconds:
		return Valid(duration.FromMicroseconds(v.micros)), nil
	case KindFloat:
		n, err := floatMicros(v.float)
		if err != nil {
			return NullDuration{}, err
		}
		return Valid(duration.FromMicroseconds(n)), nil
	case KindDuration:
		return Valid(v.dur), nil
	default:
		return NullDuration{}, fmt.Errorf("unknown value kind %v", v.kind)
	}
}

func floatMicros(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v: %w", f, ErrNotIntegral)
	}
	// 2^63 is exactly representable; anything at or beyond it is out of range.
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v microseconds: %w", f, duration.ErrOverflow)
	}
	return int64(f), nil
}
