package field

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/d-kuro/durfield/pkg/duration"
	"gopkg.in/yaml.v3"
)

// Options configures how a Field treats null input. There is no
// package-level default; callers pass one explicitly.
type Options struct {
	Nullable bool               // null input stays null instead of failing
	Default  *duration.Duration // substituted for null input when set
}

// Field applies Options to raw input.
type Field struct {
	opts Options
}

// New creates a Field. The default, if any, is copied.
func New(opts Options) *Field {
	if opts.Default != nil {
		d := *opts.Default
		opts.Default = &d
	}
	return &Field{opts: opts}
}

// Options returns the field's options.
func (f *Field) Options() Options { return f.opts }

// Clean classifies x with ValueOf and normalizes it. Null input becomes
// the default when one is configured, stays null when the field is
// nullable, and fails with ErrRequired otherwise.
func (f *Field) Clean(x any) (NullDuration, error) {
	v, err := ValueOf(x)
	if err != nil {
		return NullDuration{}, err
	}
	return f.CleanValue(v)
}

// CleanValue is Clean for an already classified Value.
func (f *Field) CleanValue(v Value) (NullDuration, error) {
	nd, err := v.Normalize()
	if err != nil {
		return NullDuration{}, err
	}
	if nd.Valid {
		return nd, nil
	}
	if f.opts.Default != nil {
		return Valid(*f.opts.Default), nil
	}
	if f.opts.Nullable {
		return NullDuration{}, nil
	}
	return NullDuration{}, ErrRequired
}

// NullDuration is a Duration that may be null. Its database form is an
// int64 microsecond count; its JSON and YAML form is canonical text.
type NullDuration struct {
	Duration duration.Duration
	Valid    bool
}

// Valid returns a non-null NullDuration holding d.
func Valid(d duration.Duration) NullDuration {
	return NullDuration{Duration: d, Valid: true}
}

var (
	_ sql.Scanner      = (*NullDuration)(nil)
	_ driver.Valuer    = NullDuration{}
	_ json.Marshaler   = NullDuration{}
	_ json.Unmarshaler = (*NullDuration)(nil)
	_ yaml.Marshaler   = NullDuration{}
	_ yaml.Unmarshaler = (*NullDuration)(nil)
)

// String returns the canonical text, or "null".
func (n NullDuration) String() string {
	if !n.Valid {
		return "null"
	}
	return duration.Format(n.Duration)
}

// Scan implements sql.Scanner. It accepts anything ValueOf does.
func (n *NullDuration) Scan(src any) error {
	v, err := ValueOf(src)
	if err != nil {
		return fmt.Errorf("scan duration: %w", err)
	}
	nd, err := v.Normalize()
	if err != nil {
		return fmt.Errorf("scan duration: %w", err)
	}
	*n = nd
	return nil
}

// Value implements driver.Valuer, storing microseconds as int64.
func (n NullDuration) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return duration.ToMicroseconds(n.Duration), nil
}

// MarshalJSON implements json.Marshaler.
func (n NullDuration) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(duration.Format(n.Duration))
}

// UnmarshalJSON implements json.Unmarshaler. Strings are parsed as
// duration text and numbers as microseconds.
func (n *NullDuration) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = NullDuration{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var v Value
	switch t := raw.(type) {
	case string:
		v = Text(t)
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return fmt.Errorf("decode duration %s: %w", t, ferr)
			}
			v = Float(f)
		} else {
			v = Microseconds(i)
		}
	default:
		return fmt.Errorf("decode duration %s: %w", data, ErrUnsupportedType)
	}

	nd, err := v.Normalize()
	if err != nil {
		return err
	}
	*n = nd
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (n NullDuration) MarshalYAML() (any, error) {
	if !n.Valid {
		return nil, nil
	}
	return duration.Format(n.Duration), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as UnmarshalJSON.
func (n *NullDuration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("decode duration at line %d: %w", node.Line, ErrUnsupportedType)
	}
	tag := node.ShortTag()
	if tag == "!!null" {
		*n = NullDuration{}
		return nil
	}

	var v Value
	switch tag {
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		v = Microseconds(i)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		v = Float(f)
	default:
		v = Text(node.Value)
	}

	nd, err := v.Normalize()
	if err != nil {
		return err
	}
	*n = nd
	return nil
}
