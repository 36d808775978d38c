package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/d-kuro/durfield/pkg/field"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  field.Kind
	}{
		{"", field.KindNull},
		{"   ", field.KindNull},
		{"3600000000", field.KindMicroseconds},
		{"-5", field.KindMicroseconds},
		{"1.5", field.KindFloat},
		{"1e6", field.KindFloat},
		{"1d 2h", field.KindText},
		{"24 days", field.KindText},
		{"99999999999999999999", field.KindText},
		{"5x", field.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input).Kind(); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, runtime.NumCPU()},
		{-3, runtime.NumCPU()},
		{2, 2},
	}

	for _, tt := range tests {
		if got := Workers(tt.n); got != tt.want {
			t.Errorf("Workers(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	def := duration.FromMicroseconds(duration.Hour)
	f := field.New(field.Options{Default: &def})

	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "10h 23m", want: "10h 23m"},
		{input: "86400000000", want: "1d"},
		{input: "", want: "1h"}, // null takes the default
		{input: "5x", wantErr: duration.ErrInvalidToken},
		{input: "1.5", wantErr: field.ErrNotIntegral},
		{input: "99999999999999999999", wantErr: duration.ErrOverflow},
	}

	inputs := make([]string, len(tests))
	for i, tt := range tests {
		inputs[i] = tt.input
	}

	results, err := Normalize(context.Background(), f, inputs, 2)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(results) != len(tests) {
		t.Fatalf("Normalize() returned %d results, want %d", len(results), len(tests))
	}

	for i, tt := range tests {
		r := results[i]
		if r.Input != tt.input {
			t.Errorf("results[%d].Input = %q, want %q (input order)", i, r.Input, tt.input)
		}
		if tt.wantErr != nil {
			if !errors.Is(r.Err, tt.wantErr) {
				t.Errorf("results[%d].Err = %v, want %v", i, r.Err, tt.wantErr)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v", i, r.Err)
			continue
		}
		if got := r.Conversion().Text; got != tt.want {
			t.Errorf("results[%d] = %s, want %s", i, got, tt.want)
		}
	}
}

func TestNormalize_Many(t *testing.T) {
	f := field.New(field.Options{Nullable: true})

	inputs := make([]string, 500)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("%dd %dh", i, i%24)
	}

	results, err := Normalize(context.Background(), f, inputs, 8)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for i, r := range results {
		if r.Err != nil {
			t.Fatalf("results[%d].Err = %v", i, r.Err)
		}
		d := r.Duration.Duration
		if d.Days() != int64(i) || d.Seconds() != int64(i%24*3600) {
			t.Errorf("results[%d] = %s, want %s", i, d, inputs[i])
		}
	}
}

func TestNormalize_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Normalize(ctx, field.New(field.Options{}), []string{"1h"}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Normalize() error = %v, want context.Canceled", err)
	}
}

func TestResult_Conversion(t *testing.T) {
	r := Result{
		Input:    "-1d 2h",
		Value:    field.Text("-1d 2h"),
		Duration: field.Valid(duration.FromMicroseconds(-22 * duration.Hour)),
	}
	c := r.Conversion()
	if c.Kind != "text" || c.Text != "-22h" {
		t.Errorf("Conversion() kind/text = %s/%s, want text/-22h", c.Kind, c.Text)
	}
	if c.Microseconds != -22*duration.Hour || !c.Negative {
		t.Errorf("Conversion() microseconds = %d negative = %v", c.Microseconds, c.Negative)
	}
	if c.Days != 0 || c.Seconds != 22*3600 {
		t.Errorf("Conversion() days/seconds = %d/%d, want 0/79200", c.Days, c.Seconds)
	}

	null := Result{Input: "", Value: field.Null()}.Conversion()
	if !null.Null || null.Kind != "null" {
		t.Errorf("Conversion() of null = %+v", null)
	}

	failed := Result{Input: "5x", Value: field.Text("5x"), Err: errors.New("boom")}.Conversion()
	if failed.Error != "boom" || failed.Text != "" {
		t.Errorf("Conversion() of failure = %+v", failed)
	}
}
