// Package batch normalizes many raw field inputs concurrently.
package batch

import (
	"context"
	"runtime"
	"strconv"
	"strings"

	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/d-kuro/durfield/pkg/field"
	"github.com/d-kuro/durfield/pkg/models"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of normalizing one input.
type Result struct {
	Input    string
	Value    field.Value
	Duration field.NullDuration
	Err      error
}

// Conversion renders r for output.
func (r Result) Conversion() models.Conversion {
	c := models.Conversion{
		Input: r.Input,
		Kind:  r.Value.Kind().String(),
	}
	if r.Err != nil {
		c.Error = r.Err.Error()
		return c
	}
	if !r.Duration.Valid {
		c.Null = true
		return c
	}

	d := r.Duration.Duration
	c.Text = duration.Format(d)
	c.Microseconds = duration.ToMicroseconds(d)
	c.Negative = d.Negative()
	c.Days = d.Days()
	c.Seconds = d.Seconds()
	c.Micros = d.Microseconds()
	return c
}

// Classify turns a raw command-line or stdin input into a field.Value.
// Integer literals are microsecond counts, other numeric literals are
// float microsecond counts, blank input is null, and everything else is
// duration text.
func Classify(raw string) field.Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return field.Null()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return field.Microseconds(n)
	}
	// Decimal-looking input such as "1.5" or "1e6" is a float count; plain
	// digit strings that overflow int64 stay text so Parse reports them.
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return field.Float(f)
		}
	}
	return field.Text(s)
}

// Workers returns the worker count for n, treating 0 as one per CPU.
func Workers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Normalize classifies and cleans every input with f, using up to
// workers goroutines. Results keep input order. Per-input failures are
// reported in Result.Err; the returned error is non-nil only when ctx
// is canceled.
func Normalize(ctx context.Context, f *field.Field, inputs []string, workers int) ([]Result, error) {
	results := make([]Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))

	for i, raw := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v := Classify(raw)
			nd, err := f.CleanValue(v)
			results[i] = Result{Input: raw, Value: v, Duration: nd, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
