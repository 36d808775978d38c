package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/d-kuro/durfield/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestPrinter(format models.OutputFormat) (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &models.Config{
		Output: models.OutputConfig{Format: format},
		UI:     models.UIConfig{Color: false},
	}
	return New(&buf, cfg), &buf
}

var sample = models.Conversion{
	Input:        "1Y 10M 3w 2d 3m",
	Kind:         "text",
	Text:         "688d 3m",
	Microseconds: 59443380000000,
	Days:         688,
	Seconds:      180,
}

func TestPrintConversion_Text(t *testing.T) {
	p, buf := newTestPrinter(models.OutputText)
	require.NoError(t, p.PrintConversion(sample))

	want := strings.Join([]string{
		"input         1Y 10M 3w 2d 3m",
		"text          688d 3m",
		"microseconds  59443380000000",
		"sign          +",
		"days          688",
		"seconds       180",
		"micros        0",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrintConversion_Null(t *testing.T) {
	p, buf := newTestPrinter(models.OutputText)
	require.NoError(t, p.PrintConversion(models.Conversion{Input: "", Null: true}))
	assert.Equal(t, "input  \ntext   null\n", buf.String())
}

func TestPrintConversion_JSON(t *testing.T) {
	p, buf := newTestPrinter(models.OutputJSON)
	require.NoError(t, p.PrintConversion(sample))

	var got models.Conversion
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
}

func TestPrintConversion_YAML(t *testing.T) {
	p, buf := newTestPrinter(models.OutputYAML)
	require.NoError(t, p.PrintConversion(sample))

	var got models.Conversion
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample, got)
	assert.Contains(t, buf.String(), "text: 688d 3m\n")
}

func TestPrintConversions_Table(t *testing.T) {
	p, buf := newTestPrinter(models.OutputText)
	err := p.PrintConversions([]models.Conversion{
		{Input: "24 days", Text: "24d", Microseconds: 2073600000000},
		{Input: "5x", Error: `invalid token "5x"`},
		{Input: "", Null: true},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "INPUT    TEXT                MICROSECONDS", lines[0])
	assert.Equal(t, "24 days  24d                 2073600000000", lines[1])
	assert.Equal(t, `5x       invalid token "5x"`, lines[2])
	assert.Equal(t, "         null", lines[3])
}

func TestPrintPresets(t *testing.T) {
	p, buf := newTestPrinter(models.OutputText)
	require.NoError(t, p.PrintPresets([]models.Preset{
		{Name: "sprint", Expr: "2w"},
		{Name: "quarter", Expr: "3M"},
	}))
	assert.Equal(t, "quarter  3M\nsprint   2w\n", buf.String())

	p, buf = newTestPrinter(models.OutputText)
	require.NoError(t, p.PrintPresets(nil))
	assert.Equal(t, "no presets configured\n", buf.String())
}

func TestPrintConfig(t *testing.T) {
	p, buf := newTestPrinter(models.OutputText)
	require.NoError(t, p.PrintConfig(map[string]any{
		"output": map[string]any{"format": "text"},
		"field":  map[string]any{"default": "1h", "nullable": true},
	}))
	assert.Equal(t, "field.default   1h\nfield.nullable  true\noutput.format   text\n", buf.String())
}

func TestPrintText(t *testing.T) {
	p, buf := newTestPrinter(models.OutputText)
	require.NoError(t, p.PrintText("1d 2h"))
	assert.Equal(t, "1d 2h\n", buf.String())

	p, buf = newTestPrinter(models.OutputJSON)
	require.NoError(t, p.PrintText("1d 2h"))
	assert.JSONEq(t, `{"text":"1d 2h"}`, buf.String())
}

func TestNew_InvalidFormatFallsBackToText(t *testing.T) {
	p, _ := newTestPrinter(models.OutputFormat("xml"))
	assert.Equal(t, models.OutputText, p.Format())
}
