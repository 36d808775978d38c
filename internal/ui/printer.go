// Package ui renders durfield results as styled text, JSON or YAML.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// Printer writes results to an output stream in the configured format.
type Printer struct {
	out    io.Writer
	format models.OutputFormat
	color  bool

	key     lipgloss.Style
	value   lipgloss.Style
	header  lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// New creates a Printer. Color is disabled when NO_COLOR is set or
// cfg.UI.Color is false.
func New(out io.Writer, cfg *models.Config) *Printer {
	format := cfg.Output.Format
	if !format.Valid() {
		format = models.OutputText
	}

	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		format:  format,
		color:   cfg.UI.Color && os.Getenv("NO_COLOR") == "",
		key:     r.NewStyle().Foreground(lipgloss.Color("6")),
		value:   r.NewStyle().Bold(true),
		header:  r.NewStyle().Bold(true).Underline(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		muted:   r.NewStyle().Faint(true),
	}
}

// Format returns the output format in use.
func (p *Printer) Format() models.OutputFormat { return p.format }

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// PrintConversion prints a single conversion as key/value rows.
func (p *Printer) PrintConversion(c models.Conversion) error {
	switch p.format {
	case models.OutputJSON:
		return p.encodeJSON(c)
	case models.OutputYAML:
		return p.encodeYAML(c)
	}

	if c.Error != "" {
		_, err := fmt.Fprintln(p.out, p.paint(p.failure, c.Error))
		return err
	}

	sign := "+"
	if c.Negative {
		sign = "-"
	}
	rows := [][2]string{
		{"input", c.Input},
		{"text", c.Text},
		{"microseconds", strconv.FormatInt(c.Microseconds, 10)},
		{"sign", sign},
		{"days", strconv.FormatInt(c.Days, 10)},
		{"seconds", strconv.FormatInt(c.Seconds, 10)},
		{"micros", strconv.FormatInt(c.Micros, 10)},
	}
	if c.Null {
		rows = [][2]string{{"input", c.Input}, {"text", "null"}}
	}
	return p.printRows(rows)
}

// PrintConversions prints many conversions as a table, or as a list in
// JSON and YAML.
func (p *Printer) PrintConversions(cs []models.Conversion) error {
	switch p.format {
	case models.OutputJSON:
		return p.encodeJSON(cs)
	case models.OutputYAML:
		return p.encodeYAML(cs)
	}

	header := []string{"INPUT", "TEXT", "MICROSECONDS"}
	rows := make([][]string, 0, len(cs))
	failed := make([]bool, 0, len(cs))
	for _, c := range cs {
		switch {
		case c.Error != "":
			rows = append(rows, []string{c.Input, c.Error, ""})
		case c.Null:
			rows = append(rows, []string{c.Input, "null", ""})
		default:
			rows = append(rows, []string{c.Input, c.Text, strconv.FormatInt(c.Microseconds, 10)})
		}
		failed = append(failed, c.Error != "")
	}

	widths := columnWidths(header, rows)
	if _, err := fmt.Fprintln(p.out, p.paint(p.header, strings.TrimRight(joinColumns(header, widths), " "))); err != nil {
		return err
	}
	for i, row := range rows {
		line := strings.TrimRight(joinColumns(row, widths), " ")
		if failed[i] {
			line = p.paint(p.failure, line)
		}
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintText prints a bare line of text, or a {"text": ...} document in
// JSON and YAML.
func (p *Printer) PrintText(text string) error {
	switch p.format {
	case models.OutputJSON:
		return p.encodeJSON(map[string]string{"text": text})
	case models.OutputYAML:
		return p.encodeYAML(map[string]string{"text": text})
	}
	_, err := fmt.Fprintln(p.out, text)
	return err
}

// PrintPresets prints named presets sorted by name.
func (p *Printer) PrintPresets(presets []models.Preset) error {
	sorted := make([]models.Preset, len(presets))
	copy(sorted, presets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	switch p.format {
	case models.OutputJSON:
		return p.encodeJSON(sorted)
	case models.OutputYAML:
		return p.encodeYAML(sorted)
	}

	if len(sorted) == 0 {
		_, err := fmt.Fprintln(p.out, p.paint(p.muted, "no presets configured"))
		return err
	}
	rows := make([][2]string, len(sorted))
	for i, preset := range sorted {
		rows[i] = [2]string{preset.Name, preset.Expr}
	}
	return p.printRows(rows)
}

// PrintConfig prints settings flattened to dotted keys.
func (p *Printer) PrintConfig(settings map[string]any) error {
	switch p.format {
	case models.OutputJSON:
		return p.encodeJSON(settings)
	case models.OutputYAML:
		return p.encodeYAML(settings)
	}

	flat := make(map[string]string)
	flatten("", settings, flat)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][2]string, len(keys))
	for i, k := range keys {
		rows[i] = [2]string{k, flat[k]}
	}
	return p.printRows(rows)
}

func (p *Printer) printRows(rows [][2]string) error {
	width := 0
	for _, row := range rows {
		width = max(width, runewidth.StringWidth(row[0]))
	}
	for _, row := range rows {
		key := p.paint(p.key, runewidth.FillRight(row[0], width))
		if _, err := fmt.Fprintf(p.out, "%s  %s\n", key, p.paint(p.value, row[1])); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encodeJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) encodeYAML(v any) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func joinColumns(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(padded, "  ")
}

func flatten(prefix string, m map[string]any, out map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = fmt.Sprint(v)
	}
}
