// Package finder provides fuzzy finder integration for the durfield application.
package finder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/ktr0731/go-fuzzyfinder"
)

// Finder provides fuzzy finder functionality.
type Finder struct {
	config *models.FinderConfig
}

// New creates a new Finder instance.
func New(config *models.FinderConfig) *Finder {
	return &Finder{config: config}
}

// SelectPreset displays a fuzzy finder for preset selection.
func (f *Finder) SelectPreset(presets []models.Preset) (*models.Preset, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("no presets available for selection")
	}

	sorted := SortPresets(presets)

	opts := []fuzzyfinder.Option{
		fuzzyfinder.WithPromptString("Select preset> "),
	}

	if f.config != nil && f.config.Preview {
		opts = append(opts, fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return generatePresetPreview(sorted[i], h)
		}))
	}

	idx, err := fuzzyfinder.Find(
		sorted,
		func(i int) string {
			return formatPresetForDisplay(sorted[i])
		},
		opts...,
	)

	if err != nil {
		return nil, err
	}

	return &sorted[idx], nil
}

// SortPresets returns a copy of presets ordered by name.
func SortPresets(presets []models.Preset) []models.Preset {
	sorted := make([]models.Preset, len(presets))
	copy(sorted, presets)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}

// formatPresetForDisplay formats a preset entry for display in the fuzzy finder.
func formatPresetForDisplay(p models.Preset) string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Expr)
}

// generatePresetPreview generates preview content for a preset.
func generatePresetPreview(p models.Preset, maxLines int) string {
	preview := []string{
		fmt.Sprintf("Preset: %s", p.Name),
		fmt.Sprintf("Expression: %s", p.Expr),
	}

	d, err := duration.Parse(p.Expr)
	if err != nil {
		preview = append(preview, fmt.Sprintf("Error: %v", err))
	} else {
		preview = append(preview,
			fmt.Sprintf("Canonical: %s", duration.Format(d)),
			fmt.Sprintf("Microseconds: %d", duration.ToMicroseconds(d)),
			fmt.Sprintf("Days: %d", d.Days()),
			fmt.Sprintf("Seconds: %d", d.Seconds()),
		)
	}

	return strings.Join(preview[:min(len(preview), max(maxLines, 0))], "\n")
}
