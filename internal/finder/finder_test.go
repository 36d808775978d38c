package finder

import (
	"testing"

	"github.com/d-kuro/durfield/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestSelectPreset_Empty(t *testing.T) {
	f := New(&models.FinderConfig{Preview: true})
	_, err := f.SelectPreset(nil)
	assert.EqualError(t, err, "no presets available for selection")
}

func TestSortPresets(t *testing.T) {
	presets := []models.Preset{
		{Name: "sprint", Expr: "2w"},
		{Name: "quarter", Expr: "3M"},
		{Name: "day", Expr: "24 days"},
	}
	sorted := SortPresets(presets)

	assert.Equal(t, []models.Preset{
		{Name: "day", Expr: "24 days"},
		{Name: "quarter", Expr: "3M"},
		{Name: "sprint", Expr: "2w"},
	}, sorted)
	assert.Equal(t, "sprint", presets[0].Name, "SortPresets should not modify its input")
}

func TestFormatPresetForDisplay(t *testing.T) {
	assert.Equal(t, "sprint (2w)", formatPresetForDisplay(models.Preset{Name: "sprint", Expr: "2w"}))
}

func TestGeneratePresetPreview(t *testing.T) {
	tests := []struct {
		name     string
		preset   models.Preset
		maxLines int
		want     string
	}{
		{
			name:     "valid expression",
			preset:   models.Preset{Name: "sprint", Expr: "2w"},
			maxLines: 10,
			want:     "Preset: sprint\nExpression: 2w\nCanonical: 14d\nMicroseconds: 1209600000000\nDays: 14\nSeconds: 0",
		},
		{
			name:     "truncated",
			preset:   models.Preset{Name: "sprint", Expr: "2w"},
			maxLines: 2,
			want:     "Preset: sprint\nExpression: 2w",
		},
		{
			name:     "invalid expression",
			preset:   models.Preset{Name: "broken", Expr: "5x"},
			maxLines: 10,
			want:     "Preset: broken\nExpression: 5x\nError: invalid duration \"5x\": invalid token \"5x\"",
		},
		{
			name:     "no room",
			preset:   models.Preset{Name: "sprint", Expr: "2w"},
			maxLines: -1,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generatePresetPreview(tt.preset, tt.maxLines))
		})
	}
}
