package cmd

import (
	"fmt"

	"github.com/d-kuro/durfield/internal/config"
	"github.com/d-kuro/durfield/internal/finder"
	"github.com/d-kuro/durfield/internal/ui"
	"github.com/d-kuro/durfield/pkg/field"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/spf13/cobra"
)

// CommandContext encapsulates common dependencies used across commands.
type CommandContext struct {
	Config  *models.Config
	Printer *ui.Printer
	finder  *finder.Finder // Lazy-loaded
}

// NewCommandContext loads the configuration and builds a printer on the
// command's output stream.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CommandContext{
		Config:  cfg,
		Printer: ui.New(cmd.OutOrStdout(), cfg),
	}, nil
}

// GetFinder returns a finder instance, creating it if needed.
func (ctx *CommandContext) GetFinder() *finder.Finder {
	if ctx.finder == nil {
		ctx.finder = finder.New(&ctx.Config.Finder)
	}
	return ctx.finder
}

// Field builds the field adapter described by the [field] table.
func (ctx *CommandContext) Field() (*field.Field, error) {
	opts, err := config.FieldOptions(ctx.Config)
	if err != nil {
		return nil, err
	}
	return field.New(opts), nil
}

// Presets returns the configured presets ordered by name.
func (ctx *CommandContext) Presets() []models.Preset {
	presets := make([]models.Preset, 0, len(ctx.Config.Presets))
	for name, expr := range ctx.Config.Presets {
		presets = append(presets, models.Preset{Name: name, Expr: expr})
	}
	return finder.SortPresets(presets)
}
