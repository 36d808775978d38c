package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d-kuro/durfield/internal/config"
	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/d-kuro/durfield/pkg/field"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

// presetCmd represents the preset command.
var presetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Show a named duration preset",
	Long: `Show a duration preset from the [presets] configuration table.

Without a name, a fuzzy finder lists the configured presets.`,
	Example: `  # Define a preset
  durfield config set presets.sprint 2w

  # Show it
  durfield preset sprint

  # Pick one interactively
  durfield preset

  # List all presets
  durfield preset --list`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runPreset,
	ValidArgsFunction: getPresetCompletions,
}

var presetList bool

func init() {
	rootCmd.AddCommand(presetCmd)

	presetCmd.Flags().BoolVarP(&presetList, "list", "l", false, "List all presets")
}

func runPreset(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	presets := cmdCtx.Presets()
	if presetList {
		return cmdCtx.Printer.PrintPresets(presets)
	}

	var selected *models.Preset
	if len(args) == 1 {
		selected, err = lookupPreset(presets, args[0])
		if err != nil {
			return err
		}
	} else {
		selected, err = cmdCtx.GetFinder().SelectPreset(presets)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to select preset: %w", err)
		}
	}

	d, err := duration.Parse(selected.Expr)
	if err != nil {
		return fmt.Errorf("preset %s: %w", selected.Name, err)
	}
	return cmdCtx.Printer.PrintConversion(conversionOf(selected.Expr, field.Text(selected.Expr), d))
}

// lookupPreset finds a preset by name. Names are compared
// case-insensitively since viper lowercases configuration keys.
func lookupPreset(presets []models.Preset, name string) (*models.Preset, error) {
	for i := range presets {
		if strings.EqualFold(presets[i].Name, name) {
			return &presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset '%s' not found - use 'durfield preset --list' to see available presets", name)
}

func getPresetCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	// Completion runs without the root pre-run hook.
	if err := config.Init(cfgFile); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, p := range cmdCtx.Presets() {
		if strings.HasPrefix(p.Name, toComplete) {
			names = append(names, p.Name+"\t"+p.Expr)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
