package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/d-kuro/durfield/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Manage durfield configuration settings.`,
}

// configListCmd represents the config list command.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configuration",
	Long:  `Display all current configuration settings.`,
	Example: `  # Show all configuration
  durfield config list`,
	RunE: runConfigList,
}

// configSetCmd represents the config set command.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set configuration value",
	Long: `Set a configuration value.

Configuration keys follow a dot notation format (e.g., field.default).
Duration values are checked before they are written.`,
	Example: `  # Substitute one hour for null input
  durfield config set field.default 1h

  # Reject null input
  durfield config set field.nullable false

  # Add a preset to the local config only
  durfield config set --local presets.sprint 2w`,
	Args:              cobra.ExactArgs(2),
	RunE:              runConfigSet,
	ValidArgsFunction: getConfigKeyCompletions,
}

// configGetCmd represents the config get command.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get configuration value",
	Long:  `Get a specific configuration value.`,
	Example: `  # Get the null substitute
  durfield config get field.default

  # Get the output format
  durfield config get output.format`,
	Args:              cobra.ExactArgs(1),
	RunE:              runConfigGet,
	ValidArgsFunction: getConfigKeyCompletions,
}

var configSetLocal bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)

	configSetCmd.Flags().BoolVar(&configSetLocal, "local", false, "Write to local config (.durfield.toml) instead of global")
}

func runConfigList(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	return cmdCtx.Printer.PrintConfig(config.AllSettings())
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	typedValue := typedConfigValue(key, args[1])

	if err := config.ValidateValue(key, typedValue); err != nil {
		return err
	}

	var err error
	if configSetLocal {
		err = config.SetLocal(key, typedValue)
	} else {
		err = config.SetGlobal(key, typedValue)
	}

	if err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	target := "global"
	if configSetLocal {
		target = "local (.durfield.toml)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v (%s)\n", key, typedValue, target)
	return nil
}

// typedConfigValue converts booleans and integers from their string form.
// Duration expressions always stay strings: "90" is ninety microseconds
// of text, not a number.
func typedConfigValue(key, value string) any {
	if key == "field.default" || strings.HasPrefix(key, "presets.") {
		return value
	}

	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := config.GetValue(key)

	if value == nil {
		return fmt.Errorf("configuration key '%s' not found - use 'durfield config list' to see available keys", key)
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// configKeys lists the settable keys offered for completion.
var configKeys = []string{
	"batch.workers",
	"field.default",
	"field.nullable",
	"finder.preview",
	"output.format",
	"ui.color",
}

func getConfigKeyCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	keys := append([]string(nil), configKeys...)
	if err := config.Init(cfgFile); err == nil {
		for _, key := range config.Keys() {
			if strings.HasPrefix(key, "presets.") {
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)

	var matches []string
	for _, key := range keys {
		if strings.HasPrefix(key, toComplete) {
			matches = append(matches, key)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
