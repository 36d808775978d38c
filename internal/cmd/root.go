// Package cmd implements the durfield command tree.
package cmd

import (
	"io"
	"log/slog"

	"github.com/d-kuro/durfield/internal/config"
	"github.com/d-kuro/durfield/internal/utils"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	outputFlag string
	noColor    bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "durfield",
	Short: "Parse, format and normalize duration fields",
	Long: `durfield converts durations between a compact text form
("1d 2h 30m", "24 days", "90s 250") and a signed 64-bit count of
microseconds, the form in which duration fields are stored.

Units are case-sensitive: Y (365 days), M (30 days), w, d or days, h, m, s.
A trailing bare number is microseconds. Each token carries its own sign,
so "-1d 2h" is minus 22 hours.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/durfield/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(models.OutputText), string(models.OutputJSON), string(models.OutputYAML)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// initConfig loads configuration and applies the global flags on top of it.
func initConfig(cmd *cobra.Command, args []string) error {
	setupLogger(cmd.ErrOrStderr(), verbose)

	if err := config.Init(cfgFile); err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		viper.Set("output.format", outputFlag)
	}
	if noColor {
		viper.Set("ui.color", false)
	}

	slog.Debug("configuration loaded", "file", utils.TildePath(viper.ConfigFileUsed()))
	return nil
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
