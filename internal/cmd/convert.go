package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/d-kuro/durfield/pkg/field"
	"github.com/spf13/cobra"
	str2duration "github.com/xhit/go-str2duration/v2"
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert <go-duration>",
	Short: "Convert Go duration notation to duration text",
	Long: `Convert Go style duration notation, extended with days and weeks
("1h30m", "2d3h", "1w", "1.5h", "250us"), into canonical duration text.

Values are limited to the range of a Go time.Duration (about 292 years)
and truncated to whole microseconds.`,
	Example: `  durfield convert 1h30m
  durfield convert 2w3d12h`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	d, err := convertGoDuration(args[0])
	if err != nil {
		return err
	}
	return cmdCtx.Printer.PrintConversion(conversionOf(args[0], field.Of(d), d))
}

func convertGoDuration(s string) (duration.Duration, error) {
	in := strings.TrimSpace(s)
	slog.Debug("converting go duration", "input", in)

	td, err := str2duration.ParseDuration(in)
	if err != nil {
		return duration.Duration{}, fmt.Errorf("invalid go duration %q: %w", s, err)
	}
	return duration.FromStd(td), nil
}
