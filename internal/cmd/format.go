package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/spf13/cobra"
)

// formatCmd represents the format command.
var formatCmd = &cobra.Command{
	Use:   "format <microseconds>",
	Short: "Format a microsecond count as duration text",
	Long:  `Print the canonical duration text for a signed count of microseconds.`,
	Example: `  # 10 hours 23 minutes
  durfield format 37380000000

  # Negative counts
  durfield format -- -86400000001`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid microsecond count %q: %w", args[0], err)
	}
	slog.Debug("formatting duration", "microseconds", n)

	return cmdCtx.Printer.PrintText(duration.Format(duration.FromMicroseconds(n)))
}
