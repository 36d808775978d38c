package cmd

import (
	"log/slog"
	"strings"

	"github.com/d-kuro/durfield/internal/batch"
	"github.com/d-kuro/durfield/pkg/duration"
	"github.com/d-kuro/durfield/pkg/field"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse <expr...>",
	Short: "Parse duration text",
	Long: `Parse a duration expression and show its components.

Arguments are joined with spaces, so quoting is optional. Put "--" before
an expression that starts with a minus sign.`,
	Example: `  # Parse a mixed expression
  durfield parse 1d 2h 30m

  # Negative tokens
  durfield parse -- -1d 2h

  # Machine-readable output
  durfield parse -o json "24 days"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	expr := strings.Join(args, " ")
	slog.Debug("parsing duration", "input", expr)

	d, err := duration.Parse(expr)
	if err != nil {
		return err
	}
	return cmdCtx.Printer.PrintConversion(conversionOf(expr, field.Text(expr), d))
}

// conversionOf renders a successfully decoded value.
func conversionOf(input string, v field.Value, d duration.Duration) models.Conversion {
	return batch.Result{Input: input, Value: v, Duration: field.Valid(d)}.Conversion()
}
