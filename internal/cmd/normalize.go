package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/d-kuro/durfield/internal/batch"
	"github.com/d-kuro/durfield/pkg/models"
	"github.com/spf13/cobra"
)

// normalizeCmd represents the normalize command.
var normalizeCmd = &cobra.Command{
	Use:   "normalize [value...]",
	Short: "Normalize raw duration field input",
	Long: `Normalize raw field values the way a duration column would store them.

Each value may be duration text, an integer or float microsecond count, or
empty for null. Null values take field.default when it is set, and are
rejected when field.nullable is false. Without arguments, values are read
from standard input, one per line.

The command fails when any value is rejected, after printing every result.`,
	Example: `  # Mixed input kinds
  durfield normalize "1d 2h" 3600000000 1.5e6 ""

  # One value per line from a file
  durfield normalize < values.txt

  # Store nulls as one hour
  DURFIELD_FIELD_DEFAULT=1h durfield normalize ""`,
	RunE: runNormalize,
}

var normalizeWorkers int

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().IntVarP(&normalizeWorkers, "workers", "w", 0, "Concurrent workers (default batch.workers)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	f, err := cmdCtx.Field()
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	workers := cmdCtx.Config.Batch.Workers
	if cmd.Flags().Changed("workers") {
		workers = normalizeWorkers
	}
	slog.Debug("normalizing inputs", "count", len(inputs), "workers", batch.Workers(workers))

	results, err := batch.Normalize(cmd.Context(), f, inputs, workers)
	if err != nil {
		return err
	}

	conversions := make([]models.Conversion, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			slog.Debug("input rejected", "input", r.Input, "error", r.Err)
		}
		conversions = append(conversions, r.Conversion())
	}

	if err := cmdCtx.Printer.PrintConversions(conversions); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
