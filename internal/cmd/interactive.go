package cmd

import (
	"strings"

	"github.com/d-kuro/durfield/internal/interactive"
	"github.com/d-kuro/durfield/pkg/field"
	"github.com/spf13/cobra"
)

// interactiveCmd represents the interactive command.
var interactiveCmd = &cobra.Command{
	Use:     "interactive [expr...]",
	Aliases: []string{"i"},
	Short:   "Preview duration text while typing",
	Long: `Open a prompt that parses the expression on every keystroke and shows
its canonical text and microsecond count. Enter prints the accepted value,
Esc or Ctrl+C leaves without output.`,
	Example: `  durfield interactive
  durfield i 1d 2h`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	initial := strings.Join(args, " ")
	d, accepted, err := interactive.Run(cmd.Context(), initial, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if !accepted {
		return nil
	}
	return cmdCtx.Printer.PrintConversion(conversionOf(d.String(), field.Of(d), d))
}
