package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calcpad/internal/arith"
)

// eval <expr...>: evaluate an expression without touching the persisted state.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			v, err := arith.Evaluate(expr)
			if err != nil {
				return fmt.Errorf("evaluating %q: %w", expr, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), arith.FormatNumber(v))
			return nil
		},
	}
}
