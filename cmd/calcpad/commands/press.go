package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calcpad/internal/domain"
	"calcpad/internal/input"
)

func printDisplay(w io.Writer, d domain.DisplayState) {
	fmt.Fprintf(w, "expression: %s\nresult:     %s\n", d.Expression, d.Result)
}

// press <keys...>: apply keys to the persisted editor, save it and print the display.
func pressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press <key>...",
		Short: "Press calculator keys (digits, . + - * / %, =, sign, del, clear)",
		Example: `  calcpad press 12 + 3 =
  calcpad press sign
  calcpad press del`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := appCtx.LoadEditor(nil)
			if err != nil {
				return err
			}

			actions, parseErr := input.ParseAll(args)
			for _, a := range actions {
				if err := ed.Apply(a); err != nil {
					if !errors.Is(err, domain.ErrEvaluation) {
						return err
					}
					appCtx.Logger.Debug("evaluation failed", zap.Error(err))
				}
			}
			if err := appCtx.SaveEditor(ed); err != nil {
				return err
			}

			printDisplay(cmd.OutOrStdout(), ed.Display())
			return parseErr
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the persisted display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := appCtx.LoadEditor(nil)
			if err != nil {
				return err
			}
			printDisplay(cmd.OutOrStdout(), ed.Display())
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.State.ClearState()
		},
	}
}
