package commands

import (
	"github.com/spf13/cobra"

	"calcpad/internal/domain"
	"calcpad/internal/tui"
)

// tui: interactive calculator. The expression survives between sessions.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, ok, err := appCtx.State.LoadState()
			if err != nil {
				return err
			}
			var seed *domain.Snapshot
			if ok {
				seed = &snap
			}
			m, err := tui.New(seed, appCtx.Logger.Named("tui"), appCtx.EditorOptions()...)
			if err != nil {
				return err
			}
			final, err := tui.Run(m)
			if err != nil {
				return err
			}
			return appCtx.State.SaveState(final.Snapshot())
		},
	}
}
