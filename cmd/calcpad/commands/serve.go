package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"calcpad/internal/widget"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser calculator widget and its JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := appCtx.Config.Server.Listen
			if listenAddr != "" {
				addr = listenAddr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := appCtx.Logger.Named("widget")
			h := widget.NewHandler(appCtx.NewEditor(nil), log)
			return widget.Serve(ctx, addr, h, log)
		},
	}
	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (default from config, :8080)")
	return cmd
}
