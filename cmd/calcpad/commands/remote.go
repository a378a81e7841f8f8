package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"calcpad/internal/domain"
	"calcpad/internal/remote"
)

// remote [keys...]: press keys on a running widget server; no keys prints its display.
func remoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote [key]...",
		Short: "Press keys on a running calcpad server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if remoteURL == "" {
				return fmt.Errorf("--url required")
			}
			c := remote.NewHTTP(remoteURL, &http.Client{Timeout: 10 * time.Second})

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			var (
				d   domain.DisplayState
				err error
			)
			if len(args) == 0 {
				d, err = c.Display(ctx)
			} else {
				d, err = c.Press(ctx, args)
			}
			if err != nil {
				return err
			}
			printDisplay(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().StringVar(&remoteURL, "url", "", "server base URL (e.g. http://127.0.0.1:8080)")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}
