package commands

import (
	"github.com/spf13/cobra"

	"calcpad/internal/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve calculator tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := appCtx.Logger.Named("mcp")
			log.Info("mcp server starting")
			return mcp.NewServer(appCtx.NewEditor(nil), log).ServeStdio(version)
		},
	}
}
