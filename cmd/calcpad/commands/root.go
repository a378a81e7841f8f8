package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"calcpad/internal/app"
	"calcpad/internal/config"
	"calcpad/internal/logging"
)

const version = "0.1.0"

var (
	home       string
	configPath string
	verbose    bool
	appCtx     *app.Wire

	listenAddr string
	remoteURL  string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calcpad",
		Short:         "Expression calculator for the terminal, the browser and MCP clients",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				dir := home
				if dir == "" {
					dir = config.DefaultHome()
				}
				path = config.Path(dir)
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}

			var logger *zap.Logger
			if cmd.Name() == "tui" {
				logger, err = logging.NewInteractive(cfg.Logging, verbose)
			} else {
				logger, err = logging.New(cfg.Logging, verbose)
			}
			if err != nil {
				return err
			}

			appCtx, err = app.NewWire(cfg, logger)
			if err != nil {
				return fmt.Errorf("wiring app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state directory (default ~/.calcpad)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		evalCmd(),
		pressCmd(),
		showCmd(),
		resetCmd(),
		tuiCmd(),
		serveCmd(),
		remoteCmd(),
		mcpCmd(),
	)
	return root
}
