// Package cli implements the stillalive command line.
package cli

import (
	"context"

	"github.com/MyelinBots/stillalive-go/config"
	"github.com/MyelinBots/stillalive-go/internal/logger"
	"github.com/MyelinBots/stillalive-go/internal/server"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	cfg        config.Config
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "stillalive",
		Short:         "Daily \"still alive\" check-ins for a small group",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logger.Init(cfg.AppConfig.LogLevel)
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", config.DefaultConfigFile, "path to the config file")

	cmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newUsersCommand(opts),
		newCheckinCommand(opts),
		newCalendarCommand(opts),
	)
	return cmd
}

func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// withApp opens the database, runs fn and closes it again.
func withApp(opts *rootOptions, fn func(app *server.App) error) error {
	app, err := server.NewApp(opts.cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}
