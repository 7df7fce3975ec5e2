package cli

import (
	"fmt"
	"time"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/server"
	"github.com/spf13/cobra"
)

func newCheckinCommand(opts *rootOptions) *cobra.Command {
	var (
		date    string
		message string
		unalive bool
	)

	cmd := &cobra.Command{
		Use:   "checkin <username>",
		Short: "Record (or with --unalive remove) a check-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := calendar.Today(time.Now(), opts.cfg.AppConfig.Location())
			if date != "" {
				var err error
				if day, err = calendar.Parse(date); err != nil {
					return err
				}
			}

			return withApp(opts, func(app *server.App) error {
				state, err := app.Checkins.Save(cmd.Context(), day, args[0], !unalive, message)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", day, args[0], state)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "optional status message")
	cmd.Flags().BoolVar(&unalive, "unalive", false, "remove the check-in instead")
	return cmd
}
