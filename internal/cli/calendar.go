package cli

import (
	"time"

	"github.com/MyelinBots/stillalive-go/internal/calendar"
	"github.com/MyelinBots/stillalive-go/internal/server"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newCalendarCommand(opts *rootOptions) *cobra.Command {
	var (
		year  int
		month int
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month of calendar events as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := calendar.Today(time.Now(), opts.cfg.AppConfig.Location())
			if year == 0 {
				year = today.Year
			}
			if month == 0 {
				month = int(today.Month)
			}

			return withApp(opts, func(app *server.App) error {
				events, err := app.View.MonthEvents(cmd.Context(), year, time.Month(month))
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(events)
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default current)")
	return cmd
}
