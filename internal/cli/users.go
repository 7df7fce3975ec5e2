package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/MyelinBots/stillalive-go/internal/server"
	"github.com/MyelinBots/stillalive-go/internal/services/users"
	"github.com/spf13/cobra"
)

func newUsersCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the check-in roster",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "Create the users named in the config; existing users are left alone",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(opts, func(app *server.App) error {
					created, err := app.Users.Seed(cmd.Context(), opts.cfg.Users)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "created %d of %d users\n", created, len(opts.cfg.Users))
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List roster members and their colors",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(opts, func(app *server.App) error {
					list, err := app.Users.List(cmd.Context())
					if err != nil {
						return err
					}
					w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "USERNAME\tCOLOR\tPASSWORD")
					for _, u := range list {
						color := u.Color
						if color == "" {
							color = users.DefaultColor + " (default)"
						}
						password := "no"
						if u.HasPassword() {
							password = "yes"
						}
						fmt.Fprintf(w, "%s\t%s\t%s\n", u.Username, color, password)
					}
					return w.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "set-password <username> <password>",
			Short: "Set a user's login password",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(opts, func(app *server.App) error {
					if err := app.Users.SetPassword(cmd.Context(), args[0], args[1]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "password updated for %s\n", args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set-color <username> <#RRGGBB>",
			Short: "Set a user's calendar color",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(opts, func(app *server.App) error {
					if err := app.Users.SetColor(cmd.Context(), args[0], args[1]); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "color updated for %s\n", args[0])
					return nil
				})
			},
		},
	)
	return cmd
}
