package cmd

import (
	"context"

	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Inspect the authenticated user",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "me",
		Short: "Show the user that owns the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.service.Client(cmd.Context(), app.token)
			if err != nil {
				return err
			}

			var user domain.User
			err = app.fetch(cmd, "Fetching user...", func(ctx context.Context) error {
				var err error
				user, err = client.GetUser(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, user, func() (string, error) {
				return render.User(user)
			})
		},
	})

	return cmd
}
