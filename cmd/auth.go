package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/bnema/clickup-cli/internal/application"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored ClickUp access token",
	}

	cmd.AddCommand(newAuthLoginCmd(app), newAuthLogoutCmd(app), newAuthStatusCmd(app))

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify an access token and store it",
		Long:  "Verify a ClickUp personal access token against the API and store it in ~/.clickup-cli/config.json. Pass --token or enter it at the prompt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token := app.token
			if token == "" {
				var err error
				token, err = ask(cmd, "ClickUp API token: ", true)
				if err != nil {
					return err
				}
			}

			var user domain.User
			err := app.fetch(cmd, "Verifying token...", func(ctx context.Context) error {
				var err error
				user, err = app.service.Login(ctx, token)
				return err
			})
			if err != nil {
				return err
			}

			return app.message(cmd, user, fmt.Sprintf("Logged in as %s", user.DisplayName()))
		},
	}
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Logout(cmd.Context()); err != nil {
				return err
			}
			return app.message(cmd, map[string]bool{"loggedOut": true}, "Logged out")
		},
	}
}

func newAuthStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which token is in use and whether ClickUp accepts it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status application.AuthStatus
			err := app.fetch(cmd, "Checking token...", func(ctx context.Context) error {
				var err error
				status, err = app.service.Status(ctx, app.token)
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, status, func() (string, error) {
				return render.AuthStatus(status)
			})
		},
	}
}
