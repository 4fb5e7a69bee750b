package cmd

import (
	"fmt"

	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change the stored credentials and defaults",
		Long:  "Read and change ~/.clickup-cli/config.json. Keys: accessToken, defaultTeamId, defaultSpaceId.",
	}

	cmd.AddCommand(
		newConfigGetCmd(app),
		newConfigSetCmd(app),
		newConfigUnsetCmd(app),
		newConfigPathCmd(app),
	)

	return cmd
}

func newConfigGetCmd(app *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Show one key, or every key when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				creds, err := app.service.Defaults(cmd.Context())
				if err != nil {
					return err
				}
				return app.write(cmd, creds, func() (string, error) {
					return render.Credentials(app.store.Path(), creds)
				})
			}

			key, err := domain.ParseCredentialKey(args[0])
			if err != nil {
				return err
			}
			value, err := app.store.Get(cmd.Context(), key)
			if err != nil {
				return err
			}
			if key == domain.CredentialAccessToken && !reveal {
				value = domain.MaskToken(value)
			}

			return app.write(cmd, map[string]string{string(key): value}, func() (string, error) {
				return value, nil
			})
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the access token unmasked")

	return cmd
}

func newConfigSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one key, keeping the others",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseCredentialKey(args[0])
			if err != nil {
				return err
			}
			value := args[1]

			switch key {
			case domain.CredentialDefaultTeamID:
				if err := domain.ValidateNumericID("workspace id", value); err != nil {
					return err
				}
				err = app.service.SetDefaultTeam(cmd.Context(), value)
			case domain.CredentialDefaultSpaceID:
				if err := domain.ValidateNumericID("space id", value); err != nil {
					return err
				}
				err = app.service.SetDefaultSpace(cmd.Context(), value)
			default:
				if value == "" {
					return domain.ErrEmptyToken
				}
				err = app.store.Set(cmd.Context(), key, value)
			}
			if err != nil {
				return err
			}

			return app.message(cmd, map[string]bool{string(key): true}, fmt.Sprintf("Saved %s", key))
		},
	}
}

func newConfigUnsetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove one key, keeping the others",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParseCredentialKey(args[0])
			if err != nil {
				return err
			}
			if err := app.store.Unset(cmd.Context(), key); err != nil {
				return err
			}
			return app.message(cmd, map[string]bool{string(key): false}, fmt.Sprintf("Removed %s", key))
		},
	}
}

func newConfigPathCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the credentials file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.message(cmd, map[string]string{"path": app.store.Path()}, app.store.Path())
		},
	}
}
