package cmd

import (
	"context"

	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkspaceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"team"},
		Short:   "Browse workspaces and their spaces",
	}

	cmd.AddCommand(newWorkspaceListCmd(app), newWorkspaceSpacesCmd(app))

	return cmd
}

func newWorkspaceListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the workspaces the token can access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.service.Client(cmd.Context(), app.token)
			if err != nil {
				return err
			}

			var teams []domain.Team
			err = app.fetch(cmd, "Fetching workspaces...", func(ctx context.Context) error {
				var err error
				teams, err = client.GetTeams(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, teams, func() (string, error) {
				return render.Teams(teams)
			})
		},
	}
}

func newWorkspaceSpacesCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spaces [team_id]",
		Short: "List the spaces of a workspace (default: defaultTeamId)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamID, err := app.service.ResolveTeamID(cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}
			if err := domain.ValidateNumericID("workspace id", teamID); err != nil {
				return err
			}

			client, err := app.service.Client(cmd.Context(), app.token)
			if err != nil {
				return err
			}

			var spaces []domain.Space
			err = app.fetch(cmd, "Fetching spaces...", func(ctx context.Context) error {
				var err error
				spaces, err = client.GetSpaces(ctx, teamID)
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, spaces, func() (string, error) {
				return render.Spaces(teamID, spaces)
			})
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
