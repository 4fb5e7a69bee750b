package cmd

import (
	"context"

	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSpaceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space",
		Short: "Browse the lists of a space",
	}

	cmd.AddCommand(newSpaceListsCmd(app))

	return cmd
}

func newSpaceListsCmd(app *app) *cobra.Command {
	var opts domain.ListsOptions

	cmd := &cobra.Command{
		Use:   "lists [space_id]",
		Short: "List the folderless lists of a space (default: defaultSpaceId)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spaceID, err := app.service.ResolveSpaceID(cmd.Context(), firstArg(args))
			if err != nil {
				return err
			}
			if err := domain.ValidateNumericID("space id", spaceID); err != nil {
				return err
			}

			client, err := app.service.Client(cmd.Context(), app.token)
			if err != nil {
				return err
			}

			var lists []domain.List
			err = app.fetch(cmd, "Fetching lists...", func(ctx context.Context) error {
				var err error
				lists, err = client.GetLists(ctx, spaceID, opts)
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, lists, func() (string, error) {
				return render.Lists(spaceID, lists)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Archived, "archived", false, "Include archived lists")

	return cmd
}
