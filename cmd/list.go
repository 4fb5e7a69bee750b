package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/bnema/clickup-cli/internal/application"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Work with ClickUp lists",
	}

	cmd.AddCommand(newListTasksCmd(app))

	return cmd
}

func newListTasksCmd(app *app) *cobra.Command {
	var query application.ListTasksQuery
	var page int

	cmd := &cobra.Command{
		Use:   "tasks <list_id>",
		Short: "List the tasks of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query.ListID = args[0]
			if err := domain.ValidateNumericID("list id", query.ListID); err != nil {
				return err
			}
			if cmd.Flags().Changed("page") {
				if page < 0 {
					return fmt.Errorf("page must not be negative, got %d", page)
				}
				query.Query.Page = &page
			}

			var tasks []domain.Task
			err := app.fetch(cmd, "Fetching tasks...", func(ctx context.Context) error {
				var err error
				tasks, err = app.service.ListTasks(ctx, app.token, query)
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, tasks, func() (string, error) {
				return render.Tasks(fmt.Sprintf("Tasks in list %s", query.ListID), tasks, app.renderOptions())
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&query.Query.Archived, "archived", false, "Include archived tasks")
	flags.BoolVar(&query.Query.IncludeClosed, "closed", false, "Include closed tasks")
	flags.IntVar(&page, "page", 0, "Page number (0-based)")
	flags.StringVar(&query.Query.OrderBy, "order-by", "", "Order by field (id, created, updated, due_date)")
	flags.BoolVar(&query.Query.Reverse, "reverse", false, "Reverse the order")
	flags.BoolVar(&query.Query.Subtasks, "subtasks", false, "Include subtasks")
	flags.StringVar(&query.Status, "status", "", "Only show tasks with this status")

	return cmd
}
