package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/bnema/clickup-cli/internal/application"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Get, create, update, complete, search and delete tasks",
	}

	cmd.AddCommand(
		newTaskGetCmd(app),
		newTaskUpdateCmd(app),
		newTaskCompleteCmd(app),
		newTaskCreateCmd(app),
		newTaskDeleteCmd(app),
		newTaskSearchCmd(app),
	)

	return cmd
}

func newTaskGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <task_id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.service.Client(cmd.Context(), app.token)
			if err != nil {
				return err
			}

			var task domain.Task
			err = app.fetch(cmd, "Fetching task...", func(ctx context.Context) error {
				var err error
				task, err = client.GetTask(ctx, args[0])
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, task, func() (string, error) {
				return render.Task(task, app.renderOptions())
			})
		},
	}
}

func newTaskUpdateCmd(app *app) *cobra.Command {
	var name string
	var description string
	var status string
	var priority string

	cmd := &cobra.Command{
		Use:   "update <task_id>",
		Short: "Update task fields",
		Long:  "Update the name, description, status or priority of a task. Only the flags you pass are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := application.UpdateTaskCommand{TaskID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("name") {
				command.Name = &name
			}
			if flags.Changed("description") {
				command.Description = &description
			}
			if flags.Changed("status") {
				command.Status = &status
			}
			if flags.Changed("priority") {
				level, err := domain.ParsePriority(priority)
				if err != nil {
					return err
				}
				command.Priority = &level
			}

			var task domain.Task
			err := app.fetch(cmd, "Updating task...", func(ctx context.Context) error {
				var err error
				task, err = app.service.UpdateTask(ctx, app.token, command)
				return err
			})
			if err != nil {
				return err
			}

			return app.message(cmd, task, fmt.Sprintf("Task updated: %s", task.Name))
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New task name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New task description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "New task status")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (1 urgent, 2 high, 3 normal, 4 low)")

	return cmd
}

func newTaskCompleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task_id>",
		Short: "Mark a task as complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var task domain.Task
			err := app.fetch(cmd, "Completing task...", func(ctx context.Context) error {
				var err error
				task, err = app.service.CompleteTask(ctx, app.token, args[0])
				return err
			})
			if err != nil {
				return err
			}

			return app.message(cmd, task, fmt.Sprintf("Task completed: %s", task.Name))
		},
	}
}

func newTaskCreateCmd(app *app) *cobra.Command {
	var name string
	var description string
	var status string
	var priority string

	cmd := &cobra.Command{
		Use:   "create <list_id>",
		Short: "Create a task in a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := application.CreateTaskCommand{
				ListID:      args[0],
				Name:        name,
				Description: description,
				Status:      status,
			}
			if cmd.Flags().Changed("priority") {
				level, err := domain.ParsePriority(priority)
				if err != nil {
					return err
				}
				command.Priority = level
			}
			if _, err := command.Payload(); err != nil {
				return err
			}

			var task domain.Task
			err := app.fetch(cmd, "Creating task...", func(ctx context.Context) error {
				var err error
				task, err = app.service.CreateTask(ctx, app.token, command)
				return err
			})
			if err != nil {
				return err
			}

			text := fmt.Sprintf("Task created: %s (ID: %s)", task.Name, task.ID)
			if task.URL != "" {
				text += "\n" + task.URL
			}
			return app.message(cmd, task, text)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Task name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Initial status")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (1 urgent, 2 high, 3 normal, 4 low)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTaskDeleteCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <task_id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := args[0]
			client, err := app.service.Client(cmd.Context(), app.token)
			if err != nil {
				return err
			}

			if !force {
				confirmed, err := confirm(cmd, fmt.Sprintf("Delete task %s?", taskID))
				if err != nil {
					return err
				}
				if !confirmed {
					return app.message(cmd, map[string]any{"id": taskID, "deleted": false}, "Deletion cancelled")
				}
			}

			err = app.fetch(cmd, "Deleting task...", func(ctx context.Context) error {
				return client.DeleteTask(ctx, taskID)
			})
			if err != nil {
				return err
			}

			return app.message(cmd, map[string]any{"id": taskID, "deleted": true}, fmt.Sprintf("Task deleted: %s", taskID))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without asking for confirmation")

	return cmd
}

func newTaskSearchCmd(app *app) *cobra.Command {
	var options domain.SearchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tasks across a workspace",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := application.SearchTasksQuery{
				Text:    strings.Join(args, " "),
				Options: options,
			}

			var tasks []domain.Task
			err := app.fetch(cmd, "Searching tasks...", func(ctx context.Context) error {
				var err error
				tasks, err = app.service.SearchTasks(ctx, app.token, query)
				return err
			})
			if err != nil {
				return err
			}

			return app.write(cmd, tasks, func() (string, error) {
				return render.Tasks(fmt.Sprintf("Search results for %q", query.Text), tasks, app.renderOptions())
			})
		},
	}

	cmd.Flags().StringSliceVar(&options.SpaceIDs, "space", nil, "Restrict to space ids (repeatable)")
	cmd.Flags().StringSliceVar(&options.ProjectIDs, "project", nil, "Restrict to folder (project) ids (repeatable)")
	cmd.Flags().StringSliceVar(&options.ListIDs, "list", nil, "Restrict to list ids (repeatable)")
	cmd.Flags().StringSliceVar(&options.Statuses, "status", nil, "Restrict to statuses (repeatable)")
	cmd.Flags().Int64SliceVar(&options.Assignees, "assignee", nil, "Restrict to assignee user ids (repeatable)")

	return cmd
}
