package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	app := newApp()

	rootCmd := &cobra.Command{
		Use:           "clickup",
		Short:         "ClickUp CLI: manage tasks, lists and spaces from the terminal",
		Long:          "clickup talks to the ClickUp API with a personal access token. Log in once with `clickup auth login`, then browse workspaces, spaces and lists, and create, update, complete, search or delete tasks.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.token, "token", "", "ClickUp access token (overrides the stored token and CLICKUP_API_TOKEN)")
	flags.BoolVar(&app.asJSON, "json", false, "Render JSON output (same as --output json)")
	flags.StringP("output", "o", "", "Output format: text, json, yaml or toml")
	flags.String("base-url", "", "ClickUp API base URL")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	_ = app.settings.BindPFlag(settingsOutput, flags.Lookup("output"))
	_ = app.settings.BindPFlag(settingsBaseURL, flags.Lookup("base-url"))
	_ = app.settings.BindPFlag(settingsLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newUserCmd(app),
		newTaskCmd(app),
		newListCmd(app),
		newWorkspaceCmd(app),
		newSpaceCmd(app),
		newConfigCmd(app),
	)
	explainErrors(rootCmd)

	return rootCmd
}
