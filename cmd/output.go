package cmd

import (
	"github.com/bnema/clickup-cli/internal/adapters/output"
	"github.com/bnema/clickup-cli/internal/adapters/render"
	"github.com/spf13/cobra"
)

func (a *app) write(cmd *cobra.Command, data any, text func() (string, error)) error {
	return output.Write(cmd.OutOrStdout(), a.format, data, text)
}

// message writes a one-line confirmation in text mode and data otherwise.
func (a *app) message(cmd *cobra.Command, data any, text string) error {
	return a.write(cmd, data, func() (string, error) {
		return text, nil
	})
}

func (a *app) renderOptions() render.Options {
	return render.Options{Now: a.now()}
}
