package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/clickup-cli/internal/adapters/clickup"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/spf13/cobra"
)

// explainErrors wraps every RunE in the tree so API failures carry a hint
// for the user. The wrapped error stays reachable through errors.As.
func explainErrors(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return explainError(run(cmd, args))
		}
	}
	for _, child := range cmd.Commands() {
		explainErrors(child)
	}
}

func explainError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *clickup.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Unauthorized():
			return fmt.Errorf("%w\nhint: check your access token or run `clickup auth login`", err)
		case apiErr.NotFound():
			return fmt.Errorf("%w\nhint: the resource was not found or is not accessible with this token", err)
		}
	}

	if errors.Is(err, domain.ErrNotAuthenticated) {
		return fmt.Errorf("%w\nhint: run `clickup auth login` or set CLICKUP_API_TOKEN", err)
	}

	return err
}
