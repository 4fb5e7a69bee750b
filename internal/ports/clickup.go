package ports

import (
	"context"

	"github.com/bnema/clickup-cli/internal/domain"
)

// ClickUp is the remote API surface. Each call performs exactly one request.
type ClickUp interface {
	GetUser(ctx context.Context) (domain.User, error)
	GetTeams(ctx context.Context) ([]domain.Team, error)
	GetSpaces(ctx context.Context, teamID string) ([]domain.Space, error)
	GetLists(ctx context.Context, spaceID string, opts domain.ListsOptions) ([]domain.List, error)
	GetTasks(ctx context.Context, listID string, query domain.TaskQuery) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, listID string, payload domain.CreateTaskPayload) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, updates domain.UpdateTaskPayload) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	SearchTasks(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Task, error)
}
