package application

import (
	"strings"

	"github.com/bnema/clickup-cli/internal/domain"
)

type ListTasksQuery struct {
	ListID string
	Query  domain.TaskQuery
	// Status filters the returned page locally, case-insensitively.
	Status string
}

type SearchTasksQuery struct {
	Text    string
	Options domain.SearchOptions
}

func FilterTasksByStatus(tasks []domain.Task, status string) []domain.Task {
	status = strings.TrimSpace(status)
	if status == "" {
		return tasks
	}

	filtered := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status != nil && strings.EqualFold(task.Status.Status, status) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
