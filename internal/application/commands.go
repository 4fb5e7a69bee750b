package application

import (
	"strings"

	"github.com/bnema/clickup-cli/internal/domain"
)

type CreateTaskCommand struct {
	ListID      string
	Name        string
	Description string
	Status      string
	// Priority is 0 when unset.
	Priority  int
	Assignees []int64
}

func (c CreateTaskCommand) Payload() (domain.CreateTaskPayload, error) {
	if err := domain.ValidateNumericID("list id", c.ListID); err != nil {
		return domain.CreateTaskPayload{}, err
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return domain.CreateTaskPayload{}, domain.ErrEmptyTaskName
	}

	payload := domain.CreateTaskPayload{
		Name:        name,
		Description: c.Description,
		Status:      strings.TrimSpace(c.Status),
		Assignees:   c.Assignees,
	}
	if c.Priority != 0 {
		if c.Priority < domain.PriorityUrgent || c.Priority > domain.PriorityLow {
			return domain.CreateTaskPayload{}, domain.ErrInvalidPriority
		}
		priority := c.Priority
		payload.Priority = &priority
	}

	return payload, nil
}

// UpdateTaskCommand holds only the fields the user asked to change.
type UpdateTaskCommand struct {
	TaskID      string
	Name        *string
	Description *string
	Status      *string
	Priority    *int
}

func (c UpdateTaskCommand) Payload() (domain.UpdateTaskPayload, error) {
	if strings.TrimSpace(c.TaskID) == "" {
		return domain.UpdateTaskPayload{}, domain.ErrEmptyID
	}

	payload := domain.UpdateTaskPayload{
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
	}
	if c.Priority != nil {
		if *c.Priority < domain.PriorityUrgent || *c.Priority > domain.PriorityLow {
			return domain.UpdateTaskPayload{}, domain.ErrInvalidPriority
		}
		priority := *c.Priority
		payload.Priority = &priority
	}

	return payload, nil
}
