package application

import (
	"context"
	"fmt"

	"github.com/bnema/clickup-cli/internal/domain"
)

func (s *Service) ListTasks(ctx context.Context, explicit string, query ListTasksQuery) ([]domain.Task, error) {
	if err := domain.ValidateNumericID("list id", query.ListID); err != nil {
		return nil, err
	}

	client, err := s.Client(ctx, explicit)
	if err != nil {
		return nil, err
	}

	tasks, err := client.GetTasks(ctx, query.ListID, query.Query)
	if err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}

	return FilterTasksByStatus(tasks, query.Status), nil
}

func (s *Service) CreateTask(ctx context.Context, explicit string, command CreateTaskCommand) (domain.Task, error) {
	payload, err := command.Payload()
	if err != nil {
		return domain.Task{}, err
	}

	client, err := s.Client(ctx, explicit)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := client.CreateTask(ctx, command.ListID, payload)
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *Service) UpdateTask(ctx context.Context, explicit string, command UpdateTaskCommand) (domain.Task, error) {
	payload, err := command.Payload()
	if err != nil {
		return domain.Task{}, err
	}

	client, err := s.Client(ctx, explicit)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := client.UpdateTask(ctx, command.TaskID, payload)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *Service) CompleteTask(ctx context.Context, explicit, taskID string) (domain.Task, error) {
	status := domain.StatusComplete
	return s.UpdateTask(ctx, explicit, UpdateTaskCommand{TaskID: taskID, Status: &status})
}

func (s *Service) SearchTasks(ctx context.Context, explicit string, query SearchTasksQuery) ([]domain.Task, error) {
	client, err := s.Client(ctx, explicit)
	if err != nil {
		return nil, err
	}

	tasks, err := client.SearchTasks(ctx, query.Text, query.Options)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	return tasks, nil
}
