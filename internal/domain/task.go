package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	PriorityUrgent = 1
	PriorityHigh   = 2
	PriorityNormal = 3
	PriorityLow    = 4
)

// StatusComplete is the status name the API treats as done.
const StatusComplete = "complete"

type TaskStatus struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status"`
	Color  string `json:"color,omitempty"`
	Type   string `json:"type,omitempty"`
}

type Priority struct {
	ID       string `json:"id,omitempty"`
	Priority string `json:"priority"`
	Color    string `json:"color,omitempty"`
}

type TaskListRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Task struct {
	ID          string       `json:"id"`
	CustomID    string       `json:"custom_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      *TaskStatus  `json:"status,omitempty"`
	Priority    *Priority    `json:"priority,omitempty"`
	DueDate     *Timestamp   `json:"due_date,omitempty"`
	StartDate   *Timestamp   `json:"start_date,omitempty"`
	DateCreated *Timestamp   `json:"date_created,omitempty"`
	Assignees   []User       `json:"assignees,omitempty"`
	List        *TaskListRef `json:"list,omitempty"`
	URL         string       `json:"url,omitempty"`

	raw raw
}

func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = Task(decoded)
	t.raw.keep(data)
	return nil
}

func (t Task) MarshalJSON() ([]byte, error) {
	if data, ok := t.raw.bytes(); ok {
		return data, nil
	}
	type plain Task
	return json.Marshal(plain(t))
}

func (t Task) StatusName() string {
	if t.Status == nil || t.Status.Status == "" {
		return "No status"
	}
	return t.Status.Status
}

// PriorityLevel returns 0 when the task has no priority. The API puts the
// level in the id ("1") and the name in priority ("urgent").
func (t Task) PriorityLevel() int {
	if t.Priority == nil {
		return 0
	}
	if level, err := strconv.Atoi(strings.TrimSpace(t.Priority.ID)); err == nil && level > 0 {
		return level
	}
	return priorityByName(t.Priority.Priority)
}

func priorityByName(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "urgent":
		return PriorityUrgent
	case "high":
		return PriorityHigh
	case "normal":
		return PriorityNormal
	case "low":
		return PriorityLow
	}
	if level, err := strconv.Atoi(name); err == nil && level > 0 {
		return level
	}
	return 0
}

func PriorityLabel(level int) string {
	switch level {
	case PriorityUrgent:
		return "Urgent"
	case PriorityHigh:
		return "High"
	case PriorityNormal:
		return "Normal"
	case PriorityLow:
		return "Low"
	case 0:
		return "None"
	default:
		return fmt.Sprintf("Priority %d", level)
	}
}

func ParsePriority(raw string) (int, error) {
	level, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || level < PriorityUrgent || level > PriorityLow {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPriority, raw)
	}
	return level, nil
}

func (t Task) AssigneeNames() []string {
	names := make([]string, 0, len(t.Assignees))
	for _, assignee := range t.Assignees {
		if name := assignee.DisplayName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CreateTaskPayload is the body of a create request. Only Name is required.
type CreateTaskPayload struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	Assignees   []int64    `json:"assignees,omitempty"`
	Status      string     `json:"status,omitempty"`
	DueDate     *Timestamp `json:"due_date,omitempty"`
}

// UpdateTaskPayload is a partial update; the zero value is a valid no-op.
type UpdateTaskPayload struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	Assignees   []int64    `json:"assignees,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *Timestamp `json:"due_date,omitempty"`
}

func (p UpdateTaskPayload) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Priority == nil &&
		p.Assignees == nil && p.Status == nil && p.DueDate == nil
}

// TaskQuery carries the optional list-task parameters passed straight through to the API.
type TaskQuery struct {
	Archived      bool
	IncludeClosed bool
	Page          *int
	OrderBy       string
	Reverse       bool
	Subtasks      bool
}

type SearchOptions struct {
	SpaceIDs   []string
	ProjectIDs []string
	ListIDs    []string
	Statuses   []string
	Assignees  []int64
}

type ListsOptions struct {
	Archived bool
}
