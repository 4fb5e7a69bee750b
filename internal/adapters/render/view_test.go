package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/bnema/clickup-cli/internal/application"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timestampPtr(t time.Time) *domain.Timestamp {
	ts := domain.Timestamp(t.UnixMilli())
	return &ts
}

func TestRenderTaskList(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Tasks("Tasks in list 901", []domain.Task{
		{
			ID:          "abc123",
			Name:        "Write docs",
			Description: "<p>First line</p>\nsecond line",
			Status:      &domain.TaskStatus{Status: "in progress"},
			Priority:    &domain.Priority{ID: "2", Priority: "high", Color: "#ffcc00"},
			Assignees:   []domain.User{{ID: 1, Username: "alice"}, {ID: 2, Email: "bob@example.com"}},
			DueDate:     timestampPtr(now.Add(-2 * time.Hour)),
		},
		{
			ID:      "def456",
			Name:    "Ship release",
			Status:  &domain.TaskStatus{Status: "complete", Type: "closed"},
			DueDate: timestampPtr(now.Add(-48 * time.Hour)),
		},
	}, Options{Now: now, Location: time.UTC})

	require.NoError(t, err)
	assert.Contains(t, output, "Tasks in list 901")
	assert.Contains(t, output, "tasks: 2")
	assert.Contains(t, output, "1. [in progress] Write docs")
	assert.Contains(t, output, "ID: abc123 | Priority: High")
	assert.Contains(t, output, "First line second line")
	assert.NotContains(t, output, "<p>")
	assert.Contains(t, output, "Assignees: alice, bob@example.com")
	assert.Contains(t, output, "Due: 2026-02-14 09:00")
	assert.Contains(t, output, "2. [complete] Ship release")
	assert.Contains(t, output, "Priority: None")
	assert.Equal(t, 1, strings.Count(output, "OVERDUE"))
}

func TestRenderEmptyTaskList(t *testing.T) {
	output, err := Tasks("Search results", nil, Options{})

	require.NoError(t, err)
	assert.Contains(t, output, "tasks: 0")
	assert.Contains(t, output, "No tasks found.")
}

func TestRenderTaskDetail(t *testing.T) {
	created := time.Date(2026, 1, 2, 8, 30, 0, 0, time.UTC)

	output, err := Task(domain.Task{
		ID:          "abc123",
		CustomID:    "ENG-42",
		Name:        "Test Task",
		Description: "Full description",
		List:        &domain.TaskListRef{ID: "901", Name: "Backlog"},
		DateCreated: timestampPtr(created),
		URL:         "https://app.clickup.com/t/abc123",
	}, Options{Location: time.UTC})

	require.NoError(t, err)
	assert.Contains(t, output, "Test Task")
	assert.Contains(t, output, "ID: abc123")
	assert.Contains(t, output, "Custom ID: ENG-42")
	assert.Contains(t, output, "Status: No status")
	assert.Contains(t, output, "List: Backlog (901)")
	assert.Contains(t, output, "Created: 2026-01-02")
	assert.Contains(t, output, "URL: https://app.clickup.com/t/abc123")
	assert.Contains(t, output, "Full description")
	assert.NotContains(t, output, "Due:")
	assert.NotContains(t, output, "Assignees:")
}

func TestRenderTaskPriorityFromAPI(t *testing.T) {
	var task domain.Task
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "abc123",
		"name": "Fix login",
		"priority": {"color": "#f50000", "id": "1", "orderindex": "1", "priority": "urgent"}
	}`), &task))

	detail, err := Task(task, Options{Location: time.UTC})
	require.NoError(t, err)
	assert.Contains(t, detail, "Priority: Urgent")
	assert.NotContains(t, detail, "Priority: None")

	list, err := Tasks("Tasks", []domain.Task{task}, Options{Location: time.UTC})
	require.NoError(t, err)
	assert.Contains(t, list, "ID: abc123 | Priority: Urgent")
}

func TestRenderWorkspaceViews(t *testing.T) {
	taskCount := 12

	teams, err := Teams([]domain.Team{{ID: "111", Name: "Acme"}})
	require.NoError(t, err)
	assert.Contains(t, teams, "workspaces: 1")
	assert.Contains(t, teams, "Acme (ID: 111, members: 0)")

	spaces, err := Spaces("111", []domain.Space{{ID: "222", Name: "Engineering"}, {ID: "333", Name: "HR", Private: true}})
	require.NoError(t, err)
	assert.Contains(t, spaces, "Spaces in workspace 111")
	assert.Contains(t, spaces, "Engineering (ID: 222)")
	assert.Contains(t, spaces, "HR (ID: 333, private)")
	assert.Less(t, strings.Index(spaces, "Engineering"), strings.Index(spaces, "HR"))

	lists, err := Lists("222", []domain.List{{ID: "901", Name: "Backlog", TaskCount: &taskCount, Folder: &domain.FolderRef{Name: "Sprint", Hidden: false}}})
	require.NoError(t, err)
	assert.Contains(t, lists, "Backlog (ID: 901, tasks: 12, folder: Sprint)")

	empty, err := Lists("222", nil)
	require.NoError(t, err)
	assert.Contains(t, empty, "No lists found.")
}

func TestRenderUser(t *testing.T) {
	output, err := User(domain.User{ID: 123, Username: "testuser", Email: "test@example.com"})

	require.NoError(t, err)
	assert.Contains(t, output, "testuser")
	assert.Contains(t, output, "ID: 123")
	assert.Contains(t, output, "Email: test@example.com")
}

func TestRenderAuthStatus(t *testing.T) {
	authenticated, err := AuthStatus(application.AuthStatus{
		State:       application.AuthStateAuthenticated,
		Source:      application.TokenSourceStore,
		MaskedToken: "pk_1234…",
		User:        &domain.User{ID: 1, Username: "alice"},
	})
	require.NoError(t, err)
	assert.Contains(t, authenticated, "Authenticated")
	assert.Contains(t, authenticated, "User: alice")
	assert.Contains(t, authenticated, "Token: pk_1234…")
	assert.Contains(t, authenticated, "Source: config")

	expired, err := AuthStatus(application.AuthStatus{State: application.AuthStateExpired, Source: application.TokenSourceEnv, MaskedToken: "****"})
	require.NoError(t, err)
	assert.Contains(t, expired, "Token rejected by ClickUp")
	assert.Contains(t, expired, "Source: environment")

	unauthenticated, err := AuthStatus(application.AuthStatus{State: application.AuthStateUnauthenticated})
	require.NoError(t, err)
	assert.Contains(t, unauthenticated, "Not authenticated")
}

func TestRenderCredentials(t *testing.T) {
	output, err := Credentials("/home/me/.clickup-cli/config.json", domain.Credentials{AccessToken: "pk_1234…", DefaultTeamID: "111"})

	require.NoError(t, err)
	assert.Contains(t, output, "/home/me/.clickup-cli/config.json")
	assert.Contains(t, output, "accessToken: pk_1234…")
	assert.Contains(t, output, "defaultTeamId: 111")
	assert.Contains(t, output, "defaultSpaceId: (not set)")
}

func TestDescriptionPreviewTruncates(t *testing.T) {
	long := strings.Repeat("a", 100)

	preview := descriptionPreview(long)

	assert.Equal(t, strings.Repeat("a", 80)+"...", preview)
	assert.Equal(t, "", descriptionPreview("<br/>"))
}
