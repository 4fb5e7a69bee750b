package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method     string
	RequestURI string
	Path       string
	RawQuery   string
	Header     http.Header
	Body       string
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	requests := r.all()
	require.NotEmpty(t, requests)
	return requests[len(requests)-1]
}

func newTestClient(t *testing.T, status int, response string) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.add(recordedRequest{
			Method:     r.Method,
			RequestURI: r.RequestURI,
			Path:       r.URL.Path,
			RawQuery:   r.URL.RawQuery,
			Header:     r.Header.Clone(),
			Body:       string(body),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, response)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		AccessToken: "test-token",
		BaseURL:     server.URL + "/api/v2",
		HTTPClient:  server.Client(),
	})
	require.NoError(t, err)

	return client, rec
}

func TestNewClientDefaultsToProductionBaseURL(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{AccessToken: "test-token"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.clickup.com/api/v2", client.BaseURL())
}

func TestNewClientValidatesConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "missing token", cfg: Config{}, wantErr: "access token is required"},
		{name: "blank token", cfg: Config{AccessToken: "   "}, wantErr: "access token is required"},
		{name: "bad scheme", cfg: Config{AccessToken: "t", BaseURL: "ftp://example.com"}, wantErr: "must use http or https"},
		{name: "missing host", cfg: Config{AccessToken: "t", BaseURL: "https:///api"}, wantErr: "host is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewClient(tc.cfg)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{AccessToken: "t", BaseURL: "https://example.com/api/v2/"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/v2", client.BaseURL())
}

func TestGetUserSendsRawTokenAndUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"user":{"id":1,"username":"x"}}`)

	user, err := client.GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "x", user.Username)

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"x"}`, string(encoded))

	require.Len(t, requests.all(), 1)
	got := requests.last(t)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/v2/user", got.Path)
	assert.Equal(t, "test-token", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Contains(t, got.Header.Get("User-Agent"), "clickup-cli/")
}

func TestGetTeamsUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"teams":[{"id":"9001","name":"Acme"}]}`)

	teams, err := client.GetTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "9001", teams[0].ID)
	assert.Equal(t, "Acme", teams[0].Name)
	assert.Equal(t, "/api/v2/team", requests.last(t).Path)
}

func TestGetSpacesKeepsServerOrder(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"spaces":[{"id":"2","name":"Zeta"},{"id":"1","name":"Alpha"}]}`)

	spaces, err := client.GetSpaces(context.Background(), "team-123")
	require.NoError(t, err)
	require.Len(t, spaces, 2)
	assert.Equal(t, "Zeta", spaces[0].Name)
	assert.Equal(t, "Alpha", spaces[1].Name)
	assert.Equal(t, "/api/v2/team/team-123/space", requests.last(t).Path)
}

func TestGetListsPath(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"lists":[{"id":"1","name":"Test List","task_count":3}]}`)

	lists, err := client.GetLists(context.Background(), "space-123", domain.ListsOptions{})
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Test List", lists[0].Name)
	require.NotNil(t, lists[0].TaskCount)
	assert.Equal(t, 3, *lists[0].TaskCount)
	assert.Equal(t, "/api/v2/space/space-123/list", requests.last(t).RequestURI)
}

func TestGetListsArchived(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"lists":[]}`)

	_, err := client.GetLists(context.Background(), "space-123", domain.ListsOptions{Archived: true})
	require.NoError(t, err)
	assert.Equal(t, "archived=true", requests.last(t).RawQuery)
}

func TestGetTasksPassesQueryThrough(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"tasks":[{"id":"1","name":"Test Task"}]}`)

	page := 2
	tasks, err := client.GetTasks(context.Background(), "list-123", domain.TaskQuery{
		IncludeClosed: true,
		Page:          &page,
		OrderBy:       "created",
		Reverse:       true,
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Test Task", tasks[0].Name)
	assert.Equal(t, "/api/v2/list/list-123/task", requests.last(t).Path)
	assert.Equal(t, "include_closed=true&page=2&order_by=created&reverse=true", requests.last(t).RawQuery)
}

func TestGetTasksWithoutQuery(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"tasks":[]}`)

	tasks, err := client.GetTasks(context.Background(), "list-123", domain.TaskQuery{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, "/api/v2/list/list-123/task", requests.last(t).RequestURI)
}

func TestGetTaskReturnsRawObject(t *testing.T) {
	t.Parallel()

	payload := `{"id":"task-123","name":"Test Task","status":{"status":"open"},"points":3}`
	client, requests := newTestClient(t, http.StatusOK, payload)

	task, err := client.GetTask(context.Background(), "task-123")
	require.NoError(t, err)
	assert.Equal(t, "task-123", task.ID)
	assert.Equal(t, "/api/v2/task/task-123", requests.last(t).Path)

	encoded, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(encoded))
}

func TestCreateTaskPostsPayloadAndReturnsResultVerbatim(t *testing.T) {
	t.Parallel()

	created := `{"id":"1","name":"New Task","url":"https://app.clickup.com/t/1"}`
	client, requests := newTestClient(t, http.StatusOK, created)

	task, err := client.CreateTask(context.Background(), "list-123", domain.CreateTaskPayload{Name: "New Task"})
	require.NoError(t, err)

	got := requests.last(t)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/api/v2/list/list-123/task", got.Path)
	assert.JSONEq(t, `{"name":"New Task"}`, got.Body)

	encoded, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, created, string(encoded))
}

func TestCreateTaskRejectsEmptyName(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.CreateTask(context.Background(), "list-123", domain.CreateTaskPayload{Name: "  "})
	require.ErrorIs(t, err, domain.ErrEmptyTaskName)
	assert.Empty(t, requests.all())
}

func TestUpdateTaskSendsPartialBody(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"id":"1","name":"Updated Task"}`)

	name := "Updated Task"
	task, err := client.UpdateTask(context.Background(), "task-123", domain.UpdateTaskPayload{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Updated Task", task.Name)

	got := requests.last(t)
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/api/v2/task/task-123", got.Path)
	assert.JSONEq(t, `{"name":"Updated Task"}`, got.Body)
}

func TestUpdateTaskEmptyUpdateIsStillSent(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"id":"1","name":"Same"}`)

	_, err := client.UpdateTask(context.Background(), "task-123", domain.UpdateTaskPayload{})
	require.NoError(t, err)
	require.Len(t, requests.all(), 1)
	assert.JSONEq(t, `{}`, requests.last(t).Body)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusNoContent, ``)

	require.NoError(t, client.DeleteTask(context.Background(), "task-123"))
	assert.Equal(t, http.MethodDelete, requests.last(t).Method)
	assert.Equal(t, "/api/v2/task/task-123", requests.last(t).Path)
	assert.Empty(t, requests.last(t).Body)
}

func TestSearchTasksQueryOnly(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"tasks":[{"id":"1","name":"Found Task"}]}`)

	tasks, err := client.SearchTasks(context.Background(), "test query", domain.SearchOptions{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "/api/v2/search/tasks?query=test+query", requests.last(t).RequestURI)
}

func TestSearchTasksRepeatsArrayParamsInOrder(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"tasks":[]}`)

	_, err := client.SearchTasks(context.Background(), "test query", domain.SearchOptions{SpaceIDs: []string{"s1", "s2"}})
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/search/tasks?query=test+query&space_ids[]=s1&space_ids[]=s2", requests.last(t).RequestURI)
}

func TestSearchTasksAllFilters(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"tasks":[]}`)

	_, err := client.SearchTasks(context.Background(), "test query", domain.SearchOptions{
		SpaceIDs:   []string{"space1", "space2"},
		ProjectIDs: []string{"p1"},
		ListIDs:    []string{"l1"},
		Statuses:   []string{"open", "in progress"},
		Assignees:  []int64{123, 456},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"query=test+query&space_ids[]=space1&space_ids[]=space2&project_ids[]=p1&list_ids[]=l1&statuses[]=open&statuses[]=in+progress&assignees[]=123&assignees[]=456",
		requests.last(t).RawQuery,
	)
}

func TestPathSegmentsAreEscapedAndValidated(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusOK, `{"id":"a/b","name":"x"}`)

	_, err := client.GetTask(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/task/a%2Fb", requests.last(t).RequestURI)

	_, err = client.GetTask(context.Background(), " ")
	require.ErrorIs(t, err, domain.ErrEmptyID)
	assert.Len(t, requests.all(), 1)
}

func TestUnauthorizedSurfacesStatusAndBody(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusUnauthorized, `{"err":"Token invalid","ECODE":"OAUTH_025"}`)

	calls := map[string]func() error{
		"GetUser": func() error { _, err := client.GetUser(context.Background()); return err },
		"GetTask": func() error { _, err := client.GetTask(context.Background(), "t"); return err },
		"DeleteTask": func() error {
			return client.DeleteTask(context.Background(), "t")
		},
		"SearchTasks": func() error {
			_, err := client.SearchTasks(context.Background(), "q", domain.SearchOptions{})
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
			assert.True(t, apiErr.Unauthorized())
			assert.False(t, apiErr.NotFound())
			assert.Contains(t, apiErr.Body, "OAUTH_025")
			assert.Contains(t, err.Error(), "status 401")
		})
	}
}

func TestNotFoundIsNotRetried(t *testing.T) {
	t.Parallel()

	client, requests := newTestClient(t, http.StatusNotFound, `{"err":"Task not found"}`)

	_, err := client.GetTask(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.NotFound())
	assert.Len(t, requests.all(), 1)
}

func TestDecodeErrorIsWrapped(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"user":`)

	_, err := client.GetUser(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET /user response")
}

func TestCancelledContextAbortsRequest(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	client, err := NewClient(Config{AccessToken: "t", BaseURL: server.URL, HTTPClient: server.Client()})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.GetUser(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRequestsAreLoggedWithoutToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"user":{"id":7,"username":"dev"}}`)
	}))
	t.Cleanup(server.Close)

	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	client, err := NewClient(Config{AccessToken: "pk_secret", BaseURL: server.URL, HTTPClient: server.Client(), Logger: logger})
	require.NoError(t, err)

	_, err = client.GetUser(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "clickup request")
	assert.Contains(t, logs.String(), "/user")
	assert.NotContains(t, logs.String(), "pk_secret")
}
