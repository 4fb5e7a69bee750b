package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/bnema/clickup-cli/internal/ports"
	"github.com/bnema/clickup-cli/internal/version"
	"github.com/charmbracelet/log"
)

const (
	DefaultBaseURL   = "https://api.clickup.com/api/v2"
	maxResponseBytes = 1 << 20
)

type Config struct {
	AccessToken string
	// BaseURL defaults to DefaultBaseURL.
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
	UserAgent  string
}

// Client is bound to one token and one base URL for its whole lifetime.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     *log.Logger
}

var _ ports.ClickUp = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.AccessToken)
	if token == "" {
		return nil, errors.New("access token is required")
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "clickup-cli/" + version.Version
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) GetUser(ctx context.Context) (domain.User, error) {
	var envelope struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", "", nil, &envelope); err != nil {
		return domain.User{}, err
	}
	return envelope.User, nil
}

func (c *Client) GetTeams(ctx context.Context) ([]domain.Team, error) {
	var envelope struct {
		Teams []domain.Team `json:"teams"`
	}
	if err := c.do(ctx, http.MethodGet, "/team", "", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Teams, nil
}

func (c *Client) GetSpaces(ctx context.Context, teamID string) ([]domain.Space, error) {
	team, err := pathSegment("team", teamID)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Spaces []domain.Space `json:"spaces"`
	}
	if err := c.do(ctx, http.MethodGet, "/team/"+team+"/space", "", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Spaces, nil
}

func (c *Client) GetLists(ctx context.Context, spaceID string, opts domain.ListsOptions) ([]domain.List, error) {
	space, err := pathSegment("space", spaceID)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Lists []domain.List `json:"lists"`
	}
	if err := c.do(ctx, http.MethodGet, "/space/"+space+"/list", listsQuery(opts), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Lists, nil
}

func (c *Client) GetTasks(ctx context.Context, listID string, query domain.TaskQuery) ([]domain.Task, error) {
	list, err := pathSegment("list", listID)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Tasks []domain.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/list/"+list+"/task", taskQuery(query), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Tasks, nil
}

func (c *Client) GetTask(ctx context.Context, taskID string) (domain.Task, error) {
	task, err := pathSegment("task", taskID)
	if err != nil {
		return domain.Task{}, err
	}

	var result domain.Task
	if err := c.do(ctx, http.MethodGet, "/task/"+task, "", nil, &result); err != nil {
		return domain.Task{}, err
	}
	return result, nil
}

func (c *Client) CreateTask(ctx context.Context, listID string, payload domain.CreateTaskPayload) (domain.Task, error) {
	list, err := pathSegment("list", listID)
	if err != nil {
		return domain.Task{}, err
	}
	if strings.TrimSpace(payload.Name) == "" {
		return domain.Task{}, domain.ErrEmptyTaskName
	}

	var result domain.Task
	if err := c.do(ctx, http.MethodPost, "/list/"+list+"/task", "", payload, &result); err != nil {
		return domain.Task{}, err
	}
	return result, nil
}

func (c *Client) UpdateTask(ctx context.Context, taskID string, updates domain.UpdateTaskPayload) (domain.Task, error) {
	task, err := pathSegment("task", taskID)
	if err != nil {
		return domain.Task{}, err
	}

	var result domain.Task
	if err := c.do(ctx, http.MethodPut, "/task/"+task, "", updates, &result); err != nil {
		return domain.Task{}, err
	}
	return result, nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	task, err := pathSegment("task", taskID)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodDelete, "/task/"+task, "", nil, nil)
}

func (c *Client) SearchTasks(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Task, error) {
	var envelope struct {
		Tasks []domain.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/search/tasks", searchQuery(query, opts), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Tasks, nil
}

func (c *Client) do(ctx context.Context, method, path, rawQuery string, body any, out any) error {
	endpoint := c.baseURL + path
	if rawQuery != "" {
		endpoint += "?" + rawQuery
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Authorization", c.token)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("clickup %s %s: %w", method, path, err)
	}
	defer func() { _ = response.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	c.logger.Debug("clickup request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"duration", time.Since(started).Round(time.Millisecond),
	)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: response.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultBaseURL, nil
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func pathSegment(kind, id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", fmt.Errorf("%s id: %w", kind, domain.ErrEmptyID)
	}
	return url.PathEscape(trimmed), nil
}
