package goalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a stateless HTTP client for the goaltrack API. Authenticated
// calls take the bearer token explicitly; Session layers token management on
// top of this.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL, e.g. "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient overrides the underlying http.Client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, username, password, email string) error {
	return c.do(ctx, http.MethodPost, "/users/register", "",
		RegisterRequest{Username: username, Password: password, Email: email}, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/users/login", "",
		LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ChangePassword re-authenticates with the current password and replaces it.
func (c *Client) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/users/change-password", "",
		ChangePasswordRequest{
			Username:        username,
			CurrentPassword: currentPassword,
			NewPassword:     newPassword,
		}, nil)
}

// ListTasks returns the authenticated user's tasks.
func (c *Client) ListTasks(ctx context.Context, token string) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListObjectives returns the full departmental objective catalog.
func (c *Client) ListObjectives(ctx context.Context) ([]Objective, error) {
	var objectives []Objective
	if err := c.do(ctx, http.MethodGet, "/departmental-goals", "", nil, &objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

// CreateTask creates a task owned by the authenticated user.
func (c *Client) CreateTask(ctx context.Context, token string, req CreateTaskRequest) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks", token, req, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// UpdateTask replaces the mutable fields of a task.
func (c *Client) UpdateTask(ctx context.Context, token, id string, req UpdateTaskRequest) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, token, req, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// ToggleTask updates only the completion flag of a task.
func (c *Client) ToggleTask(ctx context.Context, token, id string, completed bool) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+id+"/toggle", token,
		ToggleTaskRequest{Completed: completed}, &task)
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, token, nil, nil)
}

// do performs one JSON request/response round trip. A nil out skips response
// decoding (for 204s and message-only responses the caller ignores).
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("goalsdk: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("goalsdk: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("goalsdk: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("goalsdk: read response: %w", err)
	}

	if err := parseErrorResponse(resp, raw); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("goalsdk: decode response: %w", err)
		}
	}
	return nil
}
