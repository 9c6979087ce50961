package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"family-planner/domain/dto"
)

// Client is the JSON/HTTP client the board uses to talk to the API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError carries the server's error envelope back to the caller.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *envelopeError  `json:"error"`
}

type envelopeError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

// Bootstrap fetches the combined users+tasks payload. It is the only
// response served outside the success envelope.
func (c *Client) Bootstrap(ctx context.Context) (*dto.BootstrapResponse, error) {
	body, err := c.do(ctx, http.MethodGet, "/bootstrap", nil)
	if err != nil {
		return nil, err
	}

	var resp dto.BootstrapResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode bootstrap response: %w", err)
	}
	return &resp, nil
}

func (c *Client) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	return c.taskRequest(ctx, http.MethodPost, "/tasks", req)
}

func (c *Client) UpdateTask(ctx context.Context, id uint, patch *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	return c.taskRequest(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d", id), patch)
}

func (c *Client) SetStatus(ctx context.Context, id uint, status string) (*dto.TaskResponse, error) {
	req := &dto.UpdateStatusRequest{Status: status}
	return c.taskRequest(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/status", id), req)
}

// SetAssignee claims or releases a task; a nil userID clears the
// assignment.
func (c *Client) SetAssignee(ctx context.Context, id uint, userID *uint) (*dto.TaskResponse, error) {
	req := &dto.UpdateAssigneeRequest{AssignedToUserID: userID}
	return c.taskRequest(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/assignee", id), req)
}

func (c *Client) DeleteTask(ctx context.Context, id uint) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil)
	return err
}

func (c *Client) taskRequest(ctx context.Context, method, path string, payload any) (*dto.TaskResponse, error) {
	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode task response: %w", err)
	}

	var task dto.TaskResponse
	if err := json.Unmarshal(env.Data, &task); err != nil {
		return nil, fmt.Errorf("decode task response: %w", err)
	}
	return &task, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.apiError(resp.StatusCode, body)
	}

	return body, nil
}

func (c *Client) apiError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		apiErr.Details = env.Error.Details
	}
	return apiErr
}
