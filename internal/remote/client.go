// ABOUTME: Remote API client contract and HTTP plumbing for the sync backend.
// ABOUTME: Every call is fallible; retrying a failed push may duplicate remotely.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// CreatedWorkout is the server's confirmation for a pushed routine template.
// The server is authoritative for identity once confirmed, so ID may differ
// from the local id the template was created with.
type CreatedWorkout struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Client is the remote backend contract consumed by the sync engine.
type Client interface {
	FetchWorkouts(ctx context.Context, userID string) ([]models.Workout, error)
	FetchHistory(ctx context.Context, userID string) ([]models.WorkoutLog, error)
	CreateWorkout(ctx context.Context, userID string, w models.Workout) (*CreatedWorkout, error)
	CreateWorkoutLog(ctx context.Context, userID string, l models.WorkoutLog) error
	DeleteWorkout(ctx context.Context, userID, id string) error
	DeleteWorkoutLog(ctx context.Context, userID, id string) error
}

// HTTPClient talks to the backend's REST and function endpoints.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewHTTPClient creates a client for the given server.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope is the backend's uniform {data, error} response shape.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}

// do performs a request and decodes the response envelope into out (if
// non-nil). The backend reports failures in the envelope's error field.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if len(data) > 0 {
		if err := json.Unmarshal(data, &env); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	if env.Error != "" {
		return fmt.Errorf("%s %s: %s", method, path, env.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func userQuery(userID string) url.Values {
	q := url.Values{}
	q.Set("user_id", userID)
	return q
}

// FetchWorkouts returns the remote-authoritative routine templates.
func (c *HTTPClient) FetchWorkouts(ctx context.Context, userID string) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := c.do(ctx, http.MethodGet, "/api/v1/workouts", userQuery(userID), nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// FetchHistory returns the remote-authoritative rich history logs.
func (c *HTTPClient) FetchHistory(ctx context.Context, userID string) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	if err := c.do(ctx, http.MethodGet, "/api/v1/history", userQuery(userID), nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// createWorkoutRequest is handled server-side by an invoked function that
// cascades the exercise and set-target rows atomically.
type createWorkoutRequest struct {
	UserID    string                `json:"user_id"`
	Name      string                `json:"name"`
	Exercises []models.ExerciseSpec `json:"exercises"`
}

// CreateWorkout pushes a routine template through the cascading function.
func (c *HTTPClient) CreateWorkout(ctx context.Context, userID string, w models.Workout) (*CreatedWorkout, error) {
	req := createWorkoutRequest{UserID: userID, Name: w.Name, Exercises: w.Exercises}
	var created CreatedWorkout
	if err := c.do(ctx, http.MethodPost, "/api/v1/functions/create-workout", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type createWorkoutLogRequest struct {
	UserID    string               `json:"user_id"`
	Name      string               `json:"name"`
	Exercises []models.ExerciseLog `json:"exercises"`
	Duration  int                  `json:"duration"`
	Date      *time.Time           `json:"date,omitempty"`
	Note      *string              `json:"note,omitempty"`
}

// CreateWorkoutLog pushes a finished session through the cascading function.
func (c *HTTPClient) CreateWorkoutLog(ctx context.Context, userID string, l models.WorkoutLog) error {
	req := createWorkoutLogRequest{
		UserID:    userID,
		Name:      l.Name,
		Exercises: l.Exercises,
		Duration:  l.Duration,
		Note:      l.Note,
	}
	if !l.Date.IsZero() {
		date := l.Date
		req.Date = &date
	}
	return c.do(ctx, http.MethodPost, "/api/v1/functions/create-workout-log", nil, req, nil)
}

// DeleteWorkout removes a routine template remotely.
func (c *HTTPClient) DeleteWorkout(ctx context.Context, userID, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/workouts/"+id, userQuery(userID), nil, nil)
}

// DeleteWorkoutLog removes a history log remotely.
func (c *HTTPClient) DeleteWorkoutLog(ctx context.Context, userID, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/workout-logs/"+id, userQuery(userID), nil, nil)
}
