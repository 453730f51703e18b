package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/mustafashaheen1/girder/internal/domain"
)

// Client talks to the remote schedule store. It implements
// schedule.Gateway: every mutation returns the canonical record as the
// server persisted it.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured API endpoint.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// Wire envelopes. The task endpoints use the field names
// "scheduledTask"/"scheduledTasks" rather than "task".
type phaseListEnvelope struct {
	Success bool           `json:"success"`
	Phases  []domain.Phase `json:"phases"`
}

type phaseEnvelope struct {
	Success bool          `json:"success"`
	Phase   *domain.Phase `json:"phase"`
}

type taskListEnvelope struct {
	Success bool          `json:"success"`
	Tasks   []domain.Task `json:"scheduledTasks"`
}

type taskEnvelope struct {
	Success bool         `json:"success"`
	Task    *domain.Task `json:"scheduledTask"`
}

type statusEnvelope struct {
	Success bool `json:"success"`
}

func (c *Client) FetchPhases(ctx context.Context, projectID string) ([]domain.Phase, error) {
	var env phaseListEnvelope
	q := url.Values{"projectId": {projectID}}
	if err := c.call(ctx, http.MethodGet, "/phases", q, nil, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.Phases, nil
}

func (c *Client) CreatePhase(ctx context.Context, p *domain.Phase) (*domain.Phase, error) {
	var env phaseEnvelope
	if err := c.call(ctx, http.MethodPost, "/phases", nil, p, &env, &env.Success); err != nil {
		return nil, err
	}
	if env.Phase == nil {
		return nil, fmt.Errorf("%w: missing phase in response", ErrRemote)
	}
	return env.Phase, nil
}

func (c *Client) UpdatePhase(ctx context.Context, p *domain.Phase) (*domain.Phase, error) {
	var env phaseEnvelope
	if err := c.call(ctx, http.MethodPut, "/phases", nil, p, &env, &env.Success); err != nil {
		return nil, err
	}
	if env.Phase == nil {
		return nil, fmt.Errorf("%w: missing phase in response", ErrRemote)
	}
	return env.Phase, nil
}

func (c *Client) DeletePhase(ctx context.Context, id string) error {
	var env statusEnvelope
	q := url.Values{"id": {id}}
	return c.call(ctx, http.MethodDelete, "/phases", q, nil, &env, &env.Success)
}

func (c *Client) FetchTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	var env taskListEnvelope
	q := url.Values{"projectId": {projectID}}
	if err := c.call(ctx, http.MethodGet, "/tasks", q, nil, &env, &env.Success); err != nil {
		return nil, err
	}
	return env.Tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	var env taskEnvelope
	if err := c.call(ctx, http.MethodPost, "/tasks", nil, t, &env, &env.Success); err != nil {
		return nil, err
	}
	if env.Task == nil {
		return nil, fmt.Errorf("%w: missing task in response", ErrRemote)
	}
	return env.Task, nil
}

func (c *Client) UpdateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	var env taskEnvelope
	if err := c.call(ctx, http.MethodPut, "/tasks", nil, t, &env, &env.Success); err != nil {
		return nil, err
	}
	if env.Task == nil {
		return nil, fmt.Errorf("%w: missing task in response", ErrRemote)
	}
	return env.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	var env statusEnvelope
	q := url.Values{"id": {id}}
	return c.call(ctx, http.MethodDelete, "/tasks", q, nil, &env, &env.Success)
}

// call performs one API operation with timeout, retries, and observer
// reporting. out is decoded from the response body; success points at
// the envelope's success flag, checked after decoding.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out interface{}, success *bool) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		err := c.doRequest(ctx, method, path, query, body, out)
		if err == nil {
			if !*success {
				lastErr = fmt.Errorf("%w: success=false", ErrRemote)
				break // the server answered; retrying won't change its mind
			}
			c.observer.OnCallComplete(APICallEvent{
				Method: method, Path: path,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(APICallEvent{
		Method: method, Path: path,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return ErrTimeout
	}
	if isConnectionError(lastErr) {
		return ErrUnavailable
	}
	if errors.Is(lastErr, ErrRemote) {
		return lastErr
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrRemote, httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrTimeout) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
