package interviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"talenthub-backend/internal/models"
)

// ErrNotFound is returned when the interview service has no record for the
// requested id.
var ErrNotFound = errors.New("interview not found")

// Client talks to the interview service's REST API. Every call takes a
// context so an abandoned request cancels its outbound call; there is no
// retry or backoff, failures surface to the caller immediately.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetInterview fetches an interview record, including the raw
// feedbackTemplates strings attached to it.
func (c *Client) GetInterview(ctx context.Context, id int) (*models.Interview, error) {
	url := fmt.Sprintf("%s/api/interviews/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("interview service returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var interview models.Interview
	if err := json.Unmarshal(body, &interview); err != nil {
		return nil, fmt.Errorf("decoding interview: %w", err)
	}

	return &interview, nil
}

// UpdateStatus pushes a status transition for an interview. The status goes
// in a query parameter and the request carries no body, matching the
// interview service's contract.
func (c *Client) UpdateStatus(ctx context.Context, id int, status string) error {
	url := fmt.Sprintf("%s/api/interviews/%d/status", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	q := req.URL.Query()
	q.Add("status", status)
	req.URL.RawQuery = q.Encode()
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("interview service returned %s", resp.Status)
	}

	return nil
}
