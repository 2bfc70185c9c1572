package exec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"codeinterview/internal/models"
)

// Result is what the execution service reports for one run.
type Result struct {
	Output        string  `json:"output"`
	Error         *string `json:"error"`
	ExecutionTime int     `json:"executionTime"`
}

type runRequest struct {
	Code     string          `json:"code"`
	Language models.Language `json:"language"`
}

// Client relays code to the external execution service. Execution itself
// happens remotely; this service only forwards the result to the room.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Execute runs (code, language) on the execution service. With no
// service configured it returns a canned result so the rest of the room
// flow stays usable in development.
func (c *Client) Execute(ctx context.Context, code string, language models.Language) (Result, error) {
	if c.baseURL == "" {
		return Result{
			Output:        fmt.Sprintf("[Mock Output] %s code executed", language),
			ExecutionTime: 42,
		}, nil
	}

	body, err := json.Marshal(runRequest{Code: code, Language: language})
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode run request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build run request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call execution service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("execution service returned status %d", resp.StatusCode)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("failed to decode run result: %w", err)
	}
	return out, nil
}
