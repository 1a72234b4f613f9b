package wled

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single device request. WLED controllers answer on
// the local network in well under a second when reachable.
const DefaultTimeout = 5 * time.Second

const statePath = "/json/state"

// Client talks to a single WLED device.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for a device address. The address may be a
// bare IP or hostname; http:// is assumed when no scheme is given. A zero
// timeout selects DefaultTimeout.
func NewClient(address string, timeout time.Duration) *Client {
	baseURL := address
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetState reads the current device state.
func (c *Client) GetState(ctx context.Context) (*State, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+statePath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("device returned status %d", resp.StatusCode)
	}

	var state State
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	return &state, nil
}

// SetState posts a partial state patch to the device.
func (c *Client) SetState(ctx context.Context, patch State) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+statePath, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("set state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("device returned status %d", resp.StatusCode)
	}
	return nil
}

// SetPower turns the device on or off.
func (c *Client) SetPower(ctx context.Context, on bool) error {
	return c.SetState(ctx, State{On: &on})
}

// SetBrightness sets the device brightness (0-255).
func (c *Client) SetBrightness(ctx context.Context, brightness uint8) error {
	return c.SetState(ctx, State{Brightness: &brightness})
}

// Status classifies the device as on, off, or unreachable. A device that
// answers but omits the power field counts as on.
func (c *Client) Status(ctx context.Context) Status {
	state, err := c.GetState(ctx)
	if err != nil {
		return StatusUnreachable
	}
	if state.On != nil && !*state.On {
		return StatusOff
	}
	return StatusOn
}
