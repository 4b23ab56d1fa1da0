package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/voicedesk/scheduler/pkg/utils"
)

const defaultBaseURL = "https://api.retellai.com"

// Client is a minimal Retell API client. Only the create-web-call
// operation is needed; the voice agent itself lives on Retell's side.
type Client struct {
	apiKey  string
	agentID string
	baseURL string
	http    *http.Client
}

// NewClient creates a new Retell client from the environment
func NewClient(cfg *utils.Config) (*Client, error) {
	apiKey := cfg.Get("RETELL_API_KEY")
	if apiKey == "" {
		return nil, errors.New("RETELL_API_KEY not set in environment")
	}

	agentID := cfg.Get("RETELL_AGENT_ID")
	if agentID == "" {
		return nil, errors.New("RETELL_AGENT_ID not set in environment")
	}

	return &Client{
		apiKey:  apiKey,
		agentID: agentID,
		baseURL: cfg.GetWithDefault("RETELL_API_URL", defaultBaseURL),
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// WebCall is the browser-SDK handoff returned by Retell
type WebCall struct {
	AccessToken string `json:"access_token"`
	CallID      string `json:"call_id"`
}

// CreateWebCall registers a new web call for the configured agent and
// returns the access token the browser SDK connects with
func (c *Client) CreateWebCall(ctx context.Context) (*WebCall, error) {
	body, err := json.Marshal(map[string]string{"agent_id": c.agentID})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/create-web-call", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("retell request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("retell create-web-call returned %d: %s", resp.StatusCode, msg)
	}

	var call WebCall
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return nil, fmt.Errorf("failed to decode retell response: %w", err)
	}

	if call.AccessToken == "" {
		return nil, errors.New("retell did not return an access_token")
	}

	return &call, nil
}
