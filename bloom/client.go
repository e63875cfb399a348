package bloom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production Bloom Growth API endpoint.
const DefaultBaseURL = "https://app.bloomgrowth.com/api/v1"

// Client is a Bloom Growth API client. Resource operations hang off the
// exported service fields, e.g. client.Todos.List(ctx, ...).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger

	// Cached identity of the authenticated user, resolved lazily. The mutex
	// is held across the lookup so concurrent callers trigger it at most
	// once.
	userMu    sync.Mutex
	userID    int64
	userIDSet bool

	Users      *UserService
	Meetings   *MeetingService
	Todos      *TodoService
	Goals      *GoalService
	Issues     *IssueService
	Headlines  *HeadlineService
	Scorecards *ScorecardService
}

// NewClient creates a new Bloom Growth client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")

	client.Users = &UserService{client: client}
	client.Meetings = &MeetingService{client: client}
	client.Todos = &TodoService{client: client}
	client.Goals = &GoalService{client: client}
	client.Issues = &IssueService{client: client}
	client.Headlines = &HeadlineService{client: client}
	client.Scorecards = &ScorecardService{client: client}

	return client, nil
}

// TestConnection verifies the client can reach the API with its credentials.
func (c *Client) TestConnection(ctx context.Context) error {
	var me wireUser
	if err := c.get(ctx, "users/mine", nil, &me); err != nil {
		return fmt.Errorf("%w: %v", ErrNoConnection, err)
	}
	c.logger.Debug().Int64("user_id", me.ID).Msg("connected to Bloom Growth")
	return nil
}

// doRequest performs an HTTP request with authentication and returns the
// response body. Non-2xx responses are returned as *APIError.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, error) {
	requestURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Str("method", method).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("API request failed")
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, payload)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) put(ctx context.Context, endpoint string, payload any) error {
	_, err := c.doRequest(ctx, http.MethodPut, endpoint, nil, payload)
	return err
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
