package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrStatus is returned when the API answers with a non-200 status.
var ErrStatus = errors.New("unexpected response status")

// DefaultTimeout bounds the single request a run performs.
const DefaultTimeout = 30 * time.Second

// credentialField is the form field the dashboard endpoint expects.
const credentialField = "API_KEY"

// Client fetches the dashboard payload. The zero value is not usable; create
// one with NewClient.
type Client struct {
	http     *http.Client
	endpoint string
	key      string
}

// NewClient creates a client for the given endpoint and credential.
// If httpClient is nil, a client with DefaultTimeout is used.
func NewClient(endpoint, key string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{http: httpClient, endpoint: endpoint, key: key}
}

// Fetch performs the run's single POST and decodes the payload. Any
// transport error or non-200 status is returned as-is; callers treat these
// as fatal.
func (c *Client) Fetch(ctx context.Context) (*Payload, error) {
	form := url.Values{credentialField: {c.key}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dashboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d %s", ErrStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var p Payload
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode dashboard payload: %w", err)
	}
	return &p, nil
}
