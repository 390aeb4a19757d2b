// Package client is the HTTP transport for built operations. It posts
// operation text verbatim to one of the three Dgraph endpoints and hands
// back the decoded data payload; it does not retry and does not
// interpret HTTP status beyond rejecting non-200 responses.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/samwightt/dgx/pkg/operation"
)

// Endpoint selects which Dgraph HTTP endpoint a request is posted to.
type Endpoint string

const (
	Admin   Endpoint = "admin"
	GraphQL Endpoint = "graphql"
	Alter   Endpoint = "alter"
)

// Client posts operations to a single Dgraph server. It holds no
// request state: headers are a per-call parameter, never shared fields.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// New returns a client for the Dgraph server at baseURL. A nil
// *http.Client falls back to http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
		logger:  zerolog.Nop(),
	}
}

// WithLogger returns a copy of the client that logs requests through
// the given logger.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	copied := *c
	copied.logger = logger
	return &copied
}

func (c *Client) endpointURL(endpoint Endpoint) (string, error) {
	switch endpoint {
	case Admin, GraphQL, Alter:
		return c.baseURL + "/" + string(endpoint), nil
	default:
		return "", fmt.Errorf("unknown endpoint %q", endpoint)
	}
}

// Execute posts a built operation to the given endpoint and returns the
// response's data payload. The headers parameter is applied on top of
// the GraphQL content type; pass nil when no extra headers are needed.
func (c *Client) Execute(ctx context.Context, endpoint Endpoint, op *operation.Operation, headers http.Header) (json.RawMessage, error) {
	url, err := c.endpointURL(endpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(op.Text()))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/graphql")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	c.logger.Debug().
		Str("url", url).
		Str("operation", op.Text()).
		Msg("posting operation")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code was not 200 (%d)", resp.StatusCode)
	}

	var respData struct {
		Data   json.RawMessage
		Errors ErrorList
	}
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return nil, fmt.Errorf("failed to decode response payload: %v", err)
	}
	if len(respData.Errors) > 0 {
		return nil, respData.Errors
	}
	return respData.Data, nil
}
