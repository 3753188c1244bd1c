// Package jsonrpc provides a generic JSON-RPC client over HTTP. It is suitable
// for interacting with any JSON-RPC-compatible service, such as blockchain nodes.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnauthorized is returned when the server rejects the request credentials.
	ErrUnauthorized = errors.New("provider rejected credentials")
)

// response represents a JSON-RPC response. Both 1.0 and 2.0 servers fit it.
type response struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type config struct {
	version  string
	username string
	password string
}

// Option configures the JSON-RPC client.
type Option func(*config)

// WithVersion sets the "jsonrpc" field sent on every request. Default: "2.0".
func WithVersion(v string) Option {
	return func(c *config) {
		c.version = v
	}
}

// WithBasicAuth authenticates every request with HTTP basic auth.
func WithBasicAuth(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string
	httpClient       *http.Client
	config           config
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// Missing parameters are sent as an empty array. The request id is a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": c.config.version,
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.config.username != "" || c.config.password != "" {
		req.SetBasicAuth(c.config.username, c.config.password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewClient constructs a Client that sends JSON-RPC requests to the
// provider endpoint using the given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string, opts ...Option) *client {
	cfg := config{
		version: "2.0",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
		config:           cfg,
	}
}
