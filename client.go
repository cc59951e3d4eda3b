package llmsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultBaseURL is the default base URL for the OpenAI API.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client is a client for an OpenAI-compatible API.
//
// The zero-configuration client talks to https://api.openai.com/v1; point it
// at any compatible server with [WithBaseURL]. A Client is immutable after
// construction and safe for concurrent use.
//
// https://platform.openai.com/docs/api-reference
type Client struct {
	// APIKey is the API key to use for requests, attached as a bearer
	// credential on every call.
	APIKey string

	// BaseURL is the base URL requests are made against. It is joined
	// with each operation's fixed path, e.g. "/chat/completions".
	BaseURL string

	// HTTPClient is the HTTP client to use for requests.
	HTTPClient *http.Client

	// Organization is the organization to use for requests.
	Organization string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithHTTPClient is a ClientOption that sets the HTTP client to use for requests.
//
// If the client is nil, then http.DefaultClient is used.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		if c == nil {
			c = http.DefaultClient
		}
		client.HTTPClient = c
	}
}

// WithBaseURL is a ClientOption that sets the base URL to use for requests,
// for OpenAI-compatible servers other than the default. The URL is not
// validated; a malformed URL surfaces as a [*TransportError] on first use.
func WithBaseURL(baseURL string) ClientOption {
	return func(client *Client) {
		client.BaseURL = baseURL
	}
}

// WithOrganization is a ClientOption that sets the organization to use for requests.
//
// https://platform.openai.com/docs/api-reference/authentication
func WithOrganization(org string) ClientOption {
	return func(client *Client) {
		client.Organization = org
	}
}

// NewClient returns a new Client with the given API key.
//
// # Example
//
//	c := llmsdk.NewClient(os.Getenv("OPENAI_API_KEY"))
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// endpoint joins the client's base URL with an operation path.
func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

// do issues a single HTTP exchange and reads the complete response body.
// A failure of the round trip itself (DNS, refused connection, timeout,
// canceled context) is returned as a [*TransportError]; the status code and
// body of any completed exchange are handed back untouched for decoding.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string) (int, []byte, error) {
	r, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}

	r.Header.Set("Authorization", "Bearer "+c.APIKey)

	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}

	if c.Organization != "" {
		r.Header.Set("OpenAI-Organization", c.Organization)
	}

	resp, err := c.HTTPClient.Do(r)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return resp.StatusCode, respBody, nil
}

// postJSON marshals reqBody as JSON, posts it, and decodes the success
// payload into out.
func (c *Client) postJSON(ctx context.Context, op, path string, reqBody, out any) error {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", op, err)
	}

	status, respBody, err := c.do(ctx, op, http.MethodPost, path, bytes.NewReader(b), "application/json")
	if err != nil {
		return err
	}

	return decodeResponse(status, respBody, out)
}

// postJSONRaw behaves like postJSON, but returns the raw success body
// instead of decoding it. Used for operations that return binary payloads,
// like speech synthesis.
func (c *Client) postJSONRaw(ctx context.Context, op, path string, reqBody any) ([]byte, error) {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", op, err)
	}

	status, respBody, err := c.do(ctx, op, http.MethodPost, path, bytes.NewReader(b), "application/json")
	if err != nil {
		return nil, err
	}

	if !successStatus(status) {
		return nil, decodeErrorResponse(status, respBody)
	}

	return respBody, nil
}

// getJSON issues a GET request and decodes the success payload into out.
func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	status, respBody, err := c.do(ctx, op, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}

	return decodeResponse(status, respBody, out)
}

// successStatus reports whether the status code is in the success range.
func successStatus(status int) bool {
	return status >= 200 && status < 300
}

// decodeResponse classifies a completed HTTP exchange: a success status is
// decoded as the operation's response shape, anything else as the provider's
// error envelope. Either decode failing yields a [*DecodeError] carrying the
// raw body; it never panics.
func decodeResponse(status int, body []byte, out any) error {
	if !successStatus(status) {
		return decodeErrorResponse(status, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{StatusCode: status, Body: body, Err: err}
	}

	return nil
}

// decodeErrorResponse parses the provider's error envelope from a non-success
// response body, falling back to a [*DecodeError] when the body is not the
// documented envelope.
func decodeErrorResponse(status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &DecodeError{StatusCode: status, Body: body, Err: err}
	}

	if envelope.Error.Message == "" && envelope.Error.Type == "" {
		return &DecodeError{
			StatusCode: status,
			Body:       body,
			Err:        fmt.Errorf("response body is not the expected error envelope"),
		}
	}

	apiErr := &APIError{
		StatusCode: status,
		Message:    envelope.Error.Message,
		Type:       envelope.Error.Type,
	}

	// The provider emits code as a string, null, or (rarely) a number.
	switch code := envelope.Error.Code.(type) {
	case string:
		apiErr.Code = code
	case float64:
		apiErr.Code = fmt.Sprintf("%v", code)
	}

	return apiErr
}
