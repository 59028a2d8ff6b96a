// Package http wraps the underlying HTTP client with Basic auth, TLS
// options, retries, and error translation for the Artifactory REST API.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/artifactory/internal/constants"
	"github.com/fivetwenty-io/artifactory/pkg/artifactory"
)

// Request represents an HTTP request to the API. Body, when set, is
// serialized as JSON. RawBody takes precedence over Body and is sent
// verbatim with ContentType (artifact deploys, AQL text, form payloads).
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Headers     map[string]string
	Body        interface{}
	RawBody     io.Reader
	ContentType string
}

// Response represents a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// StreamResponse represents a response whose body is still open. The
// caller must close Body.
type StreamResponse struct {
	StatusCode int
	Headers    http.Header
	Body       io.ReadCloser
}

// Client issues authenticated requests against a fixed base URL.
type Client struct {
	baseURL    string
	username   string
	password   string
	userAgent  string
	debug      bool
	logger     hclog.Logger
	httpClient *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBasicAuth sets the Basic auth pair applied to every request.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithLogger sets the structured logging sink.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging on the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes retry behavior for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets an overall timeout on the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithTLSConfig installs a TLS configuration (verification toggle, client
// certificates) on the underlying transport.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(c *Client) {
		transport, ok := c.httpClient.HTTPClient.Transport.(*http.Transport)
		if !ok {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}

		transport.TLSClientConfig = tlsConfig
		c.httpClient.HTTPClient.Transport = transport
	}
}

// NewClient creates a new API transport for baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.HTTPClient.Transport = http.DefaultTransport.(*http.Transport).Clone()
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     hclog.NewNullLogger(),
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do issues a request and reads the full response body. On a non-2xx
// status the parsed API error is returned along with the response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpResp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug {
		c.logger.Debug("HTTP Response",
			"status", httpResp.StatusCode,
			"method", req.Method,
			"path", req.Path,
		)
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, statusError(httpResp.StatusCode, body)
	}

	return resp, nil
}

// DoStream issues a request and returns the live response body. On a
// non-2xx status the body is consumed and the parsed API error returned.
func (c *Client) DoStream(ctx context.Context, req *Request) (*StreamResponse, error) {
	httpResp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		body, readErr := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()

		if readErr != nil {
			return nil, fmt.Errorf("reading error response body: %w", readErr)
		}

		resp := &StreamResponse{StatusCode: httpResp.StatusCode, Headers: httpResp.Header}

		return resp, statusError(httpResp.StatusCode, body)
	}

	return &StreamResponse{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       httpResp.Body,
	}, nil
}

func (c *Client) send(ctx context.Context, req *Request) (*http.Response, error) {
	fullURL := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		body        interface{}
		contentType string
	)

	switch {
	case req.RawBody != nil:
		body = req.RawBody
		contentType = req.ContentType
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.username != "" || c.password != "" {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	if c.debug {
		c.logger.Debug("HTTP Request", "method", req.Method, "url", fullURL)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	return httpResp, nil
}

// statusError translates a non-2xx response into a typed error. Bodies
// that carry the API's errors array are surfaced as ResponseError; other
// bodies become a single APIError with the raw text as message.
func statusError(statusCode int, body []byte) error {
	errResp, err := artifactory.ParseResponseError(body)
	if err == nil && len(errResp.Errors) > 0 {
		return errResp
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &artifactory.APIError{Status: statusCode, Message: message}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostForm issues a POST request with a form-encoded body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     strings.NewReader(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
