package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/qa-automation/github-api-tests/framework"
)

const (
	// DefaultBaseURL is the root of GitHub's public REST API.
	DefaultBaseURL = "https://api.github.com"

	apiVersion       = "2022-11-28"
	defaultUserAgent = "github-api-tests"
)

// ClientOptions configures a Client. Only BaseURL is required.
type ClientOptions struct {
	// BaseURL is the root URL of the API, without a trailing slash.
	BaseURL string
	// Token is the bearer token attached to every request. If it is empty,
	// requests are sent without credentials.
	Token string
	// Headers are added to every request, after the default headers.
	Headers map[string]string
	// HTTPClient is used as the underlying client. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger receives a description of every request and response.
	Logger framework.Logger
}

// Client issues calls to the GitHub REST API. Its configuration is fixed at
// construction time; WithLogger returns a copy rather than modifying it.
type Client struct {
	baseURL       string
	authenticated bool
	headers       map[string]string
	httpClient    *http.Client
	logger        framework.Logger
}

// outboundRequest models of an outbound API call.
type outboundRequest struct {
	// method specifies the HTTP method to be used.
	method string
	// path specifies a path (relative to the root of the API) to be used.
	path string
	// queryParams optionally specifies any URL query parameters to be used.
	queryParams map[string]string
	// reqBodyObj optionally provides an object that can be marshaled to create
	// the body of the HTTP request.
	reqBodyObj interface{}
	// respObj optionally provides an object into which the HTTP response body can
	// be unmarshaled.
	respObj interface{}
}

// Response is the envelope for a completed API call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// Elapsed is the time between sending the request and receiving the
	// response headers.
	Elapsed time.Duration
}

// ElapsedTime returns the time taken by the call.
func (r *Response) ElapsedTime() time.Duration {
	return r.Elapsed
}

// Decode unmarshals the JSON response body.
func (r *Response) Decode(into interface{}) error {
	if err := json.Unmarshal(r.Body, into); err != nil {
		return errors.Wrap(err, "error unmarshaling response body")
	}
	return nil
}

func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"},
		))
	}
	headers := map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": apiVersion,
		"User-Agent":           defaultUserAgent,
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	logger := opts.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:       baseURL,
		authenticated: opts.Token != "",
		headers:       headers,
		httpClient:    httpClient,
		logger:        logger,
	}
}

// WithLogger returns a copy of the client that logs to the specified logger.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	ret := *c
	if logger == nil {
		logger = framework.NullLogger()
	}
	ret.logger = logger
	return &ret
}

// BaseURL returns the root URL of the API.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticated returns true if the client attaches a bearer token to requests.
func (c *Client) Authenticated() bool {
	return c.authenticated
}

// MakeRequest performs a request with no body and returns the response
// envelope. A status outside of the 2xx range is returned as an *APIError.
func (c *Client) MakeRequest(ctx context.Context, method, path string) (*Response, error) {
	return c.submitRequest(ctx, outboundRequest{method: method, path: path})
}

// executeRequest accepts one argument-- an outboundRequest-- that models all
// aspects of a single API call in a succinct fashion. Based on this
// information, this function prepares and executes an HTTP request, interprets
// the HTTP response code and decodes the response body into a user-supplied
// type.
func (c *Client) executeRequest(ctx context.Context, req outboundRequest) (*Response, error) {
	resp, err := c.submitRequest(ctx, req)
	if err != nil {
		return resp, err
	}
	if req.respObj != nil && len(resp.Body) > 0 {
		if err := resp.Decode(req.respObj); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func (c *Client) submitRequest(ctx context.Context, req outboundRequest) (*Response, error) {
	var reqBodyBytes []byte
	if req.reqBodyObj != nil {
		var err error
		if reqBodyBytes, err = json.Marshal(req.reqBodyObj); err != nil {
			return nil, errors.Wrap(err, "error marshaling request body")
		}
	}
	var reqBodyReader io.Reader
	if reqBodyBytes != nil {
		reqBodyReader = bytes.NewReader(reqBodyBytes)
	}

	r, err := http.NewRequest(req.method, c.baseURL+req.path, reqBodyReader)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating request %s %s", req.method, req.path)
	}
	r = r.WithContext(ctx)
	if len(req.queryParams) > 0 {
		q := r.URL.Query()
		for k, v := range req.queryParams {
			q.Set(k, v)
		}
		r.URL.RawQuery = q.Encode()
	}
	for k, v := range c.headers {
		r.Header.Set(k, v)
	}
	if reqBodyBytes != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	c.logger.Printf("Request: %s", curlCommand(r, reqBodyBytes, c.authenticated))
	started := time.Now()
	resp, err := c.httpClient.Do(r)
	if err != nil {
		return nil, errors.Wrapf(err, "error invoking API %s %s", req.method, req.path)
	}
	elapsed := time.Since(started)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading response body")
	}
	c.logger.Printf("Response: %d (%dms, %d bytes)", resp.StatusCode, elapsed.Milliseconds(), len(body))

	envelope := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Elapsed:    elapsed,
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return envelope, newAPIError(req.method, req.path, resp.StatusCode, body)
	}
	return envelope, nil
}
