package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Client is a thin wrapper over a REST API rooted at a base URL. All request
// paths are resolved relative to the base URL, which always ends with exactly
// one "/".
//
// A Client is safe for concurrent use; the throttle limiter serialises the
// minimum spacing between requests across goroutines.
type Client struct {
	baseURL    string
	host       string
	authHeader string
	options    *Options
	http       *resty.Client
	limiter    *rate.Limiter
}

// New builds a client for the API rooted at baseURL. Exactly one
// authentication option must be supplied: [WithToken], [WithBasicAuth],
// [WithAuthorizationHeader] or [WithParent]. Construction fails on missing or
// conflicting credentials and on an unparseable base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	if options.parent != nil && !strings.Contains(baseURL, "://") {
		baseURL = options.parent.baseURL + strings.Trim(baseURL, "/")
	}

	if baseURL == "" {
		return nil, errors.New("base URL must be set")
	}

	baseURL = strings.TrimRight(baseURL, "/") + "/"

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Hostname() == "" {
		return nil, fmt.Errorf("base URL %q is not a valid URL", baseURL)
	}

	c := &Client{
		baseURL:    baseURL,
		host:       parsed.Hostname(),
		authHeader: options.authorization(),
		options:    options,
	}

	if options.throttle > 0 {
		c.limiter = rate.NewLimiter(rate.Every(options.throttle), 1)
	}

	c.http = resty.New().
		SetHeaders(options.requestHeaders).
		SetHeader("Authorization", c.authHeader).
		SetTimeout(options.readTimeout).
		SetRetryCount(options.retryCount).
		SetRetryWaitTime(options.retryWaitTime).
		SetRetryMaxWaitTime(options.retryMaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			retry := options.retryPolicy(r, err)
			if retry {
				options.requestLogger.Warnf("retrying request after transport error: %v", err)
			}
			return retry
		}).
		SetTransport(&http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: options.connectTimeout,
			}).DialContext,
		})

	return c, nil
}

// BaseURL returns the normalized base URL, always ending with "/".
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues a single API call described by req and classifies the response
// status. Statuses in the 2xx range, or listed in req.Expected, yield a
// [Response]; other 4xx statuses yield an [APIError] and everything else a
// [HTTPError].
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c == nil {
		return nil, errors.New("api client is nil")
	}

	endpoint, err := c.resolvePath(req.Path)
	if err != nil {
		return nil, err
	}

	if err := c.verifyHost(ctx); err != nil {
		return nil, err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	method := strings.ToUpper(req.Method)
	r := c.http.R().SetContext(ctx)

	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		if len(req.Payload) > 0 {
			r.SetQueryParams(queryParams(req.Payload))
		}
	default:
		if req.Payload != nil {
			r.SetBody(req.Payload)
		}
	}

	resp, err := r.Execute(method, c.baseURL+endpoint)
	if err != nil {
		c.options.requestLogger.Errorf("%s %s failed: %v", method, endpoint, err)
		return nil, fmt.Errorf("%s %s failed: %w", method, endpoint, err)
	}

	c.options.requestLogger.Debugf("%s %s -> %d", method, endpoint, resp.StatusCode())

	if err := classifyStatus(method, endpoint, resp, req.Expected); err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header(),
		body:       resp.Body(),
	}, nil
}

// Get issues a GET request; the payload is encoded as query parameters.
func (c *Client) Get(ctx context.Context, path string, payload map[string]any, expected ...int) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Payload: payload, Expected: expected})
}

// Post issues a POST request; the payload is sent as a JSON body.
func (c *Client) Post(ctx context.Context, path string, payload map[string]any, expected ...int) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Payload: payload, Expected: expected})
}

// Put issues a PUT request; the payload is sent as a JSON body.
func (c *Client) Put(ctx context.Context, path string, payload map[string]any, expected ...int) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Payload: payload, Expected: expected})
}

// Patch issues a PATCH request; the payload is sent as a JSON body.
func (c *Client) Patch(ctx context.Context, path string, payload map[string]any, expected ...int) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Payload: payload, Expected: expected})
}

// Delete issues a DELETE request; the payload is sent as a JSON body.
func (c *Client) Delete(ctx context.Context, path string, payload map[string]any, expected ...int) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Payload: payload, Expected: expected})
}

// Head issues a HEAD request; the payload is encoded as query parameters.
func (c *Client) Head(ctx context.Context, path string, payload map[string]any, expected ...int) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodHead, Path: path, Payload: payload, Expected: expected})
}

// resolvePath turns a request path into a path relative to the base URL. A
// path that already starts with the base URL has the prefix stripped; any
// other absolute URL is a usage error.
func (c *Client) resolvePath(path string) (string, error) {
	if strings.HasPrefix(path, c.baseURL) {
		path = path[len(c.baseURL):]
	} else if strings.Contains(path, "://") {
		return "", fmt.Errorf("endpoint path must be relative to %s, got %q", c.baseURL, path)
	}
	return strings.TrimLeft(path, "/"), nil
}

// verifyHost resolves the base URL host before any request is issued, so DNS
// misconfiguration surfaces as a connection error rather than a retried
// transport failure.
func (c *Client) verifyHost(ctx context.Context) error {
	if _, err := net.DefaultResolver.LookupHost(ctx, c.host); err != nil {
		return fmt.Errorf("DNS lookup for hostname %q failed: %w", c.host, err)
	}
	return nil
}

func classifyStatus(method, endpoint string, resp *resty.Response, expected []int) error {
	code := resp.StatusCode()

	if code >= 200 && code < 300 {
		return nil
	}

	if slices.Contains(expected, code) {
		return nil
	}

	if code >= 400 && code < 500 {
		return newAPIError(method, endpoint, code, resp.Body())
	}

	return &HTTPError{
		Method:     method,
		URL:        resp.Request.URL,
		StatusCode: code,
		Status:     resp.Status(),
		Body:       resp.Body(),
	}
}

func queryParams(payload map[string]any) map[string]string {
	params := make(map[string]string, len(payload))
	for key, value := range payload {
		switch v := value.(type) {
		case bool:
			params[key] = strconv.FormatBool(v)
		case string:
			params[key] = v
		default:
			params[key] = fmt.Sprintf("%v", v)
		}
	}
	return params
}
