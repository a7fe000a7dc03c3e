package client

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Option func(*Options)

type Options struct {
	connectTimeout   time.Duration
	readTimeout      time.Duration
	throttle         time.Duration
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
	authUsername     string
	authPassword     string
	authScheme       string
	authToken        string
	authHeader       string
	parent           *Client
}

const (
	defaultConnectTimeout = 5 * time.Second
	defaultReadTimeout    = 300 * time.Second

	// maxTotalBackoff caps the per-attempt retry wait and bounds the default
	// retry budget (budget = ceiling / initial wait).
	maxTotalBackoff = 2 * time.Minute
)

func newClientOptions() *Options {
	return &Options{
		connectTimeout:   defaultConnectTimeout,
		readTimeout:      defaultReadTimeout,
		retryCount:       int(maxTotalBackoff / defaultConnectTimeout),
		retryWaitTime:    defaultConnectTimeout,
		retryMaxWaitTime: maxTotalBackoff,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithConnectTimeout overrides the default 5s dial timeout.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.connectTimeout = timeout
		}
	}
}

// WithReadTimeout overrides the default 300s whole-request timeout.
func WithReadTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.readTimeout = timeout
		}
	}
}

// WithThrottle enforces a minimum interval between consecutive requests
// issued through one client instance. Zero (the default) disables throttling.
func WithThrottle(interval time.Duration) Option {
	return func(o *Options) {
		if interval >= 0 {
			o.throttle = interval
		}
	}
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithBasicAuth authenticates every request with an HTTP Basic header built
// from the given credentials.
func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.authUsername = username
		o.authPassword = password
	}
}

// WithAuthScheme overrides the "Bearer" scheme used with [WithToken].
func WithAuthScheme(scheme string) Option {
	return func(o *Options) {
		o.authScheme = scheme
	}
}

// WithToken authenticates every request with a bearer token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}

// WithAuthorizationHeader passes a pre-composed Authorization header through
// verbatim. Mutually exclusive with the other auth options.
func WithAuthorizationHeader(header string) Option {
	return func(o *Options) {
		o.authHeader = header
	}
}

// WithParent inherits the Authorization header from an existing client. A
// relative base URL is also resolved against the parent's base URL.
func WithParent(parent *Client) Option {
	return func(o *Options) {
		o.parent = parent
	}
}

func (o *Options) Validate() error {
	if o.connectTimeout <= 0 {
		return errors.New("connectTimeout must be positive")
	}

	if o.readTimeout <= 0 {
		return errors.New("readTimeout must be positive")
	}

	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)",
			o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	configured := 0
	if o.authToken != "" {
		configured++
	}
	if o.authUsername != "" || o.authPassword != "" {
		configured++
	}
	if o.authHeader != "" {
		configured++
	}
	if o.parent != nil {
		configured++
	}

	switch configured {
	case 0:
		return errors.New("must configure exactly one of token, basic auth, authorization header, or parent client")
	case 1:
		return nil
	default:
		return errors.New("cannot combine auth options - choose one of token, basic auth, authorization header, or parent client")
	}
}

// authorization composes the Authorization header value from whichever auth
// option was configured. Validate must have passed first.
func (o *Options) authorization() string {
	switch {
	case o.authHeader != "":
		return o.authHeader
	case o.authToken != "":
		scheme := o.authScheme
		if scheme == "" {
			scheme = "Bearer"
		}
		return scheme + " " + o.authToken
	case o.authUsername != "" || o.authPassword != "":
		credentials := base64.StdEncoding.EncodeToString([]byte(o.authUsername + ":" + o.authPassword))
		return "Basic " + credentials
	case o.parent != nil:
		return o.parent.authHeader
	default:
		return ""
	}
}
