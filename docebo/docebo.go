// Package docebo wraps the Docebo LMS REST API. Authentication is an OAuth2
// password grant performed once at construction; the resulting bearer token
// is carried by the shared [client.Client] for all subsequent calls.
package docebo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	client "github.com/dbacademy/rest-go-client"
)

// Config holds the credentials needed for the OAuth2 password grant. All
// fields are required.
type Config struct {
	Endpoint       string `env:"DOCEBO_ENDPOINT"`
	Username       string `env:"DOCEBO_USERNAME"`
	Password       string `env:"DOCEBO_PASSWORD"`
	ConsumerKey    string `env:"DOCEBO_CONSUMER_KEY"`
	ConsumerSecret string `env:"DOCEBO_CONSUMER_SECRET"`
}

func (c Config) validate() error {
	switch {
	case c.Endpoint == "":
		return errors.New("endpoint must be specified")
	case c.Username == "":
		return errors.New("username must be specified")
	case c.Password == "":
		return errors.New("password must be specified")
	case c.ConsumerKey == "":
		return errors.New("consumer key must be specified")
	case c.ConsumerSecret == "":
		return errors.New("consumer secret must be specified")
	}
	return nil
}

// Client groups the per-resource Docebo sub-clients around one shared API
// client. The sub-clients hold no state of their own.
type Client struct {
	*client.Client

	Manage   *ManageClient
	Courses  *CoursesClient
	Events   *EventsClient
	Sessions *SessionsClient
}

// New authenticates against cfg.Endpoint and builds the client. The token
// exchange must succeed before any client is constructed.
func New(ctx context.Context, cfg Config, opts ...client.Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	token, err := Authenticate(ctx, cfg)
	if err != nil {
		return nil, err
	}

	api, err := client.New(cfg.Endpoint, append(opts, client.WithToken(token))...)
	if err != nil {
		return nil, err
	}

	c := &Client{Client: api}
	c.Manage = &ManageClient{api: api}
	c.Courses = &CoursesClient{api: api}
	c.Events = &EventsClient{api: api}
	c.Sessions = &SessionsClient{api: api}

	return c, nil
}

// FromEnviron builds a client from the DOCEBO_* environment variables.
func FromEnviron(ctx context.Context, opts ...client.Option) (*Client, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}
	return New(ctx, cfg, opts...)
}

// SecretStore fetches named secrets from a scope, e.g. a workspace secret
// backend or a vault. [EnvStore] is an environment-variable-backed
// implementation.
type SecretStore interface {
	Get(ctx context.Context, scope, key string) (string, error)
}

// FromStore builds a client from secrets held under scope in store. The
// expected keys are endpoint, username, password, consumer_key and
// consumer_secret.
func FromStore(ctx context.Context, store SecretStore, scope string, opts ...client.Option) (*Client, error) {
	if store == nil {
		return nil, errors.New("secret store must not be nil")
	}

	var cfg Config
	for key, target := range map[string]*string{
		"endpoint":        &cfg.Endpoint,
		"username":        &cfg.Username,
		"password":        &cfg.Password,
		"consumer_key":    &cfg.ConsumerKey,
		"consumer_secret": &cfg.ConsumerSecret,
	} {
		value, err := store.Get(ctx, scope, key)
		if err != nil {
			return nil, fmt.Errorf("reading secret %s/%s: %w", scope, key, err)
		}
		*target = value
	}

	return New(ctx, cfg, opts...)
}

// EnvStore is a [SecretStore] that reads secrets from environment variables
// named SCOPE_KEY, upper-cased.
type EnvStore struct {
	lookup func(string) (string, bool)
}

// NewEnvStore returns an EnvStore backed by the process environment.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

func (s *EnvStore) Get(_ context.Context, scope, key string) (string, error) {
	name := strings.ToUpper(scope + "_" + key)
	lookup := s.lookup
	if lookup == nil {
		lookup = lookupEnv
	}
	value, ok := lookup(name)
	if !ok || value == "" {
		return "", fmt.Errorf("environment variable %s is not set", name)
	}
	return value, nil
}

var lookupEnv = os.LookupEnv

const tokenExchangeRetries = 3

// Authenticate performs the OAuth2 password grant against
// {endpoint}/oauth2/token and returns the access token. Transient transport
// failures are retried with exponential backoff; a non-200 response is
// permanent and fails immediately.
func Authenticate(ctx context.Context, cfg Config) (string, error) {
	httpc := resty.New().SetTimeout(30 * time.Second)
	tokenURL := strings.TrimRight(cfg.Endpoint, "/") + "/oauth2/token"

	exchange := func() (string, error) {
		resp, err := httpc.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetFormData(map[string]string{
				"grant_type":    "password",
				"client_id":     cfg.ConsumerKey,
				"client_secret": cfg.ConsumerSecret,
				"username":      cfg.Username,
				"password":      cfg.Password,
			}).
			Post(tokenURL)
		if err != nil {
			return "", err
		}

		if resp.StatusCode() != http.StatusOK {
			return "", backoff.Permanent(fmt.Errorf("token exchange returned %d: %s",
				resp.StatusCode(), resp.String()))
		}

		var body struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return "", backoff.Permanent(fmt.Errorf("parsing token response: %w", err))
		}
		if body.AccessToken == "" {
			return "", backoff.Permanent(errors.New("token response missing access_token"))
		}

		return body.AccessToken, nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), tokenExchangeRetries), ctx)

	token, err := backoff.RetryWithData(exchange, policy)
	if err != nil {
		return "", fmt.Errorf("authenticating against %s: %w", tokenURL, err)
	}
	return token, nil
}
