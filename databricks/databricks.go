// Package databricks wraps the Databricks workspace REST API. Credentials
// come from the DATABRICKS_* environment variables or are supplied directly;
// all transport behaviour lives in the shared [client.Client].
package databricks

import (
	"errors"
	"fmt"
	"strings"

	env "github.com/Netflix/go-env"

	client "github.com/dbacademy/rest-go-client"
)

// Config identifies a workspace and its credentials. Host is required; the
// token takes precedence over username/password when both are set.
type Config struct {
	Host     string `env:"DATABRICKS_HOST"`
	Token    string `env:"DATABRICKS_TOKEN"`
	Username string `env:"DATABRICKS_USERNAME"`
	Password string `env:"DATABRICKS_PASSWORD"`
}

// Client groups the workspace sub-clients around one shared API client.
type Client struct {
	*client.Client

	Workspace *WorkspaceClient
}

// New builds a workspace client. The API root is {host}/api/, matching the
// path layout of the versioned workspace endpoints (e.g. 2.0/clusters/list).
func New(cfg Config, opts ...client.Option) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("host must be specified")
	}

	switch {
	case cfg.Token != "":
		opts = append(opts, client.WithToken(cfg.Token))
	case cfg.Username != "" && cfg.Password != "":
		opts = append(opts, client.WithBasicAuth(cfg.Username, cfg.Password))
	default:
		return nil, errors.New("must specify a token or a username and password")
	}

	api, err := client.New(strings.TrimRight(cfg.Host, "/")+"/api/", opts...)
	if err != nil {
		return nil, err
	}

	c := &Client{Client: api}
	c.Workspace = &WorkspaceClient{api: api}

	return c, nil
}

// FromEnviron builds a client from the DATABRICKS_* environment variables.
func FromEnviron(opts ...client.Option) (*Client, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}
	return New(cfg, opts...)
}
