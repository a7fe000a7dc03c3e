// Package client provides a thin HTTP client base for REST APIs used by the
// course-authoring and testing tooling.
//
// The client wraps [github.com/go-resty/resty/v2] with automatic retries on
// transient connection failures, per-client request throttling, and pluggable
// logging. Service-specific wrappers live in subpackages (docebo, databricks)
// and share this client for all transport concerns.
//
// # Basic Usage
//
//	c, err := client.New("https://workspace.example.com/api/",
//	    client.WithToken("my-token"),
//	    client.WithThrottle(time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Get(ctx, "2.0/clusters/list", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, err := resp.JSON()
//
// # Authentication
//
// Exactly one authentication option must be supplied to [New]: a bearer token
// ([WithToken], optionally [WithAuthScheme]), HTTP Basic credentials
// ([WithBasicAuth]), a pre-composed header ([WithAuthorizationHeader]), or an
// existing client to inherit from ([WithParent]). Missing or conflicting
// credentials fail construction.
//
// # Status Classification
//
// Responses in the 2xx range, or with a status the caller listed in
// [Request].Expected, are returned as a [Response]. Other 4xx statuses become
// an [*APIError] carrying the parsed error message and code; everything else
// becomes an [*HTTPError].
//
//	resp, err := c.Get(ctx, "2.0/workspace/get-status",
//	    map[string]any{"path": "/Shared/example"},
//	    http.StatusNotFound,
//	)
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries transient connection errors with exponential
// backoff, seeded from the connect timeout and capped. Context cancellation,
// deadline exceeded, and DNS resolution errors are never retried, and neither
// are responses that arrived with an error status. Supply a custom function
// via [WithRetryPolicy] to override this behaviour.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards all
// log output. Ensure your implementation redacts credentials and tokens from
// request and response bodies before persisting logs.
package client
