package client

import (
	"encoding/json"
	"net/http"
)

// Response wraps a completed API call. The body is fully read into memory;
// JSON parsing is deferred until [Response.JSON] or [Response.Decode] is
// called.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header

	body []byte

	jsonOnce bool
	jsonBody map[string]any
	jsonErr  error
}

// Bytes returns the raw response body.
func (r *Response) Bytes() []byte {
	return r.body
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.body)
}

// JSON parses the response body as a JSON object. The result is cached, so
// repeated calls do not re-parse. A body that is not a JSON object is an
// error, not a fallback value.
func (r *Response) JSON() (map[string]any, error) {
	if !r.jsonOnce {
		r.jsonOnce = true
		if err := json.Unmarshal(r.body, &r.jsonBody); err != nil {
			r.jsonErr = err
		}
	}
	return r.jsonBody, r.jsonErr
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.body, v)
}

// IsSuccess reports whether the status code is in the 2xx range. An expected
// non-2xx status (see [Request].Expected) yields a Response for which this
// returns false.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
