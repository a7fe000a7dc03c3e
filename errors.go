package client

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// APIError is returned for 4xx responses whose status was not listed in
// [Request].Expected. Message and ErrorCode are extracted from a JSON error
// body when possible; otherwise Message carries the raw body text.
type APIError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Message    string
	ErrorCode  string
	Body       []byte
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "(empty error body)"
	}
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Endpoint, e.StatusCode, msg)
}

// HTTPError is returned for unexpected statuses outside both the 2xx and 4xx
// ranges (1xx, 3xx, 5xx).
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := bodyPreview(e.Body)
	return fmt.Sprintf("%d %s for %s %s: %s", e.StatusCode, statusClass(e.StatusCode), e.Method, e.URL, body)
}

const maxBodyPreview = 512

func bodyPreview(body []byte) string {
	if len(body) == 0 {
		return "(empty error body)"
	}
	if len(body) > maxBodyPreview {
		return string(body[:maxBodyPreview]) + "..."
	}
	return string(body)
}

func statusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 300 && code < 400:
		return "Redirection"
	case code >= 400 && code < 500:
		return "Client Error"
	case code >= 500 && code < 600:
		return "Server Error"
	default:
		return "Unknown Error"
	}
}

// newAPIError parses the error body of a 4xx response. The "message" field is
// preferred, then "error"; "error_code" may be a string or a number.
func newAPIError(method, endpoint string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       body,
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		apiErr.Message = string(body)
		return apiErr
	}

	if msg, ok := parsed["message"].(string); ok && msg != "" {
		apiErr.Message = msg
	} else if msg, ok := parsed["error"].(string); ok && msg != "" {
		apiErr.Message = msg
	} else {
		apiErr.Message = string(body)
	}

	switch code := parsed["error_code"].(type) {
	case string:
		apiErr.ErrorCode = code
	case float64:
		apiErr.ErrorCode = strconv.FormatInt(int64(code), 10)
	}

	return apiErr
}
