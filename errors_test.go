package client

import (
	"strings"
	"testing"
)

func TestNewAPIError_MessageField(t *testing.T) {
	t.Parallel()

	err := newAPIError("GET", "items/1", 404, []byte(`{"message": "item not found", "error_code": "RESOURCE_DOES_NOT_EXIST"}`))

	if err.Message != "item not found" {
		t.Errorf("expected message='item not found', got %q", err.Message)
	}

	if err.ErrorCode != "RESOURCE_DOES_NOT_EXIST" {
		t.Errorf("expected errorCode=RESOURCE_DOES_NOT_EXIST, got %q", err.ErrorCode)
	}
}

func TestNewAPIError_ErrorFieldFallback(t *testing.T) {
	t.Parallel()

	err := newAPIError("POST", "items", 400, []byte(`{"error": "validation failed"}`))

	if err.Message != "validation failed" {
		t.Errorf("expected message='validation failed', got %q", err.Message)
	}

	if err.ErrorCode != "" {
		t.Errorf("expected empty errorCode, got %q", err.ErrorCode)
	}
}

func TestNewAPIError_NumericErrorCode(t *testing.T) {
	t.Parallel()

	err := newAPIError("GET", "items", 429, []byte(`{"message": "slow down", "error_code": 1007}`))

	if err.ErrorCode != "1007" {
		t.Errorf("expected errorCode=1007, got %q", err.ErrorCode)
	}
}

func TestNewAPIError_NonJSONBody(t *testing.T) {
	t.Parallel()

	err := newAPIError("GET", "items", 400, []byte("Bad Request"))

	if err.Message != "Bad Request" {
		t.Errorf("expected raw body as message, got %q", err.Message)
	}
}

func TestNewAPIError_JSONWithoutKnownFields(t *testing.T) {
	t.Parallel()

	body := `{"detail": "something went wrong"}`
	err := newAPIError("GET", "items", 400, []byte(body))

	if err.Message != body {
		t.Errorf("expected raw body as message, got %q", err.Message)
	}
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := newAPIError("GET", "secrets/list", 403, []byte(`{"message": "permission denied"}`))

	msg := err.Error()
	for _, want := range []string{"GET", "secrets/list", "403", "permission denied"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to contain %q, got: %s", want, msg)
		}
	}
}

func TestAPIError_EmptyBody(t *testing.T) {
	t.Parallel()

	err := newAPIError("GET", "items", 404, nil)

	if !strings.Contains(err.Error(), "(empty error body)") {
		t.Errorf("expected '(empty error body)', got: %s", err.Error())
	}
}

func TestHTTPError_Error(t *testing.T) {
	t.Parallel()

	err := &HTTPError{
		Method:     "POST",
		URL:        "http://example.com/items",
		StatusCode: 503,
		Status:     "503 Service Unavailable",
		Body:       []byte("try later"),
	}

	msg := err.Error()
	for _, want := range []string{"503", "Server Error", "POST", "http://example.com/items", "try later"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to contain %q, got: %s", want, msg)
		}
	}
}

func TestHTTPError_EmptyBody(t *testing.T) {
	t.Parallel()

	err := &HTTPError{Method: "GET", URL: "http://example.com/", StatusCode: 500}

	if !strings.Contains(err.Error(), "(empty error body)") {
		t.Errorf("expected '(empty error body)', got: %s", err.Error())
	}
}

func TestBodyPreview_Truncation(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", maxBodyPreview+100)
	preview := bodyPreview([]byte(long))

	if len(preview) != maxBodyPreview+3 {
		t.Errorf("expected preview of %d chars, got %d", maxBodyPreview+3, len(preview))
	}

	if !strings.HasSuffix(preview, "...") {
		t.Error("expected truncated preview to end with '...'")
	}
}

func TestStatusClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     int
		expected string
	}{
		{101, "Informational"},
		{302, "Redirection"},
		{404, "Client Error"},
		{500, "Server Error"},
		{600, "Unknown Error"},
	}

	for _, tt := range tests {
		if got := statusClass(tt.code); got != tt.expected {
			t.Errorf("statusClass(%d): expected %q, got %q", tt.code, tt.expected, got)
		}
	}
}
