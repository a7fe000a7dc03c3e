package client

import (
	"testing"
)

func TestResponse_JSON(t *testing.T) {
	t.Parallel()

	resp := &Response{StatusCode: 200, body: []byte(`{"id": 7, "name": "demo"}`)}

	body, err := resp.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if body["name"] != "demo" {
		t.Errorf("expected name=demo, got %v", body["name"])
	}

	// Second call returns the cached map, not a fresh parse
	again, err := resp.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again["mutated"] = true
	if _, ok := body["mutated"]; !ok {
		t.Error("expected JSON result to be cached, got a fresh parse")
	}
}

func TestResponse_JSONParseError(t *testing.T) {
	t.Parallel()

	resp := &Response{StatusCode: 200, body: []byte("<html>not json</html>")}

	if _, err := resp.JSON(); err == nil {
		t.Fatal("expected error for non-JSON body")
	}

	// Error is cached too
	if _, err := resp.JSON(); err == nil {
		t.Fatal("expected cached error on second call")
	}
}

func TestResponse_Decode(t *testing.T) {
	t.Parallel()

	resp := &Response{StatusCode: 200, body: []byte(`{"id": 7, "name": "demo"}`)}

	var item struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := resp.Decode(&item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID != 7 || item.Name != "demo" {
		t.Errorf("expected {7 demo}, got %+v", item)
	}
}

func TestResponse_TextAndBytes(t *testing.T) {
	t.Parallel()

	resp := &Response{StatusCode: 200, body: []byte("plain text")}

	if resp.Text() != "plain text" {
		t.Errorf("expected 'plain text', got %q", resp.Text())
	}

	if string(resp.Bytes()) != "plain text" {
		t.Errorf("expected 'plain text', got %q", resp.Bytes())
	}
}

func TestResponse_IsSuccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     int
		expected bool
	}{
		{200, true},
		{204, true},
		{299, true},
		{199, false},
		{300, false},
		{404, false},
	}

	for _, tt := range tests {
		resp := &Response{StatusCode: tt.code}
		if resp.IsSuccess() != tt.expected {
			t.Errorf("IsSuccess(%d): expected %v", tt.code, tt.expected)
		}
	}
}
