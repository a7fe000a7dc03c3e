package docebo

import (
	"context"
	"fmt"

	client "github.com/dbacademy/rest-go-client"
)

// SessionsClient issues fixed-path calls against the /course/v1/sessions
// endpoints.
type SessionsClient struct {
	api *client.Client
}

// List returns the sessions of a course.
func (c *SessionsClient) List(ctx context.Context, courseID int) (*client.Response, error) {
	return c.api.Get(ctx, "course/v1/sessions", map[string]any{"course_id": courseID})
}

// Get returns a single session by id.
func (c *SessionsClient) Get(ctx context.Context, sessionID int) (*client.Response, error) {
	return c.api.Get(ctx, fmt.Sprintf("course/v1/sessions/%d", sessionID), nil)
}

// Enrollments returns the enrollments of a session.
func (c *SessionsClient) Enrollments(ctx context.Context, sessionID int) (*client.Response, error) {
	return c.api.Get(ctx, fmt.Sprintf("course/v1/sessions/%d/enrollments", sessionID), nil)
}
