package docebo

import (
	"context"
	"fmt"

	client "github.com/dbacademy/rest-go-client"
)

// EventsClient issues fixed-path calls against the session event endpoints.
type EventsClient struct {
	api *client.Client
}

// List returns the events of a session.
func (c *EventsClient) List(ctx context.Context, sessionID int) (*client.Response, error) {
	return c.api.Get(ctx, fmt.Sprintf("course/v1/sessions/%d/events", sessionID), nil)
}

// Get returns a single event of a session.
func (c *EventsClient) Get(ctx context.Context, sessionID, eventID int) (*client.Response, error) {
	return c.api.Get(ctx, fmt.Sprintf("course/v1/sessions/%d/events/%d", sessionID, eventID), nil)
}
