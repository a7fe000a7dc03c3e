package docebo

import (
	"context"
	"fmt"
	"net/http"

	client "github.com/dbacademy/rest-go-client"
)

// ManageClient issues fixed-path calls against the /manage/v1 user
// endpoints.
type ManageClient struct {
	api *client.Client
}

// Users returns one page of users.
func (c *ManageClient) Users(ctx context.Context, page, pageSize int) (*client.Response, error) {
	return c.api.Get(ctx, "manage/v1/user", map[string]any{
		"page":      page,
		"page_size": pageSize,
	})
}

// User returns a single user by id. A missing user yields a response with
// status 404 rather than an error.
func (c *ManageClient) User(ctx context.Context, userID int) (*client.Response, error) {
	return c.api.Get(ctx, fmt.Sprintf("manage/v1/user/%d", userID), nil, http.StatusNotFound)
}
