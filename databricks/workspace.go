package databricks

import (
	"context"
	"net/http"

	client "github.com/dbacademy/rest-go-client"
)

// WorkspaceClient issues fixed-path calls against the 2.0/workspace
// endpoints.
type WorkspaceClient struct {
	api *client.Client
}

// Status returns the object status for a workspace path. A missing object
// yields a response with status 404 rather than an error.
func (c *WorkspaceClient) Status(ctx context.Context, path string) (*client.Response, error) {
	return c.api.Get(ctx, "2.0/workspace/get-status", map[string]any{"path": path}, http.StatusNotFound)
}

// List returns the objects under a workspace path.
func (c *WorkspaceClient) List(ctx context.Context, path string) (*client.Response, error) {
	return c.api.Get(ctx, "2.0/workspace/list", map[string]any{"path": path})
}

// Mkdirs creates a workspace directory, including missing parents.
func (c *WorkspaceClient) Mkdirs(ctx context.Context, path string) (*client.Response, error) {
	return c.api.Post(ctx, "2.0/workspace/mkdirs", map[string]any{"path": path})
}

// Delete removes a workspace object. Deleting a missing object is not an
// error.
func (c *WorkspaceClient) Delete(ctx context.Context, path string, recursive bool) (*client.Response, error) {
	return c.api.Post(ctx, "2.0/workspace/delete", map[string]any{
		"path":      path,
		"recursive": recursive,
	}, http.StatusNotFound)
}
