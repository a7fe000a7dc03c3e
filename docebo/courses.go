package docebo

import (
	"context"
	"fmt"

	client "github.com/dbacademy/rest-go-client"
)

// CoursesClient issues fixed-path calls against the /learn/v1/courses
// endpoints.
type CoursesClient struct {
	api *client.Client
}

// List returns one page of courses.
func (c *CoursesClient) List(ctx context.Context, page, pageSize int) (*client.Response, error) {
	return c.api.Get(ctx, "learn/v1/courses", map[string]any{
		"page":      page,
		"page_size": pageSize,
	})
}

// Get returns a single course by id.
func (c *CoursesClient) Get(ctx context.Context, courseID int) (*client.Response, error) {
	return c.api.Get(ctx, fmt.Sprintf("learn/v1/courses/%d", courseID), nil)
}

// Search returns courses matching the given text.
func (c *CoursesClient) Search(ctx context.Context, text string) (*client.Response, error) {
	return c.api.Get(ctx, "learn/v1/courses", map[string]any{"search_text": text})
}
