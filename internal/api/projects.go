package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// ListProjects returns projects matching the filter
func (c *Client) ListProjects(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Sphere != "" {
		query.Set("sphere", filter.Sphere)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects", query, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// MyProjects returns the projects the authenticated user owns or has joined
func (c *Client) MyProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/projects/my-projects", nil, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject retrieves a project by id
func (c *Client) GetProject(ctx context.Context, projectID uuid.UUID) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID.String(), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project owned by the authenticated user
func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject updates an existing project
func (c *Client) UpdateProject(ctx context.Context, projectID uuid.UUID, req ProjectRequest) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPut, "/projects/"+projectID.String(), nil, req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project
func (c *Client) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+projectID.String(), nil, nil, nil)
}

// AddMember adds a user to a project's members
func (c *Client) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	path := "/projects/" + projectID.String() + "/members/" + userID.String()
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

// RemoveMember removes a user from a project's members
func (c *Client) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	path := "/projects/" + projectID.String() + "/members/" + userID.String()
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
