package api

import (
	"context"
	"net/http"

	"clubportal/internal/model"
)

// ListApplications fetches the membership application queue. Admin-only on
// the server side; the role header is what the endpoint filters on.
func (c *Client) ListApplications(ctx context.Context) ([]model.Application, error) {
	var out []model.Application
	if err := c.do(ctx, http.MethodGet, c.Endpoints.Applications, roleHeader(model.RoleAdmin), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitApplication files a public membership application.
func (c *Client) SubmitApplication(ctx context.Context, form model.ApplicationForm) error {
	return c.doStatus(ctx, http.MethodPost, c.Endpoints.Applications, nil, form)
}

// SetApplicationStatus approves or rejects an application. The server does
// not guard against re-transitioning an already decided application.
func (c *Client) SetApplicationStatus(ctx context.Context, id int, status string) error {
	payload := map[string]interface{}{"id": id, "status": status}
	return c.doStatus(ctx, http.MethodPut, c.Endpoints.Applications, nil, payload)
}
