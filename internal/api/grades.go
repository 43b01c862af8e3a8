package api

import (
	"context"
	"net/http"
	"strconv"

	"clubportal/internal/model"
)

// ListGrades fetches grades through the members endpoint. A nil userID asks
// for all records (admin view); a set userID scopes to one member. The
// viewer's role rides the identity header and the server filters on it.
func (c *Client) ListGrades(ctx context.Context, viewerRole string, userID *int) ([]model.Grade, error) {
	u := c.Endpoints.Members + "?grades=true"
	if userID != nil {
		u += "&user_id=" + strconv.Itoa(*userID)
	}
	var out []model.Grade
	if err := c.do(ctx, http.MethodGet, u, roleHeader(viewerRole), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddGrade records a grade for a member, attributed to the grading admin.
func (c *Client) AddGrade(ctx context.Context, adminID, userID int, category string, score int, comment string) error {
	headers := map[string]string{
		HeaderRole:   model.RoleAdmin,
		HeaderUserID: strconv.Itoa(adminID),
	}
	payload := map[string]interface{}{
		"action":   "add_grade",
		"user_id":  userID,
		"category": category,
		"score":    score,
		"comment":  comment,
	}
	return c.doStatus(ctx, http.MethodPost, c.Endpoints.Members, headers, payload)
}
