package api

import (
	"context"
	"net/http"
	"strconv"

	"clubportal/internal/model"
)

// ListMembers fetches the active roster, or the soft-deleted archive when
// showDeleted is set. The two listings are separate loads, not filters.
func (c *Client) ListMembers(ctx context.Context, showDeleted bool) ([]model.User, error) {
	u := c.Endpoints.Members
	if showDeleted {
		u += "?show_deleted=true"
	}
	var out []model.User
	if err := c.do(ctx, http.MethodGet, u, roleHeader(model.RoleAdmin), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRoleHistory fetches the append-only member<->admin change log.
func (c *Client) ListRoleHistory(ctx context.Context) ([]model.RoleHistoryRecord, error) {
	var out []model.RoleHistoryRecord
	u := c.Endpoints.Members + "?history=true"
	if err := c.do(ctx, http.MethodGet, u, roleHeader(model.RoleAdmin), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveMember soft-deletes a member; the server keeps the record recoverable.
func (c *Client) RemoveMember(ctx context.Context, id int) error {
	u := c.Endpoints.Members + "?id=" + strconv.Itoa(id)
	return c.doStatus(ctx, http.MethodDelete, u, roleHeader(model.RoleAdmin), nil)
}

// RestoreMember brings a soft-deleted member back to the active roster.
func (c *Client) RestoreMember(ctx context.Context, id int) error {
	payload := map[string]interface{}{"action": "restore_user", "user_id": id}
	return c.doStatus(ctx, http.MethodPost, c.Endpoints.Members, roleHeader(model.RoleAdmin), payload)
}

// ChangeRole promotes or demotes a member. adminID, when known, attributes
// the change in the role history.
func (c *Client) ChangeRole(ctx context.Context, id int, role string, adminID *int) error {
	payload := map[string]interface{}{"id": id, "role": role}
	if adminID != nil {
		payload["admin_id"] = *adminID
	}
	return c.doStatus(ctx, http.MethodPut, c.Endpoints.Members, roleHeader(model.RoleAdmin), payload)
}
