package api

import (
	"context"
	"net/http"
	"net/url"

	"clubportal/internal/model"
)

// ListAttendance fetches presence records for one calendar date (YYYY-MM-DD).
// The date partitions the resource: every date is a fully separate load.
func (c *Client) ListAttendance(ctx context.Context, date string) ([]model.AttendanceRecord, error) {
	var out struct {
		Date       string                   `json:"date"`
		Attendance []model.AttendanceRecord `json:"attendance"`
	}
	u := c.Endpoints.Attendance + "?date=" + url.QueryEscape(date)
	if err := c.do(ctx, http.MethodGet, u, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Attendance, nil
}

// ToggleAttendance upserts one member's presence for a date. The endpoint
// returns no meaningful body; callers reload the date after a nil error.
func (c *Client) ToggleAttendance(ctx context.Context, userID int, date string, present bool) error {
	payload := map[string]interface{}{
		"user_id": userID,
		"date":    date,
		"present": present,
	}
	return c.do(ctx, http.MethodPost, c.Endpoints.Attendance, nil, payload, nil)
}
