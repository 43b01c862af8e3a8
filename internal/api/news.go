package api

import (
	"context"
	"net/http"
	"strconv"

	"clubportal/internal/model"
)

// ListNews fetches the news feed. Ordering is server-determined.
func (c *Client) ListNews(ctx context.Context) ([]model.NewsItem, error) {
	var out []model.NewsItem
	if err := c.do(ctx, http.MethodGet, c.Endpoints.News, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNews publishes a news item as the given author.
func (c *Client) CreateNews(ctx context.Context, draft model.NewsDraft, authorID int) error {
	headers := map[string]string{HeaderUserID: strconv.Itoa(authorID)}
	return c.doStatus(ctx, http.MethodPost, c.Endpoints.News, headers, draft)
}
