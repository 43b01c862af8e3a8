package resource

import (
	"context"
	"log"

	"clubportal/internal/api"
	"clubportal/internal/model"
	"clubportal/internal/notify"
)

// News owns the news feed.
type News struct {
	client   *api.Client
	notifier notify.Notifier
	snap     snapshot[model.NewsItem]
}

// NewNews creates the news loader.
func NewNews(client *api.Client, notifier notify.Notifier) *News {
	return &News{client: client, notifier: notifier}
}

// Load replaces the feed with the server's current list.
func (n *News) Load(ctx context.Context) error {
	tag := n.snap.begin()
	items, err := n.client.ListNews(ctx)
	if err != nil {
		log.Printf("news load failed: %v", err)
		return err
	}
	n.snap.commit(tag, items)
	return nil
}

// Items returns the loaded feed.
func (n *News) Items() []model.NewsItem {
	return n.snap.get()
}

// Create publishes a news item and reloads the feed on success.
func (n *News) Create(ctx context.Context, draft model.NewsDraft, authorID int) error {
	if err := n.client.CreateNews(ctx, draft, authorID); err != nil {
		notify.Error(n.notifier, "Could not publish news", err.Error())
		return err
	}
	notify.Info(n.notifier, "News published", "")
	return n.Load(ctx)
}
