package resource

import (
	"context"
	"log"

	"clubportal/internal/api"
	"clubportal/internal/model"
	"clubportal/internal/notify"
)

// Applications owns the membership application queue.
type Applications struct {
	client   *api.Client
	notifier notify.Notifier
	snap     snapshot[model.Application]
}

// NewApplications creates the applications loader.
func NewApplications(client *api.Client, notifier notify.Notifier) *Applications {
	return &Applications{client: client, notifier: notifier}
}

// Load replaces the queue with the server's current list. Admin-only on the
// server side.
func (a *Applications) Load(ctx context.Context) error {
	tag := a.snap.begin()
	items, err := a.client.ListApplications(ctx)
	if err != nil {
		log.Printf("applications load failed: %v", err)
		return err
	}
	a.snap.commit(tag, items)
	return nil
}

// Items returns the loaded queue.
func (a *Applications) Items() []model.Application {
	return a.snap.get()
}

// Submit files a public application. The queue is admin-only, so no reload
// follows a public submission.
func (a *Applications) Submit(ctx context.Context, form model.ApplicationForm) error {
	if err := a.client.SubmitApplication(ctx, form); err != nil {
		notify.Error(a.notifier, "Could not submit application", err.Error())
		return err
	}
	notify.Info(a.notifier, "Application sent", "We will get in touch with you soon")
	return nil
}

// Approve marks an application approved and reloads the queue.
func (a *Applications) Approve(ctx context.Context, id int) error {
	return a.decide(ctx, id, model.StatusApproved, "Application approved")
}

// Reject marks an application rejected and reloads the queue.
func (a *Applications) Reject(ctx context.Context, id int) error {
	return a.decide(ctx, id, model.StatusRejected, "Application rejected")
}

func (a *Applications) decide(ctx context.Context, id int, status, title string) error {
	if err := a.client.SetApplicationStatus(ctx, id, status); err != nil {
		notify.Error(a.notifier, "Could not update application", err.Error())
		return err
	}
	notify.Info(a.notifier, title, "")
	return a.Load(ctx)
}
