package resource

import (
	"context"
	"log"

	"clubportal/internal/api"
	"clubportal/internal/model"
	"clubportal/internal/notify"
)

// Members owns the roster, the soft-deleted archive and the role history.
// The three listings are separate parameterized loads of the same endpoint.
type Members struct {
	client   *api.Client
	notifier notify.Notifier

	active  snapshot[model.User]
	deleted snapshot[model.User]
	history snapshot[model.RoleHistoryRecord]
}

// NewMembers creates the members loader.
func NewMembers(client *api.Client, notifier notify.Notifier) *Members {
	return &Members{client: client, notifier: notifier}
}

// Load replaces the active roster.
func (m *Members) Load(ctx context.Context) error {
	tag := m.active.begin()
	items, err := m.client.ListMembers(ctx, false)
	if err != nil {
		log.Printf("members load failed: %v", err)
		return err
	}
	m.active.commit(tag, items)
	return nil
}

// LoadDeleted replaces the soft-deleted archive.
func (m *Members) LoadDeleted(ctx context.Context) error {
	tag := m.deleted.begin()
	items, err := m.client.ListMembers(ctx, true)
	if err != nil {
		log.Printf("deleted members load failed: %v", err)
		return err
	}
	m.deleted.commit(tag, items)
	return nil
}

// LoadHistory replaces the role change log.
func (m *Members) LoadHistory(ctx context.Context) error {
	tag := m.history.begin()
	items, err := m.client.ListRoleHistory(ctx)
	if err != nil {
		log.Printf("role history load failed: %v", err)
		return err
	}
	m.history.commit(tag, items)
	return nil
}

// Active returns the loaded roster.
func (m *Members) Active() []model.User {
	return m.active.get()
}

// Deleted returns the loaded archive.
func (m *Members) Deleted() []model.User {
	return m.deleted.get()
}

// History returns the loaded role change log.
func (m *Members) History() []model.RoleHistoryRecord {
	return m.history.get()
}

// Remove soft-deletes a member and reloads both roster and archive. Callers
// are responsible for confirming the action with the user first.
func (m *Members) Remove(ctx context.Context, id int) error {
	name := m.nameOf(m.Active(), id)
	if err := m.client.RemoveMember(ctx, id); err != nil {
		notify.Error(m.notifier, "Could not remove member", err.Error())
		return err
	}
	notify.Info(m.notifier, "Member removed", name+" was archived and can be restored")
	if err := m.Load(ctx); err != nil {
		return err
	}
	return m.LoadDeleted(ctx)
}

// Restore reactivates an archived member and reloads both listings.
func (m *Members) Restore(ctx context.Context, id int) error {
	name := m.nameOf(m.Deleted(), id)
	if err := m.client.RestoreMember(ctx, id); err != nil {
		notify.Error(m.notifier, "Could not restore member", err.Error())
		return err
	}
	notify.Info(m.notifier, "Member restored", name+" is active again")
	if err := m.Load(ctx); err != nil {
		return err
	}
	return m.LoadDeleted(ctx)
}

// Promote grants admin rights and reloads roster and history.
func (m *Members) Promote(ctx context.Context, id int, adminID *int) error {
	return m.changeRole(ctx, id, model.RoleAdmin, adminID, "Member promoted to admin")
}

// Demote revokes admin rights and reloads roster and history.
func (m *Members) Demote(ctx context.Context, id int, adminID *int) error {
	return m.changeRole(ctx, id, model.RoleMember, adminID, "Admin rights revoked")
}

func (m *Members) changeRole(ctx context.Context, id int, role string, adminID *int, title string) error {
	if err := m.client.ChangeRole(ctx, id, role, adminID); err != nil {
		notify.Error(m.notifier, "Could not change role", err.Error())
		return err
	}
	notify.Info(m.notifier, title, "")
	if err := m.Load(ctx); err != nil {
		return err
	}
	return m.LoadHistory(ctx)
}

func (m *Members) nameOf(list []model.User, id int) string {
	for _, u := range list {
		if u.ID == id {
			return u.FullName
		}
	}
	return "member"
}
