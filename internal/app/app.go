// Package app is the orchestration layer: it owns the active section, lifts
// the session store and the five resource loaders, and wires the cross-loader
// side effects that keep local state in step with the server.
package app

import (
	"context"
	"sync"

	"clubportal/internal/model"
	"clubportal/internal/notify"
	"clubportal/internal/resource"
	"clubportal/internal/session"
)

// Section names one navigable view. Navigation replaces the current section
// wholesale; there is no history stack.
type Section string

const (
	SectionHome        Section = "home"
	SectionNews        Section = "news"
	SectionAttendance  Section = "attendance"
	SectionApplication Section = "application"
	SectionMembers     Section = "members"
	SectionGrades      Section = "grades"
	SectionContacts    Section = "contacts"
)

// SelectedMember identifies the member whose grades are shown in the detail
// overlay. It is independent of the active section.
type SelectedMember struct {
	ID   int
	Name string
}

// App is the top-level orchestrator. It runs for the life of the process;
// there is no terminal state.
type App struct {
	Session      *session.Store
	News         *resource.News
	Applications *resource.Applications
	Attendance   *resource.Attendance
	Members      *resource.Members
	Grades       *resource.Grades

	notifier notify.Notifier

	mu       sync.Mutex
	section  Section
	authOpen bool
	selected *SelectedMember
}

// New wires an orchestrator from its collaborators. The initial state is the
// home section, unauthenticated.
func New(sess *session.Store, news *resource.News, apps *resource.Applications,
	att *resource.Attendance, members *resource.Members, grades *resource.Grades,
	notifier notify.Notifier) *App {
	return &App{
		Session:      sess,
		News:         news,
		Applications: apps,
		Attendance:   att,
		Members:      members,
		Grades:       grades,
		notifier:     notifier,
		section:      SectionHome,
	}
}

// Start restores any persisted session and performs the initial loads: the
// news feed always, the application queue when the restored identity is an
// admin. Load failures are logged by the loaders and never abort startup.
func (a *App) Start(ctx context.Context) {
	user := a.Session.Restore()
	_ = a.News.Load(ctx)
	if user.IsAdmin() {
		_ = a.Applications.Load(ctx)
	}
}

// Section returns the active section.
func (a *App) Section() Section {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.section
}

// Navigate replaces the active section unconditionally and runs that
// section's on-enter loads. A section the viewer cannot see renders nothing,
// so nothing is loaded for it either.
func (a *App) Navigate(ctx context.Context, s Section) {
	a.mu.Lock()
	a.section = s
	a.mu.Unlock()

	user := a.Session.Current()
	if !CanView(s, user) {
		return
	}
	switch s {
	case SectionNews:
		_ = a.News.Load(ctx)
	case SectionAttendance:
		_ = a.Attendance.Load(ctx)
	case SectionMembers:
		_ = a.Members.Load(ctx)
	case SectionGrades:
		_ = a.Grades.Load(ctx, user)
	}
}

// SetAttendanceDate selects a new attendance date and, while the attendance
// section is active, reloads it for that date.
func (a *App) SetAttendanceDate(ctx context.Context, date string) {
	a.Attendance.SetDate(date)
	if a.Section() == SectionAttendance && CanView(SectionAttendance, a.Session.Current()) {
		_ = a.Attendance.Load(ctx)
	}
}

// SetGradesMode selects the grades view mode and, while the grades section
// is active, reloads it.
func (a *App) SetGradesMode(ctx context.Context, mode resource.ViewMode) {
	a.Grades.SetMode(mode)
	user := a.Session.Current()
	if a.Section() == SectionGrades && CanView(SectionGrades, user) {
		_ = a.Grades.Load(ctx, user)
	}
}

// OpenAuth opens the login/registration modal.
func (a *App) OpenAuth() {
	a.mu.Lock()
	a.authOpen = true
	a.mu.Unlock()
}

// CloseAuth dismisses the modal without logging in.
func (a *App) CloseAuth() {
	a.mu.Lock()
	a.authOpen = false
	a.mu.Unlock()
}

// AuthOpen reports whether the auth modal is showing.
func (a *App) AuthOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authOpen
}

// Login authenticates through the session store and on success runs the
// post-login transition.
func (a *App) Login(ctx context.Context, email, password string) bool {
	res := a.Session.Login(ctx, email, password)
	if res.Success {
		a.HandleLoginSuccess(ctx, res.User)
	}
	return res.Success
}

// Register creates an account through the session store and on success runs
// the post-login transition.
func (a *App) Register(ctx context.Context, email, password, fullName string) bool {
	res := a.Session.Register(ctx, email, password, fullName)
	if res.Success {
		a.HandleLoginSuccess(ctx, res.User)
	}
	return res.Success
}

// HandleLoginSuccess closes the auth modal and, for admins, eagerly loads
// the application queue so the review view is warm.
func (a *App) HandleLoginSuccess(ctx context.Context, user *model.User) {
	a.mu.Lock()
	a.authOpen = false
	a.mu.Unlock()
	if user.IsAdmin() {
		_ = a.Applications.Load(ctx)
	}
}

// Logout clears the session and forces navigation home.
func (a *App) Logout(ctx context.Context) {
	a.Session.Logout()
	a.mu.Lock()
	a.selected = nil
	a.mu.Unlock()
	a.Navigate(ctx, SectionHome)
}

// OpenMemberGrades shows the grades overlay for one member and loads their
// records. The overlay is dismissible independently of the active section.
func (a *App) OpenMemberGrades(ctx context.Context, id int, name string) {
	a.mu.Lock()
	a.selected = &SelectedMember{ID: id, Name: name}
	a.mu.Unlock()
	_ = a.Grades.LoadFor(ctx, id)
}

// CloseMemberGrades dismisses the overlay.
func (a *App) CloseMemberGrades() {
	a.mu.Lock()
	a.selected = nil
	a.mu.Unlock()
}

// Selected returns the member shown in the grades overlay, or nil.
func (a *App) Selected() *SelectedMember {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selected
}
