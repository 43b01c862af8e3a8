package app

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"clubportal/internal/api"
	"clubportal/internal/config"
	"clubportal/internal/model"
	"clubportal/internal/notify"
	"clubportal/internal/resource"
	"clubportal/internal/session"
	"clubportal/internal/stub"
)

type harness struct {
	portal  *App
	client  *api.Client
	storage *session.Storage
	srv     *httptest.Server
}

// newHarness wires a full orchestrator against an in-memory stub backend.
func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.App{
		JWTIssuer:       "club-portal",
		JWTSigningKey:   "test-secret",
		AccessTTL:       time.Hour,
		RateLimitPerMin: 10000,
	}
	srv := httptest.NewServer(stub.NewServer(cfg, stub.NewState()).Router())
	t.Cleanup(srv.Close)

	client := api.New(api.Endpoints{
		Auth:         srv.URL + "/auth",
		News:         srv.URL + "/news",
		Applications: srv.URL + "/applications",
		Attendance:   srv.URL + "/attendance",
		Members:      srv.URL + "/members",
	}, 2*time.Second)

	notifier := notify.NewCenter(64)
	storage := session.NewStorage(t.TempDir())
	sess := session.NewStore(client, storage, notifier)

	portal := New(
		sess,
		resource.NewNews(client, notifier),
		resource.NewApplications(client, notifier),
		resource.NewAttendance(client, notifier),
		resource.NewMembers(client, notifier),
		resource.NewGrades(client, notifier),
		notifier,
	)
	return &harness{portal: portal, client: client, storage: storage, srv: srv}
}

func (h *harness) loginAdmin(t *testing.T, ctx context.Context) {
	t.Helper()
	require.True(t, h.portal.Login(ctx, "admin@club.local", "admin"))
}

// registerMember creates an account through the API without touching the
// harness session, and returns its id.
func (h *harness) registerMember(t *testing.T, ctx context.Context, email, name string) int {
	t.Helper()
	res, err := h.client.Register(ctx, email, "pw", name)
	require.NoError(t, err)
	require.True(t, res.Success)
	return res.User.ID
}

func TestInitialState(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, SectionHome, h.portal.Section())
	require.Nil(t, h.portal.Session.Current())
	require.False(t, h.portal.AuthOpen())
	require.Nil(t, h.portal.Selected())
}

func TestLoginAsAdminEagerlyLoadsApplications(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// A pending application submitted from the public form.
	require.NoError(t, h.portal.Applications.Submit(ctx, model.ApplicationForm{
		FullName: "A", Email: "a@b.c", Phone: "", Message: "hi",
	}))

	h.portal.OpenAuth()
	h.loginAdmin(t, ctx)

	require.False(t, h.portal.AuthOpen(), "login must close the auth modal")
	apps := h.portal.Applications.Items()
	require.Len(t, apps, 1, "admin login must eagerly load applications")
	require.Equal(t, model.StatusPending, apps[0].Status)
	require.Equal(t, "A", apps[0].FullName)
}

func TestLoginAsMemberDoesNotLoadApplications(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.portal.Applications.Submit(ctx, model.ApplicationForm{FullName: "A", Email: "a@b.c"}))
	h.registerMember(t, ctx, "m@b.c", "Mem")

	require.True(t, h.portal.Login(ctx, "m@b.c", "pw"))
	require.Empty(t, h.portal.Applications.Items())
}

func TestApproveThenRejectBothSucceed(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.portal.Applications.Submit(ctx, model.ApplicationForm{FullName: "A", Email: "a@b.c"}))
	h.loginAdmin(t, ctx)

	id := h.portal.Applications.Items()[0].ID
	require.NoError(t, h.portal.Applications.Approve(ctx, id))
	require.Equal(t, model.StatusApproved, h.portal.Applications.Items()[0].Status)

	// No guard against re-deciding an already decided application.
	require.NoError(t, h.portal.Applications.Reject(ctx, id))
	require.Equal(t, model.StatusRejected, h.portal.Applications.Items()[0].Status)
}

func TestAttendanceDatePartitioning(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	memberID := h.registerMember(t, ctx, "m@b.c", "Mem")
	h.loginAdmin(t, ctx)

	h.portal.SetAttendanceDate(ctx, "2024-09-01")
	h.portal.Navigate(ctx, SectionAttendance)
	require.NoError(t, h.portal.Attendance.Toggle(ctx, memberID, true))

	recs := h.portal.Attendance.Records()
	require.Len(t, recs, 1)
	require.True(t, recs[0].Present)

	// Switching the date reloads a disjoint record set.
	h.portal.SetAttendanceDate(ctx, "2024-09-02")
	recs = h.portal.Attendance.Records()
	require.Len(t, recs, 1)
	require.False(t, recs[0].Present, "presence must not leak across dates")
}

func TestNavigateMembersLoadsRosterForAdmin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.registerMember(t, ctx, "m@b.c", "Mem")
	h.loginAdmin(t, ctx)

	h.portal.Navigate(ctx, SectionMembers)
	require.Equal(t, SectionMembers, h.portal.Section())
	require.Len(t, h.portal.Members.Active(), 2)
}

func TestNavigateMembersAsMemberLoadsNothing(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.registerMember(t, ctx, "m@b.c", "Mem")
	require.True(t, h.portal.Login(ctx, "m@b.c", "pw"))

	// Navigation itself is unconditional, but the view renders nothing and
	// no load fires.
	h.portal.Navigate(ctx, SectionMembers)
	require.Equal(t, SectionMembers, h.portal.Section())
	require.Empty(t, h.portal.Members.Active())
}

func TestRoleChangeAppendsHistory(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	memberID := h.registerMember(t, ctx, "m@b.c", "Mem")
	h.loginAdmin(t, ctx)
	adminID := h.portal.Session.Current().ID

	require.NoError(t, h.portal.Members.Promote(ctx, memberID, &adminID))

	history := h.portal.Members.History()
	require.Len(t, history, 1)
	require.Equal(t, model.RoleMember, history[0].OldRole)
	require.Equal(t, model.RoleAdmin, history[0].NewRole)
	require.NotNil(t, history[0].AdminName)
	require.Equal(t, "Club Admin", *history[0].AdminName)

	require.NoError(t, h.portal.Members.Demote(ctx, memberID, &adminID))
	require.Len(t, h.portal.Members.History(), 2)
}

func TestRemoveAndRestoreMember(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	memberID := h.registerMember(t, ctx, "m@b.c", "Mem")
	h.loginAdmin(t, ctx)
	h.portal.Navigate(ctx, SectionMembers)

	require.NoError(t, h.portal.Members.Remove(ctx, memberID))
	require.Len(t, h.portal.Members.Active(), 1, "removed member leaves the roster")
	require.Len(t, h.portal.Members.Deleted(), 1)

	require.NoError(t, h.portal.Members.Restore(ctx, memberID))
	require.Len(t, h.portal.Members.Active(), 2)
	require.Empty(t, h.portal.Members.Deleted())
}

func TestGradesFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	memberID := h.registerMember(t, ctx, "m@b.c", "Mem")
	h.loginAdmin(t, ctx)
	admin := h.portal.Session.Current()

	h.portal.SetGradesMode(ctx, resource.ViewAll)
	require.NoError(t, h.portal.Grades.Add(ctx, admin, memberID, "technique", 90, "solid"))
	require.NoError(t, h.portal.Grades.Add(ctx, admin, memberID, "theory", 70, ""))

	require.Equal(t, 80, h.portal.Grades.OverallAverage())

	// The roster listing carries server-side aggregates.
	h.portal.Navigate(ctx, SectionMembers)
	for _, u := range h.portal.Members.Active() {
		if u.ID == memberID {
			require.NotNil(t, u.AverageScore)
			require.InDelta(t, 80.0, *u.AverageScore, 0.001)
			require.NotNil(t, u.TotalGrades)
			require.Equal(t, 2, *u.TotalGrades)
		}
	}

	// The member detail overlay loads that member's records.
	h.portal.OpenMemberGrades(ctx, memberID, "Mem")
	require.NotNil(t, h.portal.Selected())
	require.Len(t, h.portal.Grades.Detail(), 2)
	require.Equal(t, 80, h.portal.Grades.DetailAverage())
	h.portal.CloseMemberGrades()
	require.Nil(t, h.portal.Selected())
}

func TestMemberSeesOnlyOwnGrades(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	aliceID := h.registerMember(t, ctx, "alice@b.c", "Alice")
	bobID := h.registerMember(t, ctx, "bob@b.c", "Bob")
	h.loginAdmin(t, ctx)
	admin := h.portal.Session.Current()
	require.NoError(t, h.portal.Grades.Add(ctx, admin, aliceID, "theory", 60, ""))
	require.NoError(t, h.portal.Grades.Add(ctx, admin, bobID, "theory", 90, ""))

	h.portal.Logout(ctx)
	require.True(t, h.portal.Login(ctx, "alice@b.c", "pw"))
	h.portal.SetGradesMode(ctx, resource.ViewMy)
	h.portal.Navigate(ctx, SectionGrades)

	grades := h.portal.Grades.Items()
	require.Len(t, grades, 1)
	require.Equal(t, aliceID, grades[0].UserID)
}

func TestLogoutForcesHomeAndClearsStorage(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginAdmin(t, ctx)
	h.portal.Navigate(ctx, SectionMembers)
	h.portal.OpenMemberGrades(ctx, 1, "Club Admin")

	h.portal.Logout(ctx)
	require.Equal(t, SectionHome, h.portal.Section())
	require.Nil(t, h.portal.Session.Current())
	require.Nil(t, h.portal.Selected())

	saved, _ := h.storage.Read()
	require.Nil(t, saved)
}

func TestStartRestoresSessionAndLoadsNews(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.loginAdmin(t, ctx)
	admin := h.portal.Session.Current()
	require.NoError(t, h.portal.News.Create(ctx, model.NewsDraft{Title: "hello", Content: "world"}, admin.ID))
	require.NoError(t, h.portal.Applications.Submit(ctx, model.ApplicationForm{FullName: "A", Email: "a@b.c"}))

	// A fresh orchestrator over the same storage behaves like a page reload.
	notifier := notify.NewCenter(8)
	sess := session.NewStore(h.client, h.storage, notifier)
	fresh := New(
		sess,
		resource.NewNews(h.client, notifier),
		resource.NewApplications(h.client, notifier),
		resource.NewAttendance(h.client, notifier),
		resource.NewMembers(h.client, notifier),
		resource.NewGrades(h.client, notifier),
		notifier,
	)
	fresh.Start(ctx)

	require.NotNil(t, fresh.Session.Current())
	require.Equal(t, admin.ID, fresh.Session.Current().ID)
	require.Len(t, fresh.News.Items(), 1)
	require.Equal(t, "hello", fresh.News.Items()[0].Title)
	require.NotEmpty(t, fresh.Applications.Items(), "restored admin session eagerly loads applications")
}
